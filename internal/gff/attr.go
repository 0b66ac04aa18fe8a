package gff

import "strings"

// attrMatch locates one accepted attribute within an attribute string.
type attrMatch struct {
	key      int  // offset of the key
	valStart int  // first byte of the value
	valEnd   int  // one past the last byte of the value
	cut      int  // first byte kept after the attribute is removed
	empty    bool // key followed directly by ';' or end of string
}

// findAttr scans info for key, ignoring anything inside double quotes.
// A match must start the string or follow a space or ';', and must be
// followed by '=', a space, or the end of the string. Keys compare
// case-insensitively.
func findAttr(info, key string) (attrMatch, bool) {
	n, k := len(info), len(key)
	if k == 0 {
		return attrMatch{}, false
	}

	inQuote := false
	boundary := true
	pos := 0
	for pos < n {
		ch := info[pos]
		if ch == '"' {
			inQuote = !inQuote
			boundary = false
			pos++
			continue
		}
		if !inQuote && boundary && pos+k <= n && strings.EqualFold(info[pos:pos+k], key) {
			end := pos + k
			if end == n || info[end] == '=' || info[end] == ' ' {
				return captureAttr(info, pos, end), true
			}
			// partial match such as "id" in "idx=": resume after it
			pos = end
			boundary = isAttrBoundary(info[pos-1])
			continue
		}
		boundary = isAttrBoundary(ch)
		pos++
	}
	return attrMatch{}, false
}

func isAttrBoundary(ch byte) bool {
	return ch == ' ' || ch == ';'
}

// captureAttr reads the value following a key that ends at keyEnd.
func captureAttr(info string, keyStart, keyEnd int) attrMatch {
	n := len(info)
	m := attrMatch{key: keyStart}

	vp := keyEnd
	for vp < n && info[vp] == ' ' {
		vp++
	}
	if vp < n && info[vp] == '=' {
		vp++
		for vp < n && info[vp] == ' ' {
			vp++
		}
	}
	m.empty = vp == n || info[vp] == ';'

	quoted := vp < n && info[vp] == '"'
	if quoted {
		vp++
	}
	ve := vp
	if quoted {
		for ve < n && info[ve] != '"' {
			ve++
		}
	} else {
		for ve < n && info[ve] != ';' {
			ve++
		}
	}
	m.valStart, m.valEnd = vp, ve

	cut := ve
	for cut < n && (info[cut] == '"' || info[cut] == ';' || info[cut] == ' ') {
		cut++
	}
	// Keep the last terminator when the removed span runs to the end.
	if cut == n && cut > ve {
		cut--
	}
	m.cut = cut
	return m
}

// ExtractAttr returns the value of key in the attribute string info,
// together with info with the key and its value removed. If key is not
// present outside quoted text, ok is false and rest equals info.
//
// Values may be bare (terminated by ';') or double-quoted (terminated by
// the closing quote only). The captured value is returned as-is, without
// unescaping.
func ExtractAttr(info, key string) (val, rest string, ok bool) {
	m, ok := findAttr(info, key)
	if !ok {
		return "", info, false
	}
	return info[m.valStart:m.valEnd], info[:m.key] + info[m.cut:], true
}
