package gff

import (
	"fmt"
	"strconv"
	"strings"
)

// FeatureType classifies the type column of a feature line.
type FeatureType uint8

const (
	FeatureOther FeatureType = iota
	FeatureGene
	FeatureMRNA
	FeatureExon
	FeatureUTR
	FeatureCDS
	FeatureStartCodon
	FeatureStopCodon
)

var featureTypeNames = [...]string{
	FeatureOther:      "other",
	FeatureGene:       "gene",
	FeatureMRNA:       "mRNA",
	FeatureExon:       "exon",
	FeatureUTR:        "UTR",
	FeatureCDS:        "CDS",
	FeatureStartCodon: "start_codon",
	FeatureStopCodon:  "stop_codon",
}

func (f FeatureType) String() string {
	if int(f) < len(featureTypeNames) {
		return featureTypeNames[f]
	}
	return "unknown"
}

// ClassifyFeature maps free-text feature type vocabulary to a FeatureType.
// Matching is case-insensitive and the first rule that applies wins:
// utr, exon, stop codon, start codon, cds, rna/transcript, gene.
func ClassifyFeature(text string) FeatureType {
	t := strings.ToLower(text)
	codonLike := strings.Contains(t, "codon") || strings.Contains(t, "cds")
	switch {
	case strings.Contains(t, "utr"):
		return FeatureUTR
	case strings.Contains(t, "exon"):
		return FeatureExon
	case strings.Contains(t, "stop") && codonLike:
		return FeatureStopCodon
	case strings.Contains(t, "start") && codonLike:
		return FeatureStartCodon
	case t == "cds":
		return FeatureCDS
	case strings.Contains(t, "rna") || strings.Contains(t, "transcript"):
		return FeatureMRNA
	case strings.Contains(t, "gene"):
		return FeatureGene
	}
	return FeatureOther
}

// nameKeys are tried in order for features carrying an ID; the first
// non-empty value becomes the feature name.
var nameKeys = []string{"name", "gene_name", "genename", "gene_sym", "gene"}

// Line is one parsed feature line. Lines are transient: the builder folds
// them into the hierarchy and drops them.
type Line struct {
	Raw      string // original text
	Chrom    string // sequence name, lower-cased
	Source   string
	TypeText string // type column as written
	Type     FeatureType
	Start    uint64
	End      uint64
	Score    float64
	Strand   Strand
	Phase    byte
	Attrs    string // attribute column with the extracted keys removed

	ID      string
	Name    string
	Parent  string   // raw Parent value
	Parents []string // Parent split on ','

	GFF3      bool // ID or Parent present
	Malformed bool
	Warnings  []string
}

// ParentID returns the first parent of the line, or "" if it has none.
func (l *Line) ParentID() string {
	if len(l.Parents) > 0 {
		return l.Parents[0]
	}
	return l.Parent
}

func (l *Line) warnf(format string, args ...any) {
	l.Warnings = append(l.Warnings, fmt.Sprintf(format, args...))
}

// extract pulls key out of the remaining attribute string.
func (l *Line) extract(key string) string {
	m, ok := findAttr(l.Attrs, key)
	if !ok {
		return ""
	}
	if m.empty {
		l.warnf("empty value for attribute %q", key)
	}
	val := l.Attrs[m.valStart:m.valEnd]
	l.Attrs = l.Attrs[:m.key] + l.Attrs[m.cut:]
	return val
}

// ParseLine parses a tab-delimited GFF feature line. Problems never cause
// an error: the line is marked Malformed and the reason is recorded in
// Warnings.
func ParseLine(raw string) *Line {
	l := &Line{Raw: raw}

	fields := strings.SplitN(raw, "\t", 9)
	if len(fields) < 8 {
		l.Malformed = true
		l.warnf("expected at least 8 tab-delimited fields, got %d", len(fields))
		return l
	}

	l.Chrom = strings.ToLower(fields[0])
	l.Source = fields[1]
	l.TypeText = fields[2]
	if len(fields) > 8 {
		l.Attrs = fields[8]
	}

	start, err := strconv.ParseUint(strings.TrimSpace(fields[3]), 10, 64)
	if err != nil || start == 0 {
		l.Malformed = true
		l.warnf("invalid start coordinate %q", fields[3])
		return l
	}
	end, err := strconv.ParseUint(strings.TrimSpace(fields[4]), 10, 64)
	if err != nil || end == 0 {
		l.Malformed = true
		l.warnf("invalid end coordinate %q", fields[4])
		return l
	}
	if end < start {
		start, end = end, start
	}
	l.Start, l.End = start, end

	if fields[5] != "." {
		// An unparseable score reads as 0; a zero score ends parsing.
		score, _ := strconv.ParseFloat(strings.TrimSpace(fields[5]), 64)
		if score == 0 {
			l.Malformed = true
			l.warnf("invalid feature score %q", fields[5])
			return l
		}
		l.Score = score
	}

	l.Strand = parseStrand(fields[6])
	if len(fields[7]) > 0 {
		l.Phase = fields[7][0]
	}
	l.Type = ClassifyFeature(fields[2])

	l.ID = l.extract("id")
	l.Parent = l.extract("parent")
	l.GFF3 = l.ID != "" || l.Parent != ""
	if l.ID != "" {
		for _, key := range nameKeys {
			if l.Name = l.extract(key); l.Name != "" {
				break
			}
		}
	}
	if l.Parent != "" {
		for _, p := range strings.Split(l.Parent, ",") {
			if p != "" {
				l.Parents = append(l.Parents, p)
			}
		}
	}
	return l
}
