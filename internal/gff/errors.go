package gff

import (
	"errors"
	"fmt"
)

// ErrUnresolvedParent matches any *UnresolvedParentError with errors.Is.
var ErrUnresolvedParent = errors.New("unresolved parent reference")

// UnresolvedParentError reports a transcript whose gene, or an exon whose
// transcript, was not seen earlier on the same chromosome.
type UnresolvedParentError struct {
	LineNumber int
	Line       string      // raw text of the offending line
	Parent     string      // missing parent id
	Kind       FeatureType // FeatureGene or FeatureMRNA
	Strand     Strand      // strand searched, for transcript parents
}

func (e *UnresolvedParentError) Error() string {
	if e.Kind == FeatureMRNA {
		return fmt.Sprintf("line %d: parent transcript %q (strand %s) not found: %s",
			e.LineNumber, e.Parent, e.Strand, e.Line)
	}
	return fmt.Sprintf("line %d: parent %s %q not found: %s", e.LineNumber, e.Kind, e.Parent, e.Line)
}

// Is reports whether target is ErrUnresolvedParent.
func (e *UnresolvedParentError) Is(target error) bool {
	return target == ErrUnresolvedParent
}
