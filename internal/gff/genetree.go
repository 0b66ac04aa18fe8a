package gff

import "sort"

// GeneTree provides O(log n + k) overlap queries using a sorted-slice approach.
// Genes are loaded once and never modified after build.
type GeneTree struct {
	intervals []geneInterval
	maxEnd    []uint64 // maxEnd[i] = max(End) for intervals[:i+1]
}

type geneInterval struct {
	start uint64
	end   uint64
	gene  *Gene
}

// BuildGeneTree creates an interval tree from a slice of genes.
func BuildGeneTree(genes []*Gene) *GeneTree {
	if len(genes) == 0 {
		return &GeneTree{}
	}

	intervals := make([]geneInterval, len(genes))
	for i, g := range genes {
		intervals[i] = geneInterval{start: g.Interval.Start, end: g.Interval.End, gene: g}
	}

	sort.SliceStable(intervals, func(i, j int) bool {
		return intervals[i].start < intervals[j].start
	})

	// Prefix max: a scan walking left from the last candidate can stop
	// once nothing at or before i reaches pos.
	maxEnd := make([]uint64, len(intervals))
	maxEnd[0] = intervals[0].end
	for i := 1; i < len(intervals); i++ {
		maxEnd[i] = max(maxEnd[i-1], intervals[i].end)
	}

	return &GeneTree{intervals: intervals, maxEnd: maxEnd}
}

// FindOverlaps returns all genes whose interval contains pos.
func (t *GeneTree) FindOverlaps(pos uint64) []*Gene {
	if len(t.intervals) == 0 {
		return nil
	}

	// hi is the first index with start > pos; candidates are [0, hi).
	hi := sort.Search(len(t.intervals), func(i int) bool {
		return t.intervals[i].start > pos
	})

	var result []*Gene
	for i := hi - 1; i >= 0; i-- {
		if t.maxEnd[i] < pos {
			break
		}
		if t.intervals[i].end >= pos {
			result = append(result, t.intervals[i].gene)
		}
	}
	return result
}
