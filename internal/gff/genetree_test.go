package gff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func treeGene(id string, start, end uint64) *Gene {
	return &Gene{ID: id, Interval: NewInterval(0, start, end, StrandPlus)}
}

func geneIDs(genes []*Gene) map[string]bool {
	ids := map[string]bool{}
	for _, g := range genes {
		ids[g.ID] = true
	}
	return ids
}

func TestBuildGeneTree_Empty(t *testing.T) {
	tree := BuildGeneTree(nil)
	assert.Empty(t, tree.FindOverlaps(100))
}

func TestGeneTree_SingleGene(t *testing.T) {
	tree := BuildGeneTree([]*Gene{treeGene("G1", 100, 200)})

	assert.Len(t, tree.FindOverlaps(150), 1)
	assert.Len(t, tree.FindOverlaps(100), 1, "start boundary inclusive")
	assert.Len(t, tree.FindOverlaps(200), 1, "end boundary inclusive")
	assert.Empty(t, tree.FindOverlaps(99), "before start")
	assert.Empty(t, tree.FindOverlaps(201), "after end")
}

func TestGeneTree_Overlapping(t *testing.T) {
	tree := BuildGeneTree([]*Gene{
		treeGene("A", 100, 300),
		treeGene("B", 150, 250),
		treeGene("C", 200, 400),
	})

	ids := geneIDs(tree.FindOverlaps(175))
	assert.Equal(t, map[string]bool{"A": true, "B": true}, ids)
	assert.Len(t, tree.FindOverlaps(250), 3)
	assert.Equal(t, map[string]bool{"C": true}, geneIDs(tree.FindOverlaps(350)))
}

func TestGeneTree_LongGeneBeforeShortOnes(t *testing.T) {
	tree := BuildGeneTree([]*Gene{
		treeGene("LONG", 100, 10000),
		treeGene("S1", 200, 300),
		treeGene("S2", 400, 500),
		treeGene("S3", 600, 700),
	})

	assert.Equal(t, map[string]bool{"LONG": true}, geneIDs(tree.FindOverlaps(9000)))
	assert.Equal(t, map[string]bool{"LONG": true, "S3": true}, geneIDs(tree.FindOverlaps(650)))
}

func TestGeneTree_NonOverlapping(t *testing.T) {
	tree := BuildGeneTree([]*Gene{
		treeGene("A", 100, 200),
		treeGene("B", 300, 400),
		treeGene("C", 500, 600),
	})

	assert.Len(t, tree.FindOverlaps(150), 1)
	assert.Empty(t, tree.FindOverlaps(250))
	assert.Empty(t, tree.FindOverlaps(700))
}
