package gff

import "strings"

// Chromosome holds the genes and transcripts of one contiguous run of
// lines sharing a sequence name.
type Chromosome struct {
	Name  string
	SeqID int
	Genes []*Gene

	genes       map[string]*Gene
	transcripts *StrandIndex
	tree        *GeneTree // built on first overlap query
}

func newChromosome(name string, seqID int) *Chromosome {
	return &Chromosome{
		Name:        name,
		SeqID:       seqID,
		genes:       make(map[string]*Gene),
		transcripts: newStrandIndex(),
	}
}

func (c *Chromosome) addGene(g *Gene) {
	c.Genes = append(c.Genes, g)
	c.genes[g.ID] = g
	c.tree = nil
}

// Gene returns the gene with the given id, or nil.
func (c *Chromosome) Gene(id string) *Gene {
	return c.genes[id]
}

// Transcript returns the transcript with the given id on strand, or nil.
func (c *Chromosome) Transcript(id string, strand Strand) *Transcript {
	return c.transcripts.Find(id, strand)
}

// Transcripts returns the chromosome's transcripts on strand.
func (c *Chromosome) Transcripts(strand Strand) []*Transcript {
	return c.transcripts.Strand(strand)
}

// TranscriptCount returns the number of transcripts on all strands.
func (c *Chromosome) TranscriptCount() int {
	return c.transcripts.Len()
}

// FindGenes returns the genes whose interval contains pos.
func (c *Chromosome) FindGenes(pos uint64) []*Gene {
	if c.tree == nil {
		c.tree = BuildGeneTree(c.Genes)
	}
	return c.tree.FindOverlaps(pos)
}

// Forest is the result of a parsing run: one Chromosome per contiguous
// run of sequence names, in input order.
type Forest struct {
	seqs   *SeqTable
	chroms []*Chromosome
}

func newForest(seqs *SeqTable) *Forest {
	return &Forest{seqs: seqs}
}

// SeqNames returns the sequence name table shared by all intervals.
func (f *Forest) SeqNames() *SeqTable {
	return f.seqs
}

// Chromosomes returns all chromosome containers in input order.
func (f *Forest) Chromosomes() []*Chromosome {
	return f.chroms
}

// Chromosome returns the first container for name. Names are matched
// case-insensitively.
func (f *Forest) Chromosome(name string) *Chromosome {
	name = strings.ToLower(name)
	for _, c := range f.chroms {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Gene returns the gene with id on chrom, or nil.
func (f *Forest) Gene(chrom, id string) *Gene {
	if c := f.Chromosome(chrom); c != nil {
		return c.Gene(id)
	}
	return nil
}

// Transcript returns the transcript with id and strand on chrom, or nil.
func (f *Forest) Transcript(chrom, id string, strand Strand) *Transcript {
	if c := f.Chromosome(chrom); c != nil {
		return c.Transcript(id, strand)
	}
	return nil
}

// FindGenes returns the genes on chrom whose interval contains pos.
func (f *Forest) FindGenes(chrom string, pos uint64) []*Gene {
	if c := f.Chromosome(chrom); c != nil {
		return c.FindGenes(pos)
	}
	return nil
}

// GeneCount returns the total number of genes.
func (f *Forest) GeneCount() int {
	n := 0
	for _, c := range f.chroms {
		n += len(c.Genes)
	}
	return n
}

// TranscriptCount returns the total number of transcripts.
func (f *Forest) TranscriptCount() int {
	n := 0
	for _, c := range f.chroms {
		n += c.TranscriptCount()
	}
	return n
}

// reverseMinusStrandExons puts the exons of minus-strand transcripts in
// 5'->3' reading order. Gene exon lists stay in coordinate order.
func (f *Forest) reverseMinusStrandExons() {
	for _, c := range f.chroms {
		for _, t := range c.Transcripts(StrandMinus) {
			for i, j := 0, len(t.Exons)-1; i < j; i, j = i+1, j-1 {
				t.Exons[i], t.Exons[j] = t.Exons[j], t.Exons[i]
			}
		}
	}
}
