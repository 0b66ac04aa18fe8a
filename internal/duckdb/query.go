package duckdb

import "fmt"

// Counts summarizes the rows held by a store.
type Counts struct {
	Genes       int64
	Transcripts int64
	Exons       int64
	SharedExons int64
	ExonLinks   int64
}

// Counts returns the number of exported genes, transcripts, and exons.
func (s *Store) Counts() (Counts, error) {
	var c Counts
	err := s.db.QueryRow(`SELECT
		(SELECT COUNT(*) FROM genes),
		(SELECT COUNT(*) FROM transcripts),
		(SELECT COUNT(*) FROM exons),
		(SELECT COUNT(*) FROM exons WHERE n_transcripts > 1),
		(SELECT COUNT(*) FROM transcript_exons)`).
		Scan(&c.Genes, &c.Transcripts, &c.Exons, &c.SharedExons, &c.ExonLinks)
	if err != nil {
		return Counts{}, fmt.Errorf("count rows: %w", err)
	}
	return c, nil
}

// ExonRow is one exon of a transcript as stored in DuckDB.
type ExonRow struct {
	Rank         int64
	ExonKey      int64
	ExonID       string
	Start        int64
	End          int64
	NTranscripts int64
}

// TranscriptExons returns the exons of a transcript exported under
// sourceID, in rank order.
func (s *Store) TranscriptExons(sourceID int64, transcriptID string) ([]ExonRow, error) {
	rows, err := s.db.Query(`SELECT te.exon_rank, e.exon_key, e.exon_id, e.start, e.end_, e.n_transcripts
		FROM transcript_exons te
		JOIN exons e ON e.exon_key = te.exon_key
		WHERE te.source_id = ? AND te.transcript_id = ?
		ORDER BY te.chrom_index, te.exon_rank`, sourceID, transcriptID)
	if err != nil {
		return nil, fmt.Errorf("query transcript exons: %w", err)
	}
	defer rows.Close()

	var result []ExonRow
	for rows.Next() {
		var r ExonRow
		if err := rows.Scan(&r.Rank, &r.ExonKey, &r.ExonID, &r.Start, &r.End, &r.NTranscripts); err != nil {
			return nil, fmt.Errorf("scan exon: %w", err)
		}
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exons: %w", err)
	}
	return result, nil
}

// SourceCount returns the number of recorded input files.
func (s *Store) SourceCount() (int64, error) {
	var n int64
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM sources`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count sources: %w", err)
	}
	return n, nil
}

// FindSource returns the id of a recorded source with the same
// fingerprint as fp.
func (s *Store) FindSource(fp FileFingerprint) (int64, bool, error) {
	rows, err := s.db.Query(`SELECT source_id, path, size, modtime FROM sources WHERE path = ?`, fp.Path)
	if err != nil {
		return 0, false, fmt.Errorf("query sources: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id  int64
			rec FileFingerprint
		)
		if err := rows.Scan(&id, &rec.Path, &rec.Size, &rec.ModTime); err != nil {
			return 0, false, fmt.Errorf("scan source: %w", err)
		}
		if fp.Same(rec) {
			return id, true, nil
		}
	}
	if err := rows.Err(); err != nil {
		return 0, false, fmt.Errorf("iterate sources: %w", err)
	}
	return 0, false, nil
}
