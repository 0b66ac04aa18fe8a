// Package duckdb persists a built gene/transcript/exon hierarchy to DuckDB.
package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"os"
	"path/filepath"
	"time"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/inodb/vibe-gff/internal/gff"
)

// Store manages a DuckDB connection holding exported hierarchies.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates a DuckDB database at the given path.
// Use an empty string for an in-memory database.
func Open(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for direct access.
func (s *Store) DB() *sql.DB {
	return s.db
}

// ensureSchema creates tables if they don't exist.
func (s *Store) ensureSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS sources (
			source_id BIGINT PRIMARY KEY,
			path VARCHAR,
			size BIGINT,
			modtime TIMESTAMP,
			compressed BOOLEAN,
			loaded_at TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS genes (
			source_id BIGINT,
			chrom VARCHAR,
			chrom_index BIGINT,
			gene_id VARCHAR,
			name VARCHAR,
			source VARCHAR,
			start BIGINT,
			end_ BIGINT,
			strand VARCHAR,
			score DOUBLE
		)`,
		`CREATE TABLE IF NOT EXISTS transcripts (
			source_id BIGINT,
			chrom VARCHAR,
			chrom_index BIGINT,
			transcript_id VARCHAR,
			gene_id VARCHAR,
			name VARCHAR,
			source VARCHAR,
			start BIGINT,
			end_ BIGINT,
			strand VARCHAR,
			cds_start BIGINT,
			cds_end BIGINT
		)`,
		`CREATE TABLE IF NOT EXISTS exons (
			exon_key BIGINT PRIMARY KEY,
			source_id BIGINT,
			chrom VARCHAR,
			chrom_index BIGINT,
			gene_id VARCHAR,
			exon_id VARCHAR,
			start BIGINT,
			end_ BIGINT,
			strand VARCHAR,
			n_transcripts BIGINT
		)`,
		`CREATE TABLE IF NOT EXISTS transcript_exons (
			source_id BIGINT,
			chrom_index BIGINT,
			transcript_id VARCHAR,
			strand VARCHAR,
			exon_rank BIGINT,
			exon_key BIGINT
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Clear removes all exported rows.
func (s *Store) Clear() error {
	for _, table := range []string{"sources", "genes", "transcripts", "exons", "transcript_exons"} {
		if _, err := s.db.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}

// WriteSource records the input file a forest was built from and returns
// the source id that WriteForest rows are tagged with.
func (s *Store) WriteSource(fp FileFingerprint) (int64, error) {
	var id int64
	if err := s.db.QueryRow(`SELECT COALESCE(MAX(source_id) + 1, 0) FROM sources`).Scan(&id); err != nil {
		return 0, fmt.Errorf("query source ids: %w", err)
	}
	_, err := s.db.Exec(`INSERT INTO sources VALUES (?, ?, ?, ?, ?, ?)`,
		id, fp.Path, fp.Size, fp.ModTime.UTC(), fp.Compressed, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("insert source: %w", err)
	}
	return id, nil
}

// WriteForest batch-inserts every gene, transcript, and distinct exon of f
// under sourceID using the Appender API. Each exon shared by several
// transcripts is written once and linked through transcript_exons.
// Chromosome indexes count from 0 within a source.
func (s *Store) WriteForest(sourceID int64, f *gff.Forest) error {
	var nextKey int64
	if err := s.db.QueryRow(`SELECT COALESCE(MAX(exon_key) + 1, 0) FROM exons`).Scan(&nextKey); err != nil {
		return fmt.Errorf("query exon keys: %w", err)
	}

	exonKeys := make(map[*gff.Exon]int64)

	err := s.withAppender("genes", func(a *goduckdb.Appender) error {
		for ci, c := range f.Chromosomes() {
			for _, g := range c.Genes {
				iv := g.Interval
				if err := a.AppendRow(sourceID, c.Name, int64(ci), g.ID, g.Name, g.Source,
					int64(iv.Start), int64(iv.End), iv.Strand.String(), g.Score); err != nil {
					return fmt.Errorf("append gene %s: %w", g.ID, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	err = s.withAppender("exons", func(a *goduckdb.Appender) error {
		for ci, c := range f.Chromosomes() {
			for _, g := range c.Genes {
				for _, e := range g.Exons {
					key := nextKey
					nextKey++
					exonKeys[e] = key
					iv := e.Interval
					if err := a.AppendRow(key, sourceID, c.Name, int64(ci), g.ID, e.ID,
						int64(iv.Start), int64(iv.End), iv.Strand.String(),
						int64(len(e.Transcripts))); err != nil {
						return fmt.Errorf("append exon %d-%d: %w", iv.Start, iv.End, err)
					}
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	err = s.withAppender("transcripts", func(a *goduckdb.Appender) error {
		for ci, c := range f.Chromosomes() {
			for _, g := range c.Genes {
				for _, t := range g.Transcripts {
					iv := t.Interval
					if err := a.AppendRow(sourceID, c.Name, int64(ci), t.ID, g.ID, t.Name, t.Source,
						int64(iv.Start), int64(iv.End), iv.Strand.String(),
						int64(t.CDSStart), int64(t.CDSEnd)); err != nil {
						return fmt.Errorf("append transcript %s: %w", t.ID, err)
					}
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	return s.withAppender("transcript_exons", func(a *goduckdb.Appender) error {
		for ci, c := range f.Chromosomes() {
			for _, g := range c.Genes {
				for _, t := range g.Transcripts {
					for rank, e := range t.Exons {
						if err := a.AppendRow(sourceID, int64(ci), t.ID, t.Interval.Strand.String(),
							int64(rank+1), exonKeys[e]); err != nil {
							return fmt.Errorf("append exon link for %s: %w", t.ID, err)
						}
					}
				}
			}
		}
		return nil
	})
}

// withAppender runs fn with an appender on table and flushes it.
func (s *Store) withAppender(table string, fn func(*goduckdb.Appender) error) error {
	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", table)
		return err
	}); err != nil {
		return fmt.Errorf("create %s appender: %w", table, err)
	}
	defer appender.Close()

	if err := fn(appender); err != nil {
		return err
	}
	return appender.Flush()
}
