package main

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/inodb/vibe-gff/internal/gff"
)

// loadForest parses the GFF file at path using the configured builder settings.
func loadForest(path string, logger *zap.Logger) (*gff.Forest, gff.Stats, error) {
	r, err := gff.Open(path)
	if err != nil {
		return nil, gff.Stats{}, err
	}
	defer r.Close()

	b := gff.NewBuilder()
	b.SetLogger(logger)
	if n := viper.GetInt("min_line_length"); n > 0 {
		b.SetMinLineLength(n)
	}
	b.SetSkipUnresolved(viper.GetBool("skip_unresolved"))

	logger.Debug("parsing GFF", zap.String("path", path))
	f, err := b.Build(r)
	if err != nil {
		return nil, b.Stats(), fmt.Errorf("build hierarchy from %s: %w", path, err)
	}

	s := b.Stats()
	logger.Debug("parsed GFF",
		zap.Int("lines", s.Lines),
		zap.Int("genes", s.Genes),
		zap.Int("transcripts", s.Transcripts),
		zap.Int("exons", s.Exons))
	return f, s, nil
}

// withLogger runs fn with a freshly built logger and syncs it afterwards.
func withLogger(fn func(*zap.Logger) error) error {
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()
	return fn(logger)
}
