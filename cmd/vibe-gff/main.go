// Package main provides the vibe-gff command-line tool.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitError   = 1
	ExitUsage   = 2
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			return ExitUsage
		}
		return ExitError
	}
	return ExitSuccess
}

// usageError marks errors caused by bad command-line input.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "vibe-gff",
		Short: "Build gene/transcript/exon hierarchies from GFF3 annotations",
		Long: `vibe-gff parses GFF3 feature lines into a gene -> transcript -> exon
hierarchy, collapsing exons shared by alternative isoforms of a gene.`,
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cfgFile)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default: ~/.vibe-gff.yaml)")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
	flags.Int("min-line-length", 10, "Lines shorter than this are skipped as blank")
	flags.Bool("skip-unresolved", false, "Drop lines whose parent is missing instead of failing")

	viper.BindPFlag("verbose", flags.Lookup("verbose"))
	viper.BindPFlag("min_line_length", flags.Lookup("min-line-length"))
	viper.BindPFlag("skip_unresolved", flags.Lookup("skip-unresolved"))

	cmd.AddCommand(newSummaryCmd())
	cmd.AddCommand(newExonsCmd())
	cmd.AddCommand(newGenesCmd())
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// initConfig reads the config file and environment overrides.
func initConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.SetConfigFile(filepath.Join(home, ".vibe-gff.yaml"))
	}

	viper.SetEnvPrefix("VIBE_GFF")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// newLogger builds the stderr logger that receives parse warnings.
func newLogger() (*zap.Logger, error) {
	level := zapcore.WarnLevel
	if viper.GetBool("verbose") {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.Sampling = nil
	return cfg.Build()
}
