package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// configKeys lists the settings understood by vibe-gff.
var configKeys = map[string]string{
	"min_line_length": "int",
	"skip_unresolved": "bool",
	"verbose":         "bool",
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage vibe-gff configuration",
		Long:  "Show, get, or set configuration values. Config is stored in ~/.vibe-gff.yaml.",
		Example: `  vibe-gff config                          # show all config
  vibe-gff config set skip_unresolved true  # drop orphan lines
  vibe-gff config get min_line_length       # get a value`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd.OutOrStdout())
		},
	}

	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigGetCmd())

	return cmd
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSet(cmd.OutOrStdout(), args[0], args[1])
		},
	}
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigGet(cmd.OutOrStdout(), args[0])
		},
	}
}

func runConfigShow(w io.Writer) error {
	settings := make(map[string]any, len(configKeys))
	for key := range configKeys {
		settings[key] = viper.Get(key)
	}

	out, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if cfg := viper.ConfigFileUsed(); cfg != "" {
		fmt.Fprintf(w, "# Config file: %s\n", cfg)
	}
	fmt.Fprint(w, string(out))
	return nil
}

// parseConfigValue converts value to the type registered for key.
func parseConfigValue(key, value string) (any, error) {
	kind, ok := configKeys[key]
	if !ok {
		known := make([]string, 0, len(configKeys))
		for k := range configKeys {
			known = append(known, k)
		}
		sort.Strings(known)
		return nil, fmt.Errorf("unknown config key %q (known: %v)", key, known)
	}

	switch kind {
	case "bool":
		switch value {
		case "true", "yes", "on":
			return true, nil
		case "false", "no", "off":
			return false, nil
		}
		return nil, fmt.Errorf("invalid boolean %q for %s", value, key)
	case "int":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid count %q for %s", value, key)
		}
		return n, nil
	}
	return value, nil
}

func runConfigSet(w io.Writer, key, value string) error {
	v, err := parseConfigValue(key, value)
	if err != nil {
		return &usageError{err}
	}
	viper.Set(key, v)

	// Ensure config file exists
	cfgFile := viper.ConfigFileUsed()
	if cfgFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot determine home directory: %w", err)
		}
		cfgFile = filepath.Join(home, ".vibe-gff.yaml")
	}

	if err := viper.WriteConfigAs(cfgFile); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Fprintf(w, "Set %s = %v in %s\n", key, v, cfgFile)
	return nil
}

func runConfigGet(w io.Writer, key string) error {
	if _, ok := configKeys[key]; !ok {
		return &usageError{fmt.Errorf("unknown config key %q", key)}
	}
	fmt.Fprintln(w, viper.Get(key))
	return nil
}
