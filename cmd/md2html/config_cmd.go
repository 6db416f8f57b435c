package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/alnah/go-md2html/internal/yamlutil"
	flag "github.com/spf13/pflag"
)

// runConfigCmd prints the configuration a convert run would use, after the
// config file, environment variables and convert flags are layered.
func runConfigCmd(args []string, env *Environment) error {
	flags, _, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := resolveConfig(flags, loadEnvConfig())
	if err != nil {
		return err
	}

	out, err := yamlutil.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = env.Stdout.Write(out)
	return err
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the effective configuration as YAML.")
	fmt.Fprintln(w, "Accepts the same flags as convert, so overrides can be checked:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  md2html config -c report --engine gfm")
}
