// Package cmd implements the reference CLI host: a root/run/lex/parse/
// version Cobra command tree wired onto this language's own
// lexer/parser/pkg-lumen pipeline.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "lumen",
	Short: "Lumen script interpreter",
	Long: `lumen runs programs written in Lumen, a statically-typed,
class-based scripting language.

It supports classes, interfaces, enums, structural typing, match
expressions, and a small set of native modules (uuid, json, yaml, sql,
bits) hosted by this binary.`,
	Version: Version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
