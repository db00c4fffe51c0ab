// plaingen generates the plain-string codec surface for enum types. Given a
// defined integer- or string-backed type and its package-level constants, it
// writes MarshalText, UnmarshalText, String, Set, Type and a Parse
// constructor wired to github.com/plainkit/plain.
//
// Usage:
//
//	plaingen generate --type=Level --rename=lowercase --trimprefix=Level ./...
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/plainkit/plain/internal/codegen"
	"github.com/plainkit/plain/internal/version"
)

//go:generate go install

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "plaingen",
		Short:        "generate plain-string codecs for enum types",
		SilenceUsage: true,
	}
	root.AddCommand(generateCmd(), versionCmd())
	return root
}

func generateCmd() *cobra.Command {
	var (
		typeList   string
		rename     string
		trimPrefix string
		output     string
		verbose    bool
	)
	cmd := &cobra.Command{
		Use:   "generate [packages]",
		Short: "write the generated codec file for each matched package",
		Long: `Generate locates the named types in the packages matching the given
patterns (default ".") and writes one file per package with their text codec
surface. Settings omitted on the command line come from the package's
plain.toml, if any.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
				ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
					if len(groups) == 0 && a.Key == slog.TimeKey {
						a.Value = slog.StringValue(a.Value.Time().Format(time.DateTime))
					}
					return a
				},
			}))

			opts := codegen.Options{
				Rename:     rename,
				TrimPrefix: trimPrefix,
				Output:     output,
				Logger:     logger,
			}
			for _, t := range strings.Split(typeList, ",") {
				if t = strings.TrimSpace(t); t != "" {
					opts.Types = append(opts.Types, t)
				}
			}
			return codegen.Generate(".", args, opts)
		},
	}
	cmd.Flags().StringVar(&typeList, "type", "", "comma-separated enum type names; defaults to the [types] sections of plain.toml")
	cmd.Flags().StringVar(&rename, "rename", "", "rename policy for variant names (none, lowercase, UPPERCASE, PascalCase, camelCase, snake_case, SCREAMING_SNAKE_CASE, kebab-case, SCREAMING-KEBAB-CASE)")
	cmd.Flags().StringVar(&trimPrefix, "trimprefix", "", "prefix stripped from constant names before renaming")
	cmd.Flags().StringVar(&output, "output", "", `generated file name (default "plain_gen.go")`)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log generation progress")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the plaingen version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "plaingen %s %s/%s\n", version.ToolVersion, runtime.GOOS, runtime.GOARCH)
		},
	}
}
