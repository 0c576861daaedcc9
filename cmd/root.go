package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/abhisek/questiontag/internal/questiontag"
	"github.com/abhisek/questiontag/internal/render"
	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "questiontag",
		Short: "Extract a generated question record from tagged text",
		Long: `Reads text containing a <Generated Question>{{ ... }} block and prints
the parsed record (question, type, options, answer, subfield, academic level,
difficulty).

Input is read from stdin unless --input is given.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         runParse,
	}

	c.Flags().String("tag", "", "Tag name wrapping the payload (overrides QUESTIONTAG_TAG env var)")
	c.Flags().StringP("input", "i", "", "Read from file instead of stdin")
	c.Flags().StringP("format", "f", "", "Output format: json or text (overrides QUESTIONTAG_FORMAT env var)")
	c.Flags().Bool("strict", false, "Fail when the record is incomplete or malformed")
	c.Flags().BoolP("verbose", "v", false, "Print parse diagnostics to stderr")

	c.AddCommand(newSchemaCmd())
	c.AddCommand(newVersionCmd())
	return c
}

func Execute() error {
	return rootCmd.Execute()
}

// resolveConfig applies flags over env vars over defaults.
func resolveConfig(cmd *cobra.Command) (questiontag.Config, error) {
	cfg := questiontag.ConfigFromEnv()
	if t, _ := cmd.Flags().GetString("tag"); t != "" {
		cfg.Tag = t
	}
	if f, _ := cmd.Flags().GetString("format"); f != "" {
		cfg.Format = strings.ToLower(f)
	}
	return cfg, cfg.Validate()
}

func readInput(cmd *cobra.Command) (string, error) {
	if path, _ := cmd.Flags().GetString("input"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read input file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	strict, _ := cmd.Flags().GetBool("strict")
	verbose, _ := cmd.Flags().GetBool("verbose")

	text, err := readInput(cmd)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	q := questiontag.Empty()
	payload, found := questiontag.Extract(text, cfg.Tag)
	if !found {
		fmt.Fprintf(stderr, "warning: no <%s>{{ ... }} block found in input\n", cfg.Tag)
	} else {
		doc := questiontag.ParseDocument(payload)
		if verbose {
			printDiagnostics(stderr, cfg.Tag, doc)
		}
		q = doc.Question()
	}

	if strict {
		if err := questiontag.Check(&q, questiontag.DefaultValidators()); err != nil {
			return fmt.Errorf("strict check: %w", err)
		}
		if err := q.Validate(); err != nil {
			return fmt.Errorf("strict check: %w", err)
		}
	}

	return render.Write(cmd.OutOrStdout(), q, cfg.Format)
}

func printDiagnostics(w io.Writer, tag string, doc *questiontag.Document) {
	fmt.Fprintf(w, "tag: %s\n", tag)
	if len(doc.Headers) > 0 {
		names := make([]string, 0, len(doc.Headers))
		for name := range doc.Headers {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Fprintf(w, "headers: %s\n", strings.Join(names, ", "))
	}
	for _, key := range doc.Order {
		fmt.Fprintf(w, "section %-16s %d line(s)\n", key, len(doc.Sections[key]))
	}
}
