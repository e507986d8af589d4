package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"motioncraft/api/internal/analysis"
	"motioncraft/api/internal/util"
)

func newTextCmd(opts *options) *cobra.Command {
	var (
		name string
		file string
	)
	cmd := &cobra.Command{
		Use:   "text [TEXT...]",
		Short: "Analyze competitor marketing text",
		Example: `  motioncraft text --name Acme "We build 3D animation for startups."
  motioncraft text --file about.txt
  cat about.txt | motioncraft text -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd.InOrStdin(), file, args)
			if err != nil {
				return err
			}
			a, err := opts.load(cmd.ErrOrStderr(), "cli")
			if err != nil {
				return err
			}

			stop := startSpinner(cmd.ErrOrStderr(), "Analyzing text with "+a.Analyzer.LLMName())
			out, err := a.Analyzer.Text.Run(cmd.Context(), analysis.TextRequest{Text: text, CompetitorName: name})
			stop()
			if err != nil {
				return err
			}

			if opts.jsonOut {
				return printJSON(cmd.OutOrStdout(), out)
			}
			printTitle(cmd.OutOrStdout(), name)
			printScores(cmd.OutOrStdout(), out.Scores())
			printList(cmd.OutOrStdout(), "Strengths", out.Strengths)
			printList(cmd.OutOrStdout(), "Weaknesses", out.Weaknesses)
			printSection(cmd.OutOrStdout(), "Style Analysis", out.StyleAnalysis)
			printList(cmd.OutOrStdout(), "Recommendations", out.ImprovementRecommendations)
			printSection(cmd.OutOrStdout(), "Summary", out.Summary)
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "competitor name")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read text from file")
	return cmd
}

func newImageCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "image FILE",
		Short: "OCR a competitor screenshot and analyze its visual style",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			if m := util.SniffMime(img); !util.IsAnalyzable(m) {
				return fmt.Errorf("%s: unsupported content type %s", args[0], m)
			}
			a, err := opts.load(cmd.ErrOrStderr(), "cli")
			if err != nil {
				return err
			}

			stop := startSpinner(cmd.ErrOrStderr(), "Recognizing text and analyzing with "+a.Analyzer.LLMName())
			out, err := a.Analyzer.Image.Run(cmd.Context(), analysis.ImageRequest{Image: img})
			stop()
			if err != nil {
				return err
			}

			if opts.jsonOut {
				return printJSON(cmd.OutOrStdout(), out)
			}
			printSection(cmd.OutOrStdout(), "Description", out.Description)
			printScores(cmd.OutOrStdout(), out.Scores())
			printSection(cmd.OutOrStdout(), "Visual Style Analysis", out.VisualStyleAnalysis)
			printList(cmd.OutOrStdout(), "Recommendations", out.Recommendations)
			return nil
		},
	}
}

// readText: --file, "-" (stdin) или аргументы через пробел.
func readText(stdin io.Reader, file string, args []string) (string, error) {
	var text string
	switch {
	case file != "":
		b, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}
		text = string(b)
	case len(args) == 1 && args[0] == "-":
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", err
		}
		text = string(b)
	default:
		text = strings.Join(args, " ")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.New("no text given: pass it as arguments, --file or - for stdin")
	}
	return text, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
