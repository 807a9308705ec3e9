package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/notemark"
	"github.com/tsawler/notemark/internal/config"
	"github.com/tsawler/notemark/model"
	"github.com/tsawler/notemark/source"
)

// stdinArg reads the block file from standard input.
const stdinArg = "-"

func (a *app) newRenderCmd() *cobra.Command {
	var (
		types   []string
		outFile string
	)

	cmd := &cobra.Command{
		Use:   "render [file...]",
		Short: "Render block files",
		Long: `Render editor save files (.json), YAML block lists (.yaml) or plain
note text. Several files are rendered concurrently and written in argument
order. With no file, or "-", input is read from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRender(cmd, args, types, outFile)
		},
	}

	f := cmd.Flags()
	f.StringP(config.KeyOutput, "f", config.OutputHTML, "Output format (html|text|markdown)")
	f.StringP(config.KeyBlockType, "t", string(model.BlockRule), "Block type of plain text input")
	f.IntP(config.KeyWorkers, "j", 0, "Files rendered concurrently [default: number of CPUs]")
	f.Bool(config.KeyVocabulary, false, "Append the vocabulary block with dictionary links")
	f.String(config.KeyVocabularyHeading, "", "Heading of the vocabulary block")
	f.Duration(config.KeySpeakerCacheTTL, 0, "How long speaker colours stay cached")
	f.StringSliceVar(&types, "types", nil, "Render only these block types")
	f.StringVarP(&outFile, "out", "o", "", "Write to this file instead of stdout")

	a.bindFlags(cmd,
		config.KeyOutput,
		config.KeyBlockType,
		config.KeyVocabulary,
		config.KeyVocabularyHeading,
	)
	// Zero values mean "not given" and must not shadow the defaults.
	cmd.PreRunE = func(cmd *cobra.Command, _ []string) error {
		if cmd.Flags().Changed(config.KeyWorkers) {
			a.cfg.Workers, _ = cmd.Flags().GetInt(config.KeyWorkers)
		}
		if cmd.Flags().Changed(config.KeySpeakerCacheTTL) {
			a.cfg.SpeakerCacheTTL, _ = cmd.Flags().GetDuration(config.KeySpeakerCacheTTL)
		}
		return a.cfg.Validate()
	}

	return cmd
}

func (a *app) runRender(cmd *cobra.Command, args, types []string, outFile string) error {
	blockTypes, err := parseTypes(types)
	if err != nil {
		return err
	}

	inputs := args
	if len(inputs) == 0 {
		inputs = []string{stdinArg}
	}

	results := make([]string, len(inputs))
	eg, ctx := errgroup.WithContext(cmd.Context())
	eg.SetLimit(a.cfg.Workers)

	for i, in := range inputs {
		i, in := i, in // per-iteration copies; the module targets go1.21 loop semantics
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			out, err := a.renderOne(cmd, in, blockTypes)
			if err != nil {
				return fmt.Errorf("%s: %w", in, err)
			}
			results[i] = out
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if outFile != "" {
		file, err := os.Create(outFile)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer file.Close()
		w = file
	}

	if _, err := io.WriteString(w, strings.Join(results, "\n")+"\n"); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	a.log.Info("Rendered", "files", len(inputs), "output", a.cfg.Output)
	return nil
}

func (a *app) renderOne(cmd *cobra.Command, in string, types []model.BlockType) (string, error) {
	c, err := a.composer(cmd, in)
	if err != nil {
		return "", err
	}
	c = c.Types(types...)

	var (
		out      string
		warnings []notemark.Warning
	)
	switch a.cfg.Output {
	case config.OutputText:
		out, warnings, err = c.Text()
	case config.OutputMarkdown:
		out, warnings, err = c.Markdown()
	default:
		out, warnings, err = c.HTML()
	}
	if err != nil {
		return "", err
	}

	for _, w := range warnings {
		a.log.Warn(w.Message, "file", in, "block", w.Block)
	}
	return out, nil
}

// composer opens one input with the resolved settings applied.
func (a *app) composer(cmd *cobra.Command, in string) (*notemark.Composer, error) {
	var c *notemark.Composer
	if in == stdinArg {
		doc, err := source.Read(cmd.InOrStdin(), source.Options{BlockType: a.cfg.BlockType})
		if err != nil {
			return nil, err
		}
		c = notemark.FromDocument(doc)
	} else {
		c = notemark.Open(in).BlockType(a.cfg.BlockType)
	}

	c = c.Palettes(a.palettes)
	if a.cfg.Vocabulary {
		c = c.WithVocabulary(a.cfg.VocabularyHeading)
	}
	return c, nil
}

func parseTypes(names []string) ([]model.BlockType, error) {
	types := make([]model.BlockType, 0, len(names))
	for _, name := range names {
		bt := model.ParseBlockType(strings.TrimSpace(name))
		if !bt.Known() {
			return nil, fmt.Errorf("unknown block type %q", name)
		}
		types = append(types, bt)
	}
	return types, nil
}
