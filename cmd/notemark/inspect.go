package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/tsawler/notemark/format"
	"github.com/tsawler/notemark/htmldoc"
)

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))

func (a *app) newInspectCmd() *cobra.Command {
	var outline bool

	cmd := &cobra.Command{
		Use:   "inspect <file...>",
		Short: "Summarize block files or rendered fragments",
		Long: `Summarize what a block file renders to: block types, headers,
tables, examples and dialogue speakers. Rendered .html fragments are read
back directly. With --outline every element is listed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, in := range args {
				if err := a.inspectOne(cmd, w, in, outline); err != nil {
					return fmt.Errorf("%s: %w", in, err)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&outline, "outline", false, "List every element")

	return cmd
}

func (a *app) inspectOne(cmd *cobra.Command, w io.Writer, in string, outline bool) error {
	fmt.Fprintln(w, titleStyle.Render(in))

	if format.Detect(in) == format.HTML {
		r, err := htmldoc.Open(in)
		if err != nil {
			return err
		}
		writeOutline(w, r.Elements())
		return nil
	}

	c, err := a.composer(cmd, in)
	if err != nil {
		return err
	}

	if outline {
		els, _, err := c.Outline()
		if err != nil {
			return err
		}
		writeOutline(w, els)
		return nil
	}

	sum, warnings, err := c.Analyze()
	if err != nil {
		return err
	}

	for _, bt := range sum.BlockTypes() {
		fmt.Fprintf(w, "  %-14s %d\n", bt, sum.Blocks[bt])
	}
	fmt.Fprintf(w, "  tables         %d\n", sum.Tables)
	fmt.Fprintf(w, "  examples       %d\n", sum.Examples)
	fmt.Fprintf(w, "  dialogue lines %d\n", sum.Dialogue)
	fmt.Fprintf(w, "  vocabulary     %d\n", sum.Vocabulary)
	if len(sum.Headers) > 0 {
		fmt.Fprintf(w, "  headers        %s\n", strings.Join(sum.Headers, ", "))
	}
	if len(sum.Speakers) > 0 {
		fmt.Fprintf(w, "  speakers       %s\n", strings.Join(sum.Speakers, ", "))
	}
	for _, warn := range warnings {
		fmt.Fprintf(w, "  warning        %s\n", warn)
	}
	return nil
}

func writeOutline(w io.Writer, elements []htmldoc.Element) {
	for _, el := range elements {
		text := el.Text
		switch el.Type {
		case htmldoc.ElementDialogue:
			text = fmt.Sprintf("%s (%s): %s", el.Speaker, el.Side, el.Text)
		case htmldoc.ElementExamples:
			text = strings.Join(el.Items, " / ")
		case htmldoc.ElementTable:
			text = fmt.Sprintf("%d rows", len(el.Table.Rows))
			if el.Table.Caption != "" {
				text = el.Table.Caption + ", " + text
			}
		}
		fmt.Fprintf(w, "  %-10s %-10s %s\n", el.Type, el.Block, strings.ReplaceAll(text, "\n", " "))
	}
}
