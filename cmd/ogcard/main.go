package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"ogcard/internal/card"
)

var appVersion = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "ogcard",
		Short:        "ogcard – social card generator",
		Long:         "ogcard renders 1200x630 Open Graph cards as SVG documents.",
		Version:      appVersion,
		SilenceUsage: true,
	}
	root.AddCommand(newRenderCmd(), newBatchCmd(), newThemesCmd(), newLayoutsCmd())
	return root
}

type renderOptions struct {
	title    string
	subtitle string
	author   string
	domain   string
	theme    string
	layout   string
	emoji    string
	date     string
	out      string
}

func (o renderOptions) params() card.MapParams {
	return card.MapParams{
		card.ParamTitle:    o.title,
		card.ParamSubtitle: o.subtitle,
		card.ParamAuthor:   o.author,
		card.ParamDomain:   o.domain,
		card.ParamTheme:    o.theme,
		card.ParamLayout:   o.layout,
		card.ParamEmoji:    o.emoji,
		card.ParamDate:     o.date,
	}
}

func newRenderCmd() *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a card to stdout or a file",
		Long:  "Render a card from the given fields. Empty or unknown theme and layout values fall back to the defaults.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := card.Render(card.Resolve(opts.params()))
			if opts.out == "" || opts.out == "-" {
				_, err := io.WriteString(cmd.OutOrStdout(), doc)
				return err
			}
			if err := atomic.WriteFile(opts.out, strings.NewReader(doc)); err != nil {
				return fmt.Errorf("write %s: %w", opts.out, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d bytes)\n", opts.out, len(doc))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.title, "title", "", "Main heading (default \""+card.DefaultTitle+"\")")
	flags.StringVar(&opts.subtitle, "subtitle", "", "Secondary line")
	flags.StringVar(&opts.author, "author", "", "Author name")
	flags.StringVar(&opts.domain, "domain", "", "Site name, e.g. example.com")
	flags.StringVar(&opts.theme, "theme", string(card.DefaultTheme), "Colour theme")
	flags.StringVar(&opts.layout, "layout", string(card.DefaultLayout), "Layout")
	flags.StringVar(&opts.emoji, "emoji", "", "Decorative glyph")
	flags.StringVar(&opts.date, "date", "", "Date label")
	flags.StringVarP(&opts.out, "out", "o", "", "Output file; stdout when empty or -")
	return cmd
}

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, theme := range card.Themes() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-10s %-10s accent %s\n", theme.ID, theme.Label, theme.Accent); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newLayoutsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layouts",
		Short: "List available layouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, info := range card.Layouts() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", info.ID, info.Description); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
