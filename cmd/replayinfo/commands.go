package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/chazu/replayinfo/catalog"
	"github.com/chazu/replayinfo/games"
	"github.com/chazu/replayinfo/plugin"
)

// =============================================================================
// detect
// =============================================================================

func newDetectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "detect FILE...",
		Short: "Identify the game of each file by its signature",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, path := range args {
				header, err := readHeader(path)
				if err != nil {
					fmt.Fprintf(out, "%s\terror: %v\n", path, err)
					continue
				}
				if g, ok := games.Detect(header); ok {
					fmt.Fprintf(out, "%s\t%s\t%s\n", path, g.ID, g.Title)
				} else {
					fmt.Fprintf(out, "%s\tunsupported\n", path)
				}
			}
			return nil
		},
	}
}

func readHeader(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	buf := make([]byte, games.SignatureSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	return buf[:n], nil
}

// =============================================================================
// columns
// =============================================================================

func newColumnsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "columns GAME",
		Short: "List the columns a game exposes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.plugin(games.ID(args[0]), "")
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, c := range p.Columns() {
				fmt.Fprintf(w, "%s\t%s\n", c.ShortName(), c.LongName())
			}
			return w.Flush()
		},
	}
}

// =============================================================================
// extract
// =============================================================================

func newExtractCmd(a *app) *cobra.Command {
	var gameID, format string
	cmd := &cobra.Command{
		Use:   "extract --game GAME BLOCK",
		Short: "Print the metadata of an exported block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.plugin(games.ID(gameID), format)
			if err != nil {
				return err
			}
			f, err := p.Load(args[0])
			if err != nil {
				return fmt.Errorf("%w (status %s)", err, plugin.StatusOf(err))
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, c := range p.Columns() {
				text, err := f.FieldText(c)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s:\t%s\n", c.LongName(), text)
			}
			if comment := f.Comment(); comment != "" {
				fmt.Fprintf(w, "Comment:\t%s\n", comment)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&gameID, "game", "g", "", "Game ID (e.g. th16)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Block format: values or text (default from config)")
	cmd.MarkFlagRequired("game")
	return cmd
}

// =============================================================================
// index / list
// =============================================================================

func newIndexCmd(a *app) *cobra.Command {
	var gameID, format, dbPath string
	cmd := &cobra.Command{
		Use:   "index --game GAME BLOCK...",
		Short: "Extract blocks into the catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.plugin(games.ID(gameID), format)
			if err != nil {
				return err
			}
			store, err := catalog.Open(a.catalogPath(dbPath))
			if err != nil {
				return err
			}
			defer store.Close()

			ix := &catalog.Indexer{Store: store, Plugin: p, Workers: a.cfg.Scan.Workers}
			sum, err := ix.Index(cmd.Context(), args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range sum.Results {
				fmt.Fprintf(out, "%s\t%s\n", r.Path, r.Status)
			}
			fmt.Fprintf(out, "scan %s: %d files, %d failures\n", sum.ScanID, len(sum.Results), sum.Failures)
			return nil
		},
	}
	cmd.Flags().StringVarP(&gameID, "game", "g", "", "Game ID (e.g. th16)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Block format: values or text (default from config)")
	cmd.Flags().StringVar(&dbPath, "db", "", "Catalog path (default from config)")
	cmd.MarkFlagRequired("game")
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	var gameID, dbPath string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := catalog.Open(a.catalogPath(dbPath))
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.List(games.ID(gameID))
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s", e.Path, e.Game, e.Status)
				for _, f := range e.Fields {
					fmt.Fprintf(w, "\t%s=%s", f.Column, f.Value)
				}
				fmt.Fprintln(w)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&gameID, "game", "g", "", "Only list this game")
	cmd.Flags().StringVar(&dbPath, "db", "", "Catalog path (default from config)")
	return cmd
}

// =============================================================================
// comment
// =============================================================================

func newCommentCmd(a *app) *cobra.Command {
	var gameID string
	cmd := &cobra.Command{
		Use:   "comment --game GAME BLOCK [TEXT]",
		Short: "Show or replace the comment of an exported value block",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.plugin(games.ID(gameID), "values")
			if err != nil {
				return err
			}
			if len(args) == 2 {
				return p.EditComment(args[0], args[1])
			}
			comment, err := p.Comment(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), comment)
			return nil
		},
	}
	cmd.Flags().StringVarP(&gameID, "game", "g", "", "Game ID (e.g. th16)")
	cmd.MarkFlagRequired("game")
	return cmd
}

// =============================================================================
// helpers
// =============================================================================

// plugin builds a plugin for id reading exported blocks in format, with the
// configured column selection applied.
func (a *app) plugin(id games.ID, format string) (*plugin.Plugin, error) {
	g, err := games.Lookup(id)
	if err != nil {
		return nil, err
	}
	if format == "" {
		format = a.cfg.Scan.Format
	}
	bf, err := plugin.ParseBlockFormat(format)
	if err != nil {
		return nil, err
	}

	p := plugin.New(g, plugin.BlockReader{Signature: g.Signature, Format: bf}, plugin.BlockCommentWriter{Signature: g.Signature})
	cols, err := a.cfg.ColumnsFor(id)
	if err != nil {
		return nil, err
	}
	if cols != nil {
		if err := p.SetColumns(cols); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (a *app) catalogPath(flag string) string {
	if flag != "" {
		return flag
	}
	return a.cfg.CatalogPath()
}
