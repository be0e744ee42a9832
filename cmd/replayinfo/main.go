// replayinfo CLI - inspect replay metadata blocks and maintain the catalog
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/chazu/replayinfo/config"

	_ "github.com/tliron/commonlog/simple"
)

// app carries state shared by subcommands.
type app struct {
	verbose int
	cfg     *config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "replayinfo",
		Short:         "Read player, score and stage metadata from replay files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.PersistentFlags().CountVarP(&a.verbose, "verbose", "v", "Increase log verbosity (repeatable)")

	root.AddCommand(
		newDetectCmd(a),
		newColumnsCmd(a),
		newExtractCmd(a),
		newIndexCmd(a),
		newListCmd(a),
		newCommentCmd(a),
	)
	return root
}

// setup loads replayinfo.toml, if any, and configures logging.
func (a *app) setup() error {
	cfg, err := config.FindAndLoad(".")
	if err != nil {
		return err
	}
	if cfg == nil {
		cfg = config.Default()
	}
	a.cfg = cfg

	verbosity := cfg.Log.Verbosity
	if a.verbose > verbosity {
		verbosity = a.verbose
	}
	var path *string
	if cfg.Log.File != "" {
		path = &cfg.Log.File
	}
	commonlog.Configure(verbosity, path)
	return nil
}
