package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/sportdb/sportdb/internal/iofeed"
	"github.com/sportdb/sportdb/internal/ioimport"
	"github.com/sportdb/sportdb/internal/iosearch"
	"github.com/sportdb/sportdb/pkg/config"
)

// getLoadCmd returns the load command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getLoadCmd() *cobra.Command {
	var feedsFile string

	loadCmd := &cobra.Command{
		Use:   "load",
		Short: "Build the catalog database from feeds",
		Long: `Fetch the catalog and metadata feeds and build a fresh
catalog database.

This command:
  1. Reads feeds.yaml to find the catalog and metadata feeds
  2. Fetches all five feeds (HTTP or local files)
  3. Normalizes titles and resolves brands for every catalog row
  4. Loads the rows into a new SQLite file in one transaction
  5. Indexes the new file and swaps it in as the live database

If the catalog feed cannot be fetched and a previously built
database exists, the old database stays live and the command
succeeds with a warning.

Feeds are configured in: ~/.config/sportdb/feeds.yaml

Examples:
  # Build the catalog from the configured feeds
  sportdb load

  # Use an alternative feed set
  sportdb load --feeds ./feeds-local.yaml`,
		Aliases: []string{"import"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runLoad(cmd, feedsFile)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	loadCmd.Flags().StringVarP(
		&feedsFile, "feeds", "f", "",
		"feed-set description file (default: configured feeds.yaml)",
	)

	return loadCmd
}

func runLoad(cmd *cobra.Command, feedsFile string) error {
	ctx := context.Background()

	if cmd.Flags().Changed("feeds") {
		cfg.Update([]config.Option{config.OptFeedsFile(feedsFile)})
	}

	set, err := iofeed.LoadSet(cfg.FeedsPath())
	if err != nil {
		return err
	}

	fetcher := iofeed.New()
	searcher := iosearch.New(cfg)
	importer := ioimport.New(cfg, set, fetcher, searcher, nil)

	return importer.Load(ctx)
}
