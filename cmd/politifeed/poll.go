// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gilshw/politifeed/internal/detect"
	"github.com/gilshw/politifeed/internal/fetch"
	"github.com/gilshw/politifeed/internal/ingest"
	"github.com/gilshw/politifeed/internal/registry"
	"github.com/gilshw/politifeed/internal/store"
	"github.com/gilshw/politifeed/pkg/types"
)

var pollCmd = &cobra.Command{
	Use:   "poll",
	Short: "Fetch configured feeds, detect mentions, and persist them",
	Long: `Poll fetches every configured RSS/Atom feed, runs mention detection on
items not seen in earlier runs, and stores articles and their mention
edges in the SQLite database. Feed failures are reported and skipped;
a run only fails when nothing could be polled at all.`,
	RunE: runPoll,
}

func init() {
	pollCmd.Flags().String("db", "", "SQLite database path (default from config)")
	pollCmd.Flags().Bool("no-fetch", false, "disable full-text backfill of short bodies")

	rootCmd.AddCommand(pollCmd)
}

func runPoll(cmd *cobra.Command, args []string) error {
	ingestCfg, err := ingestConfig()
	if err != nil {
		return fmt.Errorf("reading feed config: %w", err)
	}
	if len(ingestCfg.Feeds) == 0 {
		return fmt.Errorf("no feeds configured: set ingest.feeds in the config file")
	}

	reg, err := registry.Load(registryPath(cmd), os.Stderr)
	if err != nil {
		return err
	}
	if reg.Len() == 0 {
		return fmt.Errorf("registry is empty after validation")
	}

	db, err := store.Open(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer db.Close()

	pipe := detect.New(reg, engineConfig())
	if noFetch, _ := cmd.Flags().GetBool("no-fetch"); !noFetch {
		client := fetch.NewClient(ingestCfg.Timeout, ingestCfg.UserAgent)
		pipe.Fetch = client.FetchFullText
	}
	pipe.Persist = func(ctx context.Context, articleID string, m types.Mention) error {
		return db.SaveMention(ctx, articleID, m.EntityID, m.Score, m.Relevant)
	}

	ctx := context.Background()
	poller := ingest.NewPoller(ingestCfg)

	polled := 0
	for _, feed := range ingestCfg.Feeds {
		articles, err := poller.FetchFeed(ctx, feed)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: feed %s failed: %v\n", feed.Name, err)
			continue
		}
		polled++
		fmt.Printf("%s: %d items\n", feed.Name, len(articles))

		for _, article := range articles {
			seen, err := db.HasArticle(ctx, article.ID)
			if err != nil {
				return err
			}
			if seen {
				continue
			}
			if err := db.SaveArticle(ctx, article); err != nil {
				return err
			}

			mentions, err := pipe.Detect(ctx, article, os.Stderr)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: detection failed for %s: %v\n", article.ID, err)
				continue
			}
			if len(mentions) > 0 {
				fmt.Printf("  %s: %d mention(s)\n", article.ID, len(mentions))
			}
		}
	}

	if polled == 0 {
		return fmt.Errorf("all %d feed(s) failed", len(ingestCfg.Feeds))
	}
	return nil
}
