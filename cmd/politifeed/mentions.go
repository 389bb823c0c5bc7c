// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gilshw/politifeed/internal/store"
)

var mentionsCmd = &cobra.Command{
	Use:   "mentions",
	Short: "Query stored mentions",
	Long: `Mentions queries the SQLite database written by poll. With --entity it
lists that figure's mentions, newest article first; without it, the
top entities by stored mention count.`,
	RunE: runMentions,
}

func init() {
	mentionsCmd.Flags().String("db", "", "SQLite database path (default from config)")
	mentionsCmd.Flags().String("entity", "", "entity ID to list mentions for")
	mentionsCmd.Flags().Int("limit", 20, "maximum rows to return")
	mentionsCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(mentionsCmd)
}

func runMentions(cmd *cobra.Command, args []string) error {
	db, err := store.Open(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	limit, _ := cmd.Flags().GetInt("limit")
	asJSON, _ := cmd.Flags().GetBool("json")

	entity, _ := cmd.Flags().GetString("entity")
	if entity == "" {
		counts, err := db.TopEntities(ctx, limit)
		if err != nil {
			return err
		}
		if asJSON {
			return writeJSON(counts)
		}
		if len(counts) == 0 {
			fmt.Println("No stored mentions. Run poll first.")
			return nil
		}
		fmt.Printf("%-30s  %s\n", "Entity", "Mentions")
		fmt.Println(strings.Repeat("-", 40))
		for _, c := range counts {
			fmt.Printf("%-30s  %d\n", c.EntityID, c.Count)
		}
		return nil
	}

	records, err := db.MentionsFor(ctx, entity, limit)
	if err != nil {
		return err
	}
	if asJSON {
		return writeJSON(records)
	}
	if len(records) == 0 {
		fmt.Printf("No stored mentions of %s.\n", entity)
		return nil
	}
	for _, r := range records {
		marker := " "
		if r.Relevant {
			marker = "*"
		}
		fmt.Printf("%s %-10s  score=%-3d  %s  %s\n",
			marker, r.Published, r.Score, r.ArticleTitle, r.ArticleURL)
	}
	return nil
}

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
