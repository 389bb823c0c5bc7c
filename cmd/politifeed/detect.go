// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gilshw/politifeed/internal/detect"
	"github.com/gilshw/politifeed/internal/fetch"
	"github.com/gilshw/politifeed/internal/registry"
	"github.com/gilshw/politifeed/pkg/types"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Run mention detection over a single article",
	Long: `Detect runs the detection engine over one article, given inline via
flags or as a JSON file, and prints the admitted mentions with their
scores and decision reasons. With --fetch the engine may backfill a
short body from the article URL.`,
	RunE: runDetect,
}

func init() {
	detectCmd.Flags().String("file", "", "article JSON file ({id, title, description, body, url})")
	detectCmd.Flags().String("title", "", "article title")
	detectCmd.Flags().String("description", "", "article description")
	detectCmd.Flags().String("body", "", "article body text")
	detectCmd.Flags().String("url", "", "article URL (for --fetch)")
	detectCmd.Flags().Bool("fetch", false, "backfill short bodies from the article URL")
	detectCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	article, err := articleFromFlags(cmd)
	if err != nil {
		return err
	}

	reg, err := registry.Load(registryPath(cmd), os.Stderr)
	if err != nil {
		return err
	}
	if reg.Len() == 0 {
		return fmt.Errorf("registry is empty after validation")
	}

	pipe := detect.New(reg, engineConfig())
	if enabled, _ := cmd.Flags().GetBool("fetch"); enabled {
		client := fetch.NewClient(viper.GetDuration("ingest.timeout"), viper.GetString("ingest.user_agent"))
		pipe.Fetch = client.FetchFullText
	}

	mentions, err := pipe.Detect(context.Background(), article, os.Stderr)
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(mentions)
	}

	printMentions(mentions)
	return nil
}

// articleFromFlags reads the article from --file or the inline flags.
func articleFromFlags(cmd *cobra.Command) (types.Article, error) {
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return types.Article{}, fmt.Errorf("reading article: %w", err)
		}
		var a types.Article
		if err := json.Unmarshal(data, &a); err != nil {
			return types.Article{}, fmt.Errorf("parsing article %s: %w", path, err)
		}
		if a.ID == "" {
			a.ID = path
		}
		return a, nil
	}

	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	body, _ := cmd.Flags().GetString("body")
	url, _ := cmd.Flags().GetString("url")
	if title == "" && description == "" && body == "" {
		return types.Article{}, fmt.Errorf("article required: provide --file or at least one of --title, --description, --body")
	}
	return types.Article{
		ID:          "cli",
		Title:       title,
		Description: description,
		Body:        body,
		URL:         url,
	}, nil
}

func printMentions(mentions []types.Mention) {
	if len(mentions) == 0 {
		fmt.Println("No relevant mentions.")
		return
	}
	fmt.Printf("%-30s  %-6s  %-9s  %s\n", "Entity", "Score", "Relevant", "Reasons")
	fmt.Println(strings.Repeat("-", 70))
	for _, m := range mentions {
		fmt.Printf("%-30s  %-6d  %-9v  %s\n",
			m.EntityID, m.Score, m.Relevant, strings.Join(m.Reasons, ","))
	}
}
