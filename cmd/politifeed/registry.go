// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gilshw/politifeed/internal/registry"
)

var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Validate and inspect the politicians registry",
	Long: `Registry loads the politicians file the same way the detection commands
do, prints every validation finding, and summarizes the entities that
survived. Use it to check a registry edit before polling with it.`,
	RunE: runRegistry,
}

func init() {
	rootCmd.AddCommand(registryCmd)
}

func runRegistry(cmd *cobra.Command, args []string) error {
	path := registryPath(cmd)
	reg, err := registry.Load(path, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d entities\n\n", path, reg.Len())
	for _, e := range reg.Entities() {
		fmt.Printf("%s\n", e.CanonicalName)
		if e.ID != e.CanonicalName {
			fmt.Printf("  id: %s\n", e.ID)
		}
		if len(e.Aliases) > 0 {
			fmt.Printf("  aliases: %s\n", strings.Join(e.Aliases, ", "))
		}
		if e.Role != "" {
			fmt.Printf("  role: %s\n", e.Role)
		}
		if e.RequiresDisambiguation {
			fmt.Printf("  disambiguation cues: %s\n", strings.Join(e.DisambiguationCues, ", "))
		}
		if e.LowThreshold {
			fmt.Println("  low threshold")
		}
	}
	return nil
}
