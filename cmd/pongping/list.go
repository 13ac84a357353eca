package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pongping/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available backends",
	Long:  `Shows the backends compiled into this binary.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	backends := registry.List()

	if len(backends) == 0 {
		fmt.Println("No backends available.")
		return
	}

	fmt.Println("Available backends:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, b := range backends {
		if len(b.ID) > maxIDLen {
			maxIDLen = len(b.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, b := range backends {
		fmt.Printf("  %-*s  %s\n", maxIDLen, b.ID, b.Title)
	}

	fmt.Println()
	fmt.Println("Run 'pongping play --backend <id>' to play.")
}
