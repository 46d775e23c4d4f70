package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ramadhan-rush/internal/config"
	"github.com/vovakirdan/ramadhan-rush/internal/registry"
)

var variantsCmd = &cobra.Command{
	Use:     "variants",
	Aliases: []string{"list"},
	Short:   "List the minigames",
	Long:    `Shows every minigame in the catalog with its base round length.`,
	RunE:    runVariants,
}

func runVariants(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if len(cfg.Variants) == 0 {
		fmt.Println("No variants configured.")
		return nil
	}

	fmt.Println("Minigames:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, v := range cfg.Variants {
		if len(v.ID) > maxIDLen {
			maxIDLen = len(v.ID)
		}
	}

	fmt.Printf("  %-*s  %-16s  %-6s  %s\n", maxIDLen, "ID", "Name", "Round", "Brief")
	fmt.Printf("  %-*s  %-16s  %-6s  %s\n", maxIDLen, "--", "----", "-----", "-----")
	for _, v := range cfg.Variants {
		name := v.Name
		if !registry.Exists(registry.VariantID(v.ID)) {
			name += " (missing)"
		}
		fmt.Printf("  %-*s  %-16s  %-6s  %s\n", maxIDLen, v.ID, name, fmt.Sprintf("%.1fs", v.BaseDurationMs/1000), v.Brief)
	}

	fmt.Println()
	fmt.Println("Run 'rush play --custom <id>,<id>' to practise a selection.")
	return nil
}
