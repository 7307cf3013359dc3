package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shop-escalation/internal/config"
	"github.com/vovakirdan/shop-escalation/internal/games/galaxian"
)

var flagShopCredits int

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Print the upgrade catalog",
	Long: `Print the nine shop items with their base prices and level caps.

The shop opens after every fifth cleared wave. Prices grow with each
level bought; powers are charges that never cap.

Examples:
  galaxian shop
  galaxian shop --credits 500`,
	Args: cobra.NoArgs,
	Run:  runShop,
}

func init() {
	shopCmd.Flags().IntVar(&flagShopCredits, "credits", 0, "Mark items affordable with this many credits")
}

func runShop(_ *cobra.Command, _ []string) {
	tuning, err := config.LoadGalaxian("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	s := galaxian.NewWithConfig(resolveSeed(flagSeed), tuning)
	s.Credits = flagShopCredits

	fmt.Println("Shop catalog")
	fmt.Println()
	fmt.Printf("  %-3s  %-16s  %6s  %-5s  %s\n", "Key", "Item", "Cost", "Max", "Effect")
	fmt.Printf("  %-3s  %-16s  %6s  %-5s  %s\n", "---", "----", "----", "---", "------")

	for i, item := range galaxian.ListItems(s) {
		maxLevel := "-"
		if item.MaxLevel != nil {
			maxLevel = fmt.Sprintf("%d", *item.MaxLevel)
		}
		marker := " "
		if flagShopCredits > 0 && item.Affordable {
			marker = "*"
		}
		fmt.Printf("%s %-3d  %-16s  %6d  %-5s  %s\n", marker, i+1, item.Name, item.Cost, maxLevel, item.Description)
	}

	if flagShopCredits > 0 {
		fmt.Println()
		fmt.Printf("* affordable with %d credits\n", flagShopCredits)
	}
}
