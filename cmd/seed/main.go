package main

import (
	"log"

	"perkly/cmd"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

func main() {
	var catalogPath string

	rootCmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the card catalog from a CSV export of the source spreadsheet",
		RunE: func(c *cobra.Command, args []string) error {
			return cmd.SeedCatalogFromFile(catalogPath)
		},
	}
	rootCmd.Flags().StringVar(&catalogPath, "file", "catalog.csv", "path to the catalog CSV export")

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
