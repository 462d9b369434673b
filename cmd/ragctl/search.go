package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Show the ranked index entries for a query",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rag, err := openRag(loadConfig())
		if err != nil {
			return err
		}
		defer rag.Close()

		ctx := cmd.Context()
		if _, err := rag.Indexer.EnsureIndex(ctx); err != nil {
			return err
		}

		matches, err := rag.Retriever.Retrieve(ctx, strings.Join(args, " "), searchLimit)
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			color.Yellow("Index is empty")
			return nil
		}

		for i, m := range matches {
			color.New(color.FgCyan, color.Bold).Printf("%d. %s ", i+1, m.Chunk.Title)
			fmt.Printf("(%s:%s) ", m.Chunk.Type, m.Chunk.RefId)
			color.New(color.FgGreen).Printf("%.4f %s\n", m.Score, m.Method)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 5, "Number of results")
	rootCmd.AddCommand(searchCmd)
}
