package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the RAG index from the content tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rag, err := openRag(loadConfig())
		if err != nil {
			return err
		}
		defer rag.Close()

		res, err := rag.Indexer.Rebuild(cmd.Context(), "ragctl")
		if err != nil {
			return err
		}

		color.Green("Indexed %d chunks (%d embedded) in %s", res.Chunks, res.Embedded, res.Duration)
		if res.Embedded < res.Chunks {
			color.Yellow("%d chunks have no embedding and will be ranked by keyword", res.Chunks-res.Embedded)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rebuildCmd)
}
