package main

import (
	"motherlanka-be/internal/model"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the content and rag_chunks tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB(loadConfig())
		if err != nil {
			return err
		}

		if err := model.Migrate(db); err != nil {
			return err
		}
		color.Green("Migrated %d tables", len(model.All()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
