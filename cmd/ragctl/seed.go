package main

import (
	"motherlanka-be/internal/model"
	"motherlanka-be/internal/repository/unitofwork"
	"motherlanka-be/internal/seed"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Upsert sample Sri Lanka content",
	Long:  "Upserts destinations, stays, experiences and events from a YAML file, or the built-in sample set.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB(loadConfig())
		if err != nil {
			return err
		}
		if err := model.Migrate(db); err != nil {
			return err
		}

		snapshot, err := seed.LoadFile(seedFile)
		if err != nil {
			return err
		}

		if err := seed.Apply(cmd.Context(), unitofwork.NewRepositoryFactory(db), snapshot); err != nil {
			return err
		}

		color.Green("Seeded %d destinations, %d stays, %d experiences, %d events",
			len(snapshot.Destinations), len(snapshot.Stays), len(snapshot.Experiences), len(snapshot.Events))
		color.Yellow("Run `ragctl rebuild` to refresh the index")
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "YAML fixture to load instead of the built-in sample")
	rootCmd.AddCommand(seedCmd)
}
