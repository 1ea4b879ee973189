package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lfreitas/quizdeck/internal/app"
	"github.com/lfreitas/quizdeck/internal/config"
	"github.com/lfreitas/quizdeck/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quizdeck",
	Short: "Terminal quiz with local persistence",
	Long: "Quizdeck — a single-user terminal quiz application. Users register, answer\n" +
		"questions from a JSON question bank, and every answer and final score is\n" +
		"recorded in a local SQLite database.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := store.Open(cfg)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		return app.Run(app.Options{Config: cfg, Store: st})
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZDECK_DB env var)")
	rootCmd.PersistentFlags().String("questions", "", "Path to the question bank JSON file")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig builds the configuration from flags and environment.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	dbPath, _ := cmd.Flags().GetString("db")
	cfg, err := config.Load(dbPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("resolve config: %w", err)
	}
	if q, _ := cmd.Flags().GetString("questions"); q != "" {
		cfg.QuestionsFile = q
	}
	return cfg, nil
}
