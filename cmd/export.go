package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lfreitas/quizdeck/internal/report"
	"github.com/lfreitas/quizdeck/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded answers and results as CSV",
	Long: "Writes respostas.csv and resultados.csv to the output directory without\n" +
		"starting the interactive interface.",
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

		ctx := cmd.Context()
		answers, err := st.Answers().All(ctx)
		if err != nil {
			return fmt.Errorf("read answers: %w", err)
		}
		results, err := st.Results().All(ctx)
		if err != nil {
			return fmt.Errorf("read results: %w", err)
		}

		dir, _ := cmd.Flags().GetString("out")
		if err := report.ExportFiles(dir, answers, results); err != nil {
			return err
		}
		fmt.Printf("Exported %d answers and %d results to %s\n", len(answers), len(results), dir)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", ".", "Output directory for the CSV files")
}
