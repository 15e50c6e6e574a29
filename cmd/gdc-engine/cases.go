package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/gdc-engine/internal/cases"
	"github.com/pdiddy/gdc-engine/pkg/types"
)

var casesCmd = &cobra.Command{
	Use:   "cases",
	Short: "Flatten every GDC case into a tab-separated table",
	Long: `Cases walks the whole case collection page by page, merges each case's
first diagnosis, demographic and project records into one flat row, and
writes the result as a TSV file. With --store the rows are also persisted
to a SQLite database.`,
	RunE: runCases,
}

func init() {
	casesCmd.Flags().Int("page-size", 0, "cases per page (default 10)")
	casesCmd.Flags().String("out", "", "output TSV path (default cases.tsv)")
	casesCmd.Flags().String("store", "", "also persist rows to a SQLite database at this path")

	rootCmd.AddCommand(casesCmd)
}

func runCases(cmd *cobra.Command, args []string) error {
	pageSize, _ := cmd.Flags().GetInt("page-size")
	if pageSize == 0 {
		pageSize = viper.GetInt("cases.page_size")
	}
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = viper.GetString("cases.output_path")
	}
	if out == "" {
		out = "cases.tsv"
	}
	storePath, _ := cmd.Flags().GetString("store")

	cfg := types.CasesConfig{
		PageSize:   pageSize,
		OutputPath: out,
		StorePath:  storePath,
	}

	client := newClient(cmd)
	table, err := cases.Collect(cmd.Context(), client, cfg, os.Stdout)
	if err != nil {
		return err
	}

	if err := table.WriteTSV(cfg.OutputPath); err != nil {
		return err
	}
	fmt.Printf("Wrote %d cases to %s\n", table.Len(), cfg.OutputPath)

	if cfg.StorePath != "" {
		store, err := cases.OpenStore(cfg.StorePath)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.PutTable(table); err != nil {
			return err
		}
		fmt.Printf("Stored %d cases in %s\n", table.Len(), cfg.StorePath)
	}
	return nil
}
