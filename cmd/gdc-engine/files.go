package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/gdc-engine/internal/query"
)

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List file UUIDs matching query conditions",
	Long: `Files lists the UUID of every GDC file matching the given conditions.
Conditions are flat field=value pairs combined with AND; a comma-separated
value becomes a set-membership test.

Example:
  gdc-engine files \
    --filter cases.project.project_id=TCGA-BRCA \
    --filter data_type="Gene Expression Quantification"`,
	RunE: runFiles,
}

func init() {
	filesCmd.Flags().StringArray("filter", nil, "query condition as field=value (repeatable)")

	rootCmd.AddCommand(filesCmd)
}

func runFiles(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetStringArray("filter")
	if len(raw) == 0 {
		return fmt.Errorf("provide at least one --filter field=value condition")
	}

	conds := make(map[string]any, len(raw))
	for _, r := range raw {
		field, value, ok := strings.Cut(r, "=")
		if !ok || field == "" {
			return fmt.Errorf("malformed filter %q: want field=value", r)
		}
		if strings.Contains(value, ",") {
			conds[field] = strings.Split(value, ",")
		} else {
			conds[field] = value
		}
	}

	client := newClient(cmd)
	set, err := client.FileUUIDs(cmd.Context(), query.FromMap(conds))
	if err != nil {
		return err
	}

	for _, uuid := range set.UUIDs {
		fmt.Println(uuid)
	}
	if set.Truncated() {
		fmt.Fprintf(os.Stderr, "warning: server returned %d of %d matches (per-request size cap)\n",
			len(set.UUIDs), set.Total)
	}
	return nil
}
