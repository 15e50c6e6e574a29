package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
)

var labelCmd = &cobra.Command{
	Use:   "label [uuids...]",
	Short: "Map file UUIDs to a metadata field value",
	Long: `Label queries the files endpoint for the given field's value per UUID and
prints a label-to-UUID mapping. Only the first dotted segment of the field
is read; nested values are unwrapped best-effort to a scalar. When two UUIDs
share a label the last one processed wins and the collision is reported.`,
	RunE: runLabel,
}

func init() {
	labelCmd.Flags().String("field", "", "file field whose value labels each UUID")
	labelCmd.MarkFlagRequired("field")

	rootCmd.AddCommand(labelCmd)
}

func runLabel(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more file UUIDs")
	}
	field, _ := cmd.Flags().GetString("field")

	client := newClient(cmd)
	result, err := client.LabelFiles(cmd.Context(), args, field)
	if err != nil {
		return err
	}

	labels := make([]string, 0, len(result.Labels))
	for label := range result.Labels {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		fmt.Printf("%s\t%s\n", label, result.Labels[label])
	}

	for _, label := range result.Collisions {
		fmt.Fprintf(os.Stderr, "warning: multiple files share label %q; kept the last one\n", label)
	}
	return nil
}
