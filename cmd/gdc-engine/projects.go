package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List the project id of every GDC project",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient(cmd)
		ids, err := client.ProjectIDs(cmd.Context())
		if err != nil {
			return err
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(projectsCmd)
}
