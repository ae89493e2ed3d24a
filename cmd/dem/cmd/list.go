package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the Development Environments",
	Long: `List every Development Environment with its tool types and whether
all of its tool images are available locally.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps()
		if err != nil {
			return err
		}

		envs := d.platform.Store.List()
		if len(envs) == 0 {
			fmt.Fprintln(os.Stdout, "No Development Environments.")
			return nil
		}

		d.platform.Images.Refresh(cmd.Context())

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Name\tStatus\tTool types")
		for _, env := range envs {
			d.platform.Images.CheckAvailability(env)

			status := "not installed"
			if env.Installed() {
				status = "installed"
			}

			types := make([]string, 0, len(env.Tools))
			for _, t := range env.Tools {
				types = append(types, t.Type)
			}
			summary := joinStrings(types)
			if summary == "" {
				summary = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", env.Name, status, summary)
		}

		_ = w.Flush()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
