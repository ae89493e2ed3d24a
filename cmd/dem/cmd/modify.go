package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/axemsolutions/dem/internal/core"
	"github.com/axemsolutions/dem/internal/tui"
	"github.com/axemsolutions/dem/internal/wizard"
)

var modifyCmd = &cobra.Command{
	Use:   "modify <name>",
	Short: "Change the tools of a Development Environment",
	Long: `Interactively choose the tool types of a Development Environment and
a tool image for each of them. The result can overwrite the environment or
be saved as a new one. Images that are only in the registry are pulled.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		env, err := lookupDevEnv(ctx, d, args[0])
		if err != nil {
			return err
		}

		res, err := tui.RunModify(ctx, wizard.New(d.platform, env))
		if err != nil {
			return err
		}
		if res.Aborted {
			return core.ErrAborted
		}

		d.platform.Images.Observer = newPullProgress(os.Stderr)
		saved, err := d.platform.Commit(ctx, core.CommitRequest{
			Env:      env,
			Tools:    res.Tools,
			Decision: res.Decision,
			NewName:  res.NewName,
		})
		if err != nil {
			if saved != nil {
				// Saved, but some images could not be pulled.
				fmt.Fprintf(os.Stdout, "Saved %s.\n", saved.Name)
			}
			return err
		}

		fmt.Fprintf(os.Stdout, "Saved %s.\n", saved.Name)
		if !saved.Installed() {
			fmt.Fprintln(os.Stdout, "Some tool images are not available locally. Run `dem info "+saved.Name+"` for details.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modifyCmd)
}
