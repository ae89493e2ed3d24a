package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/axemsolutions/dem/internal/core"
)

var infoCmd = &cobra.Command{
	Use:   "info <name>",
	Short: "Show the tools of a Development Environment",
	Long: `Show every tool of a Development Environment with its image and
where the image is available.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps()
		if err != nil {
			return err
		}

		env, err := lookupDevEnv(cmd.Context(), d, args[0])
		if err != nil {
			return err
		}

		report := infoMarkdown(env)
		if raw, _ := cmd.Flags().GetBool("raw"); raw {
			fmt.Fprint(os.Stdout, report)
			return nil
		}

		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			return fmt.Errorf("creating markdown renderer: %w", err)
		}
		out, err := r.Render(report)
		if err != nil {
			return fmt.Errorf("rendering report: %w", err)
		}
		fmt.Fprint(os.Stdout, out)
		return nil
	},
}

// infoMarkdown builds the report of env. Availability must already be
// checked.
func infoMarkdown(env *core.DevEnv) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", env.Name)

	if len(env.Tools) == 0 {
		b.WriteString("No tools are assigned.\n")
		return b.String()
	}

	b.WriteString("| Type | Image | Status |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, t := range env.Tools {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", t.Type, t.Image(), availabilityMessage(t.Availability))
	}

	b.WriteString("\n")
	if env.Installed() {
		b.WriteString("The Development Environment is installed.\n")
	} else {
		b.WriteString("The Development Environment is not installed.\n")
	}
	return b.String()
}

func init() {
	infoCmd.Flags().Bool("raw", false, "Print the report as markdown without rendering")
	rootCmd.AddCommand(infoCmd)
}
