package mdlint

import (
	"os"

	"github.com/mdlint/mdlint/internal/rules"
	"github.com/mdlint/mdlint/internal/types"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available rules",
		Run: func(_ *cobra.Command, _ []string) {
			t := tablewriter.NewWriter(os.Stdout)
			t.Header("ID", "Description")
			for _, r := range types.AllRules() {
				_ = t.Append(string(r), rules.Describe(r))
			}
			_ = t.Render()
		},
	}
	rootCmd.AddCommand(cmd)
}
