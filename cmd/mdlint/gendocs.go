package mdlint

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func init() {
	var outDir string
	cmd := &cobra.Command{
		Use:    "gendocs",
		Short:  "Generate CLI reference docs",
		Hidden: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := os.MkdirAll(outDir, 0755); err != nil {
				return err
			}
			return doc.GenMarkdownTree(rootCmd, outDir)
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "docs/cli", "output directory")
	rootCmd.AddCommand(cmd)
}
