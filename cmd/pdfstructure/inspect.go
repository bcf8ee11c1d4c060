package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pyhub-apps/pdfstructure/pkg/batch"
	"github.com/pyhub-apps/pdfstructure/pkg/classify"
)

var showBlocks bool

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Process a single PDF and print the result",
	Long: `Process a single PDF and write its JSON record to stdout.
With --blocks, print every classified block instead: page, font size, role and text.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		proc := newProcessor()

		if showBlocks {
			doc, err := proc.Open(args[0])
			if err != nil {
				return err
			}
			defer doc.Close()

			blocks, err := proc.Classify(cmd.Context(), doc)
			if err != nil {
				return err
			}
			printBlocks(cmd.OutOrStdout(), blocks)
			return nil
		}

		doc, err := proc.ProcessFile(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return batch.Encode(cmd.OutOrStdout(), doc)
	},
}

func init() {
	inspectCmd.Flags().BoolVar(&showBlocks, "blocks", false, "Print classified blocks instead of the document")

	rootCmd.AddCommand(inspectCmd)
}

func printBlocks(w io.Writer, blocks []classify.ClassifiedBlock) {
	for _, block := range blocks {
		fmt.Fprintf(w, "%s %s %s  %s\n",
			dimStyle.Render(fmt.Sprintf("p%-3d", block.Page)),
			dimStyle.Render(fmt.Sprintf("%5.1fpt", block.FontSize)),
			roleStyle(block.Role).Render(fmt.Sprintf("%-10s", block.Role)),
			block.Text,
		)
	}
}
