package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pyhub-apps/pdfstructure/pkg/batch"
)

var (
	inputDir  string
	outputDir string
	workers   int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Process every PDF in the input directory",
	Long: `Process every *.pdf file in the input directory and write <name>.json for
each into the output directory. A file that cannot be processed produces an
empty record. Interrupting the run lets files in progress finish.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("input") {
			cfg.Input.Dir = inputDir
		}
		if cmd.Flags().Changed("output") {
			cfg.Output.Dir = outputDir
		}
		if cmd.Flags().Changed("workers") {
			cfg.Batch.Workers = workers
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		runner := batch.NewRunner(newProcessor(), cfg.Input.Dir, cfg.Output.Dir,
			batch.WithWorkers(cfg.Batch.Workers),
			batch.WithLogger(logger),
		)

		summary, err := runner.Run(ctx)
		if summary != nil {
			FormatSummary(cmd.OutOrStdout(), summary)
		}
		if batch.IsCanceled(err) {
			logger.Warn("Run interrupted")
			return nil
		}
		return err
	},
}

func init() {
	runCmd.Flags().StringVarP(&inputDir, "input", "i", "", "Input directory (default from config)")
	runCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (default from config)")
	runCmd.Flags().IntVarP(&workers, "workers", "w", 0, "Files processed in parallel (default from config)")

	rootCmd.AddCommand(runCmd)
}
