package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/imgreport/imgreport/internal/app/wiring"
	galleryapp "github.com/imgreport/imgreport/internal/domains/gallery/app"
	"github.com/imgreport/imgreport/internal/platform/console"
)

// NewRootCmd builds the imgreport command. The tool takes no flags and no
// arguments: it always runs the full pipeline against the current directory.
func NewRootCmd() *cobra.Command {
	var logger *zap.Logger

	cmd := &cobra.Command{
		Use:   "imgreport",
		Short: "Generate static HTML photo-gallery reports from outputs/",
		Long: `imgreport scans <cwd>/outputs for folders that directly contain images,
writes a self-contained report.html into each of them (with optional captions
from a per-folder captions.csv), then writes two index pages:

  site/index.html   links prefixed ../outputs
  index.html        links prefixed outputs

Output is deterministic and overwritten unconditionally on every run.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewProductionConfig()
			var err error
			logger, err = cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctr := wiring.New(logger)
			out := console.New(cmd.OutOrStdout())

			res, err := ctr.Gallery.Generate(galleryapp.GenerateRequest{RootPath: "."})
			if err != nil {
				return err
			}

			for _, folder := range res.Report.Folders {
				out.Info("report built: " + folder.ReportPath)
			}
			out.Info("index built: " + res.Report.SiteIndexPath)
			out.Info("index built: " + res.Report.RootIndexPath)
			out.Info("done.")
			return nil
		},
	}

	return cmd
}
