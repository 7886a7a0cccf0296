package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pacesnailbar/nailbar/internal/progress"
	"github.com/pacesnailbar/nailbar/internal/site"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the site as static files",
	Long: `Renders the page and writes it, the stylesheet, the script and any local
gallery images to a directory ready for static hosting. Exported pages have
no live session: the carousel navigates locally and sections are never hidden.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if exportOutput != "" {
			cfg.ExportDir = exportOutput
		}

		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		c, err := loadContent(cfg, logger)
		if err != nil {
			return err
		}

		opts := siteOptions(cfg)
		opts.CacheTTL = 0
		st, err := site.New(c, opts, logger.Named("site"), nil)
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := st.Export(cfg.ExportDir, progress.NewReporter("Exporting"))
		if err != nil {
			return fmt.Errorf("exporting site: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d files to %s\n", n, cfg.ExportDir)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output directory (overrides export_dir)")
	rootCmd.AddCommand(exportCmd)
}
