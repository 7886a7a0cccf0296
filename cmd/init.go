package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pacesnailbar/nailbar/internal/config"
	"github.com/pacesnailbar/nailbar/internal/content"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize nailbar configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the salon site and generates a .nailbar.yml file, plus a starter content file if none exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := config.RunWizard(cfgFile)
		if err != nil {
			return err
		}
		if !res.WriteContent {
			return nil
		}
		if err := content.Default().Save(res.Config.ContentFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Starter content written to %s\n", res.Config.ContentFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
