package main

import (
	"github.com/spf13/cobra"

	"github.com/scalameta/docsite/internal/site"
)

func validateCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the site configuration",
		Long: `Load and validate the site configuration without rendering.

Exits non-zero and prints the offending field when the configuration
is invalid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := site.Resolve(configPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			success(out, "%s is valid", cfg.Path())
			if cfg.FooterIcon == "" {
				info(out, "No footerIcon set, the footer will have no logo")
			}
			if cfg.GitterURL == "" || cfg.RepoURL == "" {
				warn(out, "Community links are incomplete (gitterUrl, repoUrl)")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file or directory (default: search from working directory)")

	return cmd
}
