package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [path]",
		Short: "Report legacy pages without rewriting them",
		Long: `Scan the pages directory for legacy API usage.

Equivalent to migrate --dry-run, but exits with code 1 when any page
still needs migration. Useful in CI to keep a migrated tree clean.`,
		Example: `  # Check the configured pages directory
  docshift check

  # Check a specific directory
  docshift check ./website/pages`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return runCheck(cmd, path)
		},
	}
	return cmd
}

func runCheck(cmd *cobra.Command, path string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	report, err := newRunner(cmdCtx.Cfg, cmdCtx, path, true).Run(cmd.Context())
	if err != nil {
		return err
	}

	renderReport(r, report, true)
	if report.HasFailures() {
		return fmt.Errorf("%d page(s) failed to parse", report.Failed)
	}
	if report.HasChanges() {
		return fmt.Errorf("%d page(s) still use the legacy API", report.Migrated)
	}
	r.Success("No legacy API usage found")
	return nil
}
