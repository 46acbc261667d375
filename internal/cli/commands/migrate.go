package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/docshift-labs/docshift/internal/cli/config"
	"github.com/docshift-labs/docshift/internal/cli/output"
	"github.com/docshift-labs/docshift/internal/runner"
)

// MigrateOptions holds options for the migrate command.
type MigrateOptions struct {
	Path   string // positional override of the pages directory
	DryRun bool
}

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand() *cobra.Command {
	opts := &MigrateOptions{}
	cmd := &cobra.Command{
		Use:   "migrate [path]",
		Short: "Rewrite legacy pages to the modern theme API",
		Long: `Rewrite pages authored against the removed v1 component API.

Legacy component-library loads are replaced with inert stubs, the theme
layout import is inserted, and module.exports assignments become default
exports wrapped in the layout component. Files without legacy usage are
left untouched.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Migrate the configured pages directory in place
  docshift migrate

  # Migrate a specific directory into a separate output tree
  docshift migrate ./website/pages --out-dir ./migrated

  # Show what would change without writing
  docshift migrate --dry-run

  # Verify migrated output parses before writing
  docshift migrate --verify`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Path = args[0]
			}
			return runMigrate(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Compute results without writing files")

	return cmd
}

func runMigrate(cmd *cobra.Command, opts *MigrateOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	report, err := newRunner(cfg, cmdCtx, opts.Path, opts.DryRun).Run(cmd.Context())
	if err != nil {
		if report != nil {
			renderReport(r, report, opts.DryRun)
		}
		return err
	}

	renderReport(r, report, opts.DryRun)
	if report.HasFailures() {
		return fmt.Errorf("%d page(s) failed to migrate", report.Failed)
	}
	return nil
}

// newRunner builds a runner from the effective configuration.
func newRunner(cfg *config.Config, cmdCtx *CommandContext, pathOverride string, dryRun bool) *runner.Runner {
	pagesDir := cfg.PagesDir
	if pathOverride != "" {
		pagesDir = pathOverride
	}
	return runner.New(runner.Options{
		PagesDir: pagesDir,
		OutDir:   cfg.OutDir,
		Include:  cfg.Include,
		Exclude:  cfg.Exclude,
		Workers:  cfg.Workers,
		DryRun:   dryRun,
		Verify:   cfg.Verify,
		FailFast: cfg.FailFast,
	}, cmdCtx.Logger)
}

// renderReport renders a migration report in the active output mode.
func renderReport(r *output.Renderer, report *runner.Report, dryRun bool) {
	if r.EffectiveMode() == output.ModeJSON {
		_ = r.JSON(report)
		return
	}

	var rows [][]string
	for _, res := range report.Results {
		if res.Status == runner.StatusUnchanged || res.Path == "" {
			continue
		}
		detail := ""
		switch {
		case res.ErrText != "":
			detail = res.ErrText
		case res.Rewrites > 0 || res.Exports > 0:
			detail = strconv.Itoa(res.Rewrites) + " binding(s), " +
				strconv.Itoa(res.Exports) + " export(s)"
		}
		rows = append(rows, []string{res.Path, string(res.Status), detail})
	}

	if len(rows) > 0 {
		r.Table([]string{"Page", "Status", "Detail"}, rows)
	}
	if dryRun {
		r.Println("(dry run: no files written)")
	}
	r.Println(report.Summary())
}
