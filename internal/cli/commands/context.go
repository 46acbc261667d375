package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/docshift-labs/docshift/internal/cli/config"
	"github.com/docshift-labs/docshift/internal/cli/output"
)

type configKey struct{}
type rendererKey struct{}
type loggerKey struct{}

// WithConfig stores the loaded config in the context.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// WithRenderer stores the output renderer in the context.
func WithRenderer(ctx context.Context, r *output.Renderer) context.Context {
	return context.WithValue(ctx, rendererKey{}, r)
}

// WithLogger stores the logger in the context.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// CommandContext bundles what every command needs.
type CommandContext struct {
	Cfg      *config.Config
	Renderer *output.Renderer
	Logger   *slog.Logger
}

// NewCommandContext extracts the command context prepared by the root
// command's PersistentPreRunE.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	ctx := cmd.Context()

	cfg, ok := ctx.Value(configKey{}).(*config.Config)
	if !ok {
		return nil, fmt.Errorf("configuration not initialized")
	}
	r, ok := ctx.Value(rendererKey{}).(*output.Renderer)
	if !ok {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.ModeAuto)
	}
	l, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok {
		l = slog.Default()
	}

	return &CommandContext{Cfg: cfg, Renderer: r, Logger: l}, nil
}
