package demo

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dlomanov/clearable/internal/apps/demo/config"
	"github.com/dlomanov/clearable/internal/apps/demo/ui"
	"github.com/dlomanov/clearable/internal/infra/logging"
	"go.uber.org/zap"
)

func Run(ctx context.Context, config *config.Config) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	logger, err := logging.NewLogger(logging.Config{
		Level:       config.LogLevel,
		Type:        config.LogType,
		OutputPaths: config.LogOutputPaths,
	})
	if err != nil {
		return err
	}
	defer func(logger *zap.Logger) { _ = logger.Sync() }(logger)

	model, err := ui.NewModel("clearable", config, logger)
	if err != nil {
		logger.Error("failed to init model", zap.Error(err))
		return err
	}
	runApp(ctx, logger, model)
	return nil
}

func runApp(ctx context.Context, logger *zap.Logger, model ui.Model) {
	logger.Debug("starting app")
	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		logger.Error("app stopped with error", zap.Error(err))
		return
	}
	logger.Debug("app stopped")
}
