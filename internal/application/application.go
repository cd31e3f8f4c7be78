package application

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"git2edx/internal/config"
	"git2edx/internal/settings"
)

// App bundles the resolved configuration, the process logger, and the
// settings holder handed to downstream consumers.
type App struct {
	cfg    *config.Config
	holder *settings.Holder
	logger *zap.Logger
}

// New seals the configuration into a fresh settings holder.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	holder := settings.NewHolder()
	if err := holder.Seal(cfg); err != nil {
		return nil, fmt.Errorf("seal settings: %w", err)
	}

	return &App{
		cfg:    cfg,
		holder: holder,
		logger: logger,
	}, nil
}

// Settings returns the holder consumers read the configuration from.
func (a *App) Settings() *settings.Holder {
	return a.holder
}

// Logger returns the process logger.
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// LogStartupSummary reports what resolution produced, without credentials.
func (a *App) LogStartupSummary() {
	names := make([]string, 0, len(a.cfg.Studios))
	for name := range a.cfg.Studios {
		names = append(names, name)
	}
	sort.Strings(names)

	a.logger.Info("configuration resolved",
		zap.String("config_file", a.cfg.ConfigFile),
		zap.String("course_directory", a.cfg.CourseDirectory),
		zap.Strings("studios", names),
		zap.Strings("default_studios", a.cfg.DefaultStudios),
		zap.Bool("courses_configured", a.cfg.HasCourses()),
	)

	if len(a.cfg.DefaultStudios) == 0 {
		a.logger.Warn("no studio is marked default; every hooked course repository needs its own configuration entry")
	}
}
