package application

import (
	"testing"

	"go.uber.org/zap/zaptest"

	"git2edx/internal/config"
)

func newConfig() *config.Config {
	return &config.Config{
		CourseDirectory: "/srv/courses",
		Studios: map[string]*config.Studio{
			"alpha": {URL: config.DefaultStudioURL, Email: "a@b.com", Password: "pw", Default: true},
		},
		DefaultStudios: []string{"alpha"},
	}
}

func TestNewSealsSettings(t *testing.T) {
	t.Parallel()

	cfg := newConfig()
	app, err := New(cfg, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := app.Settings().Config()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != cfg {
		t.Fatalf("expected the resolved configuration in the holder, got %+v", got)
	}
}

func TestLogStartupSummary(t *testing.T) {
	t.Parallel()

	app, err := New(newConfig(), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	app.LogStartupSummary()

	// No default studios triggers the warning path.
	cfg := newConfig()
	cfg.Studios["alpha"].Default = false
	cfg.DefaultStudios = []string{}
	cfg.Courses = []any{"course-v1:edX+DemoX+2026"}

	app, err = New(cfg, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	app.LogStartupSummary()
}
