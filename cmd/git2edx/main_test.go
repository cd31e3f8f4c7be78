package main

import (
	"os"
	"path/filepath"
	"testing"
)

func isolate(t *testing.T) {
	t.Helper()

	for _, name := range []string{
		"GIT2EDX_CONFIG_FILE",
		"GIT2EDX_DEFAULT_SECRET",
		"GIT2EDX_COURSE_DIR",
		"GIT2EDX_LOG_LEVEL",
		"GIT2EDX_STUDIO_URL",
		"GIT2EDX_STUDIO_EMAIL",
		"GIT2EDX_STUDIO_PASSWORD",
	} {
		t.Setenv(name, "")
	}
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

func TestRunCheckWithEnvironmentStudio(t *testing.T) {
	isolate(t)
	t.Setenv("GIT2EDX_STUDIO_EMAIL", "a@b.com")
	t.Setenv("GIT2EDX_STUDIO_PASSWORD", "secret")

	if code := run([]string{"--check"}); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
}

func TestRunFailsWithoutConfiguration(t *testing.T) {
	isolate(t)

	if code := run([]string{"--check"}); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}

func TestRunConfigFlag(t *testing.T) {
	isolate(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "git2edx.env.yml")
	content := "studios:\n  demo:\n    email: d@b.com\n    password: pw\n    default: true\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	if code := run([]string{"--check", "--config", path}); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
}

func TestRunRejectsUnknownFlag(t *testing.T) {
	isolate(t)

	if code := run([]string{"--bogus"}); code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
}

func TestRunRejectsUnknownLogLevel(t *testing.T) {
	isolate(t)
	t.Setenv("GIT2EDX_STUDIO_EMAIL", "a@b.com")
	t.Setenv("GIT2EDX_STUDIO_PASSWORD", "secret")

	if code := run([]string{"--check", "--log-level", "loud"}); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}
