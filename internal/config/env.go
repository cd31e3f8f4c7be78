package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envSnapshot captures the GIT2EDX_* environment variables read at the start
// of resolution. The studio credential trio forms a synthetic studio that is
// kept outside the source merge and consulted only when the merged
// configuration ends up with no studios at all.
type envSnapshot struct {
	ConfigFile      string `env:"GIT2EDX_CONFIG_FILE"`
	DefaultSecret   string `env:"GIT2EDX_DEFAULT_SECRET"`
	CourseDirectory string `env:"GIT2EDX_COURSE_DIR"`
	LogLevel        string `env:"GIT2EDX_LOG_LEVEL"`
	StudioURL       string `env:"GIT2EDX_STUDIO_URL"`
	StudioEmail     string `env:"GIT2EDX_STUDIO_EMAIL"`
	StudioPassword  string `env:"GIT2EDX_STUDIO_PASSWORD"`
}

func readEnv() (*envSnapshot, error) {
	snapshot := &envSnapshot{}
	if err := env.Parse(snapshot); err != nil {
		return nil, fmt.Errorf("read environment configuration: %w", err)
	}
	return snapshot, nil
}

// studio builds the synthetic environment studio. It is always marked
// default: a process configured purely from the environment has exactly one
// studio, and everything syncs there.
func (s *envSnapshot) studio() *Studio {
	return &Studio{
		URL:      s.StudioURL,
		Email:    s.StudioEmail,
		Password: s.StudioPassword,
		Default:  true,
	}
}

// file exposes the merge-eligible settings as a File so the environment can
// participate in the source overlay alongside a discovered YAML document.
func (s *envSnapshot) file() *File {
	return &File{
		DefaultSecret:   s.DefaultSecret,
		CourseDirectory: s.CourseDirectory,
		LogLevel:        s.LogLevel,
	}
}
