package config

import (
	"fmt"
	"sort"

	"dario.cat/mergo"
)

// DefaultStudioURL is assumed when a studio entry carries no URL of its own.
const DefaultStudioURL = "https://studio.edx.org"

// EnvironStudioName is the reserved studio name under which credentials from
// the GIT2EDX_STUDIO_* environment variables are registered when the
// configuration provides no studios of its own.
const EnvironStudioName = "ENVIRON_VARS"

// Studio describes one Studio account courses are uploaded to.
type Studio struct {
	URL      string `yaml:"url"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Default  bool   `yaml:"default"`
}

// File is the shape of the YAML configuration document. Courses is opaque at
// this layer: entries are interpreted by the sync machinery, resolution only
// cares whether any exist.
type File struct {
	DefaultSecret   string             `yaml:"default_secret"`
	CourseDirectory string             `yaml:"course_directory"`
	LogLevel        string             `yaml:"log_level"`
	Studios         map[string]*Studio `yaml:"studios"`
	Courses         any                `yaml:"courses"`
}

// Config is the finalized, validated process configuration.
type Config struct {
	ConfigFile      string
	DefaultSecret   string
	CourseDirectory string
	LogLevel        string
	Studios         map[string]*Studio
	Courses         any
	DefaultStudios  []string
}

// HasCourses reports whether any course entries are configured. Empty and
// absent are equivalent.
func (c *Config) HasCourses() bool {
	return hasEntries(c.Courses)
}

// Overrides carries command-line values that beat their environment
// counterparts.
type Overrides struct {
	ConfigFile string
}

// Load resolves configuration from the environment and, when one is found, a
// discovered YAML file. Discovery precedence: the override path, the
// GIT2EDX_CONFIG_FILE path, ./git2edx.env.yml, ~/.git2edx.env.yml,
// /etc/git2edx.env.yml. The first file that opens and parses wins.
func Load(overrides *Overrides) (*Config, error) {
	snapshot, err := readEnv()
	if err != nil {
		return nil, err
	}

	explicit := snapshot.ConfigFile
	if overrides != nil && overrides.ConfigFile != "" {
		explicit = overrides.ConfigFile
	}

	doc, err := discover(explicit)
	if err != nil {
		return nil, err
	}

	cfg, err := resolve(snapshot, doc)
	if err != nil {
		return nil, err
	}
	cfg.ConfigFile = explicit
	return cfg, nil
}

// LoadParsed resolves configuration from an already-parsed document,
// skipping file discovery entirely.
func LoadParsed(doc *File) (*Config, error) {
	snapshot, err := readEnv()
	if err != nil {
		return nil, err
	}
	return resolve(snapshot, doc)
}

// resolve overlays the YAML document onto the environment-derived defaults
// and validates the result. Sources are merged first-wins, so any key the
// document sets shadows its environment counterpart.
func resolve(snapshot *envSnapshot, doc *File) (*Config, error) {
	merged := &File{}
	for _, src := range []*File{doc, snapshot.file()} {
		if src == nil {
			continue
		}
		if err := mergo.Merge(merged, src); err != nil {
			return nil, fmt.Errorf("merge configuration sources: %w", err)
		}
	}

	cfg := &Config{
		ConfigFile:      snapshot.ConfigFile,
		DefaultSecret:   merged.DefaultSecret,
		CourseDirectory: merged.CourseDirectory,
		LogLevel:        merged.LogLevel,
		Studios:         merged.Studios,
		Courses:         merged.Courses,
		DefaultStudios:  []string{},
	}

	// No studios anywhere in the merged sources: fall back to the synthetic
	// environment studio, provided its credentials are complete.
	if len(cfg.Studios) == 0 {
		envStudio := snapshot.studio()
		if envStudio.Email == "" || envStudio.Password == "" {
			return nil, newError(ErrNoStudioConfigured)
		}
		cfg.Studios = map[string]*Studio{EnvironStudioName: envStudio}
	}

	// Sorted iteration keeps DefaultStudios deterministic across runs.
	for _, name := range sortedNames(cfg.Studios) {
		studio := cfg.Studios[name]
		if studio == nil {
			studio = &Studio{}
			cfg.Studios[name] = studio
		}

		if studio.Email == "" || studio.Password == "" {
			missing := "email"
			if studio.Email != "" {
				missing = "password"
			}
			return nil, incompleteStudio(name, missing)
		}

		if studio.URL == "" {
			studio.URL = DefaultStudioURL
		}
		if studio.Default {
			cfg.DefaultStudios = append(cfg.DefaultStudios, name)
		}
	}

	// Without a default studio every hooked course repository must carry its
	// own configuration entry, so course entries have to exist.
	if len(cfg.DefaultStudios) == 0 && !cfg.HasCourses() {
		return nil, newError(ErrNoDefaultStudio)
	}

	return cfg, nil
}

func sortedNames(studios map[string]*Studio) []string {
	names := make([]string, 0, len(studios))
	for name := range studios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// hasEntries reports whether an opaque YAML value holds anything. The
// decoder produces maps or sequences for the courses key; any other non-nil
// scalar counts as present.
func hasEntries(v any) bool {
	switch entries := v.(type) {
	case nil:
		return false
	case map[string]any:
		return len(entries) > 0
	case []any:
		return len(entries) > 0
	default:
		return true
	}
}
