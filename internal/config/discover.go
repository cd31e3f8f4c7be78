package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "git2edx.env.yml"

// candidatePaths lists the configuration file locations in precedence order:
// the explicit path when one was supplied, then the working directory, the
// home directory (dot-prefixed), and finally /etc.
func candidatePaths(explicit string) []string {
	paths := make([]string, 0, 4)
	if explicit != "" {
		paths = append(paths, explicit)
	}
	if wd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(wd, configFileName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, "."+configFileName))
	}
	return append(paths, filepath.Join("/etc", configFileName))
}

// discover walks the candidate paths and returns the first document that
// opens and parses, or nil when no candidate exists on disk. A candidate
// missing from the filesystem is skipped silently; any other read failure,
// and any parse failure, aborts resolution. That asymmetry is deliberate: a
// present-but-broken file must halt startup, never be stepped over.
func discover(explicit string) (*File, error) {
	for _, loc := range candidatePaths(explicit) {
		doc, err := parseFile(loc)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return doc, nil
	}
	return nil, nil
}

func parseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc File
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
