// Package config resolves the git2edx runtime configuration from the process
// environment and an optional YAML file, with YAML values taking precedence
// over environment-derived defaults. The resolved Config is validated before
// it is returned: every studio entry must carry credentials, and either at
// least one studio is marked default or every course entry names its own
// studio.
package config
