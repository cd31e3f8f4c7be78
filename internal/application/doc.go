// Package application wires the startup sequence together: it seals the
// resolved configuration into the settings holder and exposes the pieces the
// rest of the process consumes, keeping the main package focused on CLI
// parsing and orchestration.
package application
