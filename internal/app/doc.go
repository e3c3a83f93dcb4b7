// Package app wires application dependencies for both binaries.
//
// LoadServerConfig and LoadClientConfig read configuration through viper
// (defaults, optional file, environment). NewServer builds the HTTP API from
// a ServerConfig; NewApp builds the CLI's per-run booking session and the
// services that act on it.
package app
