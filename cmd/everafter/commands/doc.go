// Package commands defines the everafter CLI, a terminal booking session
// against an everafter-server.
//
// Commands
//
//   - packages   List the packages the studio offers
//   - sign       Render a stroke recording into a signature PNG
//   - book       Sign and submit a contract without paying
//   - checkout   Sign, pay the retainer and confirm the booking
//
// # Implementation
//
// The root command resolves settings from flags and EVERAFTER_* variables
// and builds one App (HTTP client, session, services, file store) before any
// subcommand runs. Signatures are supplied as JSON stroke recordings and
// replayed onto the session's signature surface.
package commands
