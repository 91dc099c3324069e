// Package commands defines the jsonvault CLI.
//
// Commands
//
//   - get      Print the value at a path
//   - set      Write a value at a path
//   - delete   Remove a key from the mapping at a path
//   - append   Append a value to the array at a path
//   - index    Print one element of the array at a path
//   - dump     Print the whole document as JSON or YAML
//
// Paths are given as separate arguments, one per segment: `jsonvault get
// user profile name` reads user.profile.name.
//
// # Implementation
//
// The root command opens the document (decrypting it when --encrypt is set)
// before any subcommand runs, and closes it once the command finishes, so
// every invocation is one load and at most one save.
package commands
