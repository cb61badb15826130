// Package cli implements the interactive terminal client for medtrack:
// a small REPL that drives the authentication, medication and
// notification services.
package cli
