// Package app contains the core application logic for catalogctl. It
// defines the main App struct, its configuration, and the primary execution
// lifecycle, decoupled from any specific entrypoint like a CLI.
package app
