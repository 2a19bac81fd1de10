// Package app wires application dependencies for the CLI.
//
// It reads Config from the environment and builds the API client and session
// manager, exposing them via the App struct for commands to use.
package app
