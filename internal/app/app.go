package app

import (
	"handup/internal/apiclient"
	"handup/internal/session"
)

// App bundles the client and session manager for the CLI.
type App struct {
	API     *apiclient.Client
	Session *session.Manager
}

// New constructs the dependency graph from cfg.
func New(cfg Config) *App {
	api := apiclient.New(cfg.APIBaseURL, cfg.HTTP)
	return &App{
		API:     api,
		Session: session.New(api),
	}
}
