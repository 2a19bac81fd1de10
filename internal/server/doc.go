// Package server is a conforming in-memory implementation of the marketplace
// REST API. It backs the handupd dev server and the round-trip tests for the
// client; it is not a production service (nothing persists across restarts).
package server
