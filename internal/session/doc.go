// Package session owns the authenticated session: the current user snapshot,
// the bearer token, and the login/register/logout/refresh lifecycle.
//
// A Manager moves between three states: Anonymous (no user), Authenticating
// (a login or register is in flight), and Authenticated. State mutations are
// guarded by a generation counter: any operation that resolves after a newer
// session mutation has begun is discarded rather than applied, so a slow
// login response can never resurrect a session that was logged out meanwhile.
package session
