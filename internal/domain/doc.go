// Package domain defines core data models and contracts shared across the app.
// It contains plain types (wire/state) and interfaces only.
package domain
