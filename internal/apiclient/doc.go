// Package apiclient implements the typed HTTP client for the marketplace
// REST API. It translates domain operations into JSON requests against a
// configured base URL and decodes typed responses; failures are always
// surfaced as *Error values tagged with a machine-readable kind.
package apiclient
