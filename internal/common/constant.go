// Package common contains constants and small helpers shared by the
// NeumoDiagnostics client packages.
package common

// AppName is used in the User-Agent header and in log attributes.
const AppName = "neumodiag-cli"

// AuthorizationHeaderName carries the bearer token on outbound requests.
const AuthorizationHeaderName = "Authorization"

// RequestIDHeaderName carries a per-request correlation ID.
const RequestIDHeaderName = "X-Request-ID"
