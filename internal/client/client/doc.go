// Package client talks to the NeumoDiagnostics authentication service.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     Register, Login and Upload.
//  2. A concrete HTTP+JSON implementation (see HTTPClient) that sets the
//     bearer token when one is given and maps non-2xx responses to typed
//     errors.
//
// Every call is exactly one network attempt. There is no retry, no backoff
// and no client-side timeout; callers that need a deadline put it on the
// context.
//
// # Error Handling
//
// Failures fall into five groups that callers can match with errors.Is:
//
//   - ErrTransport: no response was obtained (connection, send, read).
//   - *RemoteError / ErrRemote: the service answered with a non-2xx status.
//     The error also matches a status sentinel such as ErrUnauthorized.
//   - ErrDecode: a 2xx response whose body is not the expected shape.
//   - ErrIO: a local file could not be opened or read.
//   - ErrRequest: the request itself could not be built.
//
// Concurrency
//
// HTTPClient holds a shared *http.Client and no per-call state, so a single
// value can be used from several goroutines.
package client
