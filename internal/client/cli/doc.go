// Package cli provides the interactive NeumoDiagnostics terminal client.
//
// App wires configuration, the credential store, the HTTP client and the
// session controller, then runs a numbered menu until the user exits.
// Anonymous users can register or log in; authenticated users can upload a
// profile picture or log out. Every network call runs through taskx so the
// spinner keeps moving while the request is in flight.
//
// The session is restored on startup only when the previous run ended
// through the "Salir" menu entry.
package cli
