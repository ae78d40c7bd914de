// Package models defines the request and response shapes exchanged with the
// NeumoDiagnostics authentication service.
package models

import "encoding/json"

// Role is the account type chosen at registration. The service expects it
// in lowercase.
type Role string

const (
	RoleDoctor  Role = "doctor"
	RolePatient Role = "paciente"
)

// RegisterRequest is the body of POST /register. Field names follow the
// service's payload.
type RegisterRequest struct {
	FullName       string `json:"nombre_completo"`
	Age            int    `json:"edad"`
	Role           Role   `json:"rol"`
	Identification string `json:"identificacion"`
	Email          string `json:"correo"`
	Password       string `json:"contrasena"`
	AcceptsDataUse bool   `json:"acepta_tratamiento_datos"`
}

// AuthRequest is the body of POST /auth.
type AuthRequest struct {
	Email    string `json:"correo"`
	Password string `json:"contrasena"`
}

// AuthResponse is the success body of POST /auth. UserID is kept raw
// because the service may send it as a number or a string.
type AuthResponse struct {
	Name   string          `json:"nombre"`
	Token  string          `json:"token"`
	Role   Role            `json:"rol"`
	UserID json.RawMessage `json:"user_id"`
	Email  string          `json:"correo"`
}
