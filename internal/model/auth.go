package model

import "github.com/golang-jwt/jwt/v5"

// LoginRequest is the clinician login body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token for the export endpoints.
type LoginResponse struct {
	Token       string `json:"token"`
	ClinicianID string `json:"clinicianId"`
}

// ClinicianClaims are the JWT claims for the history/report surface.
type ClinicianClaims struct {
	ClinicianID string `json:"clinicianId"`
	jwt.RegisteredClaims
}
