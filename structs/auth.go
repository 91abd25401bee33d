package structs

import (
	"time"
)

// TokenValidationRequest is posted to the external auth service.
type TokenValidationRequest struct {
	Token string `json:"token"`
}

// TokenValidationResponse accepts both flags the auth service has used over time.
// valid takes precedence; success is only read when valid is absent.
type TokenValidationResponse struct {
	Valid   *bool `json:"valid"`
	Success bool  `json:"success"`
}

func (r TokenValidationResponse) Accepted() bool {
	if r.Valid != nil {
		return *r.Valid
	}
	return r.Success
}

type AuthClaims struct {
	Sub string    `json:"sub"`
	Exp time.Time `json:"exp"`
}
