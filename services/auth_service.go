package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"foodmenu_server/lib"
	"foodmenu_server/structs"
	"net/http"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
)

const (
	AuthModeRemote   = "remote"
	AuthModeJWT      = "jwt"
	AuthModeDisabled = "disabled"
)

// AuthService decides whether an Authorization header grants access to the API.
// Users live elsewhere: the token is either checked by the external auth service or verified locally as a JWT.
type AuthService struct {
	logger     *gecho.Logger
	cfg        *structs.Config
	httpClient *http.Client
}

func NewAuthService(logger *gecho.Logger, cfg *structs.Config) *AuthService {
	timeout := cfg.Auth.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}

	return &AuthService{
		logger:     logger,
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ValidateToken returns nil when the header value is accepted
func (as *AuthService) ValidateToken(ctx context.Context, authorization string) error {
	switch as.cfg.Auth.Mode {
	case AuthModeDisabled:
		return nil
	case AuthModeJWT:
		return as.validateJWT(authorization)
	default:
		return as.validateRemote(ctx, authorization)
	}
}

func (as *AuthService) validateJWT(authorization string) error {
	token := lib.StripBearer(authorization)
	if token == "" {
		return lib.ErrMissingToken
	}

	claims, err := lib.ParseToken(token, as.cfg.Auth.JWTSecret)
	if err != nil {
		as.logger.Debug("Rejected JWT", gecho.Field("error", err))
		return err
	}

	as.logger.Debug("JWT accepted", gecho.Field("sub", claims.Sub))
	return nil
}

// validateRemote posts the header value unchanged to the auth service
func (as *AuthService) validateRemote(ctx context.Context, authorization string) error {
	if strings.TrimSpace(authorization) == "" {
		return lib.ErrMissingToken
	}
	if as.cfg.Auth.ValidationURL == "" {
		as.logger.Error("AUTH_API is not configured, rejecting request")
		return lib.ErrInvalidToken
	}

	payload, err := json.Marshal(structs.TokenValidationRequest{Token: authorization})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, as.cfg.Auth.ValidationURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build token validation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := as.httpClient.Do(req)
	if err != nil {
		as.logger.Warn("Token validation request failed", gecho.Field("error", err))
		return fmt.Errorf("%w: %v", lib.ErrInvalidToken, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: auth service answered %d", lib.ErrInvalidToken, resp.StatusCode)
	}

	var result structs.TokenValidationResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("%w: unreadable auth response: %v", lib.ErrInvalidToken, err)
	}
	if !result.Accepted() {
		return lib.ErrInvalidToken
	}

	return nil
}
