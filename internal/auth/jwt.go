package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lumen-crm/assistant-api/internal/config"
)

// Claims is the expected shape of tokens issued by the frontend gateway
type Claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTValidator validates HS256 bearer tokens
type JWTValidator struct {
	signingKey []byte
	issuer     string
}

// NewJWTValidator creates a validator from auth configuration
func NewJWTValidator(cfg *config.AuthConfig) *JWTValidator {
	return &JWTValidator{
		signingKey: []byte(cfg.JWTSigningKey),
		issuer:     cfg.Issuer,
	}
}

// ValidateToken parses and verifies a bearer token, returning the caller identity
func (v *JWTValidator) ValidateToken(tokenString string) (*UserContext, error) {
	if len(v.signingKey) == 0 {
		return nil, fmt.Errorf("jwt signing key not configured")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.signingKey, nil
	}, jwt.WithIssuer(v.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("token missing subject claim")
	}

	displayName := claims.Name
	if displayName == "" {
		displayName = claims.Email
	}

	return &UserContext{
		UserID:      claims.Subject,
		DisplayName: displayName,
		Email:       claims.Email,
	}, nil
}
