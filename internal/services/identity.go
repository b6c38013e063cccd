package services

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/tmorris/bizlink-admin/internal/models"
)

type accessClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// identityFromToken extracts display attributes from the access token's
// claims without verifying the signature. The server remains the authority
// on the token's validity; this is only used to label the prompt when a
// session is restored from disk.
func identityFromToken(token string) (*models.Identity, error) {
	claims := &accessClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return &models.Identity{
		UserID: claims.Subject,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
