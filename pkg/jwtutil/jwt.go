package jwtutil

import (
	"time"

	"github.com/baladi39/hippo-portal/pkg/config"

	"github.com/golang-jwt/jwt/v4"
)

var (
	secret     = []byte("hippoportalsecretkey")
	expiration = 24 * time.Hour
)

// Initialize configures the signing key and token lifetime from configuration
func Initialize(cfg *config.JWTConfig) {
	secret = []byte(cfg.SigningKey)
	expiration = cfg.ExpirationTime
}

// UserClaims represents the JWT claims for user authentication
type UserClaims struct {
	Email  string `json:"email"`
	UserID uint   `json:"user_id"`
	Role   string `json:"role,omitempty"` // User's role in the portal
	jwt.RegisteredClaims
}

// GenerateToken creates a JWT token with user information
func GenerateToken(email string, userID uint, role string) (string, error) {
	claims := UserClaims{
		Email:  email,
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken validates and parses a token issued by GenerateToken. No
// route enforces tokens yet; this is the verification half of the login stub
// for when one does.
func ValidateToken(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}
