package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer is set on every token we sign.
const Issuer = "memberqa-backend"

// ErrMissingSubject is returned for a token that carries no subject.
var ErrMissingSubject = errors.New("token has no subject")

// --- JWT Claims ---

// CustomClaims are the claims carried by API access tokens. The subject names
// the API client.
type CustomClaims struct {
	jwt.RegisteredClaims
}

// NewAccessToken generates a new HS256 access token for subject.
func NewAccessToken(subject, jwtSecret string, expiration time.Duration) (string, error) {
	now := time.Now()
	claims := CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    Issuer,
			Subject:   subject,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(jwtSecret))
	if err != nil {
		return "", fmt.Errorf("signing access token for %s: %w", subject, err)
	}
	return signedToken, nil
}

// ParseAccessToken validates tokenString against jwtSecret and returns its claims.
// Errors wrap the jwt package's sentinel errors (jwt.ErrTokenExpired,
// jwt.ErrTokenMalformed, ...) so callers can tell them apart.
func ParseAccessToken(tokenString, jwtSecret string) (*CustomClaims, error) {
	claims := &CustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(jwtSecret), nil
	}, jwt.WithIssuer(Issuer))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}
	return claims, nil
}
