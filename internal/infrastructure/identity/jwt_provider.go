package identity

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"forgekit/internal/domain/auth"
)

// accessTokenClaims is the JWT payload: the user ID travels in the subject
// claim, the username in a private claim.
type accessTokenClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type jwtProvider struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTProvider creates a TokenProvider that signs HS256 access tokens with
// the given secret and lifetime.
func NewJWTProvider(secret string, ttl time.Duration) auth.TokenProvider {
	return &jwtProvider{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (p *jwtProvider) Issue(claims *auth.TokenClaims) (string, time.Time, error) {
	if err := claims.Validate(); err != nil {
		return "", time.Time{}, fmt.Errorf("invalid claims: %w", err)
	}

	now := time.Now()
	expiresAt := now.Add(p.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, accessTokenClaims{
		Username: claims.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiresAt, nil
}

func (p *jwtProvider) Parse(tokenString string) (*auth.TokenClaims, error) {
	var claims accessTokenClaims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, auth.ErrInvalidToken
	}

	return &auth.TokenClaims{
		UserID:   claims.Subject,
		Username: claims.Username,
	}, nil
}
