package stubserver

import (
	"time"

	"storefront/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// tokenService mints and verifies the bearer tokens the stub hands
// out. The client treats them as opaque; only the stub inspects them.
type tokenService struct {
	secret []byte
	ttl    time.Duration
}

func newTokenService(cfg config.StubConfig) *tokenService {
	secret := cfg.JWTSecret
	if secret == "" {
		secret = "storefront-stub-secret"
	}

	return &tokenService{secret: []byte(secret), ttl: cfg.TokenTTL}
}

// mint creates a signed access token for a user.
func (s *tokenService) mint(userID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(s.ttl).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return token, nil
}

// verify parses a token and returns the user id it was minted for.
func (s *tokenService) verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("unexpected token claims")
	}

	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return "", errors.New("user id missing from token")
	}

	return userID, nil
}
