package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenAccess  = "access"
	TokenRefresh = "refresh"
)

var ErrInvalidToken = errors.New("invalid token")

type Service struct {
	secret     []byte
	ttl        time.Duration
	refreshTTL time.Duration
}

type Claims struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	Type   string `json:"typ"`
	jwtlib.RegisteredClaims
}

func New(secret string, ttl, refreshTTL time.Duration) *Service {
	return &Service{
		secret:     []byte(secret),
		ttl:        ttl,
		refreshTTL: refreshTTL,
	}
}

func (s *Service) GenerateToken(userID int64, role string) (string, error) {
	return s.sign(userID, role, TokenAccess, s.ttl)
}

func (s *Service) GenerateRefreshToken(userID int64, role string) (string, error) {
	return s.sign(userID, role, TokenRefresh, s.refreshTTL)
}

func (s *Service) sign(userID int64, role, typ string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		Type:   typ,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwtlib.NewNumericDate(now),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken accepts access tokens only.
func (s *Service) ValidateToken(tokenStr string) (*Claims, error) {
	return s.parse(tokenStr, TokenAccess)
}

func (s *Service) ValidateRefreshToken(tokenStr string) (*Claims, error) {
	return s.parse(tokenStr, TokenRefresh)
}

func (s *Service) parse(tokenStr, typ string) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return s.secret, nil
	}, jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Type != typ {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
