package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken          = errors.New("invalid token")
	ErrRevokedToken          = errors.New("token revoked")
	// ErrRevocationUnavailable возвращается из Revoke, если список отзыва не подключен
	ErrRevocationUnavailable = errors.New("token revocation is not configured")
)

// JWTClaims кастомные claims для JWT
type JWTClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService выпускает и проверяет JWT токены
type JWTService struct {
	secret      []byte
	ttl         time.Duration
	revocations *Revocations
}

// NewJWTService создает новый сервис JWT. revocations может быть nil.
func NewJWTService(secret string, ttl time.Duration, revocations *Revocations) *JWTService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTService{
		secret:      []byte(secret),
		ttl:         ttl,
		revocations: revocations,
	}
}

// Generate создает JWT токен
func (j *JWTService) Generate(email, role string) (string, error) {
	now := time.Now()
	claims := JWTClaims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secret)
}

// Validate проверяет и парсит JWT токен
func (j *JWTService) Validate(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return j.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid && claims.Email != "" {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// ExtractEmail возвращает email из действующего, не отозванного токена
func (j *JWTService) ExtractEmail(ctx context.Context, tokenString string) (string, error) {
	claims, err := j.Validate(tokenString)
	if err != nil {
		return "", err
	}
	if j.revocations != nil {
		revoked, err := j.revocations.Contains(ctx, tokenString)
		if err != nil {
			return "", err
		}
		if revoked {
			return "", ErrRevokedToken
		}
	}
	return claims.Email, nil
}

// Revoke отзывает токен до окончания его срока жизни
func (j *JWTService) Revoke(ctx context.Context, tokenString string) error {
	claims, err := j.Validate(tokenString)
	if err != nil {
		return err
	}
	if j.revocations == nil {
		return ErrRevocationUnavailable
	}
	if claims.ExpiresAt == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return j.revocations.Add(ctx, tokenString, ttl)
}
