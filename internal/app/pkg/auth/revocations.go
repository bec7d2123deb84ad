package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "revoked:"

// Revocations хранит отозванные токены в Redis
type Revocations struct {
	client *redis.Client
}

// NewRedisClient подключается к Redis и проверяет соединение
func NewRedisClient(host string, port int, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return client, nil
}

func NewRevocations(client *redis.Client) *Revocations {
	return &Revocations{client: client}
}

// Add помечает токен отозванным на время ttl
func (r *Revocations) Add(ctx context.Context, token string, ttl time.Duration) error {
	return r.client.Set(ctx, revokedKey(token), "1", ttl).Err()
}

// Contains проверяет, отозван ли токен
func (r *Revocations) Contains(ctx context.Context, token string) (bool, error) {
	_, err := r.client.Get(ctx, revokedKey(token)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func revokedKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return revokedKeyPrefix + hex.EncodeToString(sum[:])
}
