package authentication

import (
	"context"
	"time"

	"github.com/tunde1256/flashcard/src/core/database"
)

// Revoked tokens live in Redis keyed by the token's jti claim, with a
// TTL matching the token's remaining validity. Nothing is held in
// process memory, so revocation survives restarts and is shared across
// instances.
const revokedTokenPrefix = "revoked-token:"

// RevokeToken marks a token id as revoked until it would have expired
// anyway. A non-positive TTL means the token is already dead.
func RevokeToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return database.RedisClient.Set(ctx, revokedTokenPrefix+jti, "1", ttl).Err()
}

// IsTokenRevoked reports whether the token id is in the revoked set.
func IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := database.RedisClient.Exists(ctx, revokedTokenPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
