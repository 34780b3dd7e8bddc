package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// DedupChecker provides idempotency checks for request submissions backed
// by Redis. Key format: reqdedup:<user_id>:<sha256(type|description)>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether the same user already submitted an identical
// request within the dedup window.
func (d *DedupChecker) IsDuplicate(ctx context.Context, userID, reqType, description string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(userID, reqType, description)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records the submission (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, userID, reqType, description string) error {
	return d.client.Set(ctx, d.key(userID, reqType, description), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(userID, reqType, description string) string {
	sum := sha256.Sum256([]byte(reqType + "|" + description))
	return fmt.Sprintf("reqdedup:%s:%s", userID, hex.EncodeToString(sum[:8]))
}
