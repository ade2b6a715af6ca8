package cache

import (
	"context"
	"fmt"
	"time"
)

// Follow-graph views are intentionally not cached: relationship reads must be
// point-in-time against the store.
const (
	UserKeyPrefix        = "user:%d"
	PublicationKeyPrefix = "publication:%d"
)

const (
	UserTTL        = 5 * time.Minute
	PublicationTTL = 30 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func PublicationKey(id uint) string {
	return fmt.Sprintf(PublicationKeyPrefix, id)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidatePublication(ctx context.Context, id uint) {
	Invalidate(ctx, PublicationKey(id))
}
