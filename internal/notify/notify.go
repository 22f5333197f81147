package notify

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"resortfront/internal/utils/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Notification is one ephemeral status message for one session.
type Notification struct {
	ID       string    `json:"id"`
	Message  string    `json:"message"`
	Severity Severity  `json:"severity"`
	Created  time.Time `json:"created"`
}

const keyPrefix = "notify:"

// Center queues notifications per session. Every notification lives in
// its own redis key with its own TTL, so each one auto-dismisses on an
// independent timer; there is no coalescing.
type Center struct {
	rdb *redis.Client
	ttl time.Duration
	log *logger.Logger
}

func NewCenter(rdb *redis.Client, ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = 3 * time.Second
	}
	return &Center{
		rdb: rdb,
		ttl: ttl,
		log: logger.New("notify"),
	}
}

// Push queues a notification. Failures are logged and swallowed: a lost
// status message must never fail the action it reports on.
func (c *Center) Push(ctx context.Context, sessionID, message string, severity Severity) {
	n := Notification{
		ID:       uuid.New().String(),
		Message:  message,
		Severity: severity,
		Created:  time.Now(),
	}

	data, err := json.Marshal(n)
	if err != nil {
		_ = c.log.Error("failed to encode notification", err)
		return
	}

	if err := c.rdb.Set(ctx, keyPrefix+sessionID+":"+n.ID, data, c.ttl).Err(); err != nil {
		_ = c.log.Error("failed to queue notification", err)
	}
}

// Active lists the notifications that have neither expired nor been
// dismissed, oldest first.
func (c *Center) Active(ctx context.Context, sessionID string) ([]Notification, error) {
	var out []Notification

	iter := c.rdb.Scan(ctx, 0, keyPrefix+sessionID+":*", 100).Iterator()
	for iter.Next(ctx) {
		data, err := c.rdb.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			continue // expired between scan and read
		}
		var n Notification
		if err := json.Unmarshal(data, &n); err != nil {
			continue
		}
		out = append(out, n)
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Created.Before(out[j].Created) })
	return out, nil
}

// Dismiss removes one notification before its timer fires. Dismissing an
// already-expired notification is a no-op.
func (c *Center) Dismiss(ctx context.Context, sessionID, id string) error {
	return c.rdb.Del(ctx, keyPrefix+sessionID+":"+id).Err()
}
