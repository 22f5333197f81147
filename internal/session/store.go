package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"resortfront/internal/metrics"
	"resortfront/internal/upstream"
	"resortfront/internal/utils/crypto"
	"resortfront/internal/utils/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// Store is the single shared application state container: it owns every
// live session. Views receive it injected top-down; nothing else holds
// cross-view mutable state.
type Store struct {
	rdb      *redis.Client
	upstream *upstream.Client
	ttl      time.Duration
	log      *logger.Logger
}

func NewStore(rdb *redis.Client, up *upstream.Client, ttl time.Duration) *Store {
	return &Store{
		rdb:      rdb,
		upstream: up,
		ttl:      ttl,
		log:      logger.New("session_store"),
	}
}

// record is the redis representation. The upstream bearer token is
// sealed before it touches the wire.
type record struct {
	Identity    Identity            `json:"identity"`
	Menus       []upstream.MenuEntry `json:"menus"`
	SealedToken string              `json:"sealed_token"`
	CreatedAt   time.Time           `json:"created_at"`
}

// Authenticate logs in against the booking API and, on success, creates
// a persisted session. The returned menus come from the server verbatim;
// the portal does not second-guess them against the role.
func (s *Store) Authenticate(ctx context.Context, email, password string) (*Session, error) {
	res, err := s.upstream.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, upstream.ErrInvalidCredentials) {
			metrics.IncLogin("rejected")
			return nil, err
		}
		metrics.IncLogin("error")
		return nil, s.log.Error("login call failed", err)
	}

	role, err := ParseRole(res.User.Role)
	if err != nil {
		metrics.IncLogin("error")
		return nil, s.log.Error("login returned unusable role", err)
	}

	sealed, err := crypto.Seal(res.Token)
	if err != nil {
		metrics.IncLogin("error")
		return nil, s.log.Error("failed to seal upstream token", err)
	}

	sess := &Session{
		ID: uuid.New().String(),
		Identity: Identity{
			ID:    res.User.ID,
			Email: res.User.Email,
			Role:  role,
		},
		Menus:     res.Menus,
		Token:     res.Token,
		CreatedAt: time.Now(),
	}

	data, err := json.Marshal(record{
		Identity:    sess.Identity,
		Menus:       sess.Menus,
		SealedToken: sealed,
		CreatedAt:   sess.CreatedAt,
	})
	if err != nil {
		metrics.IncLogin("error")
		return nil, err
	}

	if err := s.rdb.Set(ctx, keyPrefix+sess.ID, data, s.ttl).Err(); err != nil {
		metrics.IncLogin("error")
		return nil, s.log.Error("failed to persist session", err)
	}

	metrics.IncLogin("ok")
	s.log.Info("session created for %s (%s)", sess.Identity.Email, sess.Identity.Role)
	return sess, nil
}

// Get resolves a session id. Expired or deleted sessions come back as
// ErrNoSession, which guards translate into a login redirect.
func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, ErrNoSession
	}

	data, err := s.rdb.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}

	token, err := crypto.Open(rec.SealedToken)
	if err != nil {
		// A session whose token cannot be unsealed is unusable. Drop it.
		_ = s.rdb.Del(ctx, keyPrefix+id).Err()
		return nil, ErrNoSession
	}

	return &Session{
		ID:        id,
		Identity:  rec.Identity,
		Menus:     rec.Menus,
		Token:     token,
		CreatedAt: rec.CreatedAt,
	}, nil
}

// End destroys a session unconditionally. Ending a session that is
// already gone is a success, so logout is idempotent.
func (s *Store) End(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := s.rdb.Del(ctx, keyPrefix+id).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}
