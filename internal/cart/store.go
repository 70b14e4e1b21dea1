package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	redisclient "github.com/hashimadil/storefront-backend/pkg/redis"
)

// Store persists per-user carts. Load returns an empty cart when the user
// has none yet.
type Store interface {
	Load(ctx context.Context, userID uuid.UUID) (*Cart, error)
	Save(ctx context.Context, cart *Cart) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

type memoryStore struct {
	mu    sync.RWMutex
	carts map[uuid.UUID]*Cart
}

// NewMemoryStore keeps carts in process memory. Suitable for the sqlite
// demo mode and tests; carts vanish on restart.
func NewMemoryStore() Store {
	return &memoryStore{carts: make(map[uuid.UUID]*Cart)}
}

func (s *memoryStore) Load(ctx context.Context, userID uuid.UUID) (*Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if cart, ok := s.carts[userID]; ok {
		return cart.Clone(), nil
	}
	return NewCart(userID), nil
}

func (s *memoryStore) Save(ctx context.Context, cart *Cart) error {
	if cart == nil {
		return errors.New("cart is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[cart.UserID] = cart.Clone()
	return nil
}

func (s *memoryStore) Clear(ctx context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
	return nil
}

type redisStore struct {
	client *redisclient.Client
	ttl    time.Duration
}

// NewRedisStore persists carts as JSON blobs with a sliding TTL, keeping
// them across server restarts.
func NewRedisStore(client *redisclient.Client, ttl time.Duration) (Store, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if ttl <= 0 {
		return nil, errors.New("cart ttl must be positive")
	}
	return &redisStore{client: client, ttl: ttl}, nil
}

func (s *redisStore) Load(ctx context.Context, userID uuid.UUID) (*Cart, error) {
	raw, err := s.client.Get(ctx, s.client.CartKey(userID.String()))
	if err != nil {
		if errors.Is(err, redisclient.ErrNotFound) {
			return NewCart(userID), nil
		}
		return nil, fmt.Errorf("load cart: %w", err)
	}

	var cart Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	if cart.Lines == nil {
		cart.Lines = []Line{}
	}
	return &cart, nil
}

func (s *redisStore) Save(ctx context.Context, cart *Cart) error {
	if cart == nil {
		return errors.New("cart is required")
	}
	payload, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	return s.client.Set(ctx, s.client.CartKey(cart.UserID.String()), string(payload), s.ttl)
}

func (s *redisStore) Clear(ctx context.Context, userID uuid.UUID) error {
	return s.client.Del(ctx, s.client.CartKey(userID.String()))
}
