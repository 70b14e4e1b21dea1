package settings

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	pkgerrors "github.com/hashimadil/storefront-backend/pkg/errors"
	redisclient "github.com/hashimadil/storefront-backend/pkg/redis"
)

const storeOpenSetting = "store_open"

// StatusDTO reports whether the storefront currently accepts checkouts.
type StatusDTO struct {
	Open bool `json:"open"`
}

// UpdateStatusRequest toggles the storefront open flag.
type UpdateStatusRequest struct {
	Open *bool `json:"open" validate:"required"`
}

// Service owns runtime storefront settings. The open flag lives in Redis
// so every instance sees an admin toggle immediately; the configured
// default applies until the first write.
type Service interface {
	IsStoreOpen(ctx context.Context) (bool, error)
	SetStoreOpen(ctx context.Context, open bool) (*StatusDTO, error)
}

type settingsKV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	SettingsKey(name string) string
}

type service struct {
	client      settingsKV
	defaultOpen bool
}

// NewService builds the settings service on top of the Redis client.
func NewService(client settingsKV, defaultOpen bool) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	return &service{client: client, defaultOpen: defaultOpen}, nil
}

func (s *service) IsStoreOpen(ctx context.Context) (bool, error) {
	raw, err := s.client.Get(ctx, s.client.SettingsKey(storeOpenSetting))
	if err != nil {
		if errors.Is(err, redisclient.ErrNotFound) {
			return s.defaultOpen, nil
		}
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read store status")
	}

	open, err := strconv.ParseBool(raw)
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "parse store status")
	}
	return open, nil
}

func (s *service) SetStoreOpen(ctx context.Context, open bool) (*StatusDTO, error) {
	if err := s.client.Set(ctx, s.client.SettingsKey(storeOpenSetting), strconv.FormatBool(open), 0); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "write store status")
	}
	return &StatusDTO{Open: open}, nil
}
