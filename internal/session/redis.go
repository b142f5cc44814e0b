package session

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/research-portal/internal/models"
)

// KeyPrefix префикс ключей Redis со снимками кабинета.
const KeyPrefix = "dashboard:"

// Cache часть cache.Cache, нужная для чтения снимков.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
}

// Writer часть cache.Cache, нужная для записи снимков.
type Writer interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

// Seed проверяет снимки и записывает их по ключам dashboard:<user>.
// Используется в демо-режиме, когда Redis настроен, а внешней системы сессий нет.
func Seed(ctx context.Context, w Writer, states map[string]models.DashboardState, ttl time.Duration) error {
	const op = "session.Seed"

	validate := validator.New()
	for id, s := range states {
		if err := Validate(validate, s); err != nil {
			return fmt.Errorf("%s: user %q: %w", op, id, err)
		}
	}
	for id, s := range states {
		if err := w.Set(ctx, KeyPrefix+id, s, ttl); err != nil {
			return fmt.Errorf("%s: user %q: %w", op, id, err)
		}
	}
	return nil
}

// Redis читает JSON-снимки по ключу dashboard:<user>.
type Redis struct {
	cache    Cache
	validate *validator.Validate
}

func NewRedis(cache Cache) *Redis {
	return &Redis{
		cache:    cache,
		validate: validator.New(),
	}
}

func (r *Redis) Dashboard(ctx context.Context, userID string) (models.DashboardState, error) {
	const op = "session.Redis.Dashboard"

	var state models.DashboardState
	found, err := r.cache.Get(ctx, KeyPrefix+userID, &state)
	if err != nil {
		return models.DashboardState{}, fmt.Errorf("%s: %w", op, err)
	}
	if !found {
		return models.DashboardState{}, fmt.Errorf("%s: %w: %q", op, ErrNotFound, userID)
	}
	if err := Validate(r.validate, state); err != nil {
		return models.DashboardState{}, fmt.Errorf("%s: invalid snapshot: %w", op, err)
	}
	return state, nil
}
