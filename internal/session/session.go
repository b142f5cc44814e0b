// Package session отдаёт снимки состояния личного кабинета.
//
// Снимки принадлежат внешней системе сессий: этот пакет только читает их
// и проверяет на границе, ничего не создаёт и не изменяет.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/research-portal/internal/models"
)

// ErrNotFound снимок для пользователя отсутствует.
var ErrNotFound = errors.New("dashboard state not found")

// Source источник снимков кабинета.
type Source interface {
	Dashboard(ctx context.Context, userID string) (models.DashboardState, error)
}

// Validate проверяет снимок: обязательные поля, уровень подписки
// и наличие даты окончания у платных уровней.
func Validate(validate *validator.Validate, state models.DashboardState) error {
	if err := validate.Struct(state); err != nil {
		return err
	}
	if state.Tier != models.TierNone && state.SubscriptionEndDate == "" {
		return fmt.Errorf("tier %s requires subscription end date", state.Tier)
	}
	return nil
}

// Static источник со снимками в памяти, например демонстрационными.
type Static struct {
	states map[string]models.DashboardState
}

// NewStatic проверяет снимки и собирает из них источник.
func NewStatic(states map[string]models.DashboardState) (*Static, error) {
	const op = "session.NewStatic"

	validate := validator.New()
	copied := make(map[string]models.DashboardState, len(states))
	for id, s := range states {
		if err := Validate(validate, s); err != nil {
			return nil, fmt.Errorf("%s: user %q: %w", op, id, err)
		}
		copied[id] = s
	}
	return &Static{states: copied}, nil
}

func (s *Static) Dashboard(_ context.Context, userID string) (models.DashboardState, error) {
	state, ok := s.states[userID]
	if !ok {
		return models.DashboardState{}, fmt.Errorf("session.Static.Dashboard: %w: %q", ErrNotFound, userID)
	}
	return state, nil
}
