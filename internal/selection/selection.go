// Package selection реализует точку расширения "выбор тарифа".
//
// Handler вызывается ровно один раз с идентификатором выбранного плана и ничего
// не возвращает: внешний биллинг сообщает об успехе или ошибке своими средствами.
// Реализация подключается извне, по умолчанию — запись в лог.
package selection

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/magabrotheeeer/research-portal/internal/lib/sl"
	"github.com/magabrotheeeer/research-portal/internal/rabbitmq"
)

// Handler обработчик выбора тарифа.
type Handler func(planID string)

// Noop ничего не делает.
func Noop(string) {}

// Logger возвращает обработчик, который только пишет выбор в лог.
func Logger(log *slog.Logger) Handler {
	return func(planID string) {
		log.Info("subscription plan selected", slog.String("plan_id", planID))
	}
}

// Chain вызывает обработчики по порядку, каждый один раз.
func Chain(handlers ...Handler) Handler {
	return func(planID string) {
		for _, h := range handlers {
			h(planID)
		}
	}
}

// Counted увеличивает счётчик с меткой плана и передаёт выбор дальше.
func Counted(next Handler, counter *prometheus.CounterVec) Handler {
	return func(planID string) {
		counter.WithLabelValues(planID).Inc()
		next(planID)
	}
}

// Event сообщение о выборе тарифа для внешнего checkout.
type Event struct {
	ID         string    `json:"id"`
	PlanID     string    `json:"plan_id"`
	SelectedAt time.Time `json:"selected_at"`
}

// Publisher публикует Event в RabbitMQ. Ошибки публикации только логируются.
func Publisher(log *slog.Logger, ch rabbitmq.Channel, exchange, routingKey string) Handler {
	const op = "selection.Publisher"
	log = log.With(slog.String("op", op))

	return func(planID string) {
		event := Event{
			ID:         uuid.NewString(),
			PlanID:     planID,
			SelectedAt: time.Now().UTC(),
		}
		if err := rabbitmq.PublishMessage(ch, exchange, routingKey, event); err != nil {
			log.Error("failed to publish plan selection", slog.String("plan_id", planID), sl.Err(err))
			return
		}
		log.Info("plan selection published", slog.String("plan_id", planID), slog.String("event_id", event.ID))
	}
}
