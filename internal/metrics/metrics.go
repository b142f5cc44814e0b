// Package metrics объявляет Prometheus-метрики витрины.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics набор счётчиков приложения.
type Metrics struct {
	PageRenders    *prometheus.CounterVec
	PlanSelections *prometheus.CounterVec
}

// New создаёт счётчики и регистрирует их в reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		PageRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_page_renders_total",
			Help: "Number of rendered pages by page name",
		}, []string{"page"}),
		PlanSelections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_plan_selections_total",
			Help: "Number of plan selections by plan id",
		}, []string{"plan_id"}),
	}
	reg.MustRegister(m.PageRenders, m.PlanSelections)
	return m
}
