package portal

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
)

// Renderer отрисовывает страницу по имени шаблона.
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

type countedRenderer struct {
	next    Renderer
	counter *prometheus.CounterVec
}

// Counted считает успешные отрисовки по имени страницы.
func Counted(next Renderer, counter *prometheus.CounterVec) Renderer {
	return &countedRenderer{next: next, counter: counter}
}

func (r *countedRenderer) Render(w io.Writer, name string, data any) error {
	if err := r.next.Render(w, name, data); err != nil {
		return err
	}
	r.counter.WithLabelValues(name).Inc()
	return nil
}
