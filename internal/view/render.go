// Package view строит данные страниц витрины и отрисовывает их HTML-шаблонами.
//
// Построение страниц (NewDashboard, NewHero, NewSubscriptionPage) — чистые функции
// от входных снимков: без ввода-вывода и без изменяемого состояния.
package view

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
)

// Имена шаблонов страниц.
const (
	PageHome         = "home"
	PageDashboard    = "dashboard"
	PageSubscription = "subscription"
	PageNotFound     = "not_found"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer отрисовывает страницы из встроенных шаблонов.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer разбирает встроенные шаблоны.
func NewRenderer() (*Renderer, error) {
	const op = "view.NewRenderer"

	tmpl, err := template.New("pages").Funcs(template.FuncMap{
		"dict": dict,
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render отрисовывает страницу name в w. Страница сначала собирается в буфер,
// поэтому при ошибке в w ничего не пишется.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	const op = "view.Render"

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("%s: %s: %w", op, name, err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, errors.New("dict: odd number of arguments")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}
