package selectplan

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/research-portal/internal/catalog"
)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func postForm(form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/plans/select", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestSelectPlanHandler(t *testing.T) {
	tests := []struct {
		name         string
		form         url.Values
		wantStatus   int
		wantLocation string
		wantSelected []string
	}{
		{
			name:         "выбор месячного плана",
			form:         url.Values{"plan_id": {"premium"}, "billing": {"monthly"}},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/subscription?billing=monthly",
			wantSelected: []string{"premium"},
		},
		{
			name:         "выбор годового плана",
			form:         url.Values{"plan_id": {"basic-annual"}, "billing": {"annual"}},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/subscription?billing=annual",
			wantSelected: []string{"basic-annual"},
		},
		{
			name:         "неизвестная вкладка оплаты",
			form:         url.Values{"plan_id": {"basic"}, "billing": {"weekly"}},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/subscription?billing=monthly",
			wantSelected: []string{"basic"},
		},
		{
			name:       "неизвестный план",
			form:       url.Values{"plan_id": {"enterprise"}},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "пустой plan_id",
			form:       url.Values{"billing": {"monthly"}},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var selected []string
			h := New(newNoopLogger(), catalog.Default(), func(planID string) {
				selected = append(selected, planID)
			})

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, postForm(tt.form))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantSelected, selected)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			}
		})
	}
}

func TestSelectPlanHandler_NilHandler(t *testing.T) {
	h := New(newNoopLogger(), catalog.Default(), nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, postForm(url.Values{"plan_id": {"basic"}}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
}
