package sl_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/research-portal/internal/lib/sl"
)

func TestErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "простая ошибка", err: errors.New("template broken"), want: "template broken"},
		{name: "обёрнутая ошибка", err: fmt.Errorf("%s: %w", "view.Render", errors.New("boom")), want: "view.Render: boom"},
		{name: "nil", err: nil, want: "<nil>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr := sl.Err(tt.err)
			assert.Equal(t, "error", attr.Key)
			assert.Equal(t, tt.want, attr.Value.String())
		})
	}
}

func TestErr_InLogger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	log.Error("failed to render page", sl.Err(errors.New("missing template")))

	assert.Contains(t, buf.String(), `error="missing template"`)
}
