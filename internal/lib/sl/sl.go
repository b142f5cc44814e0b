// Package sl содержит атрибуты slog, общие для всего приложения.
package sl

import "log/slog"

// Err возвращает атрибут "error" с текстом ошибки. Для nil пишется "<nil>",
// чтобы обработчик выбора или рендер не падали на пустой ошибке.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.String("error", err.Error())
}
