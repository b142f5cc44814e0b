package view

import (
	"fmt"
	"time"
)

// InvalidDate выводится вместо даты, которую не удалось разобрать.
const InvalidDate = "Invalid Date"

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
}

// FormatPrice форматирует цену в долларах всегда с двумя знаками после запятой.
func FormatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}

// FormatDate переводит дату YYYY-MM-DD в короткий формат en-US (M/D/YYYY).
// Дата выводится как есть, без перевода в часовой пояс сервера.
func FormatDate(date string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Format("1/2/2006")
		}
	}
	return InvalidDate
}

// FormatSchedule склеивает дату и время консультации: "7/15/2023 at 10:00 AM".
func FormatSchedule(date, clock string) string {
	return FormatDate(date) + " at " + clock
}
