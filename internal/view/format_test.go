package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{49.99, "$49.99"},
		{50, "$50.00"},
		{59.9, "$59.90"},
		{0, "$0.00"},
		{287.90, "$287.90"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPrice(tt.price))
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"дата без времени", "2023-07-15", "7/15/2023"},
		{"конец года", "2023-12-31", "12/31/2023"},
		{"дата со временем", "2023-06-18T09:30:00Z", "6/18/2023"},
		{"мусор", "tomorrow", InvalidDate},
		{"пустая строка", "", InvalidDate},
		{"несуществующий день", "2023-02-30", InvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(tt.in))
		})
	}
}

func TestFormatSchedule(t *testing.T) {
	assert.Equal(t, "7/15/2023 at 10:00 AM", FormatSchedule("2023-07-15", "10:00 AM"))
}
