package utils

import (
	"fmt"
	"strings"
	"time"
)

var weekdayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// ParseDateTime aceita RFC3339 ou data/hora ISO sem fuso (interpretada em UTC)
func ParseDateTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	layouts := []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("data/hora inválida: %q", value)
}

// WeekdayIndex converte time.Weekday para o índice com segunda-feira = 0
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// WeekdayName retorna o nome em inglês do dia (0 = Monday)
func WeekdayName(idx int) string {
	if idx < 0 || idx >= len(weekdayNames) {
		return ""
	}
	return weekdayNames[idx]
}

// WeekdayNames retorna os sete dias começando na segunda-feira
func WeekdayNames() []string {
	names := make([]string, len(weekdayNames))
	copy(names, weekdayNames[:])
	return names
}
