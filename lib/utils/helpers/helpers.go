package helpers

import (
	"time"

	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

func ParseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, errors.New("пустая дата")
	}
	t, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
