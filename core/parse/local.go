package parse

import (
	"time"

	"github.com/tzbucket/tzbucket/core/model"
)

var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// LocalDateTime parses a bare local datetime (no offset) into a
// LocalClock bound to the given zone. Seconds are optional and a space
// may replace the T separator.
func LocalDateTime(input, zone string) (model.LocalClock, error) {
	trimmed := input
	for _, layout := range localLayouts {
		t, err := time.Parse(layout, trimmed)
		if err != nil {
			continue
		}
		return model.LocalClock{
			Year:   t.Year(),
			Month:  t.Month(),
			Day:    t.Day(),
			Hour:   t.Hour(),
			Minute: t.Minute(),
			Second: t.Second(),
			Zone:   zone,
		}, nil
	}
	return model.LocalClock{}, &Error{Input: input, Reason: "expected local datetime YYYY-MM-DDTHH:MM[:SS] without offset"}
}
