package domain

import (
	"fmt"

	"github.com/fardannozami/habit-gateway/internal/dateutil"
)

type TimeOfDay struct {
	Hour   int
	Minute int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	h, m, err := dateutil.ParseHHMM(s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}
	return TimeOfDay{Hour: h, Minute: m}, nil
}

func (t TimeOfDay) String() string {
	return dateutil.FormatHHMM(t.Hour, t.Minute)
}

// WaterWindow bounds the hourly water reminders. No reminder is ever
// scheduled after Sleep.
type WaterWindow struct {
	Wake          TimeOfDay
	FirstReminder TimeOfDay
	Sleep         TimeOfDay
}

func DefaultWaterWindow() WaterWindow {
	return WaterWindow{
		Wake:          TimeOfDay{Hour: 6, Minute: 30},
		FirstReminder: TimeOfDay{Hour: 7, Minute: 30},
		Sleep:         TimeOfDay{Hour: 23, Minute: 30},
	}
}
