package duedate

import (
	"fmt"
	"time"
)

// Date returns date-only components.
func Date(year, month, day int) Components {
	return Components{Year: year, Month: month, Day: day, Hour: Undefined, Minute: Undefined}
}

// DateTime returns components with a time of day.
func DateTime(year, month, day, hour, minute int) Components {
	return Components{Year: year, Month: month, Day: day, Hour: hour, Minute: minute}
}

// HasTime reports whether the components carry a time of day.
func (c Components) HasTime() bool {
	return c.Hour != Undefined
}

// String renders YYYY-MM-DD, or YYYY-MM-DDTHH:MM:00 when a time is set.
func (c Components) String() string {
	s := fmt.Sprintf("%04d-%02d-%02d", c.Year, c.Month, c.Day)
	if c.HasTime() {
		minute := c.Minute
		if minute == Undefined {
			minute = 0
		}
		s += fmt.Sprintf("T%02d:%02d:00", c.Hour, minute)
	}
	return s
}

// Time converts the components to a time in loc. Date-only values map to midnight.
func (c Components) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	hour, minute := 0, 0
	if c.HasTime() {
		hour = c.Hour
		if c.Minute != Undefined {
			minute = c.Minute
		}
	}
	return time.Date(c.Year, time.Month(c.Month), c.Day, hour, minute, 0, 0, loc)
}

// Parse accepts exactly YYYY-MM-DD or YYYY-MM-DDTHH:MM:SS.
func Parse(s string) (Components, error) {
	switch len(s) {
	case len(DateLayout):
		t, err := time.Parse(DateLayout, s)
		if err != nil {
			return Components{}, fmt.Errorf("time data %q does not match format %q", s, DateLayout)
		}
		return Date(t.Year(), int(t.Month()), t.Day()), nil
	case len(DateTimeLayout):
		t, err := time.Parse(DateTimeLayout, s)
		if err != nil {
			return Components{}, fmt.Errorf("time data %q does not match format %q", s, DateTimeLayout)
		}
		return DateTime(t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute()), nil
	}
	return Components{}, fmt.Errorf("time data %q matches neither %q nor %q", s, DateLayout, DateTimeLayout)
}

// FromTime builds components from t. withTime=false drops the time of day.
func FromTime(t time.Time, withTime bool) Components {
	if !withTime {
		return Date(t.Year(), int(t.Month()), t.Day())
	}
	return DateTime(t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute())
}
