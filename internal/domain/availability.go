package domain

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Weekday is one of the seven canonical day names.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// WeekOrder is the canonical presentation order for availability groups.
var WeekOrder = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Interview slots are bounded to a daily window.
const (
	DayWindowStart = "07:00"
	DayWindowEnd   = "22:00"
)

func (w Weekday) Valid() bool {
	for _, d := range WeekOrder {
		if w == d {
			return true
		}
	}
	return false
}

func (w Weekday) ordinal() int {
	for i, d := range WeekOrder {
		if w == d {
			return i
		}
	}
	return len(WeekOrder)
}

// TimeSlotGroup holds the interview-eligible times for a single weekday.
// Times are "HH:MM", ascending, deduplicated, and never empty: a weekday
// with no times is removed from the availability entirely.
type TimeSlotGroup struct {
	Day   Weekday  `json:"day"`
	Times []string `json:"times"`
}

// WeeklyAvailability is a candidate's recurring weekly slot set, always held
// in canonical Monday→Sunday order.
type WeeklyAvailability struct {
	Groups []TimeSlotGroup `json:"groups"`
}

// Empty reports whether no weekday has any slot.
func (a WeeklyAvailability) Empty() bool {
	return len(a.Groups) == 0
}

// TimesFor returns the slot times for a weekday, or nil if the day is absent.
func (a WeeklyAvailability) TimesFor(day Weekday) []string {
	for _, g := range a.Groups {
		if g.Day == day {
			return g.Times
		}
	}
	return nil
}

// ReplaceDay returns a copy of the availability with the weekday's times
// replaced by the sorted, deduplicated form of times. An empty times slice
// removes the weekday. The receiver is never mutated.
func (a WeeklyAvailability) ReplaceDay(day Weekday, times []string) (WeeklyAvailability, error) {
	if !day.Valid() {
		return WeeklyAvailability{}, fmt.Errorf("invalid weekday %q", day)
	}

	cleaned, err := normalizeTimes(times)
	if err != nil {
		return WeeklyAvailability{}, err
	}

	out := WeeklyAvailability{}
	for _, g := range a.Groups {
		if g.Day == day {
			continue
		}
		out.Groups = append(out.Groups, TimeSlotGroup{Day: g.Day, Times: append([]string(nil), g.Times...)})
	}
	if len(cleaned) > 0 {
		out.Groups = append(out.Groups, TimeSlotGroup{Day: day, Times: cleaned})
	}
	out.sortCanonical()
	return out, nil
}

// Encode serializes the availability to its stored string form. An empty
// availability encodes to the empty string.
func (a WeeklyAvailability) Encode() string {
	if a.Empty() {
		return ""
	}
	m := make(map[Weekday][]string, len(a.Groups))
	for _, g := range a.Groups {
		m[g.Day] = g.Times
	}
	raw, _ := json.Marshal(m)
	return string(raw)
}

// DecodeAvailability parses the stored string form and structurally
// validates it. Any failure wraps ErrCorruptAvailability: the payload is
// written only by this package, so a malformed value means upstream
// corruption, not user input.
func DecodeAvailability(serialized string) (WeeklyAvailability, error) {
	if serialized == "" {
		return WeeklyAvailability{}, nil
	}

	var m map[Weekday][]string
	if err := json.Unmarshal([]byte(serialized), &m); err != nil {
		return WeeklyAvailability{}, fmt.Errorf("%w: %v", ErrCorruptAvailability, err)
	}

	out := WeeklyAvailability{}
	for day, times := range m {
		if !day.Valid() {
			return WeeklyAvailability{}, fmt.Errorf("%w: unknown weekday %q", ErrCorruptAvailability, day)
		}
		if len(times) == 0 {
			return WeeklyAvailability{}, fmt.Errorf("%w: weekday %q has no times", ErrCorruptAvailability, day)
		}
		cleaned, err := normalizeTimes(times)
		if err != nil {
			return WeeklyAvailability{}, fmt.Errorf("%w: weekday %q: %v", ErrCorruptAvailability, day, err)
		}
		out.Groups = append(out.Groups, TimeSlotGroup{Day: day, Times: cleaned})
	}
	out.sortCanonical()
	return out, nil
}

func (a *WeeklyAvailability) sortCanonical() {
	sort.Slice(a.Groups, func(i, j int) bool {
		return a.Groups[i].Day.ordinal() < a.Groups[j].Day.ordinal()
	})
}

// normalizeTimes validates, deduplicates and sorts a slot time list.
// "HH:MM" lexical order equals chronological order, so a plain string sort
// is sufficient once the format is validated.
func normalizeTimes(times []string) ([]string, error) {
	if len(times) == 0 {
		return nil, nil
	}
	seen := make(map[string]struct{}, len(times))
	out := make([]string, 0, len(times))
	for _, t := range times {
		if err := validateClock(t); err != nil {
			return nil, err
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out, nil
}

func validateClock(t string) error {
	if len(t) != 5 || t[2] != ':' {
		return fmt.Errorf("invalid time %q, want HH:MM", t)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if t[i] < '0' || t[i] > '9' {
			return fmt.Errorf("invalid time %q, want HH:MM", t)
		}
	}
	hour := int(t[0]-'0')*10 + int(t[1]-'0')
	minute := int(t[3]-'0')*10 + int(t[4]-'0')
	if hour > 23 || minute > 59 {
		return fmt.Errorf("invalid time %q, want HH:MM", t)
	}
	if t < DayWindowStart || t > DayWindowEnd {
		return fmt.Errorf("time %q outside daily window %s-%s", t, DayWindowStart, DayWindowEnd)
	}
	return nil
}
