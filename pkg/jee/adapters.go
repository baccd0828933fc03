package jee

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Boolean is a boolean accepting the lenient textual
// forms found in deployment descriptors.
type Boolean bool

func NewBoolean(b bool) *Boolean {
	r := Boolean(b)
	return &r
}

// Bool returns the value of an optional boolean, or the given default.
func (b *Boolean) Bool(def bool) bool {
	if b == nil {
		return def
	}
	return bool(*b)
}

func (b Boolean) MarshalText() ([]byte, error) {
	return []byte(strconv.FormatBool(bool(b))), nil
}

// UnmarshalText accepts true/false, yes/no and 1/0 case insensitive.
// An empty element denotes the schema default true.
func (b *Boolean) UnmarshalText(data []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(data))) {
	case "", "true", "yes", "1":
		*b = true
	case "false", "no", "0":
		*b = false
	default:
		return fmt.Errorf("invalid boolean %q", string(data))
	}
	return nil
}

func (b Boolean) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(b))
}

func (b *Boolean) UnmarshalJSON(data []byte) error {
	var v bool
	if err := json.Unmarshal(data, &v); err == nil {
		*b = Boolean(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid boolean %s", string(data))
	}
	return b.UnmarshalText([]byte(s))
}

////////////////////////////////////////////////////////////////////////////////

// TimeUnit is the unit of a timeout value.
type TimeUnit int

const (
	Nanoseconds TimeUnit = iota + 1
	Microseconds
	Milliseconds
	Seconds
	Minutes
	Hours
	Days
)

var timeUnits = map[TimeUnit]struct {
	name     string
	duration time.Duration
	aliases  []string
}{
	Nanoseconds:  {"NANOSECONDS", time.Nanosecond, []string{"nanosecond", "nanos", "ns"}},
	Microseconds: {"MICROSECONDS", time.Microsecond, []string{"microsecond", "micros", "us"}},
	Milliseconds: {"MILLISECONDS", time.Millisecond, []string{"millisecond", "millis", "ms"}},
	Seconds:      {"SECONDS", time.Second, []string{"second", "sec", "s"}},
	Minutes:      {"MINUTES", time.Minute, []string{"minute", "min", "m"}},
	Hours:        {"HOURS", time.Hour, []string{"hour", "h"}},
	Days:         {"DAYS", 24 * time.Hour, []string{"day", "d"}},
}

var timeUnitNames = map[string]TimeUnit{}

func init() {
	for u, d := range timeUnits {
		timeUnitNames[strings.ToLower(d.name)] = u
		for _, a := range d.aliases {
			timeUnitNames[a] = u
		}
	}
}

func ParseTimeUnit(s string) (TimeUnit, error) {
	if u, ok := timeUnitNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return u, nil
	}
	return 0, fmt.Errorf("invalid time unit %q", s)
}

func (u TimeUnit) String() string {
	if d, ok := timeUnits[u]; ok {
		return d.name
	}
	return fmt.Sprintf("TimeUnit(%d)", int(u))
}

// Duration returns the duration of n units.
func (u TimeUnit) Duration(n int64) time.Duration {
	d, ok := timeUnits[u]
	if !ok {
		return 0
	}
	return time.Duration(n) * d.duration
}

func (u TimeUnit) MarshalText() ([]byte, error) {
	d, ok := timeUnits[u]
	if !ok {
		return nil, fmt.Errorf("invalid time unit %d", int(u))
	}
	return []byte(d.name), nil
}

func (u *TimeUnit) UnmarshalText(data []byte) error {
	r, err := ParseTimeUnit(string(data))
	if err != nil {
		return err
	}
	*u = r
	return nil
}

////////////////////////////////////////////////////////////////////////////////

// LoadOnStartup is the startup order of a servlet.
// Negative values mean the container may load the servlet lazily.
type LoadOnStartup int

const LoadLazily LoadOnStartup = -1

// Eager reports whether the servlet must be loaded on startup.
func (l *LoadOnStartup) Eager() bool {
	return l != nil && *l >= 0
}

func (l LoadOnStartup) MarshalText() ([]byte, error) {
	return []byte(strconv.Itoa(int(l))), nil
}

// UnmarshalText accepts an integer. true is mapped to 0,
// false and an empty value to LoadLazily.
func (l *LoadOnStartup) UnmarshalText(data []byte) error {
	s := strings.TrimSpace(string(data))
	switch strings.ToLower(s) {
	case "true":
		*l = 0
	case "false", "":
		*l = LoadLazily
	default:
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid load-on-startup value %q", s)
		}
		*l = LoadOnStartup(v)
	}
	return nil
}

func (l LoadOnStartup) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(l))
}

func (l *LoadOnStartup) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err == nil {
		*l = LoadOnStartup(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid load-on-startup value %s", string(data))
	}
	return l.UnmarshalText([]byte(s))
}
