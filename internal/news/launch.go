package news

import (
	"strings"
	"time"
)

// LaunchType classifies a launch event.
type LaunchType string

const (
	Hardware LaunchType = "Hardware"
	Software LaunchType = "Software"
	Service  LaunchType = "Service"
)

// ParseLaunchType maps a label to a LaunchType. Unknown labels, such as
// "OS", are treated as Software.
func ParseLaunchType(label string) LaunchType {
	for _, t := range []LaunchType{Hardware, Software, Service} {
		if strings.EqualFold(string(t), strings.TrimSpace(label)) {
			return t
		}
	}
	return Software
}

// LaunchEvent is a scheduled product announcement. Date carries no time
// component; it is midnight UTC of the launch day.
type LaunchEvent struct {
	ID          string     `json:"id"`
	ProductName string     `json:"productName"`
	Company     string     `json:"company"`
	Date        time.Time  `json:"date"`
	Description string     `json:"description"`
	Type        LaunchType `json:"type"`
}

// Day parses a YYYY-MM-DD calendar date.
func Day(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}

// MustDay is Day for static data; it panics on a malformed date.
func MustDay(s string) time.Time {
	d, err := Day(s)
	if err != nil {
		panic(err)
	}
	return d
}
