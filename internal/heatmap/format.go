package heatmap

import (
	"strconv"
	"time"
)

// DateStyle selects a tooltip/label date format.
type DateStyle int

const (
	StyleDay   DateStyle = iota // "5"
	StyleMonth                  // "Jan"
	StyleFull                   // "January 5, 2024"
	StyleShort                  // "Jan 5"
)

// Weekdays are the column labels, Sunday first.
var Weekdays = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// FormatDate renders t in the given style.
func FormatDate(t time.Time, style DateStyle) string {
	switch style {
	case StyleDay:
		return strconv.Itoa(t.Day())
	case StyleMonth:
		return t.Format("Jan")
	case StyleFull:
		return t.Format("January 2, 2006")
	case StyleShort:
		return t.Format("Jan 2")
	default:
		return t.Format("1/2/2006")
	}
}

// FormatHour12 renders a 0-23 hour as "12 AM", "9 AM", "3 PM".
func FormatHour12(hour int) string {
	switch {
	case hour == 0:
		return "12 AM"
	case hour == 12:
		return "12 PM"
	case hour < 12:
		return strconv.Itoa(hour) + " AM"
	default:
		return strconv.Itoa(hour-12) + " PM"
	}
}
