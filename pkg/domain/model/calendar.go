package model

import (
	"net/url"
	"strings"
	"time"
)

const (
	calendarRenderURL = "https://calendar.google.com/calendar/render?action=TEMPLATE"
	calendarEmbedURL  = "https://calendar.google.com/calendar/embed?height=400&wkst=1&bgcolor=%23ffffff"

	// MaxEventDetails is the number of characters of the summary put into an event link
	MaxEventDetails = 800

	// NextMeetingLayout is the local date-time form of Extend.NextMeeting
	NextMeetingLayout = "2006-01-02T15:04"

	DefaultEmbedTimezone  = "Europe/London"
	publicHolidayCalendar = "en.uk#holiday@group.v.calendar.google.com"

	calendarTimeLayout = "20060102T150405Z"
	meetingDuration    = time.Hour
)

var uriComponentUnescapes = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeURIComponent percent-encodes s leaving only the characters browsers leave
// unescaped in a URI component
func encodeURIComponent(s string) string {
	return uriComponentUnescapes.Replace(url.QueryEscape(s))
}

// ParseNextMeeting reads a next-meeting value in loc. Seconds are accepted but optional.
func ParseNextMeeting(v string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range []string{NextMeetingLayout, NextMeetingLayout + ":05"} {
		if t, err := time.ParseInLocation(layout, v, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func eventDetails(summary string) string {
	if summary == "" {
		return "Notes from coaching session."
	}
	if runes := []rune(summary); len(runes) > MaxEventDetails {
		return string(runes[:MaxEventDetails]) + "..."
	}
	return summary
}

// CalendarEventURL builds a link that opens a prefilled calendar event for the next meeting.
// The date range is left out when the next meeting is not set or cannot be read.
func CalendarEventURL(s *Session, summary string, loc *time.Location) string {
	var b strings.Builder
	b.WriteString(calendarRenderURL)
	b.WriteString("&text=")
	b.WriteString(encodeURIComponent("Coaching: " + nameOr(s.CoacheeName, "Session")))
	b.WriteString("&details=")
	b.WriteString(encodeURIComponent(eventDetails(summary)))

	if start, ok := ParseNextMeeting(s.Extend.NextMeeting, loc); ok {
		end := start.Add(meetingDuration)
		b.WriteString("&dates=")
		b.WriteString(start.UTC().Format(calendarTimeLayout))
		b.WriteString("/")
		b.WriteString(end.UTC().Format(calendarTimeLayout))
	}
	return b.String()
}

// CalendarEmbedURL builds the read-only calendar view of the coach's calendar. Without an
// email the public holiday calendar is shown.
func CalendarEmbedURL(email, timezone string) string {
	if timezone == "" {
		timezone = DefaultEmbedTimezone
	}
	src := email
	if src == "" {
		src = publicHolidayCalendar
	}
	return calendarEmbedURL +
		"&ctz=" + encodeURIComponent(timezone) +
		"&src=" + encodeURIComponent(src) +
		"&color=%23039BE5"
}
