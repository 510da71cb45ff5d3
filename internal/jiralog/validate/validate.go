// Package validate holds the pure field validators for timesheet rows and
// configuration values. All functions are stateless and side-effect free.
package validate

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"jiralog/internal/jiralog/errors"
)

// DateLayout is the expected input date format for timesheet rows.
const DateLayout = "2006-01-02"

var (
	emailPattern  = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	domainPattern = regexp.MustCompile(`^[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	ticketPattern = regexp.MustCompile(`^[A-Z][A-Z0-9]*-[0-9]+$`)
)

// Email reports whether s looks like a valid email address.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// NormalizeDomain strips a leading scheme and trailing slashes from a Jira
// domain and validates the remainder. Normalizing an already-normalized
// domain returns it unchanged.
func NormalizeDomain(s string) (string, error) {
	domain := strings.TrimPrefix(s, "https://")
	domain = strings.TrimPrefix(domain, "http://")
	domain = strings.TrimRight(domain, "/")

	if !domainPattern.MatchString(domain) {
		return "", errors.Wrapf(errors.ErrInvalidDomain, "%q", s)
	}
	return domain, nil
}

// TicketFormat reports whether s is a valid Jira issue key (PROJ-123).
// Matching is case-insensitive; lowercase keys are accepted.
func TicketFormat(s string) bool {
	return ticketPattern.MatchString(strings.ToUpper(s))
}

// Hours parses s as a number of hours and enforces 0 < hours <= 24.
func Hours(s string) (float64, error) {
	hours, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(hours) {
		return 0, errors.Wrapf(errors.ErrNotANumber, "invalid hours value %q", s)
	}
	if hours <= 0 {
		return 0, errors.Wrapf(errors.ErrNonPositive, "invalid hours value %q", s)
	}
	if hours > 24 {
		return 0, errors.Wrapf(errors.ErrTooLarge, "invalid hours value %q", s)
	}
	return hours, nil
}

// Date parses s as a calendar date in YYYY-MM-DD form, in UTC.
func Date(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errors.Wrapf(errors.ErrInvalidDate, "could not parse date %q (expected format: YYYY-MM-DD)", s)
	}
	return d, nil
}

// FutureDate reports whether d falls on a later calendar day than now.
func FutureDate(d, now time.Time) bool {
	dy, dm, dd := d.Date()
	ny, nm, nd := now.Date()
	day := time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC)
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	return day.After(today)
}
