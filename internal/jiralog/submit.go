package jiralog

import (
	"fmt"
	"strings"
	"time"

	"jiralog/internal/jiralog/errors"
	"jiralog/internal/jiralog/jira"
	"jiralog/internal/jiralog/validate"
	"jiralog/internal/log"
)

// WorklogAdder is the part of the Jira client the submitter needs.
type WorklogAdder interface {
	AddWorklog(ticket string, worklog *jira.Worklog) (*jira.CreatedWorklog, error)
}

// Entry is a validated timesheet row ready for submission.
type Entry struct {
	Ticket  string
	Hours   float64
	Date    time.Time
	Comment string
}

// Result is the outcome of submitting a single row. Message carries the
// human-readable reason, Attempted is true only when the request actually
// went out to Jira.
type Result struct {
	Ticket    string
	Hours     float64
	OK        bool
	Attempted bool
	Message   string
}

// Submitter turns timesheet rows into Jira worklog submissions. DayStart is
// the clock offset from midnight used for the started timestamp.
type Submitter struct {
	Client   WorklogAdder
	DayStart time.Duration
	Now      func() time.Time
}

func (s *Submitter) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// prepare validates a row and resolves its submission values. The ticket is
// uppercased and an empty description falls back to "Work on <ticket>".
func (s *Submitter) prepare(row Row) (Entry, error) {
	ticket := strings.ToUpper(strings.TrimSpace(row.Ticket))
	if !validate.TicketFormat(ticket) {
		return Entry{}, errors.Wrapf(errors.ErrInvalidTicket, "ticket %q does not look like PROJ-123", row.Ticket)
	}

	hours, err := validate.Hours(row.Hours)
	if err != nil {
		return Entry{}, err
	}

	date, err := validate.Date(row.Date)
	if err != nil {
		return Entry{}, err
	}

	comment := strings.TrimSpace(row.Description)
	if comment == "" {
		comment = "Work on " + ticket
	}

	return Entry{Ticket: ticket, Hours: hours, Date: date, Comment: comment}, nil
}

// Submit logs one row as a worklog. Validation failures and rejected
// requests are reported and tallied, they never abort the run.
func (s *Submitter) Submit(row Row, dryRun bool) Result {
	entry, err := s.prepare(row)
	if err != nil {
		log.ErrorH2("%v", err)
		return Result{
			Ticket:  strings.ToUpper(strings.TrimSpace(row.Ticket)),
			Message: err.Error(),
		}
	}

	if validate.FutureDate(entry.Date, s.now()) {
		log.WarnH2("Logging work for future date %s", entry.Date.Format(validate.DateLayout))
	}

	timeSpent := jira.FormatTimeSpent(entry.Hours)
	if dryRun {
		msg := fmt.Sprintf("DRY RUN: would log %s to %s on %s", timeSpent, entry.Ticket, entry.Date.Format(validate.DateLayout))
		log.InfoH3("%s", msg)
		return Result{Ticket: entry.Ticket, Hours: entry.Hours, OK: true, Message: msg}
	}

	worklog := &jira.Worklog{
		TimeSpent: timeSpent,
		Comment:   jira.NewComment(entry.Comment),
		Started:   jira.FormatStarted(entry.Date.Add(s.DayStart)),
	}
	created, err := s.Client.AddWorklog(entry.Ticket, worklog)
	if err != nil {
		msg := fmt.Sprintf("Failed to log time to %s: %v", entry.Ticket, err)
		log.ErrorH2("%s", msg)
		return Result{Ticket: entry.Ticket, Hours: entry.Hours, Attempted: true, Message: msg}
	}
	log.DebugH2("Created worklog %s on %s", created.ID, entry.Ticket)

	msg := fmt.Sprintf("Successfully logged %s to %s", timeSpent, entry.Ticket)
	log.InfoH2("%s", msg)
	return Result{Ticket: entry.Ticket, Hours: entry.Hours, OK: true, Attempted: true, Message: msg}
}
