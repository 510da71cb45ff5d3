package jiralog

import (
	"strconv"
	"strings"
	"time"

	"jiralog/internal/log"
)

// RunOptions configure a timesheet run.
type RunOptions struct {
	CSVPath  string
	DryRun   bool
	Limit    int           // 0 means no limit
	Delay    time.Duration // pause after each request to Jira
	DayStart time.Duration // clock offset from midnight for worklog starts
}

// Summary tallies a finished run. TotalHours only counts entries that were
// logged (or would have been, in dry run mode).
type Summary struct {
	Success    int
	Failed     int
	TotalHours float64
}

// Total returns the number of rows that went through submission.
func (s Summary) Total() int {
	return s.Success + s.Failed
}

// Runner submits a whole timesheet through one Jira client.
type Runner struct {
	Client WorklogAdder
}

// Run reads the timesheet and submits every usable row. Row-level failures
// are tallied, only problems with the CSV file itself abort the run.
func (r *Runner) Run(opts RunOptions) (Summary, error) {
	rows, err := ReadTimesheet(opts.CSVPath)
	if err != nil {
		return Summary{}, err
	}

	log.Info("Found %d timesheet entries in %s", len(rows), opts.CSVPath)
	if opts.DryRun {
		log.Warn("DRY RUN MODE - no changes will be made")
	}

	submitter := &Submitter{Client: r.Client, DayStart: opts.DayStart}

	var summary Summary
	processed := 0
	for _, row := range rows {
		if opts.Limit > 0 && processed >= opts.Limit {
			log.Warn("Reached limit of %d entries", opts.Limit)
			break
		}
		if skippable(row) {
			log.DebugH2("Skipping row: date=%q ticket=%q hours=%q", row.Date, row.Ticket, row.Hours)
			continue
		}
		processed++

		ticket := strings.ToUpper(row.Ticket)
		comment := row.Description
		if comment == "" {
			comment = "Work on " + ticket
		}
		log.Info("Logging %sh to %s: %s", row.Hours, ticket, truncate(comment, 100))

		result := submitter.Submit(row, opts.DryRun)
		if result.OK {
			summary.Success++
			summary.TotalHours += result.Hours
		} else {
			summary.Failed++
		}
		if result.Attempted && opts.Delay > 0 {
			time.Sleep(opts.Delay)
		}
	}

	log.Info("Summary:")
	log.InfoH2("Processed: %d", summary.Total())
	log.InfoH2("Successful: %d", summary.Success)
	log.InfoH2("Failed: %d", summary.Failed)
	log.InfoH2("Total hours logged: %s", strconv.FormatFloat(summary.TotalHours, 'f', -1, 64))
	if opts.DryRun {
		log.InfoH3("DRY RUN MODE - no changes were made")
	}

	return summary, nil
}

// skippable reports whether a row carries nothing to log: blank date,
// ticket or hours, or an explicit zero hours value. Rows with malformed
// hours are not skipped so the failure gets reported.
func skippable(row Row) bool {
	if row.Date == "" || row.Ticket == "" || row.Hours == "" {
		return true
	}
	if hours, err := strconv.ParseFloat(row.Hours, 64); err == nil && hours == 0 {
		return true
	}
	return false
}

// truncate caps s at n runes for display, appending an ellipsis when cut.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
