package jira

import (
	"strconv"
	"time"
)

// startedLayout is the timestamp format Jira expects for the worklog start,
// e.g. "2024-01-15T09:00:00.000+0000".
const startedLayout = "2006-01-02T15:04:05.000-0700"

// Worklog is the request payload for the add-worklog endpoint.
type Worklog struct {
	TimeSpent string       `json:"timeSpent"`
	Comment   *ADFDocument `json:"comment"`
	Started   string       `json:"started"`
}

// CreatedWorklog is the part of the add-worklog response jiralog reads back.
type CreatedWorklog struct {
	ID      string `json:"id"`
	IssueID string `json:"issueId"`
}

// ADFDocument is a comment body in Atlassian Document Format. API v3 rejects
// plain-string comments.
type ADFDocument struct {
	Type    string    `json:"type"`
	Version int       `json:"version"`
	Content []ADFNode `json:"content"`
}

type ADFNode struct {
	Type    string    `json:"type"`
	Content []ADFNode `json:"content,omitempty"`
	Text    string    `json:"text,omitempty"`
}

// NewComment wraps plain text in a single-paragraph ADF document.
func NewComment(text string) *ADFDocument {
	return &ADFDocument{
		Type:    "doc",
		Version: 1,
		Content: []ADFNode{{
			Type: "paragraph",
			Content: []ADFNode{{
				Type: "text",
				Text: text,
			}},
		}},
	}
}

// FormatStarted renders t in the layout Jira expects for the started field.
func FormatStarted(t time.Time) string {
	return t.Format(startedLayout)
}

// FormatTimeSpent renders hours as a Jira duration string such as "8h" or
// "1.25h".
func FormatTimeSpent(hours float64) string {
	return strconv.FormatFloat(hours, 'f', -1, 64) + "h"
}
