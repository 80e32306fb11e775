package bugreport

import (
	"strings"
	"time"

	"studio-admin/internal/common/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ModuleName is the audit module and event collection for bug reports
const ModuleName = "bugreports"

// Status is the lifecycle state of a bug report
type Status string

const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
	StatusClosed     Status = "Closed"
)

// AllStatuses lists the statuses in lifecycle order
var AllStatuses = []Status{StatusOpen, StatusInProgress, StatusResolved, StatusClosed}

// Rank orders statuses for display; unknown values sort last
func (s Status) Rank() int {
	switch s {
	case StatusOpen:
		return 1
	case StatusInProgress:
		return 2
	case StatusResolved:
		return 3
	case StatusClosed:
		return 4
	}
	return 5
}

// IsTerminal reports whether a report in this status can no longer be resolved
func (s Status) IsTerminal() bool {
	return s == StatusResolved || s == StatusClosed
}

// terminalStatuses are excluded by the resolve filter
var terminalStatuses = []Status{StatusResolved, StatusClosed}

// BugReport is feedback submitted by an end user of the studio apps
type BugReport struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID            string             `bson:"userId" json:"userId"`
	Username          string             `bson:"username" json:"username"`
	Title             string             `bson:"title" json:"title"`
	Description       string             `bson:"description" json:"description"`
	Rating            int                `bson:"rating" json:"rating"`
	Status            Status             `bson:"status" json:"status"`
	ResolutionMessage string             `bson:"resolutionMessage,omitempty" json:"resolutionMessage,omitempty"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	ResolvedAt        *time.Time         `bson:"resolvedAt,omitempty" json:"resolvedAt,omitempty"`
}

// ReportInput is the submission payload of a new report
type ReportInput struct {
	UserID      string `json:"userId"`
	Username    string `json:"username"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Rating      int    `json:"rating"`
}

// Normalize trims the text fields and checks the required ones
func (in ReportInput) Normalize() (ReportInput, error) {
	in.UserID = strings.TrimSpace(in.UserID)
	in.Username = strings.TrimSpace(in.Username)
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)

	switch {
	case in.UserID == "":
		return in, apperr.Invalid("userId", "is required")
	case in.Username == "":
		return in, apperr.Invalid("username", "is required")
	case in.Title == "":
		return in, apperr.Invalid("title", "is required")
	case in.Description == "":
		return in, apperr.Invalid("description", "is required")
	case in.Rating < 1 || in.Rating > 5:
		return in, apperr.Invalid("rating", "must be between 1 and 5")
	}
	return in, nil
}
