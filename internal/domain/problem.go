package domain

import "time"

type ProblemStatus string

const (
	ProblemStatusSolved   ProblemStatus = "solved"
	ProblemStatusUnsolved ProblemStatus = "unsolved"
	ProblemStatusReview   ProblemStatus = "review"
)

// DateLayout is the calendar-date form used for Problem.Date (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Problem is a single practice problem tracked by a user. Every read and
// write is scoped by UserID; a problem is never visible outside its owner.
type Problem struct {
	ID          string
	UserID      string
	Title       string
	Status      ProblemStatus
	Platform    string
	TimesSolved int
	Date        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
