package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	// PassingScore is the repo-wide pass threshold: an attempt passes when
	// score >= PassingScore. Scores are integers 0-100.
	PassingScore = 50

	// DefaultGuestUserID backs requests that omit user_id. No auth system
	// exists, so unauthenticated progress and attempts accrue to this user.
	DefaultGuestUserID uint = 1
)
