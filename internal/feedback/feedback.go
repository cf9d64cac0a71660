// Package feedback captures user feedback and waiting-list signups, used when
// the demo-account pool is exhausted.
package feedback

import "time"

// Source identifies what put the user on the feedback path.
const (
	SourceNoDemoAccounts = "no_demo_accounts"
	SourceWaitingList    = "waiting_list"
	SourceGeneral        = "general"
)

// Entry is a single stored feedback or waiting-list record.
type Entry struct {
	ID        string
	Email     string
	Message   string
	Source    string
	CreatedAt time.Time
}
