// README: Audit log of processed dialogue turns.
package turnlog

import "time"

// Record is one processed turn: what the user sent, what the assistant
// answered, and how the message was classified.
type Record struct {
	UserID       string
	Message      string
	Intent       string
	Confidence   float64
	ResponseType string
	CreatedAt    time.Time
}
