package models

import "time"

// Entry is one evaluated expression in the history log.
type Entry struct {
	ID         int64
	Expression string
	Result     float64
	CreatedAt  time.Time
}
