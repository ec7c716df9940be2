package model

import "time"

// Category represents an expense category. Names are unique and
// case-sensitive.
type Category struct {
	CreatedAt time.Time
	Name      string
	ID        int64
}
