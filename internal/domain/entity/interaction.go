package entity

import "time"

// Interaction is one row of the usage log, written when a popup session ends.
type Interaction struct {
	ID           int64
	ZoomInCount  int
	ZoomOutCount int
	TimeOnPage   time.Duration
	Settings     Settings
	CreatedAt    time.Time
}
