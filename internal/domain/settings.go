package domain

import (
	"time"

	"github.com/avlebedev/SBS-BookingWeb/pkg/types"
)

// BookingSettings is the singleton working-time window configuration.
// The availability calculator and the wizard read it; only the admin
// settings form mutates it.
type BookingSettings struct {
	ID             int64
	StartTime      types.TimeString
	EndTime        types.TimeString
	PeriodMinutes  int
	BookingEnabled bool
	UpdatedAt      time.Time
}

// HasValidPeriod returns true if the slot period can terminate the slot loop
func (s *BookingSettings) HasValidPeriod() bool {
	return s.PeriodMinutes > 0
}
