package domain

import "github.com/avlebedev/SBS-BookingWeb/pkg/types"

// TimeSlot represents one bookable time unit within the working-time window
type TimeSlot struct {
	Time    types.TimeString
	IsTaken bool
}

// IsFree returns true if the slot has no booking at its exact time
func (s *TimeSlot) IsFree() bool {
	return !s.IsTaken
}
