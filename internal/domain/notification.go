package domain

// NotificationPayload is the single explicit contract between the approval
// workflow and the notification task. The approval side builds it from the
// approved booking; the worker side only reads it.
type NotificationPayload struct {
	BookingID int64  `json:"bookingId"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	Date      string `json:"date"` // YYYY-MM-DD
	Time      string `json:"time"` // HH:MM
}
