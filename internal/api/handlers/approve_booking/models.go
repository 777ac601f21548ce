package approve_booking

// Response снапшот подтвержденного бронирования
type Response struct {
	ID        int64  `json:"id"`
	Approved  bool   `json:"approved"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	Date      string `json:"date"` // YYYY-MM-DD
	Time      string `json:"time"` // HH:MM
}
