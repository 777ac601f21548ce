package approve_booking

// Request модель запроса на подтверждение бронирования
type Request struct {
	BookingID int64
}

// Response снапшот подтвержденного бронирования
type Response struct {
	ID        int64
	Approved  bool
	UserName  string
	UserEmail string
	Date      string // YYYY-MM-DD
	Time      string // HH:MM
}
