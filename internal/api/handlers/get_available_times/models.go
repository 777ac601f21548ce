package get_available_times

// TimeSlotResponse слот рабочего окна с пометкой занятости
type TimeSlotResponse struct {
	Time    string `json:"time"` // HH:MM
	IsTaken bool   `json:"isTaken"`
}

// Response ответ с упорядоченным списком слотов на дату
type Response struct {
	Date  string             `json:"date"` // YYYY-MM-DD
	Slots []TimeSlotResponse `json:"slots"`
}
