package get_available_times

import (
	"time"

	"github.com/avlebedev/SBS-BookingWeb/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date time.Time // Дата для расчета слотов (без времени)
}

// Response модель ответа с упорядоченным списком слотов
type Response struct {
	Date  time.Time         // Дата, на которую запрашивались слоты
	Slots []domain.TimeSlot // Все слоты окна с пометкой занятости
}
