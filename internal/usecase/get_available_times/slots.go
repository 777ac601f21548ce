package get_available_times

import (
	"github.com/avlebedev/SBS-BookingWeb/internal/domain"
	"github.com/avlebedev/SBS-BookingWeb/pkg/types"
)

// generateTimeSlots генерирует упорядоченный список слотов рабочего окна
// и помечает занятые.
//
// Цикл с пост-условием: слот добавляется, затем вычисляется следующее время,
// и генерация останавливается, когда оно выходит за end_time. Поэтому слот,
// первым пересекающий границу окна, всё ещё попадает в список:
// окно 09:00-10:00 с периодом 30 дает 09:00, 09:30 и 10:00.
// При start_time > end_time генерируется ровно один слот.
//
// Слот считается занятым, если существует бронирование с точно таким временем.
func generateTimeSlots(settings *domain.BookingSettings, bookings []*domain.Booking) ([]domain.TimeSlot, error) {
	if !settings.HasValidPeriod() {
		return nil, ErrInvalidPeriod
	}

	taken := make(map[types.TimeString]struct{}, len(bookings))
	for _, b := range bookings {
		taken[b.Time] = struct{}{}
	}

	slots := make([]domain.TimeSlot, 0)
	current := settings.StartTime

	for {
		// Страховка от зацикливания при некорректных настройках
		if len(slots) >= domain.MaxSlotsPerDay {
			return nil, ErrSlotLimitExceeded
		}

		_, isTaken := taken[current]
		slots = append(slots, domain.TimeSlot{Time: current, IsTaken: isTaken})

		next, err := current.AddMinutes(settings.PeriodMinutes)
		if err != nil {
			return nil, err
		}
		// Шаг за полночь (next заворачивается и перестает расти)
		// означает выход за пределы суток, то есть и за end_time
		if next.IsAfter(settings.EndTime) || !next.IsAfter(current) {
			break
		}
		current = next
	}

	return slots, nil
}
