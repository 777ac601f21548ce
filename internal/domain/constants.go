package domain

// Business validation constants
const (
	MinPeriodMinutes = 5
	MaxPeriodMinutes = 480 // 8 hours

	MaxUserNameLength = 100
	MaxEmailLength    = 254
)

// MaxSlotsPerDay ограничивает цикл генерации слотов
// Период меньше минуты невозможен, поэтому больше 24*60 слотов в дне быть не может
const MaxSlotsPerDay = 24 * 60

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultPageSize размер страницы списка бронирований, если не задан в конфигурации
const DefaultPageSize = 20

// DashboardLimit количество бронирований в каждом блоке дашборда
const DashboardLimit = 10
