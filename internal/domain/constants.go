package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Availability window defaults
const (
	// DefaultIntervalMinutes длительность слота по умолчанию
	DefaultIntervalMinutes = 60

	// IntervalNotSlotted зарезервированное значение interval:
	// окно не делится на слоты
	IntervalNotSlotted = -1

	// DefaultMaxSlots вместимость слота по умолчанию
	DefaultMaxSlots = 1

	// DefaultWeekPattern паттерн "вся неделя"
	DefaultWeekPattern = "1-7"
)

// TaskType категория бронирования
type TaskType string

const (
	TypeCommon      TaskType = "common"
	TypeCommonSport TaskType = "common-sport"
	TypeSport       TaskType = "sport"
	TypeMeetingRoom TaskType = "meeting-room"
	TypeMeetingClub TaskType = "meeting-club"
)

// Valid возвращает true, если категория известна
func (t TaskType) Valid() bool {
	switch t {
	case TypeCommon, TypeCommonSport, TypeSport, TypeMeetingRoom, TypeMeetingClub:
		return true
	default:
		return false
	}
}
