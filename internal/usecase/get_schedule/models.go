package get_schedule

import "time"

// Request модель запроса расписания площадки
type Request struct {
	AreaID int64     // ID площадки
	Date   time.Time // дата, на которую строится расписание
}

// Slot конкретный бронируемый интервал расписания
// Start/Stop - ISO-форматированные метки времени
type Slot struct {
	Start string
	Stop  string
}

// AvailableSlot слот расписания со счетчиком доступности
type AvailableSlot struct {
	Start string
	Stop  string
	N     int // оставшиеся места в слоте
}

// Response модель ответа с расписанием площадки на дату
// Порядок слотов детерминирован: окна в порядке объявления,
// внутри окна - по времени
type Response struct {
	AreaID    int64
	Name      string
	Label     string
	Date      time.Time
	Schedule  []Slot
	Available []AvailableSlot
}
