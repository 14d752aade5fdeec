package domain

// StaffDirectory упорядоченный справочник уровней эскалации персонала
// Порядок задает цепочку: forward переводит бронирование на следующий уровень.
// Справочник внедряется из конфигурации, политика эскалации может отличаться
// между инсталляциями без изменения state machine
type StaffDirectory struct {
	levels []string
}

// NewStaffDirectory создает справочник из упорядоченного списка групп
func NewStaffDirectory(levels []string) StaffDirectory {
	copied := make([]string, len(levels))
	copy(copied, levels)
	return StaffDirectory{levels: copied}
}

// Levels возвращает уровни цепочки в порядке эскалации
func (d StaffDirectory) Levels() []string {
	copied := make([]string, len(d.levels))
	copy(copied, d.levels)
	return copied
}

// Empty возвращает true, если справочник не сконфигурирован
func (d StaffDirectory) Empty() bool {
	return len(d.levels) == 0
}

// First возвращает первый уровень цепочки
func (d StaffDirectory) First() (string, bool) {
	if len(d.levels) == 0 {
		return "", false
	}
	return d.levels[0], true
}

// Next возвращает уровень, следующий за current
// false - когда current последний в цепочке или неизвестен справочнику
func (d StaffDirectory) Next(current string) (string, bool) {
	for i, level := range d.levels {
		if level == current {
			if i+1 < len(d.levels) {
				return d.levels[i+1], true
			}
			return "", false
		}
	}
	return "", false
}
