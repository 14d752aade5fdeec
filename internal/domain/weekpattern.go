package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidWeekPattern возвращается при некорректном паттерне дней недели
var ErrInvalidWeekPattern = errors.New("invalid week pattern")

// WeekSet множество ISO дней недели (1=понедельник ... 7=воскресенье)
type WeekSet map[int]struct{}

// Contains возвращает true, если день входит в множество
func (s WeekSet) Contains(isoWeekday int) bool {
	_, ok := s[isoWeekday]
	return ok
}

// Days возвращает дни множества по возрастанию
func (s WeekSet) Days() []int {
	days := make([]int, 0, len(s))
	for d := 1; d <= 7; d++ {
		if s.Contains(d) {
			days = append(days, d)
		}
	}
	return days
}

// ParseWeekPattern парсит паттерн дней недели в множество ISO дней
// Поддерживаются две формы:
//   - диапазон "a-b" (включительно), например "1-7"
//   - перечисление "a,b,c", например "1,3,5"
//
// Значения ограничены диапазоном 1..7, дубликаты схлопываются
func ParseWeekPattern(pattern string) (WeekSet, error) {
	if strings.Contains(pattern, "-") {
		return parseWeekRange(pattern)
	}
	return parseWeekList(pattern)
}

func parseWeekRange(pattern string) (WeekSet, error) {
	parts := strings.Split(pattern, "-")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: malformed range %q", ErrInvalidWeekPattern, pattern)
	}

	from, err := parseWeekday(parts[0])
	if err != nil {
		return nil, err
	}
	to, err := parseWeekday(parts[1])
	if err != nil {
		return nil, err
	}
	if from > to {
		return nil, fmt.Errorf("%w: inverted range %q", ErrInvalidWeekPattern, pattern)
	}

	set := make(WeekSet, to-from+1)
	for d := from; d <= to; d++ {
		set[d] = struct{}{}
	}
	return set, nil
}

func parseWeekList(pattern string) (WeekSet, error) {
	parts := strings.Split(pattern, ",")
	set := make(WeekSet, len(parts))
	for _, part := range parts {
		day, err := parseWeekday(part)
		if err != nil {
			return nil, err
		}
		set[day] = struct{}{}
	}
	return set, nil
}

func parseWeekday(token string) (int, error) {
	day, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return 0, fmt.Errorf("%w: non-numeric token %q", ErrInvalidWeekPattern, token)
	}
	if day < 1 || day > 7 {
		return 0, fmt.Errorf("%w: weekday %d out of range 1..7", ErrInvalidWeekPattern, day)
	}
	return day, nil
}

// ISOWeekday возвращает ISO день недели даты (1=понедельник ... 7=воскресенье)
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
