package create_booking

import (
	"strings"

	"github.com/google/uuid"
)

// vidLength длина человекочитаемого кода бронирования
const vidLength = 8

// newVID генерирует человекочитаемый код бронирования
// Код - первые 8 hex-символов случайного UUID в верхнем регистре;
// уникальность страхуется ограничением в БД
func newVID() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return strings.ToUpper(raw[:vidLength])
}
