package pricing

import (
	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/domain"
	"github.com/manuelContrerasDev/enap-reservas-sub001/pkg/types"
)

// CountDays переводит диапазон календарных дат в количество оплачиваемых дней.
//
// inclusive: end - start + 1, 01.01 -> 03.01 = 3
// exclusive: end - start,     01.01 -> 03.01 = 2
//
// Результат может быть <= 0, проверку делает вызывающий код.
func CountDays(start, end types.Date, convention domain.DayCountConvention) int {
	diff := start.DaysUntil(end)
	if convention == domain.DayCountExclusive {
		return diff
	}
	return diff + 1
}
