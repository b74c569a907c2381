package pricing

import (
	"errors"
	"fmt"
)

// Reason машиночитаемая причина, по которой расчет невозможен
type Reason string

const (
	ReasonNone               Reason = ""
	ReasonInvalidDateRange   Reason = "invalid_date_range"
	ReasonBelowMinimumStay   Reason = "below_minimum_stay"
	ReasonCapacityExceeded   Reason = "capacity_exceeded"
	ReasonMissingTariffField Reason = "missing_tariff_field"
	ReasonEmptyParty         Reason = "empty_party"
	ReasonInvalidInput       Reason = "invalid_input"
)

var (
	// ErrInvalidDateRange дата окончания раньше даты начала или дней меньше одного
	ErrInvalidDateRange = errors.New("pricing: invalid date range")

	// ErrBelowMinimumStay количество дней меньше минимального для типа пространства
	ErrBelowMinimumStay = errors.New("pricing: below minimum stay")

	// ErrCapacityExceeded группа больше базовой + дополнительной вместимости
	ErrCapacityExceeded = errors.New("pricing: capacity exceeded")

	// ErrMissingTariffField нужный для расчета тариф не задан
	ErrMissingTariffField = errors.New("pricing: missing tariff field")

	// ErrEmptyParty нет ни одного участника для расчета
	ErrEmptyParty = errors.New("pricing: empty party")

	// ErrInvalidInput некорректные входные данные (nil, отрицательные количества, неизвестные значения)
	ErrInvalidInput = errors.New("pricing: invalid input")
)

var reasons = map[error]Reason{
	ErrInvalidDateRange:   ReasonInvalidDateRange,
	ErrBelowMinimumStay:   ReasonBelowMinimumStay,
	ErrCapacityExceeded:   ReasonCapacityExceeded,
	ErrMissingTariffField: ReasonMissingTariffField,
	ErrEmptyParty:         ReasonEmptyParty,
	ErrInvalidInput:       ReasonInvalidInput,
}

// InvalidError результат "невозможно рассчитать" с деталями для UI
type InvalidError struct {
	Kind   error
	Detail string
}

func (e *InvalidError) Error() string {
	if e.Detail == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Detail)
}

func (e *InvalidError) Unwrap() error {
	return e.Kind
}

func invalid(kind error, format string, v ...interface{}) error {
	return &InvalidError{Kind: kind, Detail: fmt.Sprintf(format, v...)}
}

// ReasonOf возвращает причину для ошибки расчета или ReasonNone для nil и посторонних ошибок
func ReasonOf(err error) Reason {
	if err == nil {
		return ReasonNone
	}
	for kind, reason := range reasons {
		if errors.Is(err, kind) {
			return reason
		}
	}
	return ReasonNone
}

// IsInvalid returns true if err is one of the calculator's invalid results
func IsInvalid(err error) bool {
	return ReasonOf(err) != ReasonNone
}
