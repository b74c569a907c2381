package pricing

import "math"

// mulAmounts перемножает неотрицательные множители суммы в CLP.
// Переполнение int64 возвращается как ErrInvalidInput, а не как отрицательная сумма.
func mulAmounts(factors ...int64) (int64, error) {
	result := int64(1)
	for _, f := range factors {
		if f < 0 {
			return 0, invalid(ErrInvalidInput, "negative amount factor %d", f)
		}
		if f != 0 && result > math.MaxInt64/f {
			return 0, invalid(ErrInvalidInput, "amount overflows")
		}
		result *= f
	}
	return result, nil
}

// addAmounts складывает неотрицательные суммы с проверкой переполнения
func addAmounts(amounts ...int64) (int64, error) {
	var total int64
	for _, a := range amounts {
		if a < 0 {
			return 0, invalid(ErrInvalidInput, "negative amount %d", a)
		}
		if total > math.MaxInt64-a {
			return 0, invalid(ErrInvalidInput, "amount overflows")
		}
		total += a
	}
	return total, nil
}
