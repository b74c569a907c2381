package rules

import "errors"

var (
	// ErrRulesNotFound возвращается, когда правила не найдены
	ErrRulesNotFound = errors.New("rules not found")

	// ErrSpaceNotFound возвращается, когда пространство не найдено в каталоге
	ErrSpaceNotFound = errors.New("space not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrRulesAlreadyExists возвращается при конкурентном создании правил с тем же ключом
	ErrRulesAlreadyExists = errors.New("rules already exist")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
