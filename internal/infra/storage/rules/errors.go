package rules

import "errors"

var (
	// ErrRulesNotFound возвращается, когда правила не найдены
	ErrRulesNotFound = errors.New("rules.repository: pricing rules not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("rules.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("rules.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("rules.repository: failed to scan row")

	// ErrDuplicateRules возвращается при попытке создать дубликат правил для того же ключа
	ErrDuplicateRules = errors.New("rules.repository: duplicate rules for space type and space")
)
