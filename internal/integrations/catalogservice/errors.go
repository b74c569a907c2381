package catalogservice

import "errors"

var (
	// ErrSpaceNotFound возвращается, когда пространство не найдено в каталоге
	ErrSpaceNotFound = errors.New("catalogservice: space not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("catalogservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("catalogservice client: invalid response")
)
