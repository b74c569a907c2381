package draft

import "errors"

var (
	// ErrDraftNotFound черновик не найден или истек
	ErrDraftNotFound = errors.New("draft.store: draft not found")

	// ErrEncode ошибка сериализации черновика
	ErrEncode = errors.New("draft.store: failed to encode draft")

	// ErrDecode ошибка десериализации черновика
	ErrDecode = errors.New("draft.store: failed to decode draft")

	// ErrStore ошибка хранилища
	ErrStore = errors.New("draft.store: storage error")

	// ErrUnsupportedScheme неизвестная схема в строке подключения
	ErrUnsupportedScheme = errors.New("draft.store: unsupported url scheme")
)
