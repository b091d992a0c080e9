package service

import "errors"

var (
	// ErrMaxRetriesExceeded возвращается когда не удалось подобрать свободный код
	// после максимального количества попыток
	ErrMaxRetriesExceeded = errors.New("max retries exceeded for code generation")

	// ErrInvalidAlias возвращается когда пользовательский алиас содержит
	// недопустимые символы или пуст
	ErrInvalidAlias = errors.New("invalid custom alias")

	// ErrAliasTaken возвращается когда пользовательский алиас уже занят
	ErrAliasTaken = errors.New("custom alias already taken")
)
