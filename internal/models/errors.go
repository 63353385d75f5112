package models

import "errors"

var (
	// ErrNotFound - запрос с таким id не существует
	ErrNotFound = errors.New("emergency request not found")
	// ErrInvalidInput - входные данные вне допустимых границ
	ErrInvalidInput = errors.New("invalid input")
)
