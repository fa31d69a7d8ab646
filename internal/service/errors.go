package service

import "errors"

var (
	// ErrItemNotFound: лот с таким ID не существует.
	ErrItemNotFound = errors.New("item not found")
	// ErrInvalidItem: параметры нового лота не прошли проверку.
	ErrInvalidItem = errors.New("invalid item")
	// ErrInvalidSetting: параметры настройки аукциона не прошли проверку.
	ErrInvalidSetting = errors.New("invalid auction setting")
)
