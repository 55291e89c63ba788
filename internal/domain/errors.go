package domain

import "errors"

var (
	ErrInvalidPlayerCount = errors.New("invalid player count")
	ErrEmptyRange         = errors.New("random range must not be empty")
	ErrUnresolvable       = errors.New("banned pair cannot be resolved")
	ErrInvalidCatalog     = errors.New("invalid catalog")
)
