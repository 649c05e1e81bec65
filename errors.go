package yamlres

import "errors"

var (
	ErrInvalidSettings = errors.New("yamlres: invalid settings")
	ErrNilFS           = errors.New("yamlres: filesystem cannot be nil")
)
