package document

import "errors"

var (
	ErrParse        = errors.New("document: malformed YAML")
	ErrNotMapping   = errors.New("document: root node is not a mapping")
	ErrInvalidKey   = errors.New("document: mapping key is not a scalar")
	ErrTooDeep      = errors.New("document: nesting exceeds maximum depth")
	ErrDuplicateKey = errors.New("document: duplicate key")
	ErrKeyConflict  = errors.New("document: key conflicts with an existing entry")
	ErrTooLarge     = errors.New("document: alias expansion exceeds the size limit")
	ErrInvalidUTF8  = errors.New("document: text is not valid UTF-8")
)
