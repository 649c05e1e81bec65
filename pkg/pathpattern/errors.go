package pathpattern

import "errors"

var (
	ErrMissingPlaceholder   = errors.New("pathpattern: pattern must contain the {language} placeholder")
	ErrMultiplePlaceholders = errors.New("pathpattern: pattern must contain the {language} placeholder exactly once")
	ErrEmptyLanguage        = errors.New("pathpattern: language cannot be empty")
)
