package main

import "errors"

var (
	errInvalidConfig    = errors.New("yamlres: invalid configuration")
	errReferenceMissing = errors.New("yamlres: reference language not found")
	errCheckFailed      = errors.New("yamlres: check failed")
)
