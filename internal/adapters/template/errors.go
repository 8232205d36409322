package template

import (
	"errors"
)

// Sentinel kinds for template loading.
var (
	ErrRead    = errors.New("template read failed")
	ErrInvalid = errors.New("template is not a JSON object")
)
