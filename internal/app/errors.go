package service

import (
	"errors"
)

// ErrTemplateLoad is returned when a baseline document cannot be read or
// parsed. It is the only failure ComputeWalletProfile surfaces besides an
// invalid address.
var ErrTemplateLoad = errors.New("template load failed")
