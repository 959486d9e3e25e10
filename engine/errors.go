package engine

import "errors"

var ErrNoInterface = errors.New("interface unsupported")
