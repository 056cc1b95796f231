package deficit

import "errors"

var ErrDeficitNotFound = errors.New("deficit not found")
