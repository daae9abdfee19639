package report

import "errors"

var ErrInvalidInput = errors.New("invalid input")
