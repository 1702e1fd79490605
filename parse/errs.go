package parse

import "errors"

var (
	ErrSyntax  = errors.New("json syntax error")
	ErrTooDeep = errors.New("document exceeds nesting limit")
)
