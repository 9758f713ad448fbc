package components

import "errors"

// ErrGraphNil is returned when the graph argument is nil.
var ErrGraphNil = errors.New("components: graph is nil")
