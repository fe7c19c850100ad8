package core

import "errors"

// ErrInvalidParameter is wrapped by every constructor or operation that
// rejects a caller-supplied parameter.
var ErrInvalidParameter = errors.New("invalid parameter")

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract the interactive viewer drives.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}
