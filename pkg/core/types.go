package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Grid is the read-only surface a renderer polls each frame. Slices returned
// by Cells, AliveDeltas and DeadDeltas borrow the owner's buffers and are only
// valid until the owner is mutated again.
type Grid interface {
	Size() Size
	Cells() []uint64
	IsAlive(idx int) bool
	AliveDeltas() []int
	DeadDeltas() []int
}

// ParameterProvider exposes a snapshot of values worth showing to a user.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}
