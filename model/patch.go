package model

import "github.com/sheikhrachel/go-gol-editor/rules"

// CellPatch asks for the cell at (X, Y) to be set to State
type CellPatch struct {
	X, Y  int
	State uint8
}

// AlivePatch sets (x, y) alive
func AlivePatch(x, y int) CellPatch {
	return CellPatch{X: x, Y: y, State: rules.Alive}
}

// DeadPatch sets (x, y) dead
func DeadPatch(x, y int) CellPatch {
	return CellPatch{X: x, Y: y, State: rules.Dead}
}
