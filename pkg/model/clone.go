package model

import "github.com/mohae/deepcopy"

// Clone returns a deep copy of a wire value. Slices, maps and pointers in the
// copy share no memory with v.
func Clone[T any](v T) T {
	return deepcopy.Copy(v).(T)
}
