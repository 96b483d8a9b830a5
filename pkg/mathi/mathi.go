// Package mathi contains the integer vector types.
package mathi

import "fmt"

// Int2 is a two component integer vector.
type Int2 struct {
	X int32 `json:"x" yaml:"x"`
	Y int32 `json:"y" yaml:"y"`
}

// Int3 is a three component integer vector, typically a grid cell.
type Int3 struct {
	X int32 `json:"x" yaml:"x"`
	Y int32 `json:"y" yaml:"y"`
	Z int32 `json:"z" yaml:"z"`
}

// Int4 is a four component integer vector.
type Int4 struct {
	X int32 `json:"x" yaml:"x"`
	Y int32 `json:"y" yaml:"y"`
	Z int32 `json:"z" yaml:"z"`
	W int32 `json:"w" yaml:"w"`
}

func (v Int2) String() string { return fmt.Sprintf("X:%d Y:%d", v.X, v.Y) }

func (v Int3) String() string { return fmt.Sprintf("X:%d Y:%d Z:%d", v.X, v.Y, v.Z) }

func (v Int4) String() string { return fmt.Sprintf("X:%d Y:%d Z:%d W:%d", v.X, v.Y, v.Z, v.W) }
