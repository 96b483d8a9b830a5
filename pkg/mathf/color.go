package mathf

import "fmt"

// Color is a linear RGBA color with float32 channels.
type Color struct {
	R float32 `json:"r" yaml:"r"`
	G float32 `json:"g" yaml:"g"`
	B float32 `json:"b" yaml:"b"`
	A float32 `json:"a" yaml:"a"`
}

// NewColor creates a color from its channels.
func NewColor(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

func (c Color) String() string {
	return fmt.Sprintf("R:%v G:%v B:%v A:%v", c.R, c.G, c.B, c.A)
}
