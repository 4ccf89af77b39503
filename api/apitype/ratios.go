package apitype

import "fmt"

// Ratios holds the horizontal and vertical integer scaling ratios.
type Ratios struct {
	x int
	y int
}

func RatiosOf(x int, y int) Ratios {
	return Ratios{x, y}
}

func UniformRatios(ratio int) Ratios {
	return Ratios{ratio, ratio}
}

func (s Ratios) X() int {
	return s.x
}

func (s Ratios) Y() int {
	return s.y
}

func (s Ratios) IsUniform() bool {
	return s.x == s.y
}

func (s Ratios) String() string {
	return fmt.Sprintf("%dx%d", s.x, s.y)
}
