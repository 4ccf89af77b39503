package apitype

import (
	"fmt"
	"strconv"
	"strings"
)

// AspectRatio is the width:height ratio the scaled image should have.
// The zero value means no aspect-ratio correction (square pixels).
type AspectRatio struct {
	x   float64
	y   float64
	set bool
}

var NoAspect = AspectRatio{}

// AspectOf returns NoAspect when both values are zero.
func AspectOf(x float64, y float64) AspectRatio {
	if x == 0 && y == 0 {
		return NoAspect
	}
	return AspectRatio{x: x, y: y, set: true}
}

func (s AspectRatio) X() float64 {
	return s.x
}

func (s AspectRatio) Y() float64 {
	return s.y
}

func (s AspectRatio) IsSet() bool {
	return s.set
}

func (s AspectRatio) String() string {
	if !s.set {
		return "none"
	}
	return strconv.FormatFloat(s.x, 'g', -1, 64) + ":" + strconv.FormatFloat(s.y, 'g', -1, 64)
}

// ParseAspect parses aspect ratios written as "4:3". Empty value returns NoAspect.
func ParseAspect(value string) (AspectRatio, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return NoAspect, nil
	}

	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return NoAspect, fmt.Errorf("invalid aspect ratio '%s', expected <x>:<y>", value)
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return NoAspect, fmt.Errorf("invalid aspect x in '%s': %w", value, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return NoAspect, fmt.Errorf("invalid aspect y in '%s': %w", value, err)
	}
	return AspectOf(x, y), nil
}
