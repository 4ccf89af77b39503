// Package fixture loads scaling test cases from JSON or YAML files and
// checks them against the scaling functions.
package fixture

import (
	"errors"
	"fmt"
	"github.com/Marat-Tanalin/integer-scaling/api/apitype"
	"github.com/Marat-Tanalin/integer-scaling/common"
	"github.com/Marat-Tanalin/integer-scaling/scaling"
	"strings"
)

// Case is a single test case. Expected values left at zero are not checked.
type Case struct {
	Name        string      `json:"name,omitempty" yaml:"name,omitempty"`
	Operation   common.Mode `json:"operation,omitempty" yaml:"operation,omitempty"`
	AreaWidth   int         `json:"areaWidth" yaml:"areaWidth"`
	AreaHeight  int         `json:"areaHeight" yaml:"areaHeight"`
	ImageWidth  int         `json:"imageWidth,omitempty" yaml:"imageWidth,omitempty"`
	ImageHeight int         `json:"imageHeight" yaml:"imageHeight"`
	AspectX     float64     `json:"aspectX,omitempty" yaml:"aspectX,omitempty"`
	AspectY     float64     `json:"aspectY,omitempty" yaml:"aspectY,omitempty"`
	RatioX      int         `json:"ratioX,omitempty" yaml:"ratioX,omitempty"`
	RatioY      int         `json:"ratioY,omitempty" yaml:"ratioY,omitempty"`
	Width       int         `json:"width,omitempty" yaml:"width,omitempty"`
	Height      int         `json:"height,omitempty" yaml:"height,omitempty"`
}

func (s *Case) Aspect() apitype.AspectRatio {
	return apitype.AspectOf(s.AspectX, s.AspectY)
}

// EffectiveOperation returns the operation to run: the explicit one, or
// corrected size with an aspect ratio and plain size without.
func (s *Case) EffectiveOperation() common.Mode {
	if s.Operation != "" {
		return common.Mode(strings.ToLower(string(s.Operation)))
	}
	if s.Aspect().IsSet() {
		return common.ModeCorrected
	}
	return common.ModeSize
}

func (s *Case) Validate() error {
	operation, err := common.ParseMode(string(s.EffectiveOperation()))
	if err != nil {
		return err
	}
	if s.AreaWidth <= 0 || s.AreaHeight <= 0 {
		return fmt.Errorf("area must be positive, got %dx%d", s.AreaWidth, s.AreaHeight)
	}
	if s.ImageHeight <= 0 || (operation != common.ModePerfectY && s.ImageWidth <= 0) {
		return fmt.Errorf("image must be positive, got %dx%d", s.ImageWidth, s.ImageHeight)
	}
	aspect := s.Aspect()
	if aspect.IsSet() && (aspect.X() <= 0 || aspect.Y() <= 0) {
		return fmt.Errorf("aspect must be both positive or both zero, got %s", aspect)
	}
	if s.RatioX == 0 && s.RatioY == 0 && s.Width == 0 && s.Height == 0 {
		return errors.New("no expected values")
	}
	return nil
}

// Outcome is what the scaling functions returned for a case. Ratios are
// only meaningful when HasRatios is set.
type Outcome struct {
	Ratios    apitype.Ratios
	Size      apitype.Size
	HasRatios bool
}

// Evaluate runs the case operation. The case must be valid.
func (s *Case) Evaluate() Outcome {
	switch s.EffectiveOperation() {
	case common.ModeRatio:
		ratio := scaling.CalculateRatio(s.AreaWidth, s.AreaHeight, s.ImageWidth, s.ImageHeight)
		return Outcome{
			Ratios:    apitype.UniformRatios(ratio),
			Size:      apitype.SizeOf(s.ImageWidth*ratio, s.ImageHeight*ratio),
			HasRatios: true,
		}
	case common.ModeSize:
		size := scaling.CalculateSize(s.AreaWidth, s.AreaHeight, s.ImageWidth, s.ImageHeight)
		return Outcome{
			Ratios:    apitype.UniformRatios(size.Width() / s.ImageWidth),
			Size:      size,
			HasRatios: true,
		}
	case common.ModeRatios, common.ModeCorrected:
		ratios := scaling.CalculateRatios(s.AreaWidth, s.AreaHeight, s.ImageWidth, s.ImageHeight, s.Aspect())
		return Outcome{
			Ratios:    ratios,
			Size:      apitype.SizeOf(s.ImageWidth*ratios.X(), s.ImageHeight*ratios.Y()),
			HasRatios: true,
		}
	default:
		size := scaling.CalculateSizeCorrectedPerfectY(s.AreaWidth, s.AreaHeight, s.ImageHeight, s.Aspect())
		return Outcome{Size: size}
	}
}

// Mismatches compares the outcome with the expected values
func (s *Case) Mismatches(outcome Outcome) []string {
	var mismatches []string
	check := func(name string, expected int, actual int) {
		if expected != 0 && expected != actual {
			mismatches = append(mismatches, fmt.Sprintf("%s: expected %d, got %d", name, expected, actual))
		}
	}

	if outcome.HasRatios {
		check("ratioX", s.RatioX, outcome.Ratios.X())
		check("ratioY", s.RatioY, outcome.Ratios.Y())
	} else {
		check("ratioY", s.RatioY, outcome.Size.Height()/s.ImageHeight)
		if s.RatioX != 0 {
			mismatches = append(mismatches, "ratioX: not available for perfecty")
		}
	}
	check("width", s.Width, outcome.Size.Width())
	check("height", s.Height, outcome.Size.Height())
	return mismatches
}
