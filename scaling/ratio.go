// Package scaling calculates integer scaling ratios for fitting an image
// into an area, optionally correcting the aspect ratio with different
// ratios per axis.
//
// Area and image dimensions must be positive. Nothing is validated here.
package scaling

import (
	"github.com/Marat-Tanalin/integer-scaling/api/apitype"
	"math"
)

// errorEpsilon is the distance under which two aspect errors are
// considered equal.
const errorEpsilon = .001

// CalculateRatio calculates an integer scaling ratio common for X/Y axes (square pixels).
func CalculateRatio(areaWidth int, areaHeight int, imageWidth int, imageHeight int) int {
	var areaSize, imageSize int
	if areaHeight*imageWidth < areaWidth*imageHeight {
		areaSize = areaHeight
		imageSize = imageHeight
	} else {
		areaSize = areaWidth
		imageSize = imageWidth
	}

	return atLeastOne(areaSize / imageSize)
}

// CalculateRatios calculates integer scaling ratios potentially different for X/Y axes
// as a result of aspect-ratio correction (rectangular pixels).
func CalculateRatios(areaWidth int, areaHeight int, imageWidth int, imageHeight int, aspect apitype.AspectRatio) apitype.Ratios {
	if !aspect.IsSet() || float64(imageWidth)*aspect.Y() == float64(imageHeight)*aspect.X() {
		return apitype.UniformRatios(CalculateRatio(areaWidth, areaHeight, imageWidth, imageHeight))
	}

	maxRatioX := areaWidth / imageWidth
	maxRatioY := areaHeight / imageHeight
	maxWidth := imageWidth * maxRatioX
	maxHeight := imageHeight * maxRatioY
	maxWidthAspectY := float64(maxWidth) * aspect.Y()
	maxHeightAspectX := float64(maxHeight) * aspect.X()

	var ratioX, ratioY int
	if maxWidthAspectY == maxHeightAspectX {
		ratioX = maxRatioX
		ratioY = maxRatioY
	} else {
		anchorX := maxWidthAspectY < maxHeightAspectX
		ratioA := maxRatioY
		if anchorX {
			ratioA = maxRatioX
		}

		ratioB := solveFreeAxis(imageWidth, imageHeight, maxWidth, maxHeight, ratioA, anchorX, aspect)

		if anchorX {
			ratioX, ratioY = ratioA, ratioB
		} else {
			ratioX, ratioY = ratioB, ratioA
		}
	}

	return apitype.RatiosOf(atLeastOne(ratioX), atLeastOne(ratioY))
}

// solveFreeAxis picks the integer ratio for the non-anchored axis that best
// matches the aspect ratio while the anchor axis stays at ratioA.
func solveFreeAxis(imageWidth int, imageHeight int, maxWidth int, maxHeight int, ratioA int, anchorX bool, aspect apitype.AspectRatio) int {
	maxSizeA, imageSizeB := maxHeight, imageWidth
	aspectA, aspectB := aspect.Y(), aspect.X()
	if anchorX {
		maxSizeA, imageSizeB = maxWidth, imageHeight
		aspectA, aspectB = aspect.X(), aspect.Y()
	}

	ratioBFract := float64(maxSizeA) * aspectB / aspectA / float64(imageSizeB)
	ratioBFloor := math.Floor(ratioBFract)
	ratioBCeil := math.Ceil(ratioBFract)

	// ratioA may be zero when the image does not fit the area; the resulting
	// infinities and NaNs fall through to the ceil candidate.
	parFloor := ratioBFloor / float64(ratioA)
	parCeil := ratioBCeil / float64(ratioA)
	if anchorX {
		parFloor = 1 / parFloor
		parCeil = 1 / parCeil
	}

	commonFactor := float64(imageWidth) * aspect.Y() / aspect.X() / float64(imageHeight)
	errorFloor := math.Abs(1 - commonFactor*parFloor)
	errorCeil := math.Abs(1 - commonFactor*parCeil)

	floor, ceil := int(ratioBFloor), int(ratioBCeil)
	if math.Abs(errorFloor-errorCeil) < errorEpsilon {
		if abs(ratioA-ceil) < abs(ratioA-floor) {
			return ceil
		}
		return floor
	}
	if errorFloor < errorCeil {
		return floor
	}
	return ceil
}

func atLeastOne(ratio int) int {
	if ratio < 1 {
		return 1
	}
	return ratio
}

func abs(value int) int {
	if value < 0 {
		return -value
	}
	return value
}
