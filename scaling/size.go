package scaling

import (
	"github.com/Marat-Tanalin/integer-scaling/api/apitype"
	"math"
)

// CalculateSize calculates size of the scaled image without aspect-ratio correction.
func CalculateSize(areaWidth int, areaHeight int, imageWidth int, imageHeight int) apitype.Size {
	ratio := CalculateRatio(areaWidth, areaHeight, imageWidth, imageHeight)

	return apitype.SizeOf(imageWidth*ratio, imageHeight*ratio)
}

// CalculateSizeCorrected calculates size of the scaled image with aspect-ratio correction.
func CalculateSizeCorrected(areaWidth int, areaHeight int, imageWidth int, imageHeight int, aspect apitype.AspectRatio) apitype.Size {
	ratios := CalculateRatios(areaWidth, areaHeight, imageWidth, imageHeight, aspect)

	return apitype.SizeOf(imageWidth*ratios.X(), imageHeight*ratios.Y())
}

// CalculateSizeCorrectedPerfectY calculates size of the scaled image with
// aspect-ratio correction using an integer vertical ratio and a fractional
// horizontal one, e.g. for uniform scanlines. The width is rounded to the
// nearest pixel and kept inside the area.
func CalculateSizeCorrectedPerfectY(areaWidth int, areaHeight int, imageHeight int, aspect apitype.AspectRatio) apitype.Size {
	imageWidth := float64(imageHeight)
	if aspect.IsSet() {
		imageWidth = imageWidth * aspect.X() / aspect.Y()
	}

	var areaSize, imageSize float64
	if float64(areaHeight)*imageWidth < float64(areaWidth)*float64(imageHeight) {
		areaSize = float64(areaHeight)
		imageSize = float64(imageHeight)
	} else {
		areaSize = float64(areaWidth)
		imageSize = imageWidth
	}

	ratio := atLeastOne(int(math.Floor(areaSize / imageSize)))

	width := int(math.Round(imageWidth * float64(ratio)))
	if width > areaWidth {
		width--
	}

	return apitype.SizeOf(width, imageHeight*ratio)
}
