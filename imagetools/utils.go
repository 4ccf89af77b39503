package imagetools

import (
	"fmt"
	"github.com/Marat-Tanalin/integer-scaling/api/apitype"
	"github.com/Marat-Tanalin/integer-scaling/common/logger"
	"github.com/disintegration/imaging"
	"time"
)

// ProbeSize returns the dimensions of the image file as displayed, i.e.
// with EXIF orientation applied
func ProbeSize(path string) (apitype.Size, error) {
	startTime := time.Now()
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return apitype.Size{}, fmt.Errorf("could not open image '%s': %w", path, err)
	}

	bounds := img.Bounds()
	size := apitype.SizeOf(bounds.Dx(), bounds.Dy())
	logger.Debug.Printf("Probed %s: %s in %s", path, size, time.Since(startTime).String())
	return size, nil
}
