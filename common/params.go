package common

import (
	"errors"
	"flag"
	"fmt"
	"github.com/Marat-Tanalin/integer-scaling/api/apitype"
	"strings"
)

type Mode string

const (
	ModeRatio     Mode = "ratio"
	ModeRatios    Mode = "ratios"
	ModeSize      Mode = "size"
	ModeCorrected Mode = "corrected"
	ModePerfectY  Mode = "perfecty"
)

var modes = map[Mode]bool{
	ModeRatio:     true,
	ModeRatios:    true,
	ModeSize:      true,
	ModeCorrected: true,
	ModePerfectY:  true,
}

func ParseMode(value string) (Mode, error) {
	mode := Mode(strings.ToLower(strings.TrimSpace(value)))
	if !modes[mode] {
		return "", fmt.Errorf("unknown mode '%s', expected one of ratio, ratios, size, corrected, perfecty", value)
	}
	return mode, nil
}

type Params struct {
	area          apitype.Size
	image         apitype.Size
	imageFile     string
	aspect        apitype.AspectRatio
	mode          Mode
	testCasesPath string
	watch         bool
	logLevel      string
}

func NewEmptyParams() *Params {
	return &Params{
		area:          apitype.SizeOf(0, 0),
		image:         apitype.SizeOf(0, 0),
		imageFile:     "",
		aspect:        apitype.NoAspect,
		mode:          ModeSize,
		testCasesPath: "",
		watch:         false,
		logLevel:      "",
	}
}

func ParseParams() (*Params, error) {
	return ParseParamsFrom(flag.CommandLine, nil)
}

// ParseParamsFrom parses the arguments with the given flag set. A nil args
// parses os.Args through flag.Parse.
func ParseParamsFrom(flags *flag.FlagSet, args []string) (*Params, error) {
	area := flags.String("area", "", "Area size in format <width>x<height> e.g. 1920x1080")
	image := flags.String("image", "", "Image size in format <width>x<height> e.g. 320x240")
	imageFile := flags.String("imageFile", "", "Read image size from an image file instead of -image")
	aspect := flags.String("aspect", "", "Target aspect ratio in format <x>:<y> e.g. 4:3. Empty means square pixels")
	mode := flags.String("mode", "", "Calculation: ratio, ratios, size, corrected, perfecty. Defaults to corrected with -aspect, size without")
	testCases := flags.String("testcases", "", "Check test cases from a JSON or YAML file instead of calculating")
	watch := flags.Bool("watch", false, "Re-check the test cases whenever the file changes")
	logLevel := flags.String("logLevel", "INFO", "Log level: ERROR, WARN, INFO, DEBUG, TRACE")

	if args == nil {
		flag.Parse()
	} else if err := flags.Parse(args); err != nil {
		return nil, err
	}

	params := NewEmptyParams()
	params.imageFile = *imageFile
	params.testCasesPath = *testCases
	params.watch = *watch
	params.logLevel = *logLevel

	var err error
	if *area != "" {
		if params.area, err = apitype.ParseSize(*area); err != nil {
			return nil, err
		}
	}
	if *image != "" {
		if params.image, err = apitype.ParseSize(*image); err != nil {
			return nil, err
		}
	}
	if params.aspect, err = apitype.ParseAspect(*aspect); err != nil {
		return nil, err
	}

	if *mode != "" {
		if params.mode, err = ParseMode(*mode); err != nil {
			return nil, err
		}
	} else if params.aspect.IsSet() {
		params.mode = ModeCorrected
	}

	return params, nil
}

// Validate rejects input the scaling functions are not defined for
func (s *Params) Validate() error {
	if s.testCasesPath != "" {
		return nil
	}
	if s.watch {
		return errors.New("-watch requires -testcases")
	}
	if s.area.Width() <= 0 || s.area.Height() <= 0 {
		return fmt.Errorf("area must be positive, got %s", s.area)
	}
	if s.imageFile == "" {
		if s.image.Height() <= 0 || (s.mode != ModePerfectY && s.image.Width() <= 0) {
			return fmt.Errorf("image must be positive, got %s", s.image)
		}
	}
	if s.aspect.IsSet() && (s.aspect.X() <= 0 || s.aspect.Y() <= 0) {
		return fmt.Errorf("aspect ratio must be positive, got %s", s.aspect)
	}
	return nil
}

func (s *Params) WithImage(image apitype.Size) *Params {
	params := *s
	params.image = image
	return &params
}

func (s *Params) Area() apitype.Size {
	return s.area
}

func (s *Params) Image() apitype.Size {
	return s.image
}

func (s *Params) ImageFile() string {
	return s.imageFile
}

func (s *Params) Aspect() apitype.AspectRatio {
	return s.aspect
}

func (s *Params) Mode() Mode {
	return s.mode
}

func (s *Params) TestCasesPath() string {
	return s.testCasesPath
}

func (s *Params) Watch() bool {
	return s.watch
}

func (s *Params) LogLevel() string {
	return s.logLevel
}
