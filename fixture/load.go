package fixture

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/Marat-Tanalin/integer-scaling/common/logger"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrNotExist = errors.New("file does not exist")
	ErrNotFile  = errors.New("is not a file")
	ErrEmpty    = errors.New("does not contain data")
	ErrNotList  = errors.New("unexpected data, a list of test cases is expected")
)

// Load reads test cases from a JSON file, or a YAML file when the name ends
// with .yaml or .yml. Cases without a name get a generated one.
func Load(path string) ([]*Case, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("`%s` %w", path, ErrNotExist)
	} else if err != nil {
		return nil, fmt.Errorf("`%s`: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("`%s` %w", path, ErrNotFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("`%s`: %w", path, err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("`%s` %w", path, ErrEmpty)
	}

	var cases []*Case
	if isYaml(path) {
		cases, err = parseYaml(data)
	} else {
		cases, err = parseJson(data)
	}
	if err != nil {
		return nil, fmt.Errorf("`%s`: %w", path, err)
	}

	for _, testCase := range cases {
		if testCase.Name == "" {
			testCase.Name = uuid.New().String()
		}
	}
	logger.Debug.Printf("Loaded %d test cases from %s", len(cases), path)
	return cases, nil
}

func isYaml(path string) bool {
	extension := strings.ToLower(filepath.Ext(path))
	return extension == ".yaml" || extension == ".yml"
}

func parseJson(data []byte) ([]*Case, error) {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("JSON is invalid: %w", err)
	}
	if _, ok := raw.([]interface{}); !ok {
		return nil, ErrNotList
	}

	var cases []*Case
	if err := json.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("JSON is invalid: %w", err)
	}
	return removeNil(cases), nil
}

func parseYaml(data []byte) ([]*Case, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("YAML is invalid: %w", err)
	}
	if _, ok := raw.([]interface{}); !ok {
		return nil, ErrNotList
	}

	var cases []*Case
	if err := yaml.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("YAML is invalid: %w", err)
	}
	return removeNil(cases), nil
}

// removeNil drops null entries of the list
func removeNil(cases []*Case) []*Case {
	filtered := cases[:0]
	for _, testCase := range cases {
		if testCase != nil {
			filtered = append(filtered, testCase)
		}
	}
	return filtered
}
