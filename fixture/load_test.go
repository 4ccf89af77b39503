package fixture

import (
	"github.com/Marat-Tanalin/integer-scaling/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Json(t *testing.T) {
	a := assert.New(t)

	cases, err := Load(filepath.Join("testdata", "testcases.json"))
	require.NoError(t, err)

	a.Len(cases, 6)
	first := cases[0]
	a.Equal("VGA in Full HD", first.Name)
	a.Equal(common.ModeRatio, first.Operation)
	a.Equal(1920, first.AreaWidth)
	a.Equal(1080, first.AreaHeight)
	a.Equal(640, first.ImageWidth)
	a.Equal(480, first.ImageHeight)
	a.Equal(2, first.RatioX)
	a.Equal(2, first.RatioY)

	a.Equal(8.0, cases[3].AspectX)
	a.Equal(7.0, cases[3].AspectY)
	a.Equal(common.ModePerfectY, cases[5].Operation)
}

func TestLoad_Yaml(t *testing.T) {
	a := assert.New(t)

	cases, err := Load(filepath.Join("testdata", "testcases.yaml"))
	require.NoError(t, err)

	a.Len(cases, 2)
	a.Equal("VGA in Full HD", cases[0].Name)
	a.Equal(common.ModeRatio, cases[0].Operation)
	a.Equal(4.0, cases[1].AspectX)
	a.Equal(640, cases[1].Width)
	a.Equal(400, cases[1].Height)
	a.NotEmpty(cases[1].Name, "generated name")
}

func TestLoad_GeneratesNames(t *testing.T) {
	a := assert.New(t)
	path := writeFile(t, "cases.json", `[{"areaWidth": 10, "areaHeight": 10}, {"areaWidth": 20, "areaHeight": 20}, null]`)

	cases, err := Load(path)
	require.NoError(t, err)

	a.Len(cases, 2)
	a.Len(cases[0].Name, 36)
	a.NotEqual(cases[0].Name, cases[1].Name)
}

func TestLoad_Errors(t *testing.T) {
	a := assert.New(t)

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "testcases.json"))
		a.ErrorIs(err, ErrNotExist)
	})
	t.Run("Directory", func(t *testing.T) {
		_, err := Load(t.TempDir())
		a.ErrorIs(err, ErrNotFile)
	})
	t.Run("Empty file", func(t *testing.T) {
		_, err := Load(writeFile(t, "testcases.json", " \n\t "))
		a.ErrorIs(err, ErrEmpty)
	})
	t.Run("Object instead of list", func(t *testing.T) {
		_, err := Load(writeFile(t, "testcases.json", `{"areaWidth": 10}`))
		a.ErrorIs(err, ErrNotList)
	})
	t.Run("YAML mapping instead of list", func(t *testing.T) {
		_, err := Load(writeFile(t, "testcases.yml", "areaWidth: 10\n"))
		a.ErrorIs(err, ErrNotList)
	})
	t.Run("Invalid JSON", func(t *testing.T) {
		_, err := Load(writeFile(t, "testcases.json", `[{"areaWidth": }]`))
		a.Error(err)
		a.Contains(err.Error(), "JSON is invalid")
	})
	t.Run("Invalid YAML", func(t *testing.T) {
		_, err := Load(writeFile(t, "testcases.yaml", "- areaWidth: [1, 2\n"))
		a.Error(err)
		a.Contains(err.Error(), "YAML is invalid")
	})
	t.Run("Wrong field type", func(t *testing.T) {
		_, err := Load(writeFile(t, "testcases.json", `[{"areaWidth": "wide"}]`))
		a.Error(err)
	})
}
