package logger

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestStringToLogLevel(t *testing.T) {
	a := assert.New(t)

	a.Equal(ERROR, StringToLogLevel("error"))
	a.Equal(WARN, StringToLogLevel("WARN"))
	a.Equal(INFO, StringToLogLevel("Info"))
	a.Equal(DEBUG, StringToLogLevel("debug"))
	a.Equal(TRACE, StringToLogLevel("trace"))
	a.Equal(INFO, StringToLogLevel("verbose"))
}

func TestLogLevel_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("ERROR", ERROR.String())
	a.Equal("TRACE", TRACE.String())
	a.Equal("UNKNOWN", LogLevel(42).String())
}

func TestInitializeWithOutput(t *testing.T) {
	a := assert.New(t)
	defer InitializeWithOutput(INFO, &bytes.Buffer{})

	t.Run("Levels below the configured one are dropped", func(t *testing.T) {
		out := &bytes.Buffer{}
		InitializeWithOutput(WARN, out)

		Warn.Printf("ratio %d", 3)
		Debug.Printf("hidden %d", 4)

		a.Contains(out.String(), "ratio 3")
		a.NotContains(out.String(), "hidden 4")
		a.True(Error.Enabled())
		a.False(Info.Enabled())
	})
	t.Run("Trace enables everything", func(t *testing.T) {
		out := &bytes.Buffer{}
		InitializeWithOutput(TRACE, out)

		Trace.Print("anchor axis")

		a.Contains(out.String(), "anchor axis")
		a.True(Debug.Enabled())
	})
}
