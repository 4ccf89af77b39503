package fixture

import (
	"github.com/Marat-Tanalin/integer-scaling/api"
	"github.com/Marat-Tanalin/integer-scaling/api/apitype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"path/filepath"
	"testing"
)

type sentCommand struct {
	topic   api.Topic
	command apitype.Command
}

type recordingSender struct {
	commands []sentCommand
	errors   []string

	api.Sender
}

func (s *recordingSender) SendToTopic(topic api.Topic) {
	s.commands = append(s.commands, sentCommand{topic: topic})
}

func (s *recordingSender) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	s.commands = append(s.commands, sentCommand{topic: topic, command: command})
}

func (s *recordingSender) SendError(message string, err error) {
	s.errors = append(s.errors, message)
}

func (s *recordingSender) byTopic(topic api.Topic) []apitype.Command {
	var commands []apitype.Command
	for _, sent := range s.commands {
		if sent.topic == topic {
			commands = append(commands, sent.command)
		}
	}
	return commands
}

func newTestChecker() (*Checker, *recordingSender) {
	sender := &recordingSender{}
	return NewChecker(sender, api.NewSenderProgressReporter(sender)), sender
}

func TestChecker_Run(t *testing.T) {
	a := assert.New(t)
	cases, err := Load(filepath.Join("testdata", "testcases.json"))
	require.NoError(t, err)

	checker, sender := newTestChecker()
	report := checker.Run("testcases.json", cases)

	a.Equal("testcases.json", report.Source())
	a.Equal(6, report.Total())
	a.Equal(6, report.Passed())
	a.Equal(0, report.Failed())
	a.Empty(report.Failures())

	checked := sender.byTopic(api.CaseChecked)
	require.Len(t, checked, 6)
	for i, command := range checked {
		caseChecked := command.(*api.CaseCheckedCommand)
		a.Equal(i, caseChecked.Index)
		a.Equal(cases[i].Name, caseChecked.Name)
		a.True(caseChecked.Passed, caseChecked.Message)
	}

	progress := sender.byTopic(api.ProcessStatusUpdated)
	require.Len(t, progress, 7)
	last := progress[6].(*api.UpdateProgressCommand)
	a.Equal(6, last.Current)
	a.Equal(6, last.Total)

	completed := sender.byTopic(api.CheckCompleted)
	require.Len(t, completed, 1)
	a.Equal(&api.CheckCompletedCommand{Source: "testcases.json", Total: 6, Passed: 6, Failed: 0}, completed[0])
}

func TestChecker_RunWithFailures(t *testing.T) {
	a := assert.New(t)
	cases := []*Case{
		{Name: "passes", AreaWidth: 1920, AreaHeight: 1080, ImageWidth: 640, ImageHeight: 480, Width: 1280, Height: 960},
		{Name: "wrong size", AreaWidth: 1920, AreaHeight: 1080, ImageWidth: 640, ImageHeight: 480, Width: 1920, Height: 1440},
		{Name: "invalid", AreaWidth: 1920, AreaHeight: 1080, ImageWidth: 0, ImageHeight: 480, Width: 1280},
	}

	checker, sender := newTestChecker()
	report := checker.Run("inline", cases)

	a.Equal(3, report.Total())
	a.Equal(1, report.Passed())
	a.Equal(2, report.Failed())

	failures := report.Failures()
	require.Len(t, failures, 2)
	a.Equal("wrong size", failures[0].Case().Name)
	a.Equal("width: expected 1920, got 1280; height: expected 1440, got 960", failures[0].Message())
	a.NoError(failures[0].Err())
	a.Equal(apitype.SizeOf(1280, 960), failures[0].Outcome().Size)

	a.Equal("invalid", failures[1].Case().Name)
	a.Error(failures[1].Err())
	a.Contains(failures[1].Message(), "invalid test case")

	checked := sender.byTopic(api.CaseChecked)
	require.Len(t, checked, 3)
	a.False(checked[1].(*api.CaseCheckedCommand).Passed)
	a.Equal(failures[0].Message(), checked[1].(*api.CaseCheckedCommand).Message)
}

func TestChecker_RunEmpty(t *testing.T) {
	a := assert.New(t)

	checker, sender := newTestChecker()
	report := checker.Run("empty", nil)

	a.Equal(0, report.Total())
	a.Len(sender.byTopic(api.CheckCompleted), 1)
}
