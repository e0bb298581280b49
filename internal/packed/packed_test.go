package packed

import (
	"os"
	"path/filepath"
	"testing"

	"schedule-bot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func fields(values ...string) *Fields {
	return &Fields{values: values}
}

func TestUnpackSubject(t *testing.T) {
	s, err := UnpackSubject(fields("0", "Test title", "K-25", "false"))
	require.NoError(t, err)
	assert.Equal(t, models.Subject{ID: 0, Title: "Test title", Group: models.K25, Optional: false}, s)

	s, err = UnpackSubject(fields("7", "Elective", "K-25", "true"))
	require.NoError(t, err)
	assert.True(t, s.Optional)

	// Всё, что не "true", считается false
	s, err = UnpackSubject(fields("8", "Elective", "K-25", "True"))
	require.NoError(t, err)
	assert.False(t, s.Optional)
}

func TestUnpackSubject_Errors(t *testing.T) {
	_, err := UnpackSubject(fields("0", "Test title", "K-25"))
	assert.EqualError(t, err, "missing value for optional")

	_, err = UnpackSubject(fields("x", "Test title", "K-25", "false"))
	assert.Error(t, err)

	_, err = UnpackSubject(fields("0", "Test title", "K-99", "false"))
	assert.ErrorIs(t, err, models.ErrUnrecognizedToken)
}

func TestUnpackScheduleEntry(t *testing.T) {
	e, err := UnpackScheduleEntry(fields("Mon", "0", "Both", "4"))
	require.NoError(t, err)
	assert.Equal(t, models.ScheduleEntry{
		SubjectID: 0,
		Weekday:   models.Mon,
		Parity:    models.Both,
		Slot:      models.SlotIV,
	}, e)

	_, err = UnpackScheduleEntry(fields("Sat", "0", "Both", "4"))
	assert.ErrorIs(t, err, models.ErrUnrecognizedToken)

	_, err = UnpackScheduleEntry(fields("Mon", "0", "Both"))
	assert.EqualError(t, err, "missing value for slot")
}

func TestUnpackMeetingAndAssignment(t *testing.T) {
	m, err := UnpackMeeting(fields("0", "Test name", "K-25", "https://fake-link.lol"))
	require.NoError(t, err)
	assert.Equal(t, models.Meeting{ID: 0, Name: "Test name", Group: models.K25, Link: "https://fake-link.lol"}, m)

	a, err := UnpackAssignment(fields("1", "2"))
	require.NoError(t, err)
	assert.Equal(t, models.Assignment{MeetingID: 1, SubjectID: 2}, a)
}

func TestUnpack_SkipsBrokenChunks(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)

	lines := []string{
		"0", "Math", "K-25", "false", "",
		"1", "Physics", "K-99", "false", "",
		"2", "History", "K-25", "true", "",
		"3", "Art",
	}

	subjects, skipped := Unpack(lines, SubjectFields, "subject", UnpackSubject, log)

	require.Len(t, subjects, 2)
	assert.Equal(t, 2, skipped)
	assert.Equal(t, int64(0), subjects[0].ID)
	assert.Equal(t, int64(2), subjects[1].ID)

	errs := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	require.Len(t, errs, 2)
	assert.Equal(t, int64(6), errs[0].ContextMap()["line"])
	assert.Equal(t, int64(16), errs[1].ContextMap()["line"])
}

func TestUnpack_WarnsOnExtraValue(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)

	lines := []string{"Mon", "0", "Both", "4", "unexpected", "Tue", "1", "Odd", "I", ""}
	entries, skipped := Unpack(lines, ScheduleFields, "schedule", UnpackScheduleEntry, log)

	require.Len(t, entries, 2)
	assert.Zero(t, skipped)
	warns := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warns, 1)
	assert.Equal(t, "unexpected", warns[0].ContextMap()["value"])
}

func TestUnpackFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.packed")
	content := "Mon\n0\nBoth\n4\n\nSat\n2\nOdd\nI\n\nFri\n1\nEven\nII\n\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	entries, skipped, err := UnpackFile(path, ScheduleFields, "schedule", UnpackScheduleEntry, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, models.Fri, entries[1].Weekday)
	assert.Equal(t, models.SlotII, entries[1].Slot)

	_, _, err = UnpackFile(filepath.Join(t.TempDir(), "missing"), ScheduleFields, "schedule", UnpackScheduleEntry, zap.NewNop())
	assert.Error(t, err)
}

func TestLines(t *testing.T) {
	assert.Nil(t, Lines(""))
	assert.Equal(t, []string{"a", "", "b"}, Lines("a\r\n\r\nb\n"))
	assert.Equal(t, []string{"a", "b"}, Lines("a\nb"))
}
