package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevel_SetByName(t *testing.T) {
	defer Level.Set(slog.LevelInfo)

	testCases := []struct {
		name   string
		expect slog.Level
	}{
		{name: "debug", expect: slog.LevelDebug},
		{name: "WARNING", expect: slog.LevelWarn},
		{name: "err", expect: slog.LevelError},
		{name: "info", expect: slog.LevelInfo},
		{name: "off", expect: levelDisable},
	}
	for _, testCase := range testCases {
		Level.SetByName(testCase.name)
		assert.Equal(t, testCase.expect, Level.lvl.Level(), testCase.name)
	}

	Level.Set(slog.LevelWarn)
	Level.SetByName("bogus")
	assert.Equal(t, slog.LevelWarn, Level.lvl.Level(), "unknown names keep the current level")
}

func TestNew_Text(t *testing.T) {
	defer Level.Set(slog.LevelInfo)
	Level.Set(slog.LevelInfo)

	var buf bytes.Buffer
	l := New(&buf, FormatAuto)
	l.Debug("hidden")
	l.Info("placed label", "cube_level", "Geo/Country")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=info")
	assert.Contains(t, out, "cube_level=Geo/Country")
}

func TestNew_LevelAttribute(t *testing.T) {
	defer Level.Set(slog.LevelInfo)
	Level.Set(slog.LevelDebug)

	testCases := []struct {
		format Format
		expect []string
	}{
		{format: FormatText, expect: []string{"level=debug", "level=Geo/Country", "grouped.level=Time/Year"}},
		{format: FormatTerminal, expect: []string{"Geo/Country", "Time/Year"}},
	}
	for _, testCase := range testCases {
		var buf bytes.Buffer
		l := New(&buf, testCase.format)

		assert.NotPanics(t, func() {
			l.Debug("user level attribute", slog.String("level", "Geo/Country"))
			l.WithGroup("grouped").Warn("grouped level attribute", slog.String("level", "Time/Year"))
		}, string(testCase.format))
		for _, expect := range testCase.expect {
			assert.Contains(t, buf.String(), expect, string(testCase.format))
		}
	}
}

func TestDiscard(t *testing.T) {
	assert.False(t, Discard().Enabled(context.Background(), slog.LevelError))
}
