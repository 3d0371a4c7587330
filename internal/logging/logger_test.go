package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, DEBUG, lvl)

	lvl, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, INFO, lvl)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	Configure(Settings{ConsoleLevel: WARN, FileLevel: DEBUG, Console: &buf})
	defer Configure(Settings{ConsoleLevel: INFO, FileLevel: DEBUG})

	l, err := NewLogger("test")
	require.NoError(t, err)

	l.Info("не должно попасть в консоль")
	l.Warn("регион %d", 7)

	out := buf.String()
	assert.NotContains(t, out, "не должно")
	assert.Contains(t, out, "[WARN] [test] регион 7")
}

func TestLoggerWritesFile(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	Configure(Settings{Dir: dir, ConsoleLevel: ERROR, FileLevel: TRACE, Console: &buf})
	defer Configure(Settings{ConsoleLevel: INFO, FileLevel: DEBUG})

	l, err := NewLogger("gen")
	require.NoError(t, err)
	l.Trace("сгенерирован регион")
	require.NoError(t, l.Close())

	files, err := filepath.Glob(filepath.Join(dir, "gen_*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "[TRACE] [gen] сгенерирован регион")
	assert.Empty(t, buf.String())
}

func TestNilLoggerIsSilent(t *testing.T) {
	var l *Logger
	assert.NotPanics(t, func() {
		l.Info("ничего")
		Info("глобальный логгер не инициализирован")
	})
}

func TestLoggerManager(t *testing.T) {
	lm := &LoggerManager{loggers: make(map[string]*Logger)}

	a, err := lm.GetLogger("world")
	require.NoError(t, err)
	b, err := lm.GetLogger("world")
	require.NoError(t, err)
	assert.Same(t, a, b)

	assert.ElementsMatch(t, []string{"world"}, lm.ListComponents())
	assert.NoError(t, lm.SetLogLevel("world", ERROR, ERROR))
	assert.Error(t, lm.SetLogLevel("missing", ERROR, ERROR))
	assert.NoError(t, lm.CloseAll())
	assert.Empty(t, lm.ListComponents())
}
