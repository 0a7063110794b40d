package logger

import (
	"bytes"
	"database/sql/driver"
	"testing"
	"time"

	"userdesk/testutil"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelsAndOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(&bytes.Buffer{})
		std.SetLevel(logrus.InfoLevel)
	})

	require.NoError(t, SetLevel("warn"))
	Info("hidden %d", 1)
	Warn("shown %s", "warning")

	out := buf.String()
	assert.NotContains(t, out, "hidden 1")
	assert.Contains(t, out, "shown warning")
	assert.Contains(t, out, "level=warning")
}

func TestSetLevelRejectsUnknown(t *testing.T) {
	assert.Error(t, SetLevel("loud"))
}

func TestLevelName(t *testing.T) {
	assert.Equal(t, "INFO", levelName(logrus.InfoLevel))
	assert.Equal(t, "WARN", levelName(logrus.WarnLevel))
	assert.Equal(t, "ERROR", levelName(logrus.ErrorLevel))
	assert.Equal(t, "DEBUG", levelName(logrus.TraceLevel))
}

func TestHookWithoutDatabase(t *testing.T) {
	old := DB
	DB = nil
	t.Cleanup(func() { DB = old })

	h := &dbHook{}
	assert.NoError(t, h.Fire(logrus.NewEntry(logrus.New())))
	assert.NotContains(t, h.Levels(), logrus.DebugLevel)
}

func TestGetLogsWithoutDatabase(t *testing.T) {
	old := DB
	DB = nil
	t.Cleanup(func() { DB = old })

	_, err := GetLogs(10)
	assert.Error(t, err)
}

func TestGetLogs(t *testing.T) {
	old := DB
	t.Cleanup(func() { DB = old })

	columns := []string{"id", "level", "message", "details", "created_at"}
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("rows", func(t *testing.T) {
		DB = testutil.OpenStubDB(t, &testutil.SQLStub{
			Columns: columns,
			Rows: [][]driver.Value{
				{int64(2), "WARN", "second", "map[user:alice]", at},
				{int64(1), "INFO", "first", nil, at},
			},
		})

		logs, err := GetLogs(10)
		require.NoError(t, err)
		require.Len(t, logs, 2)
		assert.Equal(t, "WARN", logs[0].Level)
		assert.Equal(t, "map[user:alice]", logs[0].Details)
		assert.Empty(t, logs[1].Details)
		assert.True(t, at.Equal(logs[1].CreatedAt))
	})

	t.Run("bad row is reported", func(t *testing.T) {
		DB = testutil.OpenStubDB(t, &testutil.SQLStub{
			Columns: columns,
			Rows: [][]driver.Value{
				{int64(1), "INFO", "fine", nil, at},
				{int64(2), "INFO", "broken", nil, "yesterday"},
			},
		})

		logs, err := GetLogs(10)
		assert.ErrorContains(t, err, "scan log entry")
		assert.Nil(t, logs)
	})
}
