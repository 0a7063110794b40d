package checker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedCount struct {
	n   int
	err error
}

func (f fixedCount) Count(ctx context.Context) (int, error) { return f.n, f.err }

func stubUptime(t *testing.T, seconds uint64, err error) {
	old := uptime
	uptime = func(ctx context.Context) (uint64, error) { return seconds, err }
	t.Cleanup(func() { uptime = old })
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		seconds uint64
		want    string
	}{
		{0, "0m"},
		{59, "0m"},
		{125, "2m"},
		{3*3600 + 7*60, "3h 7m"},
		{2*86400 + 5*3600 + 60, "2d 5h 1m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatUptime(tt.seconds))
	}
}

func TestCheckSystem(t *testing.T) {
	stubUptime(t, 3600, nil)

	status, err := CheckSystem(context.Background(), fixedCount{n: 3})
	require.NoError(t, err)
	assert.Equal(t, uint64(3600), status.Uptime)
	assert.Equal(t, "1h 0m", status.UptimeString)
	assert.Equal(t, 3, status.UserCount)
	assert.Equal(t, Version, status.Version)
}

func TestCheckSystemErrors(t *testing.T) {
	t.Run("uptime", func(t *testing.T) {
		stubUptime(t, 0, errors.New("no proc"))
		_, err := CheckSystem(context.Background(), nil)
		assert.ErrorContains(t, err, "uptime")
	})

	t.Run("count", func(t *testing.T) {
		stubUptime(t, 10, nil)
		_, err := CheckSystem(context.Background(), fixedCount{err: errors.New("db down")})
		assert.ErrorContains(t, err, "user count")
	})
}
