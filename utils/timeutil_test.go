// file: utils/timeutil_test.go
package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEpochMs(t *testing.T) {
	ts := time.UnixMilli(1700000000123)
	require.Equal(t, int64(1700000000123), EpochMs(ts))
}

func TestEpochMsPtr(t *testing.T) {
	require.Nil(t, EpochMsPtr(nil))

	var zero time.Time
	require.Nil(t, EpochMsPtr(&zero))

	ts := time.UnixMilli(1700000000123)
	got := EpochMsPtr(&ts)
	require.NotNil(t, got)
	require.Equal(t, int64(1700000000123), *got)
}
