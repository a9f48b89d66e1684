package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Console info by default", func(t *testing.T) {
		log, err := New(false, false)
		require.NoError(t, err)
		assert.False(t, log.Core().Enabled(-1)) // debug disabled
	})

	t.Run("Debug enables verbose output", func(t *testing.T) {
		log, err := New(false, true)
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(-1))
	})

	t.Run("JSON encoding", func(t *testing.T) {
		log, err := New(true, false)
		require.NoError(t, err)
		assert.NotNil(t, log)
	})
}
