package logger_test

import (
	"testing"

	"betola/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("development environment with different log levels", func(t *testing.T) {
		testCases := []struct {
			level string
			valid bool
		}{
			{"debug", true},
			{"info", true},
			{"warn", true},
			{"error", true},
			{"", true},
			{"invalid", false},
		}

		for _, tc := range testCases {
			t.Run("level="+tc.level, func(t *testing.T) {
				log, err := logger.NewLogger(logger.Development, tc.level)
				if tc.valid {
					require.NoError(t, err)
					require.NotNil(t, log)
				} else {
					require.Error(t, err)
					assert.Nil(t, log)
				}
			})
		}
	})

	t.Run("production environment", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Production, "info")
		require.NoError(t, err)
		require.NotNil(t, log)
	})

	t.Run("With returns an independent logger", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)

		derived := log.With()
		assert.NotNil(t, derived)
	})
}
