package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_NivelConfigurado(t *testing.T) {
	cases := []struct {
		level string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
	}
	for _, tc := range cases {
		t.Run(tc.level, func(t *testing.T) {
			l := New(Config{Env: "production", Level: tc.level})
			assert.Equal(t, tc.want, l.Zerolog().GetLevel())
		})
	}
}

func TestNew_NivelInvalidoCaeEnInfo(t *testing.T) {
	l := New(Config{Env: "production", Level: "gritando"})
	assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel())
}

func TestNew_NivelVacioCaeEnInfo(t *testing.T) {
	l := New(Config{Env: "production"})
	assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel())
}

func TestNew_EnDebugSeEmitenEventosDebug(t *testing.T) {
	l := New(Config{Env: "production", Level: "debug"})
	assert.True(t, l.Debug().Enabled())
	assert.False(t, l.Trace().Enabled())
}
