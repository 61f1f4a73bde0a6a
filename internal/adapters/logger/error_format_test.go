package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "single standard error",
			err:  errors.New("simple error"),
			want: []string{"simple error"},
		},
		{
			name: "zerr single error",
			err:  zerr.New("zerr error"),
			want: []string{"zerr error"},
		},
		{
			name: "zerr wrapped chain",
			err: zerr.Wrap(
				zerr.Wrap(
					errors.New("root cause"),
					"middle layer",
				),
				"outer layer",
			),
			want: []string{"outer layer", "middle layer", "root cause"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collectErrorEntries(tt.err))
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name     string
		messages []string
		want     string
	}{
		{
			name:     "single message",
			messages: []string{"boom"},
			want:     "Error: boom",
		},
		{
			name:     "chain",
			messages: []string{"outer", "middle", "root"},
			want:     "Error: outer\n\n  Caused by:\n    → middle\n    → root",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatErrorEntries(tt.messages))
		})
	}
}
