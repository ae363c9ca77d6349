package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransportError_Error(t *testing.T) {
	cause := errors.New("unknown state \"XX\"")

	tests := []struct {
		name   string
		status int
		want   string
	}{
		{name: "no response", status: 0, want: "viacep: unknown state \"XX\""},
		{name: "unusable payload", status: 200, want: "viacep: invalid payload: unknown state \"XX\""},
		{name: "error status", status: 503, want: "viacep: unexpected status 503: unknown state \"XX\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewTransportError("viacep", tt.status, cause)
			assert.Equal(t, tt.want, err.Error())
			assert.ErrorIs(t, err, cause)
		})
	}
}
