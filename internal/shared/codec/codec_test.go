package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/contentforge/server/internal/shared/errors"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"text", []byte("hello world")},
		{"binary", []byte{0x00, 0xff, 0x10, 0x80, 0x7f}},
		{"mp3 header", []byte{0x49, 0x44, 0x33, 0x04, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := Encode(tt.data)
			decoded, err := Decode(encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.data, decoded)
		})
	}
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode("not base64!!!")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}
