// Package codec converts binary media to and from the transport-safe text
// representation embedded in JSON responses.
package codec

import (
	"encoding/base64"

	apperrors "github.com/contentforge/server/internal/shared/errors"
)

// Encode encodes binary media as base64 text.
func Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// Decode decodes base64 text back into binary media. Malformed input is a
// validation error since the text always originates from a caller.
func Decode(text string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, apperrors.Validationf("invalid base64 payload: %v", err)
	}
	return data, nil
}
