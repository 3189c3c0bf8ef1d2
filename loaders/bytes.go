package loaders

import (
	"encoding/base64"
	"fmt"

	"github.com/daler-sz/adaptix/crown"
)

// BytesBase64 returns a loader producing []byte from standard base64
// strings. Raw []byte input passes through untouched.
func BytesBase64() crown.Loader {
	return func(raw any) (any, error) {
		switch v := raw.(type) {
		case []byte:
			return v, nil
		case string:
			data, err := base64.StdEncoding.DecodeString(v)
			if err != nil {
				return nil, fmt.Errorf("cannot load bytes from base64: %w", err)
			}

			return data, nil
		}

		return nil, fmt.Errorf("cannot load bytes from %T", raw)
	}
}
