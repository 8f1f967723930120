//go:build !darwin && !linux

package surface

import "github.com/pspoerri/tilemap/internal/errors"

func totalSystemRAM() (uint64, error) {
	return 0, errors.New(errors.ErrCodeUnsupported, "RAM detection not available on this platform")
}
