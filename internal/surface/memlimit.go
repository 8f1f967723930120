package surface

import (
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/pspoerri/tilemap/internal/errors"
	"github.com/pspoerri/tilemap/internal/pixel"
	"github.com/pspoerri/tilemap/internal/raster"
)

// DefaultMemoryFraction is the share of total RAM a texture may occupy when
// no explicit limit is configured.
const DefaultMemoryFraction = 0.50

// ComputeMemoryLimit returns fraction of total system RAM minus the current
// Go runtime footprint, or 0 when RAM cannot be detected.
func ComputeMemoryLimit(fraction float64, logger *log.Logger) int64 {
	totalRAM, err := totalSystemRAM()
	if err != nil {
		logger.Debug("cannot detect system RAM; texture memory check disabled", "err", err)
		return 0
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	limit := int64(float64(totalRAM)*fraction) - int64(m.Sys)
	if limit <= 0 {
		logger.Debug("computed texture memory limit too small; check disabled",
			"ram_mb", totalRAM>>20, "sys_mb", m.Sys>>20)
		return 0
	}

	logger.Debug("texture memory limit",
		"limit_mb", limit>>20, "ram_mb", totalRAM>>20, "fraction", fraction)
	return limit
}

// checkTextureMemory rejects textures whose pixel buffer would exceed limit.
func checkTextureMemory(dims raster.Dimensions, limit int64, logger *log.Logger) error {
	if limit < 0 {
		return nil
	}
	if limit == 0 {
		limit = ComputeMemoryLimit(DefaultMemoryFraction, logger)
		if limit == 0 {
			return nil
		}
	}

	need := int64(dims.Area()) * int64(pixel.RGB8{}.ByteLength())
	if need > limit {
		return errors.New(errors.ErrCodeResourceLimit,
			"texture %v needs %.1f MB, limit is %.1f MB", dims,
			float64(need)/(1<<20), float64(limit)/(1<<20))
	}
	return nil
}
