package cli

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/charmbracelet/log"

	"github.com/pspoerri/tilemap/internal/errors"
)

// profiler writes optional CPU and heap profiles around a command.
type profiler struct {
	cpuPath string
	memPath string
	cpuFile *os.File
}

func (p *profiler) start(logger *log.Logger) error {
	if p.cpuPath == "" {
		return nil
	}
	f, err := os.Create(p.cpuPath)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "creating CPU profile")
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeIO, err, "starting CPU profile")
	}
	p.cpuFile = f
	logger.Debug("CPU profiling enabled", "path", p.cpuPath)
	return nil
}

func (p *profiler) stop(logger *log.Logger) error {
	if p.cpuFile != nil {
		pprof.StopCPUProfile()
		p.cpuFile.Close()
		p.cpuFile = nil
	}
	if p.memPath == "" {
		return nil
	}

	f, err := os.Create(p.memPath)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "creating memory profile")
	}
	defer f.Close()
	runtime.GC() // get up-to-date statistics
	if err := pprof.WriteHeapProfile(f); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "writing memory profile")
	}
	logger.Debug("memory profile written", "path", p.memPath)
	return nil
}
