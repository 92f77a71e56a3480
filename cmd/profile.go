package cmd

import (
	"fmt"
	"os"
	"runtime/pprof"
)

// startProfiling starts the CPU profile if --cpuprofile was given.
func (o *rootOptions) startProfiling() error {
	if o.cpuProfile == "" || o.stopProfile != nil {
		return nil
	}

	f, err := os.Create(o.cpuProfile)
	if err != nil {
		return fmt.Errorf("failed to create CPU profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}

	o.stopProfile = func() {
		pprof.StopCPUProfile()
		_ = f.Close()
	}
	return nil
}

// finish stops profiling. It is safe to call more than once.
func (o *rootOptions) finish() {
	if o.stopProfile != nil {
		o.stopProfile()
		o.stopProfile = nil
	}
}
