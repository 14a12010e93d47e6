//go:build dev

package main

import (
	"os"
	"runtime/pprof"
)

func init() { cpuProfileFunc = profileFunc }

func profileFunc(profileFile string) func() {
	f, err := os.Create(profileFile)
	if err != nil {
		return nil
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return nil
	}
	return func() {
		pprof.StopCPUProfile()
		_ = f.Close()
	}
}
