// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package utils

import (
	"os"
	"runtime/pprof"

	"github.com/spf13/pflag"
)

func AddProfileFlags(flags *pflag.FlagSet) {
	flags.String("cpuprofile", "", "write cpu profile to file")
	flags.String("heapprofile", "", "write heap profile to file")
}

// StartProfiling starts cpu profiling if --cpuprofile is set. The returned
// function stops it, then writes a heap profile if --heapprofile is set.
func StartProfiling(flags *pflag.FlagSet) (stop func() error, err error) {
	cpuFile, err := flags.GetString("cpuprofile")
	if err != nil {
		return nil, err
	}
	heapFile, err := flags.GetString("heapprofile")
	if err != nil {
		return nil, err
	}
	var cpu *os.File
	if cpuFile != "" {
		if cpu, err = os.Create(cpuFile); err != nil {
			return nil, err
		}
		if err = pprof.StartCPUProfile(cpu); err != nil {
			cpu.Close()
			return nil, err
		}
	}
	return func() error {
		if cpu != nil {
			pprof.StopCPUProfile()
			if err := cpu.Close(); err != nil {
				return err
			}
		}
		if heapFile == "" {
			return nil
		}
		f, err := os.Create(heapFile)
		if err != nil {
			return err
		}
		defer f.Close()
		return pprof.WriteHeapProfile(f)
	}, nil
}
