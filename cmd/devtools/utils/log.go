// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package utils

import (
	"context"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type loggerKey struct{}

func SetLogger(ctx context.Context, logger *logr.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

func GetLogger(cmd *cobra.Command) *logr.Logger {
	if ctx := cmd.Context(); ctx != nil {
		if v := ctx.Value(loggerKey{}); v != nil {
			return v.(*logr.Logger)
		}
	}
	return nil
}

func AddLoggerFlags(flags *pflag.FlagSet) {
	flags.Int("log-verbosity", 0, "log verbosity. Higher value means more log")
	flags.String("log-file", "", "output logs to specified file instead of stderr")
}

// SetupLogger creates the command logger once and stores it in the command
// context. Logs go to stderr so they never mix with command output.
func SetupLogger(cmd *cobra.Command) (logger logr.Logger, cleanup func(), err error) {
	cleanup = func() {}
	if l := GetLogger(cmd); l != nil {
		return *l, cleanup, nil
	}
	verbosity, err := cmd.Flags().GetInt("log-verbosity")
	if err != nil {
		return logr.Discard(), nil, err
	}
	logFile, err := cmd.Flags().GetString("log-file")
	if err != nil {
		return logr.Discard(), nil, err
	}
	var std stdr.StdLogger
	if logFile != "" {
		f, err := os.Create(logFile)
		if err != nil {
			return logr.Discard(), nil, err
		}
		std = log.New(f, "", log.LstdFlags)
		cleanup = func() {
			f.Close()
		}
	} else {
		std = log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
	}
	logger = stdr.New(std).V(1)
	stdr.SetVerbosity(verbosity)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(SetLogger(ctx, &logger))
	return logger, cleanup, nil
}
