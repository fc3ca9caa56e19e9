package main

import (
	"context"
	"errors"

	"github.com/aleister1102/faultyurls/internal/common"
	"github.com/aleister1102/faultyurls/internal/extractor"
	"github.com/aleister1102/faultyurls/internal/rslimiter"
)

// Process exit codes. 1 and 2 keep the values scripts already depend on;
// the rest follow sysexits.h.
const (
	ExitOK               = 0
	ExitNoInputFlag      = 1
	ExitMissingRespCode  = 1
	ExitMissingURL       = 2
	ExitUsage            = 64
	ExitDataErr          = 65
	ExitNoInput          = 66
	ExitResourceLimit    = 70
	ExitIOErr            = 74
	ExitOutputDirMissing = 77
	ExitConfig           = 78
	ExitInterrupted      = 130
)

var (
	errNoInputFile = errors.New("no input file specified")
	errUsage       = errors.New("invalid usage")
)

// inputError marks failures locating the input file.
type inputError struct{ err error }

func (e *inputError) Error() string { return e.err.Error() }
func (e *inputError) Unwrap() error { return e.err }

// outputDirError marks failures locating the output directory.
type outputDirError struct{ err error }

func (e *outputDirError) Error() string { return e.err.Error() }
func (e *outputDirError) Unwrap() error { return e.err }

// exitCodeFor maps a run error to the process exit code.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitOK
	}

	var (
		inErr   *inputError
		outErr  *outputDirError
		missing *extractor.MissingColumnError
		rowErr  *extractor.RowError
	)

	switch {
	case errors.Is(err, errNoInputFile):
		return ExitNoInputFlag
	case errors.Is(err, errUsage):
		return ExitUsage
	case errors.As(err, &inErr):
		return ExitNoInput
	case errors.As(err, &outErr):
		return ExitOutputDirMissing
	case errors.Is(err, common.ErrInvalidConfiguration):
		return ExitConfig
	case errors.As(err, &missing):
		if missing.Column == extractor.URLColumn {
			return ExitMissingURL
		}
		return ExitMissingRespCode
	case errors.As(err, &rowErr), errors.Is(err, extractor.ErrEmptyInput):
		return ExitDataErr
	case errors.Is(err, rslimiter.ErrMemoryLimitExceeded), errors.Is(err, rslimiter.ErrSystemMemoryExceeded):
		return ExitResourceLimit
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	default:
		return ExitIOErr
	}
}
