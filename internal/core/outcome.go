package core

import (
	"bclip/config"
	errs "bclip/internal/errors"
)

// Outcome is the single status an invocation reports upward.
type Outcome int

const (
	Success Outcome = iota
	EmptyInput
	BinaryRejected
	Unavailable
	SizeExceeded
	IoFailure
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case EmptyInput:
		return "empty input"
	case BinaryRejected:
		return "binary rejected"
	case Unavailable:
		return "unavailable"
	case SizeExceeded:
		return "size exceeded"
	default:
		return "i/o failure"
	}
}

// Exit codes.
const (
	ExitSuccess     = 0
	ExitFailure     = 1
	ExitEmptyInput  = 2
	ExitUnavailable = 3
	ExitBinary      = 4
)

// ExitCode is the process status for o.
func (o Outcome) ExitCode() int {
	switch o {
	case Success:
		return ExitSuccess
	case EmptyInput:
		return ExitEmptyInput
	case Unavailable:
		return ExitUnavailable
	case BinaryRejected:
		return ExitBinary
	default: // SizeExceeded, IoFailure
		return ExitFailure
	}
}

// Classify maps any error returned by a Mode onto one Outcome.  Protocol
// errors from a clipboard query count as Unavailable: the terminal or
// multiplexer does not support reading the clipboard.
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return Success
	case errs.Is(err, errs.ErrEmptyInput):
		return EmptyInput
	case errs.Is(err, errs.ErrBinaryRejected):
		return BinaryRejected
	case errs.Is(err, errs.ErrSizeExceeded):
		return SizeExceeded
	case errs.Is(err, errs.ErrUnavailable),
		errs.Is(err, errs.ErrClipboardEmpty),
		errs.Is(err, errs.ErrUnsupported),
		errs.IsProtocol(err):
		return Unavailable
	default:
		return IoFailure
	}
}

// ClassifyFor is Classify for one operation.  Exit 3 belongs to reads:
// a clipboard that cannot be written or cleared is a general failure.
func ClassifyFor(mode config.Mode, err error) Outcome {
	o := Classify(err)
	if o == Unavailable && mode != config.ModeRead {
		return IoFailure
	}
	return o
}
