package storage

import "fmt"

// RCCode enumerates the buffer pool's error taxonomy. Every fault a caller
// can observe maps to exactly one of these; the pool never returns a bare
// error from a lower layer without wrapping it first.
type RCCode int

const (
	RCOk RCCode = iota
	RCPoolNotOpen
	RCPoolShutdownError
	RCPinnedPagesInBuffer
	RCNegativePageNum
	RCPageNotInFramelist
	RCPageNotPinned
	RCNoEvictableFrame
	RCIoError
)

func (c RCCode) String() string {
	switch c {
	case RCOk:
		return "OK"
	case RCPoolNotOpen:
		return "PoolNotOpen"
	case RCPoolShutdownError:
		return "PoolShutdownError"
	case RCPinnedPagesInBuffer:
		return "PinnedPagesInBuffer"
	case RCNegativePageNum:
		return "NegativePageNum"
	case RCPageNotInFramelist:
		return "PageNotInFramelist"
	case RCPageNotPinned:
		return "PageNotPinned"
	case RCNoEvictableFrame:
		return "NoEvictableFrame"
	case RCIoError:
		return "IoError"
	default:
		return "Unknown"
	}
}

// RCError is the sole error type returned across the pool's public API.
type RCError struct {
	Code RCCode
	Op   string
	Err  error
}

func (e *RCError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Code)
}

func (e *RCError) Unwrap() error {
	return e.Err
}

func (e *RCError) Is(target error) bool {
	t, ok := target.(*RCError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func newRCError(code RCCode, op string, err error) *RCError {
	return &RCError{Code: code, Op: op, Err: err}
}

// Code extracts the RCCode carried by err, or RCOk if err is nil, or
// RCIoError if err is not an *RCError (a lower-layer fault that was not
// wrapped, which should not happen but is not a panic-worthy condition).
func Code(err error) RCCode {
	if err == nil {
		return RCOk
	}
	if rc, ok := err.(*RCError); ok {
		return rc.Code
	}
	return RCIoError
}
