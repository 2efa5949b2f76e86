package sop

import "errors"

// Sentinel errors for the sop package.
var (
	// ErrWidthMismatch indicates two Groups or Exprs of different bit
	// widths were combined.
	ErrWidthMismatch = errors.New("sop: width mismatch")

	// ErrPrimeUnsupportedSerialise indicates Serialize was called on a
	// prime-implicant Expr; the legacy .mcs format predates negated
	// literals and only round-trips coherent (positive-only) groups.
	ErrPrimeUnsupportedSerialise = errors.New("sop: legacy .mcs format does not support prime implicants")

	// ErrMalformedLine indicates Parse encountered a line that is not a
	// valid fixed-width 0/1 bit-string.
	ErrMalformedLine = errors.New("sop: malformed group line")
)
