package cutset

import "errors"

var (
	// ErrUnsupportedXorArity indicates a ConnXor formula with other
	// than exactly two arguments; the two-term De Morgan expansion of
	// §9 only covers the binary case.
	ErrUnsupportedXorArity = errors.New("cutset: xor with arity != 2 not supported")

	// ErrDanglingTransferOut indicates a ConnTransferOut node reached
	// during normalisation with no enclosing transfer context, or a
	// ConnTransferIn whose target gate does not exist.
	ErrDanglingTransferOut = errors.New("cutset: dangling transfer-out node")

	// ErrCancelled indicates the caller's context was cancelled mid-
	// computation; no partial SOP is returned.
	ErrCancelled = errors.New("cutset: computation cancelled")

	// ErrCombinatorialPrimeUnsupported indicates Options.Prime was set
	// on Combinatorial.Compute: the per-order positive-combination
	// enumeration of §4.6 only ever tests "event true, rest false"
	// assignments, which finds minimal cut sets, not the mixed
	// positive/negative assignments prime-implicant search needs.
	ErrCombinatorialPrimeUnsupported = errors.New("cutset: combinatorial engine does not support prime-implicant mode")
)
