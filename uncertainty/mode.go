package uncertainty

import "github.com/rakhimov/scram-sub001/bitset"

// encodeMode renders a failure-mode bit vector as a fixed-width string
// key: two keys are equal iff the vectors are bit-identical, per §4.8.
func encodeMode(bits []bool) string {
	b := make([]byte, len(bits))
	for i, v := range bits {
		if v {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}

	return string(b)
}

func decodeMode(key string) []bool {
	out := make([]bool, len(key))
	for i, ch := range key {
		out[i] = ch == '1'
	}

	return out
}

func bitsToSet(bits []bool) bitset.Set {
	s := bitset.New(uint(len(bits)))
	for i, v := range bits {
		if v {
			s = s.Set(uint(i), 1)
		}
	}

	return s
}
