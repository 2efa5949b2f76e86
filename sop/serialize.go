package sop

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rakhimov/scram-sub001/bitset"
)

// Serialize writes e to w in the legacy .mcs textual format: one group
// per line, each line the fixed-width 0/1 string of its positive bit
// set, terminated by a trailing blank line. Groups are written in e's
// canonical order.
//
// Serialize returns ErrPrimeUnsupportedSerialise if e is in
// prime-implicant mode: the legacy format predates negated literals.
// Complexity: O(len(e) * n).
func (e *Expr) Serialize(w io.Writer) error {
	if e.prime {
		return ErrPrimeUnsupportedSerialise
	}
	bw := bufio.NewWriter(w)
	for _, g := range e.Groups() {
		if _, err := fmt.Fprintln(bw, g.Pos.String()); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(bw); err != nil {
		return err
	}

	return bw.Flush()
}

// Parse reads the legacy .mcs textual format from r and returns the
// coherent (positive-literal-only) Expr it encodes. A blank line
// terminates the group list; anything after it is ignored. Every
// non-blank line before the terminator must be a well-formed fixed-width
// 0/1 string of the same width as the first line, or ErrMalformedLine is
// returned.
// Complexity: O(total input length).
func Parse(r io.Reader) (*Expr, error) {
	scanner := bufio.NewScanner(r)
	var width uint = 0
	var groups []Group
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			break
		}
		bs, err := bitset.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedLine, err)
		}
		if width == 0 {
			width = bs.Width()
		} else if bs.Width() != width {
			return nil, fmt.Errorf("%w: inconsistent width on line %q", ErrMalformedLine, line)
		}
		groups = append(groups, Group{Pos: bs, Neg: bitset.New(width)})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if width == 0 {
		width = 1
	}
	out := New(width, false)
	for _, g := range groups {
		out.OrGroup(g)
	}

	return out, nil
}
