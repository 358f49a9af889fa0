// Package rule models birth/survival rules and their canonical string
// form, "B<spec>/S<spec>[/C<n>]". The neighbor-spec mini-language is
// deliberately lenient: it is the format users hand-edit, so malformed
// tokens are dropped instead of rejecting the whole rule.
package rule

import (
	"strconv"
	"strings"

	"topolife/internal/neighborhood"
)

// Rule is a complete transition rule. Bit i of Birth/Survive means "born
// with exactly i weighted neighbors" / "survives with exactly i weighted
// neighbors". States ≥ 2; states above 1 form the decay chain.
type Rule struct {
	Birth        uint32
	Survive      uint32
	States       uint32
	Neighborhood neighborhood.Shape
}

// MaxStates is the largest supported state count; grids store states in a
// single byte and state 255 must still advance to a representable value.
const MaxStates = 256

// Default returns Conway's Life: B3/S23, two states, Moore neighborhood.
// Callers fall back to it when a rule string fails to parse.
func Default() Rule {
	return Rule{Birth: 1 << 3, Survive: 1<<2 | 1<<3, States: 2, Neighborhood: neighborhood.Moore}
}

// Parse reads a rule string of the form "B<spec>/S<spec>[/C<n>]",
// case-insensitively and ignoring whitespace. It reports false when the
// string does not match that shape at all; malformed tokens inside a
// matching string are silently dropped. The neighborhood defaults to Moore
// and is configured separately from the rule string.
func Parse(s string) (Rule, bool) {
	compact := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, s)
	if compact == "" {
		return Rule{}, false
	}
	parts := strings.Split(strings.ToUpper(compact), "/")
	if len(parts) < 2 || len(parts) > 3 {
		return Rule{}, false
	}
	if !strings.HasPrefix(parts[0], "B") || !strings.HasPrefix(parts[1], "S") {
		return Rule{}, false
	}

	r := Default()
	r.Birth = parseNeighborSpec(parts[0][1:])
	r.Survive = parseNeighborSpec(parts[1][1:])
	if len(parts) == 3 {
		if !strings.HasPrefix(parts[2], "C") {
			return Rule{}, false
		}
		if n, err := strconv.Atoi(parts[2][1:]); err == nil && n >= 2 && n <= MaxStates {
			r.States = uint32(n)
		}
	}
	return r, true
}

// String formats the rule canonically. The state-count clause is omitted
// for plain two-state rules.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteString("B")
	b.WriteString(FormatNeighborSpec(r.Birth))
	b.WriteString("/S")
	b.WriteString(FormatNeighborSpec(r.Survive))
	if r.States > 2 {
		b.WriteString("/C")
		b.WriteString(strconv.FormatUint(uint64(r.States), 10))
	}
	return b.String()
}

// Masked returns the rule with birth/survive bits above the neighborhood's
// maximum neighbor count cleared.
func (r Rule) Masked() Rule {
	max := r.Neighborhood.MaxNeighbors()
	mask := uint32(1)<<(max+1) - 1
	r.Birth &= mask
	r.Survive &= mask
	return r
}

// parseNeighborSpec reads one neighbor-spec clause into a bitmask. A bare
// digit string is digit concatenation ("23" → neighbors 2 and 3); the
// presence of ',' or '-' switches to comma/range parsing ("2-5,8").
// Invalid or out-of-range tokens are dropped, never rejected.
func parseNeighborSpec(s string) uint32 {
	var mask uint32
	if !strings.ContainsAny(s, ",-") {
		for _, r := range s {
			if r < '0' || r > '9' {
				continue
			}
			mask |= 1 << (r - '0')
		}
		return mask
	}
	for _, token := range strings.Split(s, ",") {
		if token == "" {
			continue
		}
		if lo, hi, ok := strings.Cut(token, "-"); ok {
			a, errA := strconv.Atoi(lo)
			b, errB := strconv.Atoi(hi)
			if errA != nil || errB != nil || a > b {
				continue
			}
			for n := a; n <= b; n++ {
				if n >= 0 && n < 32 {
					mask |= 1 << n
				}
			}
			continue
		}
		n, err := strconv.Atoi(token)
		if err != nil || n < 0 || n >= 32 {
			continue
		}
		mask |= 1 << n
	}
	return mask
}

// FormatNeighborSpec writes a bitmask back into the neighbor-spec
// mini-language, preferring digit concatenation when every set bit is a
// single digit and a comma list otherwise. A lone multi-digit count is
// written as a degenerate range ("12-12"): a bare "12" would re-parse as
// digit concatenation and break the round-trip.
func FormatNeighborSpec(mask uint32) string {
	var counts []int
	for n := 0; n < 32; n++ {
		if mask&(1<<n) != 0 {
			counts = append(counts, n)
		}
	}
	allSingle := mask&^uint32(0x3FF) == 0
	var b strings.Builder
	if allSingle {
		for _, n := range counts {
			b.WriteString(strconv.Itoa(n))
		}
		return b.String()
	}
	if len(counts) == 1 {
		n := strconv.Itoa(counts[0])
		return n + "-" + n
	}
	for i, n := range counts {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}
