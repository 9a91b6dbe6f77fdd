package accessscope

import (
	"fmt"
	"strings"
)

// Predicate is a composable SQL filter fragment. Placeholders are written as
// `?` and rendered to positional `$N` arguments at whatever offset the
// repository's base query has already consumed, so the same predicate can be
// spliced into any statement.
type Predicate struct {
	clause string
	args   []interface{}
	none   bool
}

// MatchAll is the unrestricted predicate. It renders to an empty clause.
func MatchAll() Predicate {
	return Predicate{}
}

// MatchNone is the empty-set predicate. A caller with no linked rows gets
// MatchNone rather than an error: the result set is legitimately empty.
func MatchNone() Predicate {
	return Predicate{none: true}
}

func Where(clause string, args ...interface{}) Predicate {
	return Predicate{clause: clause, args: args}
}

// Or combines predicates disjunctively. MatchAll short-circuits to MatchAll,
// MatchNone operands drop out.
func Or(predicates ...Predicate) Predicate {
	clauses := make([]string, 0, len(predicates))
	args := make([]interface{}, 0)
	for _, p := range predicates {
		if p.IsAll() {
			return MatchAll()
		}
		if p.none {
			continue
		}
		clauses = append(clauses, "("+p.clause+")")
		args = append(args, p.args...)
	}
	if len(clauses) == 0 {
		return MatchNone()
	}
	return Predicate{clause: strings.Join(clauses, " OR "), args: args}
}

// And combines predicates conjunctively. MatchNone short-circuits to
// MatchNone, MatchAll operands drop out.
func And(predicates ...Predicate) Predicate {
	clauses := make([]string, 0, len(predicates))
	args := make([]interface{}, 0)
	for _, p := range predicates {
		if p.none {
			return MatchNone()
		}
		if p.IsAll() {
			continue
		}
		clauses = append(clauses, "("+p.clause+")")
		args = append(args, p.args...)
	}
	if len(clauses) == 0 {
		return MatchAll()
	}
	return Predicate{clause: strings.Join(clauses, " AND "), args: args}
}

func (p Predicate) IsAll() bool {
	return !p.none && p.clause == ""
}

func (p Predicate) IsNone() bool {
	return p.none
}

// Splice renders the predicate as a conjunct ready to append to an existing
// WHERE clause: " AND (<fragment>)". MatchAll splices nothing.
func (p Predicate) Splice(offset int) (string, []interface{}) {
	if p.IsAll() {
		return "", nil
	}
	clause, args := p.Render(offset)
	return " AND (" + clause + ")", args
}

// Render materializes the fragment with positional placeholders starting at
// $offset. MatchAll renders empty, MatchNone renders an always-false clause
// so a repository that does not short-circuit still returns nothing.
func (p Predicate) Render(offset int) (string, []interface{}) {
	if p.none {
		return "1 = 0", nil
	}
	if p.clause == "" {
		return "", nil
	}
	var sb strings.Builder
	n := offset
	for _, r := range p.clause {
		if r == '?' {
			sb.WriteString(fmt.Sprintf("$%d", n))
			n++
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String(), p.args
}
