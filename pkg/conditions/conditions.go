// Package conditions implements the restricted visibility mini-language used
// by template sections. Expressions are compiled once at template-load time
// into a small tagged tree and evaluated against the render context, so no
// regex work happens per render.
//
// Two shapes are accepted:
//
//	<scope>.<field>[.<field>]                existence / truthiness check
//	<scope>.<field>[.<field>].length <op> <n>  length comparison
//
// with <scope> in {agent, cityData} and <op> in {>, >=, <, <=, ==, !=}.
// Anything unparsable compiles to a permissive tautology: the section
// renders, but the compiled expression carries a warning the validator can
// surface. This fail-open behavior is deliberate - a typo'd condition shows
// extra content rather than silently hiding a section network-wide.
package conditions

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agentpress/agentpress/models"
)

// Op is a length-comparison operator.
type Op string

const (
	OpGT Op = ">"
	OpGE Op = ">="
	OpLT Op = "<"
	OpLE Op = "<="
	OpEQ Op = "=="
	OpNE Op = "!="
)

var validOps = map[Op]struct{}{
	OpGT: {}, OpGE: {}, OpLT: {}, OpLE: {}, OpEQ: {}, OpNE: {},
}

// Expr is a compiled condition. Implementations are immutable and safe for
// concurrent evaluation.
type Expr interface {
	// Eval reports whether the section should render for the given inputs.
	Eval(agent *models.Agent, cityData *models.LocationData) bool
	// Warning is non-empty when the source expression did not parse and the
	// permissive fallback is in effect.
	Warning() string
	// String returns the source form of the expression.
	String() string
}

// Exists checks that a field path resolves to a truthy value: non-empty
// string, non-zero number, non-empty array, or present object.
type Exists struct {
	Path []string
	src  string
}

func (e *Exists) Eval(agent *models.Agent, cityData *models.LocationData) bool {
	v, ok := lookup(e.Path, agent, cityData)
	return ok && truthy(v)
}

func (e *Exists) Warning() string { return "" }
func (e *Exists) String() string  { return e.src }

// LengthCompare checks the length of an array (or string) field against a
// constant.
type LengthCompare struct {
	Path []string
	Op   Op
	N    int
	src  string
}

func (l *LengthCompare) Eval(agent *models.Agent, cityData *models.LocationData) bool {
	v, ok := lookup(l.Path, agent, cityData)
	length := 0
	if ok {
		length = lengthOf(v)
	}
	switch l.Op {
	case OpGT:
		return length > l.N
	case OpGE:
		return length >= l.N
	case OpLT:
		return length < l.N
	case OpLE:
		return length <= l.N
	case OpEQ:
		return length == l.N
	case OpNE:
		return length != l.N
	}
	return false
}

func (l *LengthCompare) Warning() string { return "" }
func (l *LengthCompare) String() string {
	return fmt.Sprintf("%s.length %s %d", strings.Join(l.Path, "."), l.Op, l.N)
}

// Tautology always renders. It is the compiled form of an empty condition
// and the fallback for unparsable ones; the latter carry a warning.
type Tautology struct {
	src     string
	warning string
}

func (t *Tautology) Eval(*models.Agent, *models.LocationData) bool { return true }
func (t *Tautology) Warning() string                               { return t.warning }
func (t *Tautology) String() string                                { return t.src }

// Compile parses a condition expression. It never returns a nil Expr: on
// parse failure the result is a warning-carrying Tautology, so render paths
// can evaluate unconditionally while validators report the problem.
func Compile(expr string) Expr {
	src := strings.TrimSpace(expr)
	if src == "" {
		return &Tautology{src: src}
	}

	fields := strings.Fields(src)
	switch len(fields) {
	case 1:
		path, err := parsePath(fields[0], false)
		if err != nil {
			return fallback(src, err)
		}
		return &Exists{Path: path, src: src}
	case 3:
		path, err := parsePath(fields[0], true)
		if err != nil {
			return fallback(src, err)
		}
		op := Op(fields[1])
		if _, ok := validOps[op]; !ok {
			return fallback(src, fmt.Errorf("unknown operator %q", fields[1]))
		}
		n, err := strconv.Atoi(fields[2])
		if err != nil {
			return fallback(src, fmt.Errorf("non-integer comparison value %q", fields[2]))
		}
		return &LengthCompare{Path: path, Op: op, N: n, src: src}
	default:
		return fallback(src, fmt.Errorf("expected 1 or 3 tokens, got %d", len(fields)))
	}
}

func fallback(src string, err error) Expr {
	return &Tautology{
		src:     src,
		warning: fmt.Sprintf("condition %q does not parse (%v); section always renders", src, err),
	}
}

// parsePath splits "scope.field[.field]" and validates the scope. When
// wantLength is set the trailing ".length" segment is required and stripped.
func parsePath(s string, wantLength bool) ([]string, error) {
	parts := strings.Split(s, ".")
	if wantLength {
		if len(parts) < 3 || parts[len(parts)-1] != "length" {
			return nil, fmt.Errorf("length comparison requires a .length path, got %q", s)
		}
		parts = parts[:len(parts)-1]
	}
	if len(parts) < 2 {
		return nil, fmt.Errorf("path %q needs a scope and at least one field", s)
	}
	if parts[0] != "agent" && parts[0] != "cityData" {
		return nil, fmt.Errorf("unknown scope %q", parts[0])
	}
	return parts, nil
}
