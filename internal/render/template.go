/**
 * CONTEXT:   User-supplied status templates evaluated in a sandboxed expression language
 * INPUT:     A template string containing {{ expr }} placeholders
 * OUTPUT:    The literal text with each placeholder replaced by its evaluated result
 * BUSINESS:  cel-go compiles a pure expression over a fixed, declared variable set —
 *            it has no filesystem, network, or process access, so a hostile template
 *            can only read the five status values and compute with them
 * CHANGE:    Initial implementation
 * RISK:      Low - compilation is side-effect free; evaluation runs against a closed
 *            activation built solely from the derived state
 */

package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"

	"github.com/gopomodoro/pomodoro/internal/domain"
)

var placeholderRE = regexp.MustCompile(`\{\{(.*?)\}\}`)

// Template is a compiled user-supplied status format. Compilation fails
// as a Parse error on unknown variables, syntax errors, or any expression
// that is not a supported scalar type.
type Template struct {
	segments []segment
}

type segment struct {
	literal string // used when program == nil
	program cel.Program
}

func env() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("kind", cel.StringType),
		cel.Variable("state", cel.StringType),
		cel.Variable("planned_secs", cel.IntType),
		cel.Variable("elapsed_secs", cel.IntType),
		cel.Variable("remaining_secs", cel.IntType),
		cel.Function("mmss",
			cel.Overload("mmss_int", []*cel.Type{cel.IntType}, cel.StringType,
				cel.UnaryBinding(func(v ref.Val) ref.Val {
					secs, ok := v.Value().(int64)
					if !ok {
						return types.NewErr("mmss: expected int")
					}
					return types.String(mmss(secs))
				}),
			),
		),
	)
}

// CompileTemplate validates and compiles src. Every {{ ... }} placeholder
// must be a valid expression over kind/state/planned_secs/elapsed_secs/
// remaining_secs returning a string, int, or bool.
func CompileTemplate(src string) (*Template, error) {
	e, err := env()
	if err != nil {
		return nil, fmt.Errorf("build template environment: %w", err)
	}

	var segments []segment
	last := 0
	for _, loc := range placeholderRE.FindAllStringSubmatchIndex(src, -1) {
		start, end := loc[0], loc[1]
		exprStart, exprEnd := loc[2], loc[3]

		if start > last {
			segments = append(segments, segment{literal: src[last:start]})
		}

		expr := strings.TrimSpace(src[exprStart:exprEnd])
		ast, issues := e.Compile(expr)
		if issues != nil && issues.Err() != nil {
			return nil, fmt.Errorf("template expression %q: %w", expr, issues.Err())
		}
		if t := ast.OutputType(); !t.IsExactType(cel.StringType) && !t.IsExactType(cel.IntType) && !t.IsExactType(cel.BoolType) {
			return nil, fmt.Errorf("template expression %q: result type %s is not a string, int, or bool", expr, t)
		}
		prg, err := e.Program(ast)
		if err != nil {
			return nil, fmt.Errorf("template expression %q: %w", expr, err)
		}
		segments = append(segments, segment{program: prg})

		last = end
	}
	if last < len(src) {
		segments = append(segments, segment{literal: src[last:]})
	}

	return &Template{segments: segments}, nil
}

// Render evaluates the template against d.
func (t *Template) Render(d domain.DerivedState) (string, error) {
	vars := map[string]any{
		"kind":           string(d.Kind),
		"state":          string(d.State),
		"planned_secs":   d.PlannedSecs,
		"elapsed_secs":   d.ElapsedSecs,
		"remaining_secs": d.RemainingSecs,
	}

	var b strings.Builder
	for _, seg := range t.segments {
		if seg.program == nil {
			b.WriteString(seg.literal)
			continue
		}
		out, _, err := seg.program.Eval(vars)
		if err != nil {
			return "", fmt.Errorf("evaluate template expression: %w", err)
		}
		b.WriteString(fmt.Sprintf("%v", out.Value()))
	}
	return b.String(), nil
}
