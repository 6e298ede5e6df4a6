package layout

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"fml/sem"
)

// DiagKind classifies a layout diagnostic. None of these abort layout: the
// engine degrades the affected box and keeps going.
type DiagKind int

const (
	// DiagMissingChild marks a required sub-node that was absent; a zero
	// box was substituted.
	DiagMissingChild DiagKind = iota
	// DiagUnresolvedGlyph marks a glyph the metrics provider could not
	// resolve; a placeholder box was substituted.
	DiagUnresolvedGlyph
	// DiagDegenerateDimension marks a computed negative dimension that was
	// clamped to zero.
	DiagDegenerateDimension
)

func (k DiagKind) String() string {
	switch k {
	case DiagMissingChild:
		return "missing child"
	case DiagUnresolvedGlyph:
		return "unresolved glyph"
	case DiagDegenerateDimension:
		return "degenerate dimension"
	default:
		return "diagnostic(?)"
	}
}

// Diagnostic records one degradation, keyed by the semantic node it
// originated from so callers can point back at their input.
type Diagnostic struct {
	Kind   DiagKind
	Node   sem.Node
	Detail string
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s", d.Kind, d.Detail)
}

// Diagnostics is the ordered list of degradations of one layout run.
type Diagnostics struct {
	// Run identifies the layout invocation; log lines carry the same ID.
	Run   uuid.UUID
	Items []Diagnostic
}

func (d *Diagnostics) add(kind DiagKind, node sem.Node, format string, args ...any) {
	d.Items = append(d.Items, Diagnostic{Kind: kind, Node: node, Detail: fmt.Sprintf(format, args...)})
}

// Empty reports whether the run completed without degradations.
func (d *Diagnostics) Empty() bool {
	return len(d.Items) == 0
}

// Err folds all diagnostics into a single error, or nil when there were
// none. Renderers that do not care about individual items can use this.
func (d *Diagnostics) Err() error {
	var err error
	for _, item := range d.Items {
		err = multierr.Append(err, item)
	}
	return err
}
