package induct

import "github.com/sirupsen/logrus"

// SearchPosition describes one failed inductive-step attempt: the
// counterexample shows a path of Step() consistent steps followed by a
// disagreement.
type SearchPosition interface {
	Module() string
	Step() int
}

// Tracer observes failed inductive-step attempts as the worker walks the
// bound. Adapted from the teacher's solver.Tracer/solver.LoggingTracer,
// repurposed from tracing search backtracking to tracing induction-step
// counterexamples.
type Tracer interface {
	Trace(p SearchPosition)
}

// DefaultTracer discards every trace event.
type DefaultTracer struct{}

func (DefaultTracer) Trace(SearchPosition) {}

// LoggingTracer logs each failed inductive-step attempt at debug level.
type LoggingTracer struct {
	Log logrus.FieldLogger
}

func (t LoggingTracer) Trace(p SearchPosition) {
	t.Log.WithFields(logrus.Fields{
		"module": p.Module(),
		"step":   p.Step(),
	}).Debug("inductive step failed; counterexample found, continuing")
}

type tracePosition struct {
	module string
	step   int
}

func (p tracePosition) Module() string { return p.module }
func (p tracePosition) Step() int      { return p.step }
