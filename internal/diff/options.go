package diff

import "go.uber.org/zap"

// Options configures an Engine. The zero value is usable: every action group
// is diffed and diagnostics are dropped unless a Logger or callbacks are set.
type Options struct {
	// Filter gates action groups. Nil allows all groups.
	Filter *GroupFilter

	// OnError and OnWarning receive diagnostics once per BuildActions call,
	// after all differs have run, in deterministic order.
	OnError   func(Diagnostic)
	OnWarning func(Diagnostic)

	// Logger receives diagnostics for which no callback is set.
	Logger *zap.Logger
}

// Engine computes the ordered update-command list that transforms an existing
// catalog item into one matching a draft. It holds no mutable state between
// calls and is safe for concurrent use.
type Engine struct {
	opts Options
	log  *zap.Logger
}

func NewEngine(opts Options) *Engine {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{opts: opts, log: log}
}

// report forwards accumulated diagnostics to the configured sinks. It runs
// once per top-level call so emission order never depends on traversal order.
func (e *Engine) report(diags []Diagnostic) {
	for _, d := range diags {
		switch d.Level {
		case LevelError:
			if e.opts.OnError != nil {
				e.opts.OnError(d)
				continue
			}
			e.log.Error(d.Message,
				zap.String("path", d.Path),
				zap.String("code", d.Code),
				zap.Error(d.Cause))
		default:
			if e.opts.OnWarning != nil {
				e.opts.OnWarning(d)
				continue
			}
			e.log.Warn(d.Message,
				zap.String("path", d.Path),
				zap.String("code", d.Code))
		}
	}
}
