package navmesh

import "fmt"

// LogCategory classifies a message logged during a build (modeled on
// recast/context.go's Contexter, adapted from Recast's three-bucket
// progress/warning/error scheme).
type LogCategory int

const (
	// LogProgress marks routine progress narration.
	LogProgress LogCategory = 1 + iota
	// LogWarning marks a robustness warning: the build continues, but the
	// affected corridor may be degraded (spec §7 "Robustness warnings").
	LogWarning
	// LogError marks an unrecoverable problem.
	LogError
)

func (c LogCategory) String() string {
	switch c {
	case LogProgress:
		return "PROG"
	case LogWarning:
		return "WARN"
	case LogError:
		return "ERR "
	default:
		return "?"
	}
}

// Logger receives build diagnostics. Callers that don't care about
// warnings can pass nil, which discards everything (as does a nil
// *BuildContext).
type Logger interface {
	Log(category LogCategory, format string, args ...interface{})
}

// BuildContext is the default Logger: it accumulates messages in memory,
// in the same spirit as recast's BuildContext, but without the timer
// bookkeeping the teacher's version carries (that measured voxelization
// phases this engine doesn't have).
type BuildContext struct {
	messages []string
}

// NewBuildContext returns a ready-to-use BuildContext.
func NewBuildContext() *BuildContext {
	return &BuildContext{}
}

// Log appends a formatted message tagged with its category.
func (ctx *BuildContext) Log(category LogCategory, format string, args ...interface{}) {
	if ctx == nil {
		return
	}
	ctx.messages = append(ctx.messages, category.String()+" "+fmt.Sprintf(format, args...))
}

// Messages returns every message logged so far, in order.
func (ctx *BuildContext) Messages() []string {
	if ctx == nil {
		return nil
	}
	return ctx.messages
}

// logf logs to l if l is non-nil; the builder calls this everywhere
// instead of checking for nil at each call site.
func logf(l Logger, category LogCategory, format string, args ...interface{}) {
	if l == nil {
		return
	}
	l.Log(category, format, args...)
}
