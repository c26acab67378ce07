package ringq

import (
	"log/slog"

	"github.com/neilotoole/sq/libsq/core/lg"
)

// SetLogger installs log as the destination for debug records emitted
// by the structural algorithms. Passing nil restores the default,
// which discards everything. Logging never affects queue semantics.
func (q *Queue) SetLogger(log *slog.Logger) {
	if q == nil {
		return
	}
	if log == nil {
		log = lg.Discard()
	}
	q.log = log
}

func (q *Queue) logger() *slog.Logger {
	if q.log == nil {
		return lg.Discard()
	}
	return q.log
}
