package storage

import "log/slog"

// poolMetrics wraps the pool's structured logger. It intentionally does not
// track anything the public API doesn't already expose (GetNumReadIO,
// GetNumWriteIO, GetFixCounts, GetDirtyFlags) — this is a thin logging
// facade, not a parallel counter store, so there is exactly one source of
// truth for I/O counts.
type poolMetrics struct {
	log *slog.Logger
}

func newPoolMetrics(log *slog.Logger) *poolMetrics {
	if log == nil {
		log = slog.Default()
	}
	return &poolMetrics{log: log}
}

func (m *poolMetrics) init(numPages int, strategy ReplacementStrategy, pageFile string) {
	m.log.Info("buffer pool init", "numPages", numPages, "strategy", strategy.String(), "pageFile", pageFile)
}

func (m *poolMetrics) eviction(frameIdx int, victimPage int32, wroteBack bool) {
	m.log.Debug("evicting frame", "frame", frameIdx, "page", victimPage, "wroteBack", wroteBack)
}

func (m *poolMetrics) flushAll(flushed int) {
	m.log.Info("flushAll", "flushed", flushed)
}

func (m *poolMetrics) shutdown() {
	m.log.Info("buffer pool shutdown")
}

func (m *poolMetrics) ioError(op string, err error) {
	m.log.Warn("storage adapter error", "op", op, "err", err)
}
