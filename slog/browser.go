package slog

import "log/slog"

// NewRecycleLogger returns a browser recycle hook that logs each attempt.
// A failed attempt is logged as a warning since the old browser keeps
// serving pages.
func NewRecycleLogger(logger *slog.Logger) func(rendered int64, err error) {
	return func(rendered int64, err error) {
		if err != nil {
			logger.Warn("browser recycle", "rendered", rendered, "err", err)
			return
		}
		logger.Info("browser recycle", "rendered", rendered)
	}
}
