package beaconzone

import (
	"log/slog"
	"time"
)

func logWorkerFailure(logger *slog.Logger, err *WorkerFailureError) {
	if err != nil {
		logger.Error("worker failed", "row", err.Row, "err", err)
	}
}

func domainAttrs(d Domain) slog.Attr {
	return slog.Group("domain", "xmin", d.XMin, "xmax", d.XMax, "ymin", d.YMin, "ymax", d.YMax)
}

func logSearchFinished(logger *slog.Logger, res SearchResult, err error, elapsed time.Duration) {
	args := []any{"found", res.Found, "rows_examined", res.RowsExamined, "duration", elapsed}
	if err != nil {
		logger.Warn("search finished", append(args, "err", err)...)
		return
	}
	logger.Info("search finished", args...)
}
