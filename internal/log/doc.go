// Package log provides the logging setup for printcheck, built on the
// standard slog package.
//
// Every run logs through one *slog.Logger whose records go to two places:
//   - the RunLog, an in-memory, append-only list of lines that is written to
//     logs/PRINTCHECK_log_<YYYYMMDD_HHMMSS>.txt when the run ends
//   - the console (stderr), filtered to warnings unless verbose mode is on
//
// # Usage
//
//	logger, runLog := log.NewRunLogger(os.Stderr, verbose)
//	logger.Info("found STL files", "count", 3)
//	path, err := runLog.Flush("logs", time.Now())
package log
