// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different
// environments (development vs production) with json or console encoding.
//
// # Run Correlation
//
// Every reconciliation run is identified by a run id. The WithRun helper
// attaches it to the log entry, ensuring that all logs related to a
// specific batch pass can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Starting reconciliation")
//
//	// Inside a run:
//	l := logger.WithRun(log, runID)
//	l.Error("Load failed", zap.Error(err))
package logger
