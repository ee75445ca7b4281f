// Package log provides logging for the audit pipeline, built on top of the
// standard slog package.
//
// The pipeline routinely logs context for pages it is processing, and that
// context can include raw HTML markup. A single crawled page can run to
// hundreds of kilobytes; writing it into a log line makes the log unreadable
// and can blow up log storage. The TruncateHandler caps oversized string
// attributes before they reach the underlying handler, so call sites can log
// markup freely without worrying about its size.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//
//	logger.Debug("auditing page",
//	    "url", record.URL,
//	    "markup", record.Content, // truncated automatically
//	)
package log
