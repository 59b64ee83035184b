// Package logging provides structured logging for ultinotes.
//
// This package holds the process-wide zap logger and a few domain helpers. Logging is
// silent by default so that the interactive prompts are not interleaved with
// log lines; set ULTINOTES_LOG_LEVEL (or pass --log-level) to enable it.
//
// # Log Levels
//
//   - Debug: external command invocations, raw listings, ARP cache dumps
//   - Info: discovery results, completed transfers
//   - Warn: failed transfers, stale addresses, best-effort sweeps that failed
//   - Error: configuration problems
//
// # Structured Logging
//
//	logger := logging.GetLogger()
//	logging.LogDiscovery(logger, "arp_cache_hit", "192.168.1.42", "2:15:41:7e:44:32")
//	logger.Info("session started", zap.String("backend", "ftp"))
//
// Components take a *zap.Logger in their constructor; pass logging.GetLogger()
// from the command layer and zap.NewNop() from tests.
//
// # Output Format
//
// Logs are written to stderr in console format:
//
//	2026-10-19T10:30:45.123-0700  INFO  Discovery event  {"event": "arp_cache_hit", "ip": "192.168.1.42"}
package logging
