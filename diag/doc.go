// Package diag collects pipeline diagnostics as typed conditions.
//
// Stages record conditions on a Reporter instead of printing directly, so
// callers and tests can inspect what happened. At the end of a feed run the
// Reporter renders consolidated, human-readable log lines.
package diag
