// Package telemetry provides best-effort sinks for pipeline run records: a
// human-readable trace file appender and an HTTP collector client. Both
// implement core.Telemetry; both may fail, and callers are expected to treat
// every returned error as an advisory warning — a broken sink must never
// change the outcome of the run it records.
package telemetry
