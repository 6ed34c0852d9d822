// Package logger provides the structured logging facility, based on Zap.
//
// It supports console encoding for interactive CLI use and JSON encoding for
// server deployments. The WithRayID helper attaches the per-request RayID
// from a Fiber context so all log lines for one reconciliation request can
// be correlated.
package logger
