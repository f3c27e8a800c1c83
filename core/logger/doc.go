// Package logger provides the application-wide structured logging setup.
//
// It builds a zap.Logger from a small Config (level + format) and offers
// helpers to enrich loggers with request-scoped fields such as the ray ID
// assigned by the rayid middleware.
package logger
