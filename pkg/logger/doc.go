// Package logger builds the *slog.Logger instances used across soapkit.
//
// A single factory, New, creates a logger configured by Option functions:
//
//   - Select an output format (text or json)
//   - Set the minimum log level, either as slog.Level or by name
//   - Supply default slog.Attr values applied to every record
//   - Pick environment presets (development, staging, production)
//
// Library packages such as soap and serialize never log unless a logger is
// injected; they fall back to Discard, which drops every record.
//
// # Usage
//
//	import "github.com/dmitrymomot/soapkit/pkg/logger"
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "soap"),
//	    logger.WithLevelName(cfg.LogLevel),
//	)
//
//	s := soap.New(soap.WithLogger(log))
//	log.Info("tone detected", logger.Tone(string(s.DetectTone(text))))
//
// # Attributes
//
// Helpers in attr.go keep attribute keys consistent: Error, Errors, Component,
// Path, Bytes, Offset, Capacity, Tone, Category and Phrase. Error and Errors
// return an empty attribute for nil errors, so they can be passed
// unconditionally.
package logger
