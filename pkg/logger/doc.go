// Package logger builds *slog.Logger values from functional options and
// supplies attribute helpers that keep key names consistent.
//
// New selects slog.NewTextHandler or slog.NewJSONHandler by Format, wraps it
// in LogHandlerDecorator and applies static attributes. The decorator runs
// registered ContextExtractor callbacks and key redaction on every record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "inputguard"),
//	    logger.WithLevel(logger.ParseLevel(os.Getenv("LOG_LEVEL"), slog.LevelInfo)),
//	)
//	log.WarnContext(ctx, "input rejected",
//	    logger.Field("pickup"),
//	    logger.Signatures("script_tag"),
//	)
//
// Attribute helpers such as Error and Signatures return an empty slog.Attr
// for nil or empty input, which slog drops, so callers need no guards.
//
// Raw user input must not be passed to the logger; log lengths, field names
// and masked values instead. WithRedactedKeys replaces the values of the
// named keys with RedactedValue, including keys nested in groups and keys
// added through With or context extractors.
package logger
