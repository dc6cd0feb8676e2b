package hygiene

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/shiptrack/inputguard/pkg/logger"
	"github.com/shiptrack/inputguard/pkg/sanitizer"
	"github.com/shiptrack/inputguard/pkg/validator"
)

// Guard runs the full hygiene pipeline for a field and reports why a value
// was rejected. It is immutable after New and safe for concurrent use.
type Guard struct {
	rules         Rules
	log           *slog.Logger
	strictMasking bool
	logRejections bool
	idLength      int
}

// Option configures a Guard.
type Option func(*Guard)

// WithRules replaces DefaultRules.
func WithRules(r Rules) Option {
	return func(g *Guard) {
		g.rules = r
	}
}

// WithLogger sets the logger rejections are reported to. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(g *Guard) {
		if l != nil {
			g.log = l
		}
	}
}

// WithStrictMasking controls whether Mask hides ungrouped phone numbers.
func WithStrictMasking(strict bool) Option {
	return func(g *Guard) {
		g.strictMasking = strict
	}
}

// WithIDLength sets the length of identifiers returned by NewID.
// Non-positive values are ignored.
func WithIDLength(n int) Option {
	return func(g *Guard) {
		if n > 0 {
			g.idLength = n
		}
	}
}

// WithRejectionLogging toggles the warning logged for malicious input.
func WithRejectionLogging(enabled bool) Option {
	return func(g *Guard) {
		g.logRejections = enabled
	}
}

// New returns a Guard with DefaultRules, strict masking, rejection logging,
// a discard logger and DefaultIDLength, adjusted by opts.
func New(opts ...Option) *Guard {
	g := &Guard{
		rules:         DefaultRules(),
		log:           logger.Discard(),
		strictMasking: true,
		logRejections: true,
		idLength:      DefaultIDLength,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.log = g.log.With(logger.Component("hygiene"))
	return g
}

// Rules returns the rules the Guard checks against.
func (g *Guard) Rules() Rules {
	return g.rules
}

// Check detects, sanitizes and validates raw as a value of kind, reporting
// failures under field. The steps run in order and stop at the first
// failure:
//
//  1. known injection signatures in raw (ErrMaliciousContent)
//  2. sanitization
//  3. required, for every kind but notes (ErrRequired)
//  4. minimum and maximum length in runes (ErrTooShort, ErrTooLong)
//  5. the kind's pattern (ErrPatternMismatch)
//
// It returns the sanitized value, or "" for malicious input. A failed check
// is reported as validator.ValidationErrors with a single entry.
func (g *Guard) Check(ctx context.Context, field string, kind Field, raw string) (string, error) {
	p, ok := g.rules.Pattern(kind)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, kind)
	}

	if sigs := MatchedSignatures(raw); len(sigs) > 0 {
		if g.logRejections {
			g.log.WarnContext(ctx, "malicious input rejected",
				logger.Field(field),
				logger.Kind(string(kind)),
				logger.Signatures(signatureNames(sigs)...),
				logger.InputLength(utf8.RuneCountInString(raw)),
			)
		}
		return "", validator.ValidationErrors{maliciousError(field, sigs)}
	}

	clean := Sanitize(raw)

	rules := make([]validator.Rule, 0, 4)
	if !p.Optional() {
		rules = append(rules, validator.RequiredString(field, clean))
	}
	if p.MinLen() > 1 {
		rules = append(rules, validator.MinLenString(field, clean, p.MinLen()))
	}
	if p.MaxLen() > 0 {
		rules = append(rules, validator.MaxLenString(field, clean, p.MaxLen()))
	}
	rules = append(rules, validator.MatchesPattern(field, clean, p.Regexp(), p.Name()))

	if err := validator.ApplyFirst(rules...); err != nil {
		g.log.DebugContext(ctx, "input rejected",
			logger.Field(field),
			logger.Kind(string(kind)),
			logger.Error(err),
		)
		return clean, err
	}
	return clean, nil
}

// Mask is MaskSensitiveData with strict phone masking applied when enabled:
// numbers that do not fit the grouped format have every digit but the last
// two replaced.
func (g *Guard) Mask(value string, kind Kind) string {
	if kind != KindPhone || !g.strictMasking {
		return MaskSensitiveData(value, kind)
	}
	if masked, ok := maskPhone(value); ok {
		return masked
	}
	return sanitizer.MaskDigits(value, 2, maskRune)
}

// NewID returns an identifier of the configured length.
func (g *Guard) NewID() string {
	return GenerateID(g.idLength)
}

func maliciousError(field string, sigs []Signature) validator.ValidationError {
	return validator.ValidationError{
		Field:          field,
		Message:        "Invalid characters detected",
		TranslationKey: "validation.malicious_content",
		TranslationValues: map[string]any{
			"field":      field,
			"signatures": strings.Join(signatureNames(sigs), ", "),
		},
		Err: ErrMaliciousContent,
	}
}
