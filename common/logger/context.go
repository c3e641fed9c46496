package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within a context.
// Handlers and services enrich the context once; every slog call made with that
// context then carries the fields without repeating them.
type LogFields struct {
	RequestID  *string // X-Request-ID of the inbound HTTP request
	AccountID  *string // Authenticated account (token subject)
	EntityKind *string // account, organization, rating
	EntityID   *string // Identifier of the document being operated on
	Component  string  // Component name (OTel semantic convention style, e.g., "nebulo.service.account")
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking precedence.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, new LogFields) LogFields {
	result := existing

	if new.RequestID != nil {
		result.RequestID = new.RequestID
	}
	if new.AccountID != nil {
		result.AccountID = new.AccountID
	}
	if new.EntityKind != nil {
		result.EntityKind = new.EntityKind
	}
	if new.EntityID != nil {
		result.EntityID = new.EntityID
	}
	if new.Component != "" {
		result.Component = new.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful for setting LogFields inline: logger.WithLogFields(ctx, logger.LogFields{EntityID: logger.Ptr(id)})
func Ptr[T any](v T) *T {
	return &v
}
