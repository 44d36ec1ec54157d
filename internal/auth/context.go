package auth

import "context"

// contextKey is a custom type used for context keys to avoid collisions.
type contextKey string

// SubjectKey holds the authenticated client's token subject.
const SubjectKey contextKey = "subject"

// WithSubject returns a copy of ctx carrying subject.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, SubjectKey, subject)
}

// GetSubjectFromContext retrieves the token subject from the request context.
// Returns the subject and true if found, otherwise "" and false.
func GetSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectKey).(string)
	return subject, ok
}
