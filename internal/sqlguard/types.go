package sqlguard

// Result is the outcome of validating one SQL statement.
// Derived per call, never persisted.
type Result struct {
	Accepted bool
	// Reason explains the rejection. Empty when accepted.
	Reason string
}

func rejected(reason string) Result {
	return Result{Accepted: false, Reason: reason}
}

func accepted() Result {
	return Result{Accepted: true}
}

// Config configures the validator.
type Config struct {
	// Blocklist holds data-modification and DDL keywords rejected as
	// standalone tokens anywhere in the statement, comments included.
	Blocklist []string
	// AllowedSchemas are schemas whose system tables may be referenced.
	AllowedSchemas []string
	// MaxLength caps statement length in bytes.
	MaxLength int
}
