package sqlguard

import (
	"fmt"
	"regexp"
	"strings"
)

// Validator is the hard gate between SQL generation and execution.
// Generated SQL is untrusted by construction; a rejected statement must
// never reach the executor.
type Validator struct {
	blockPattern   *regexp.Regexp
	allowedSchemas map[string]bool
	maxLength      int
}

// New creates a Validator from config, filling defaults for zero values.
func New(cfg Config) *Validator {
	blocklist := cfg.Blocklist
	if len(blocklist) == 0 {
		blocklist = DefaultBlocklist
	}

	escaped := make([]string, len(blocklist))
	for i, kw := range blocklist {
		escaped[i] = regexp.QuoteMeta(strings.ToUpper(kw))
	}

	maxLength := cfg.MaxLength
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}

	allowed := make(map[string]bool, len(cfg.AllowedSchemas))
	for _, schema := range cfg.AllowedSchemas {
		allowed[strings.ToLower(schema)] = true
	}

	return &Validator{
		blockPattern:   regexp.MustCompile(`\b(` + strings.Join(escaped, "|") + `)\b`),
		allowedSchemas: allowed,
		maxLength:      maxLength,
	}
}

var firstTokenPattern = regexp.MustCompile(`^\s*([A-Za-z]+)`)

// Validate applies the safety rules in order; the first violation wins.
// Keywords are matched everywhere in the text, comments included, since
// comments cannot be trusted to be inert across all backends.
func (v *Validator) Validate(sqlText string) Result {
	trimmed := strings.TrimSpace(sqlText)
	upper := strings.ToUpper(trimmed)

	// Rule 1: a single SELECT statement only.
	match := firstTokenPattern.FindStringSubmatch(upper)
	if match == nil || match[1] != "SELECT" {
		return rejected(ReasonNotSelect)
	}
	if strings.Contains(strings.TrimSuffix(trimmed, ";"), ";") {
		return rejected(ReasonMultipleStatements)
	}

	// Rule 2: no data-modification or DDL keyword as a standalone token.
	if kw := v.blockPattern.FindString(upper); kw != "" {
		return rejected(ReasonBlockedKeyword + kw)
	}

	// Rule 3: no system/catalog references outside allow-listed schemas.
	for token, schema := range systemReferences {
		if strings.Contains(upper, token) && !v.allowedSchemas[schema] {
			return rejected(ReasonSystemTable + strings.TrimSuffix(token, "."))
		}
	}

	// Rule 4: bounded statement length.
	if len(trimmed) > v.maxLength {
		return rejected(fmt.Sprintf("%s (%d > %d)", ReasonTooLong, len(trimmed), v.maxLength))
	}

	return accepted()
}
