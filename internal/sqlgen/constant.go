package sqlgen

// Log prefixes
const (
	LogPrefixGenerate = "internal.sqlgen.Generate"
)

// PromptGenerate asks for a single read-only query. The output still goes
// through the safety validator before execution; the instruction here only
// improves the hit rate, it is not a security boundary.
const PromptGenerate = `You are a SQL generator for a customer service system.

Database schema:
%s

Question: %s

Write a single SQL SELECT statement that answers the question.
Rules:
- Output only the SQL statement, no explanation and no markdown.
- Read-only: SELECT only, never modify data.
- Do not query system or catalog tables.`

// SQL generation uses a low temperature for deterministic statements.
const GenerateTemperature = 0.1

// markerPrefixes are leading markers models commonly prepend to the
// statement despite instructions.
var markerPrefixes = []string{"SQLQuery:", "SQL:", "Query:", "sql:", "query:"}
