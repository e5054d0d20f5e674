package sqlguard

// DefaultBlocklist is used when no blocklist is configured.
var DefaultBlocklist = []string{
	"INSERT", "UPDATE", "DELETE", "DROP", "ALTER", "CREATE",
	"TRUNCATE", "GRANT", "EXEC",
}

// systemReferences are system/catalog surfaces that allow metadata
// exfiltration. The key is the token looked for; the value is the schema
// name that, if allow-listed, permits the reference.
var systemReferences = map[string]string{
	"INFORMATION_SCHEMA": "information_schema",
	"PG_CATALOG":         "pg_catalog",
	"SQLITE_MASTER":      "sqlite_master",
	"SQLITE_SCHEMA":      "sqlite_schema",
	"MYSQL.":             "mysql",
	"SYS.":               "sys",
}

// DefaultMaxLength is used when no max length is configured.
const DefaultMaxLength = 2000

// Rejection reasons.
const (
	ReasonNotSelect          = "only a single SELECT statement is allowed"
	ReasonMultipleStatements = "multiple SQL statements are not allowed"
	ReasonBlockedKeyword     = "statement contains a forbidden keyword: "
	ReasonSystemTable        = "statement references a system table: "
	ReasonTooLong            = "statement exceeds the maximum allowed length"
)
