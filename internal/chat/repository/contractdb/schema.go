package contractdb

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SchemaHint is the human-readable schema description handed to the SQL
// generator so it targets real tables and columns.
const SchemaHint = `contracts(contract_id INTEGER PRIMARY KEY, customer_name TEXT, expiration_date DATE, pricing DECIMAL, status TEXT)
modules(module_id INTEGER PRIMARY KEY, module_name TEXT, description TEXT)
contract_modules(contract_id INTEGER, module_id INTEGER, purchased_date DATE)`

const schema = `
CREATE TABLE IF NOT EXISTS contracts (
	contract_id     INTEGER PRIMARY KEY,
	customer_name   TEXT,
	expiration_date DATE,
	pricing         DECIMAL(10, 2),
	status          TEXT
);
CREATE TABLE IF NOT EXISTS modules (
	module_id   INTEGER PRIMARY KEY,
	module_name TEXT,
	description TEXT
);
CREATE TABLE IF NOT EXISTS contract_modules (
	contract_id    INTEGER,
	module_id      INTEGER,
	purchased_date DATE,
	PRIMARY KEY (contract_id, module_id)
);`

// Open opens (or creates) the SQLite contract database and ensures the
// schema exists.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open contract db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure contract schema: %w", err)
	}

	return db, nil
}
