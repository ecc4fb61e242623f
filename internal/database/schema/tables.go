// Package schema holds the table definitions of the client store.
//
// The definitions match databases created by earlier versions of the tool,
// including the default constraint names PostgreSQL derives from them
// (clients_email_key, client_phones_phone_number_key,
// client_phones_client_id_fkey), which the repository relies on to
// translate constraint violations.
package schema

// TableDefinitions contains all the SQL statements to create the database tables, in dependency order
var TableDefinitions = []string{
	`CREATE TABLE IF NOT EXISTS clients (
		id SERIAL PRIMARY KEY,
		first_name VARCHAR(150) NOT NULL,
		last_name VARCHAR(150) NOT NULL,
		email VARCHAR(150) UNIQUE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS client_phones (
		id SERIAL PRIMARY KEY,
		client_id INTEGER NOT NULL,
		phone_number VARCHAR(30) UNIQUE NOT NULL,
		FOREIGN KEY (client_id) REFERENCES clients(id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_client_phones_client_id ON client_phones(client_id)`,
}

// TableNames lists all tables, in creation order
var TableNames = []string{
	"clients",
	"client_phones",
}

// Constraint names assigned by PostgreSQL to the definitions above
const (
	ConstraintClientEmail           = "clients_email_key"
	ConstraintPhoneNumber           = "client_phones_phone_number_key"
	ConstraintPhoneClientForeignKey = "client_phones_client_id_fkey"
)

// Column widths, mirrored by domain validation
const (
	NameMaxLength  = 150
	EmailMaxLength = 150
	PhoneMaxLength = 30
)
