package sqlstore

import (
	"fmt"
	"regexp"

	// Register the database/sql drivers selectable through Options.Driver.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

var identifierRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// dialect captures the few statement differences between the supported drivers.
type dialect struct {
	name       string
	driverName string
	dollar     bool
}

var dialects = map[string]dialect{
	"mysql":    {name: "mysql", driverName: "mysql"},
	"postgres": {name: "postgres", driverName: "pgx", dollar: true},
	"sqlite":   {name: "sqlite", driverName: "sqlite"},
}

func lookupDialect(driver string) (dialect, error) {
	d, ok := dialects[driver]
	if !ok {
		return dialect{}, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
	return d, nil
}

// placeholder returns the bind parameter marker for the n-th argument (1-based).
func (d dialect) placeholder(n int) string {
	if d.dollar {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

func (d dialect) createTable(table string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	Source VARCHAR(255) NOT NULL,
	Destination VARCHAR(255) NOT NULL,
	Distance DOUBLE PRECISION NOT NULL,
	PRIMARY KEY (Source, Destination)
)`, table)
}

func (d dialect) selectEdges(table string) string {
	return fmt.Sprintf("SELECT Source, Destination, Distance FROM %s ORDER BY Source, Destination", table)
}

// deleteEdge removes the pair in both directions; it binds
// (source, destination, destination, source).
func (d dialect) deleteEdge(table string) string {
	return fmt.Sprintf("DELETE FROM %s WHERE (Source = %s AND Destination = %s) OR (Source = %s AND Destination = %s)",
		table, d.placeholder(1), d.placeholder(2), d.placeholder(3), d.placeholder(4))
}

func (d dialect) insertEdge(table string) string {
	return fmt.Sprintf("INSERT INTO %s (Source, Destination, Distance) VALUES (%s, %s, %s)",
		table, d.placeholder(1), d.placeholder(2), d.placeholder(3))
}
