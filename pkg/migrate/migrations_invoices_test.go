package migrate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openFKDB opens an in-memory database mirroring the migration schema's
// foreign-key rules, with enforcement switched on.
func openFKDB(t *testing.T, schema ...string) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	// the pragma and the in-memory database are per connection
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	for _, stmt := range schema {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

const membersSchema = `
CREATE TABLE members (
  id TEXT PRIMARY KEY,
  full_name TEXT NOT NULL,
  active_until DATE
);`

const packagesSchema = `
CREATE TABLE packages (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL UNIQUE,
  duration_months INTEGER NOT NULL CHECK (duration_months > 0),
  price TEXT NOT NULL
);`

const invoicesSchema = `
CREATE TABLE invoices (
  id TEXT PRIMARY KEY,
  member_id TEXT NOT NULL,
  package_id TEXT NOT NULL,
  amount TEXT NOT NULL,
  created_at DATETIME,
  FOREIGN KEY (member_id) REFERENCES members(id) ON DELETE CASCADE,
  FOREIGN KEY (package_id) REFERENCES packages(id) ON DELETE RESTRICT
);`

func TestDeletingMemberCascadesInvoices(t *testing.T) {
	db := openFKDB(t, membersSchema, packagesSchema, invoicesSchema)

	require.NoError(t, db.Exec(`INSERT INTO members (id, full_name) VALUES ('m1', 'Ada')`).Error)
	require.NoError(t, db.Exec(`INSERT INTO packages (id, name, duration_months, price) VALUES ('p1', 'Monthly', 1, '50.00')`).Error)
	require.NoError(t, db.Exec(`INSERT INTO invoices (id, member_id, package_id, amount) VALUES ('i1', 'm1', 'p1', '50.00')`).Error)
	require.NoError(t, db.Exec(`INSERT INTO invoices (id, member_id, package_id, amount) VALUES ('i2', 'm1', 'p1', '50.00')`).Error)

	require.NoError(t, db.Exec(`DELETE FROM members WHERE id = 'm1'`).Error)

	var invoiceCount int64
	require.NoError(t, db.Raw(`SELECT COUNT(*) FROM invoices`).Scan(&invoiceCount).Error)
	assert.Zero(t, invoiceCount, "invoices must disappear with their member")

	var packageCount int64
	require.NoError(t, db.Raw(`SELECT COUNT(*) FROM packages`).Scan(&packageCount).Error)
	assert.EqualValues(t, 1, packageCount, "packages survive member deletion")
}

func TestDeletingReferencedPackageIsRestricted(t *testing.T) {
	db := openFKDB(t, membersSchema, packagesSchema, invoicesSchema)

	require.NoError(t, db.Exec(`INSERT INTO members (id, full_name) VALUES ('m1', 'Ada')`).Error)
	require.NoError(t, db.Exec(`INSERT INTO packages (id, name, duration_months, price) VALUES ('p1', 'Monthly', 1, '50.00')`).Error)
	require.NoError(t, db.Exec(`INSERT INTO invoices (id, member_id, package_id, amount) VALUES ('i1', 'm1', 'p1', '50.00')`).Error)

	err := db.Exec(`DELETE FROM packages WHERE id = 'p1'`).Error
	require.Error(t, err, "package with invoices must not be deletable")

	// once the member (and by cascade the invoice) is gone, the package goes too
	require.NoError(t, db.Exec(`DELETE FROM members WHERE id = 'm1'`).Error)
	require.NoError(t, db.Exec(`DELETE FROM packages WHERE id = 'p1'`).Error)
}
