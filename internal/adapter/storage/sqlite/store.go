package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/its-jojoo/kontakclip/internal/adapter/storage"
	"github.com/its-jojoo/kontakclip/internal/core"
)

// MemoryDSN keeps the database in process memory only.
const MemoryDSN = ":memory:"

type Store struct {
	db *sql.DB
}

// Open opens dsn (MemoryDSN when empty) and creates the schema.
func Open(dsn string) (*Store, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// every new connection to an in-memory database is a fresh empty database
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS contacts (
  id           TEXT PRIMARY KEY,
  position     INTEGER NOT NULL,
  display_name TEXT NOT NULL,
  phone_number TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_contacts_position ON contacts(position);
`)
	return err
}

func (s *Store) Replace(ctx context.Context, batch []core.Contact) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM contacts`); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO contacts(id, position, display_name, phone_number)
VALUES(?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET display_name=excluded.display_name, phone_number=excluded.phone_number
`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, c := range batch {
		if c.ID == "" {
			return errors.New("contact ID required")
		}
		if _, err := stmt.ExecContext(ctx, c.ID, i, c.DisplayName, c.PhoneNumber); err != nil {
			return fmt.Errorf("insert %s: %w", c.ID, err)
		}
	}
	return tx.Commit()
}

func (s *Store) List(ctx context.Context) ([]core.Contact, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, display_name, phone_number
FROM contacts
ORDER BY position ASC
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []core.Contact
	for rows.Next() {
		var c core.Contact
		if err := rows.Scan(&c.ID, &c.DisplayName, &c.PhoneNumber); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (core.Contact, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, display_name, phone_number FROM contacts WHERE id=?`, id)

	var c core.Contact
	if err := row.Scan(&c.ID, &c.DisplayName, &c.PhoneNumber); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Contact{}, storage.ErrNotFound
		}
		return core.Contact{}, err
	}
	return c, nil
}

func (s *Store) Put(ctx context.Context, c core.Contact) error {
	res, err := s.db.ExecContext(ctx, `
UPDATE contacts
SET display_name=?, phone_number=?
WHERE id=?
`, c.DisplayName, c.PhoneNumber, c.ID)
	if err != nil {
		return err
	}
	return expectOne(res)
}

func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM contacts WHERE id=?`, id)
	if err != nil {
		return err
	}
	return expectOne(res)
}

func (s *Store) Count(ctx context.Context) (int, error) {
	row := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM contacts`)
	var n int
	return n, row.Scan(&n)
}

func expectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}
