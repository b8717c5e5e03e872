package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"salarydash/internal/engine"
)

// SalaryStore persists the salary dataset in PostgreSQL, as an
// alternative data source to the CSV file.
type SalaryStore struct {
	db *sql.DB
}

// Open connects to PostgreSQL, runs schema migrations, and returns a
// ready-to-use SalaryStore.
func Open(dsn string) (*SalaryStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	for i := 0; i < 10; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: ping failed after retries: %w", err)
	}

	s := &SalaryStore{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}
	return s, nil
}

func (s *SalaryStore) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS salaries (
			id           SERIAL PRIMARY KEY,
			year         INT           NOT NULL,
			seniority    VARCHAR(50)   NOT NULL,
			contract     VARCHAR(50)   NOT NULL,
			company_size VARCHAR(20)   NOT NULL,
			salary       NUMERIC(12,2) NOT NULL,
			role         TEXT          NOT NULL,
			remote       VARCHAR(20)   NOT NULL,
			residence    VARCHAR(3)    NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_salaries_year ON salaries(year);
		CREATE INDEX IF NOT EXISTS idx_salaries_role ON salaries(role);
	`)
	return err
}

// Clear deletes all stored salary records.
func (s *SalaryStore) Clear() error {
	_, err := s.db.Exec("DELETE FROM salaries")
	if err != nil {
		return fmt.Errorf("postgres: clear: %w", err)
	}
	return nil
}

// Import replaces the stored dataset with the rows of a loaded table.
func (s *SalaryStore) Import(t *engine.Table) error {
	if t.Len() == 0 {
		return nil
	}
	if err := s.Clear(); err != nil {
		return err
	}

	v := t.All()
	const batchSize = 50
	for start := 0; start < v.Len(); start += batchSize {
		end := start + batchSize
		if end > v.Len() {
			end = v.Len()
		}
		if err := s.insertBatch(v, start, end); err != nil {
			return err
		}
	}
	return nil
}

func (s *SalaryStore) insertBatch(v *engine.View, start, end int) error {
	valueStrings := make([]string, 0, end-start)
	valueArgs := make([]interface{}, 0, (end-start)*8)

	for i := start; i < end; i++ {
		base := (i - start) * 8
		valueStrings = append(valueStrings,
			fmt.Sprintf("($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d)",
				base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8))
		valueArgs = append(valueArgs,
			v.Year(i),
			v.Value(i, engine.DimSeniority),
			v.Value(i, engine.DimContract),
			v.Value(i, engine.DimCompanySize),
			v.Salary(i),
			v.Value(i, engine.DimRole),
			v.Value(i, engine.DimRemote),
			v.Value(i, engine.DimResidence),
		)
	}

	query := fmt.Sprintf(`
		INSERT INTO salaries (year, seniority, contract, company_size, salary, role, remote, residence)
		VALUES %s
	`, strings.Join(valueStrings, ","))

	_, err := s.db.Exec(query, valueArgs...)
	if err != nil {
		return fmt.Errorf("postgres: insert batch: %w", err)
	}
	return nil
}

// FetchTable reads the full stored dataset into an immutable Table.
func (s *SalaryStore) FetchTable() (*engine.Table, error) {
	rows, err := s.db.Query(`
		SELECT year, seniority, contract, company_size, salary, role, remote, residence
		FROM salaries
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch: %w", err)
	}
	defer rows.Close()

	b := engine.NewTableBuilder()
	for rows.Next() {
		var (
			year                                            int
			salary                                          float64
			seniority, contract, size, role, remote, reside string
		)
		if err := rows.Scan(&year, &seniority, &contract, &size, &salary, &role, &remote, &reside); err != nil {
			return nil, fmt.Errorf("postgres: scan: %w", err)
		}
		b.Append(year, salary, seniority, contract, size, role, remote, reside)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: rows: %w", err)
	}
	return b.Build(), nil
}

func (s *SalaryStore) Close() error {
	return s.db.Close()
}
