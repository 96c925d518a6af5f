// Package mysql reads the canonical dataset out of a MySQL table, for
// deployments that curate the reference data in a database instead of a
// bundled file. The engine still builds its in-memory index once at startup;
// this is a load path, not a query path.
package mysql

import (
	"context"
	"database/sql"

	"hotel_resolver/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// EnsureSchema creates the canonical table when missing. Used by tests and
// first-run tooling; production datasets are curated out of band.
func (r *Repo) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, schemaSQL)
	return err
}

// Insert adds one canonical record, keeping load order via the seq column.
func (r *Repo) Insert(ctx context.Context, rec domain.CanonicalRecord) error {
	_, err := r.db.ExecContext(ctx, insertCanonicalSQL, rec.ID, rec.Name)
	return err
}

// ListAll returns the full canonical dataset in insertion order.
func (r *Repo) ListAll(ctx context.Context) ([]domain.CanonicalRecord, error) {
	rows, err := r.db.QueryContext(ctx, listCanonicalSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.CanonicalRecord
	for rows.Next() {
		var rec domain.CanonicalRecord
		if err := rows.Scan(&rec.ID, &rec.Name); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
