package sqlite

import (
	"context"
	"fmt"

	"github.com/rpggio/comicfolio/internal/domain/experience"
)

var _ experience.Repository = (*ExperienceRepository)(nil)

// ExperienceRepository implements experience.Repository for SQLite
type ExperienceRepository struct {
	db *DB
}

// NewExperienceRepository creates a new ExperienceRepository
func NewExperienceRepository(db *DB) *ExperienceRepository {
	return &ExperienceRepository{db: db}
}

// Create inserts an entry and sets its ID
func (r *ExperienceRepository) Create(ctx context.Context, exp *experience.Experience) error {
	query := `
		INSERT INTO experiences (role, company, period, description, side)
		VALUES (?, ?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, query, exp.Role, exp.Company, exp.Period, exp.Description, string(exp.Side))
	if err != nil {
		return fmt.Errorf("failed to create experience: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read experience id: %w", err)
	}
	exp.ID = id
	return nil
}

// List returns all entries in insertion order
func (r *ExperienceRepository) List(ctx context.Context) ([]experience.Experience, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, role, company, period, description, side
		FROM experiences
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list experiences: %w", err)
	}
	defer rows.Close()

	list := []experience.Experience{}
	for rows.Next() {
		var (
			exp  experience.Experience
			side string
		)
		if err := rows.Scan(&exp.ID, &exp.Role, &exp.Company, &exp.Period, &exp.Description, &side); err != nil {
			return nil, fmt.Errorf("failed to scan experience: %w", err)
		}
		exp.Side = experience.Side(side)
		list = append(list, exp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating experience rows: %w", err)
	}
	return list, nil
}

// Update overwrites every column of an existing entry
func (r *ExperienceRepository) Update(ctx context.Context, exp *experience.Experience) error {
	query := `
		UPDATE experiences
		SET role = ?, company = ?, period = ?, description = ?, side = ?
		WHERE id = ?
	`
	res, err := r.db.ExecContext(ctx, query, exp.Role, exp.Company, exp.Period, exp.Description, string(exp.Side), exp.ID)
	if err != nil {
		return fmt.Errorf("failed to update experience: %w", err)
	}
	return expectOneRow(res)
}
