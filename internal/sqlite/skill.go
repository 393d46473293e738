package sqlite

import (
	"context"
	"fmt"

	"github.com/rpggio/comicfolio/internal/domain/skill"
)

var _ skill.Repository = (*SkillRepository)(nil)

// SkillRepository implements skill.Repository for SQLite
type SkillRepository struct {
	db *DB
}

// NewSkillRepository creates a new SkillRepository
func NewSkillRepository(db *DB) *SkillRepository {
	return &SkillRepository{db: db}
}

// Create inserts a skill and sets its ID
func (r *SkillRepository) Create(ctx context.Context, sk *skill.Skill) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO skills (name, level, color) VALUES (?, ?, ?)`,
		sk.Name, sk.Level, sk.Color,
	)
	if err != nil {
		return fmt.Errorf("failed to create skill: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read skill id: %w", err)
	}
	sk.ID = id
	return nil
}

// List returns all skills in insertion order
func (r *SkillRepository) List(ctx context.Context) ([]skill.Skill, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, level, color FROM skills ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	list := []skill.Skill{}
	for rows.Next() {
		var sk skill.Skill
		if err := rows.Scan(&sk.ID, &sk.Name, &sk.Level, &sk.Color); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		list = append(list, sk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating skill rows: %w", err)
	}
	return list, nil
}

// Update overwrites every column of an existing skill
func (r *SkillRepository) Update(ctx context.Context, sk *skill.Skill) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE skills SET name = ?, level = ?, color = ? WHERE id = ?`,
		sk.Name, sk.Level, sk.Color, sk.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update skill: %w", err)
	}
	return expectOneRow(res)
}

// Delete removes a skill
func (r *SkillRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM skills WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	return expectOneRow(res)
}
