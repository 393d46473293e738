package sqlite

import (
	"context"
	"fmt"

	"github.com/rpggio/comicfolio/internal/domain/gadget"
	"github.com/rpggio/comicfolio/internal/repository"
)

var _ gadget.Repository = (*GadgetRepository)(nil)

// GadgetRepository implements gadget.Repository for SQLite
type GadgetRepository struct {
	db *DB
}

// NewGadgetRepository creates a new GadgetRepository
func NewGadgetRepository(db *DB) *GadgetRepository {
	return &GadgetRepository{db: db}
}

// Create inserts a gadget under its caller-chosen ID
func (r *GadgetRepository) Create(ctx context.Context, g *gadget.Gadget) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO gadgets (id, name, icon, description) VALUES (?, ?, ?, ?)`,
		g.ID, g.Name, g.Icon, g.Description,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrConflict
		}
		return fmt.Errorf("failed to create gadget: %w", err)
	}
	return nil
}

// List returns all gadgets in insertion order
func (r *GadgetRepository) List(ctx context.Context) ([]gadget.Gadget, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, icon, description FROM gadgets ORDER BY rowid ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list gadgets: %w", err)
	}
	defer rows.Close()

	list := []gadget.Gadget{}
	for rows.Next() {
		var g gadget.Gadget
		if err := rows.Scan(&g.ID, &g.Name, &g.Icon, &g.Description); err != nil {
			return nil, fmt.Errorf("failed to scan gadget: %w", err)
		}
		list = append(list, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating gadget rows: %w", err)
	}
	return list, nil
}

// Update overwrites every column of an existing gadget
func (r *GadgetRepository) Update(ctx context.Context, g *gadget.Gadget) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE gadgets SET name = ?, icon = ?, description = ? WHERE id = ?`,
		g.Name, g.Icon, g.Description, g.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update gadget: %w", err)
	}
	return expectOneRow(res)
}

// Delete removes a gadget
func (r *GadgetRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM gadgets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete gadget: %w", err)
	}
	return expectOneRow(res)
}
