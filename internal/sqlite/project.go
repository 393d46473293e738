package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rpggio/comicfolio/internal/domain/project"
	"github.com/rpggio/comicfolio/internal/repository"
)

var _ project.Repository = (*ProjectRepository)(nil)

// ProjectRepository implements project.Repository for SQLite
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a project and sets its ID
func (r *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	tags, err := encodeTags(proj.Tags)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO projects (title, description, tags, image_url, link)
		VALUES (?, ?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, query,
		proj.Title,
		proj.Description,
		tags,
		proj.ImageURL,
		proj.Link,
	)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read project id: %w", err)
	}
	proj.ID = id
	return nil
}

// Get retrieves a project by ID
func (r *ProjectRepository) Get(ctx context.Context, id int64) (*project.Project, error) {
	query := `
		SELECT id, title, description, tags, image_url, link
		FROM projects
		WHERE id = ?
	`

	var (
		proj project.Project
		tags string
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&proj.ID,
		&proj.Title,
		&proj.Description,
		&tags,
		&proj.ImageURL,
		&proj.Link,
	)
	if notFound(err) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if proj.Tags, err = decodeTags(tags); err != nil {
		return nil, err
	}
	return &proj, nil
}

// List returns all projects in insertion order
func (r *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	query := `
		SELECT id, title, description, tags, image_url, link
		FROM projects
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []project.Project{}
	for rows.Next() {
		var (
			proj project.Project
			tags string
		)
		if err := rows.Scan(&proj.ID, &proj.Title, &proj.Description, &tags, &proj.ImageURL, &proj.Link); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		if proj.Tags, err = decodeTags(tags); err != nil {
			return nil, err
		}
		projects = append(projects, proj)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}
	return projects, nil
}

// Update overwrites every column of an existing project
func (r *ProjectRepository) Update(ctx context.Context, proj *project.Project) error {
	tags, err := encodeTags(proj.Tags)
	if err != nil {
		return err
	}

	query := `
		UPDATE projects
		SET title = ?, description = ?, tags = ?, image_url = ?, link = ?
		WHERE id = ?
	`
	res, err := r.db.ExecContext(ctx, query,
		proj.Title,
		proj.Description,
		tags,
		proj.ImageURL,
		proj.Link,
		proj.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	return expectOneRow(res)
}

// Delete removes a project
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return expectOneRow(res)
}

// Tags are stored as a JSON array in a TEXT column.
func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("failed to encode tags: %w", err)
	}
	return string(data), nil
}

func decodeTags(raw string) ([]string, error) {
	tags := []string{}
	if raw == "" {
		return tags, nil
	}
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}
	return tags, nil
}
