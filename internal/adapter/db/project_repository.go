package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"projectmanager/internal/core/domain"
	"projectmanager/internal/core/ports"
)

type ProjectRepository struct {
	db *sqlx.DB
}

type projectRow struct {
	ID          string `db:"id"`
	UserID      string `db:"user_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Status      string `db:"status"`
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) ListByUser(ctx context.Context, userID string) ([]domain.Project, error) {
	var rows []projectRow
	query := `SELECT * FROM projects WHERE user_id = ? ORDER BY rowid`
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, err
	}

	projects := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, mapProjectRowToDomain(row))
	}

	return projects, nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (domain.Project, error) {
	var row projectRow
	if err := r.db.GetContext(ctx, &row, `SELECT * FROM projects WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Project{}, domain.ErrProjectNotFound
		}
		return domain.Project{}, err
	}

	return mapProjectRowToDomain(row), nil
}

func (r *ProjectRepository) Create(ctx context.Context, project domain.Project) (domain.Project, error) {
	query := `INSERT INTO projects (id, user_id, name, description, status) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		project.ID, project.UserID, project.Name, project.Description, string(project.Status))
	if err != nil {
		return domain.Project{}, err
	}

	return project, nil
}

// Update applies only the fields present in the input. user_id is never
// part of the SET clause; ownership is immutable.
func (r *ProjectRepository) Update(ctx context.Context, id string, input domain.UpdateProjectInput) (domain.Project, error) {
	assignments := make([]string, 0, 3)
	args := make([]any, 0, 4)

	if input.Name != nil {
		assignments = append(assignments, "name = ?")
		args = append(args, *input.Name)
	}
	if input.Description != nil {
		assignments = append(assignments, "description = ?")
		args = append(args, *input.Description)
	}
	if input.Status != nil {
		assignments = append(assignments, "status = ?")
		args = append(args, string(*input.Status))
	}

	if len(assignments) > 0 {
		args = append(args, id)
		query := "UPDATE projects SET " + strings.Join(assignments, ", ") + " WHERE id = ?"
		result, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return domain.Project{}, err
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return domain.Project{}, err
		}
		if affected == 0 {
			return domain.Project{}, domain.ErrProjectNotFound
		}
	}

	return r.FindByID(ctx, id)
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrProjectNotFound
	}

	return nil
}

func mapProjectRowToDomain(row projectRow) domain.Project {
	return domain.Project{
		ID:          row.ID,
		UserID:      row.UserID,
		Name:        row.Name,
		Description: row.Description,
		Status:      domain.ProjectStatus(row.Status),
	}
}
