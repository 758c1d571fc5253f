package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"projectmanager/internal/core/domain"
	"projectmanager/internal/core/ports"
)

const dueDateLayout = "2006-01-02"

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          string         `db:"id"`
	ProjectID   string         `db:"project_id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	Status      string         `db:"status"`
	DueDate     sql.NullString `db:"due_date"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) ListByProject(ctx context.Context, projectID string) ([]domain.Task, error) {
	var rows []taskRow
	query := `SELECT * FROM tasks WHERE project_id = ? ORDER BY rowid`
	if err := r.db.SelectContext(ctx, &rows, query, projectID); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomain(row))
	}

	return tasks, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, `SELECT * FROM tasks WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	return mapTaskRowToDomain(row), nil
}

func (r *TaskRepository) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	query := `INSERT INTO tasks (id, project_id, title, description, status, due_date) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		task.ID, task.ProjectID, task.Title, task.Description, string(task.Status), dueDateColumn(task.DueDate))
	if err != nil {
		return domain.Task{}, err
	}

	return task, nil
}

// Update applies only the fields present in the input. project_id is
// never part of the SET clause; a task cannot move between projects.
func (r *TaskRepository) Update(ctx context.Context, id string, input domain.UpdateTaskInput) (domain.Task, error) {
	assignments := make([]string, 0, 4)
	args := make([]any, 0, 5)

	if input.Title != nil {
		assignments = append(assignments, "title = ?")
		args = append(args, *input.Title)
	}
	if input.Description != nil {
		assignments = append(assignments, "description = ?")
		args = append(args, *input.Description)
	}
	if input.Status != nil {
		assignments = append(assignments, "status = ?")
		args = append(args, string(*input.Status))
	}
	if input.DueDateSet {
		assignments = append(assignments, "due_date = ?")
		args = append(args, dueDateColumn(input.DueDate))
	}

	if len(assignments) > 0 {
		args = append(args, id)
		query := "UPDATE tasks SET " + strings.Join(assignments, ", ") + " WHERE id = ?"
		result, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return domain.Task{}, err
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return domain.Task{}, err
		}
		if affected == 0 {
			return domain.Task{}, domain.ErrTaskNotFound
		}
	}

	return r.FindByID(ctx, id)
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

func dueDateColumn(dueDate *time.Time) any {
	if dueDate == nil {
		return nil
	}
	return dueDate.Format(dueDateLayout)
}

func mapTaskRowToDomain(row taskRow) domain.Task {
	task := domain.Task{
		ID:          row.ID,
		ProjectID:   row.ProjectID,
		Title:       row.Title,
		Description: row.Description,
		Status:      domain.TaskStatus(row.Status),
	}

	if row.DueDate.Valid && row.DueDate.String != "" {
		if parsed, err := time.Parse(dueDateLayout, row.DueDate.String); err == nil {
			task.DueDate = &parsed
		}
	}

	return task
}
