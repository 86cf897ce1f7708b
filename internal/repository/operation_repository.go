package repository

import (
	"database/sql"
	"fmt"
	"time"
)

// Operation is one journal entry for a mutating call against the remote
// service. The journal is an audit record only; nothing is ever read back
// from it to answer a request.
type Operation struct {
	ID           int64
	Operation    string
	ProjectID    string
	TaskID       string
	Status       string
	ErrorMessage string
	CreatedAt    time.Time
}

type OperationRepository struct {
	db *sql.DB
}

func NewOperationRepository(db *sql.DB) *OperationRepository {
	return &OperationRepository{db: db}
}

func (r *OperationRepository) Record(op *Operation) error {
	query := `
		INSERT INTO operations (operation, project_id, task_id, status, error_message)
        VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		op.Operation,
		op.ProjectID,
		op.TaskID,
		op.Status,
		op.ErrorMessage,
	)

	if err != nil {
		return fmt.Errorf("Error trying to record the operation: %w", err)
	}

	return nil
}

func (r *OperationRepository) ListRecent(limit int) ([]Operation, error) {
	query := `
		SELECT id, operation, project_id, task_id, status, error_message, created_at
		FROM operations ORDER BY id DESC LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("Error trying to list operations: %w", err)
	}
	defer rows.Close()

	var ops []Operation
	for rows.Next() {
		var op Operation
		var errorMessage sql.NullString
		if err := rows.Scan(&op.ID, &op.Operation, &op.ProjectID, &op.TaskID, &op.Status, &errorMessage, &op.CreatedAt); err != nil {
			return nil, fmt.Errorf("Error trying to scan operation: %w", err)
		}
		op.ErrorMessage = errorMessage.String
		ops = append(ops, op)
	}

	return ops, rows.Err()
}
