// Package validation builds partial-update inputs from PATCH bodies.
// The raw JSON field map distinguishes "field omitted" from "field set
// to null" and rejects fields whose binding silently failed, the usual
// blind spot of struct-only binding.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"projectmanager/internal/adapter/api/dto"
	"projectmanager/internal/core/domain"
)

var (
	ErrInvalidProjectPayload = errors.New("invalid project payload")
	ErrInvalidTaskPayload    = errors.New("invalid task payload")
)

const dueDateLayout = "2006-01-02"

func BuildUpdateProjectInput(req dto.UpdateProjectRequest, raw map[string]json.RawMessage) (domain.UpdateProjectInput, error) {
	if !hasJSONField(raw, "name") && !hasJSONField(raw, "description") && !hasJSONField(raw, "status") {
		return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
	}

	// userId is immutable after creation; a PATCH trying to move the
	// project to another user is rejected outright.
	if hasJSONField(raw, "userId") {
		return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
	}

	var name *string
	if hasJSONField(raw, "name") && req.Name == nil {
		return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
	}
	if req.Name != nil {
		value := strings.TrimSpace(*req.Name)
		if value == "" {
			return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
		}
		name = &value
	}

	if hasJSONField(raw, "description") && req.Description == nil {
		return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
	}

	var status *domain.ProjectStatus
	if hasJSONField(raw, "status") && req.Status == nil {
		return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
	}
	if req.Status != nil {
		value := domain.ProjectStatus(*req.Status)
		if !value.Valid() {
			return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
		}
		status = &value
	}

	return domain.UpdateProjectInput{
		Name:        name,
		Description: req.Description,
		Status:      status,
	}, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	// projectId is the immutable scoping key; a PATCH may not carry it.
	if hasJSONField(raw, "projectId") {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var title *string
	if hasJSONField(raw, "title") && req.Title == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		title = &value
	}

	if hasJSONField(raw, "description") && req.Description == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var status *domain.TaskStatus
	if hasJSONField(raw, "status") && req.Status == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Status != nil {
		value := domain.TaskStatus(*req.Status)
		if !value.Valid() {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		status = &value
	}

	var dueDate *time.Time
	dueDateSet := hasJSONField(raw, "dueDate")
	if dueDateSet && !isJSONNull(raw["dueDate"]) {
		if req.DueDate == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		parsed, err := time.Parse(dueDateLayout, *req.DueDate)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		dueDate = &parsed
	}

	return domain.UpdateTaskInput{
		Title:       title,
		Description: req.Description,
		Status:      status,
		DueDate:     dueDate,
		DueDateSet:  dueDateSet,
	}, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "title") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "status") ||
		hasJSONField(raw, "dueDate")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
