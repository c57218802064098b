package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/adapter/http/dto"
	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

func BuildCreateTaskInput(req dto.CreateTaskRequest, raw map[string]json.RawMessage, createdBy string) (domain.CreateTaskInput, error) {
	if hasJSONField(raw, "status") && req.Status == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	if hasJSONField(raw, "priority") && req.Priority == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	if hasJSONField(raw, "progress") && req.Progress == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	name := strings.TrimSpace(req.TaskName)
	if name == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	assignedTo := strings.TrimSpace(req.AssignedTo)
	if assignedTo == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	startDate, err := parseOptionalDate(req.StartDate)
	if err != nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	dueDate, err := parseOptionalDate(req.DueDate)
	if err != nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	var status *domain.TaskStatus
	if req.Status != nil {
		value := domain.TaskStatus(*req.Status)
		status = &value
	}

	var priority *domain.TaskPriority
	if req.Priority != nil {
		value := domain.TaskPriority(*req.Priority)
		priority = &value
	}

	return domain.CreateTaskInput{
		ProjectID:   req.ProjectID,
		Name:        name,
		Description: req.Description,
		AssignedTo:  assignedTo,
		CreatedBy:   createdBy,
		StartDate:   startDate,
		DueDate:     dueDate,
		Status:      status,
		Priority:    priority,
		Progress:    req.Progress,
	}, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var name *string
	if hasJSONField(raw, "task_name") && req.TaskName == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.TaskName != nil {
		value := strings.TrimSpace(*req.TaskName)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		name = &value
	}

	var assignedTo *string
	if hasJSONField(raw, "assigned_to") && req.AssignedTo == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.AssignedTo != nil {
		value := strings.TrimSpace(*req.AssignedTo)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		assignedTo = &value
	}

	var status *domain.TaskStatus
	if hasJSONField(raw, "status") && req.Status == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Status != nil {
		value := domain.TaskStatus(*req.Status)
		status = &value
	}

	var priority *domain.TaskPriority
	if hasJSONField(raw, "priority") && req.Priority == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Priority != nil {
		value := domain.TaskPriority(*req.Priority)
		priority = &value
	}

	if hasJSONField(raw, "progress") && req.Progress == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	descriptionSet := hasJSONField(raw, "description")
	if descriptionSet && !isJSONNull(raw["description"]) && req.Description == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var startDate *time.Time
	startDateSet := hasJSONField(raw, "start_date")
	if startDateSet && !isJSONNull(raw["start_date"]) {
		if req.StartDate == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		parsed, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		startDate = &parsed
	}

	var dueDate *time.Time
	dueDateSet := hasJSONField(raw, "due_date")
	if dueDateSet && !isJSONNull(raw["due_date"]) {
		if req.DueDate == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		parsed, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		dueDate = &parsed
	}

	return domain.UpdateTaskInput{
		Name:           name,
		Description:    req.Description,
		DescriptionSet: descriptionSet,
		AssignedTo:     assignedTo,
		StartDate:      startDate,
		StartDateSet:   startDateSet,
		DueDate:        dueDate,
		DueDateSet:     dueDateSet,
		Status:         status,
		Priority:       priority,
		Progress:       req.Progress,
	}, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "task_name") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "assigned_to") ||
		hasJSONField(raw, "start_date") ||
		hasJSONField(raw, "due_date") ||
		hasJSONField(raw, "status") ||
		hasJSONField(raw, "priority") ||
		hasJSONField(raw, "progress")
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
