package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"projectmanager/internal/adapter/api/dto"
	"projectmanager/internal/adapter/api/mapper"
	"projectmanager/internal/core/domain"
	"projectmanager/internal/core/ports"
	"projectmanager/internal/server/middleware"
	"projectmanager/internal/server/validation"
	"projectmanager/pkg/apierrors"
)

const dueDateLayout = "2006-01-02"

type TaskHandler struct {
	tasks ports.TaskRepository
}

func NewTaskHandler(tasks ports.TaskRepository) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// List serves GET /tasks?projectId=... Tasks are always scoped to one
// project, so the filter is required.
func (h *TaskHandler) List(c *gin.Context) {
	lang := middleware.GetLang(c)

	projectID := c.Query("projectId")
	if projectID == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskQuery, lang),
		)
		return
	}

	tasks, err := h.tasks.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.String("project_id", projectID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) Create(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	status := domain.TaskStatus(req.Status)
	if req.Status == "" {
		status = domain.TaskStatusTodo
	}

	var dueDate *time.Time
	if req.DueDate != nil {
		parsed, err := time.Parse(dueDateLayout, *req.DueDate)
		if err != nil {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
			)
			return
		}
		dueDate = &parsed
	}

	task, err := h.tasks.Create(c.Request.Context(), domain.Task{
		ID:          uuid.NewString(),
		ProjectID:   req.ProjectID,
		Title:       title,
		Description: req.Description,
		Status:      status,
		DueDate:     dueDate,
	})
	if err != nil {
		zap.L().Error("failed to create task", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateTask, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) Update(c *gin.Context) {
	lang := middleware.GetLang(c)

	raw, req, ok := decodeTaskPatch(c)
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to update task", zap.String("task_id", c.Param("id")), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) Delete(c *gin.Context) {
	lang := middleware.GetLang(c)

	if err := h.tasks.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete task", zap.String("task_id", c.Param("id")), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

func decodeTaskPatch(c *gin.Context) (map[string]json.RawMessage, dto.UpdateTaskRequest, bool) {
	var req dto.UpdateTaskRequest

	payload, err := c.GetRawData()
	if err != nil {
		return nil, req, false
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, req, false
	}
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, req, false
	}

	return raw, req, true
}
