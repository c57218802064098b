package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/adapter/http/dto"
	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/adapter/http/mapper"
	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/adapter/http/middleware"
	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/adapter/http/validation"
	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/domain"
	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/ports"
	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	in, err := validation.BuildCreateTaskInput(req, raw, middleware.CurrentUserID(c))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), middleware.BearerToken(c), in)
	if err != nil {
		if status, msgKey, ok := taskErrorStatus(err); ok {
			c.JSON(status, apierrors.CreateError(status, msgKey, lang))
			return
		}

		zap.L().Error("failed to create task", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateTask, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID := strings.TrimSpace(c.Param("id"))
	if taskID == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return
	}

	detail, err := h.taskService.GetTask(c.Request.Context(), middleware.BearerToken(c), taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to get task", zap.String("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailGetTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskDetailItem(detail))
}

func (h *TaskHandler) ListProjectTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	projectID := strings.TrimSpace(c.Param("projectId"))
	if projectID == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return
	}

	tasks, err := h.taskService.ListProjectTasks(c.Request.Context(), projectID)
	if err != nil {
		zap.L().Error("failed to list project tasks", zap.String("project_id", projectID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) ListMyTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	tasks, err := h.taskService.ListUserTasks(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		zap.L().Error("failed to list user tasks", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID := strings.TrimSpace(c.Param("id"))
	if taskID == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	in, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	task, err := h.taskService.UpdateTask(
		c.Request.Context(),
		middleware.BearerToken(c),
		taskID,
		middleware.CurrentUserID(c),
		in,
	)
	if err != nil {
		if status, msgKey, ok := taskErrorStatus(err); ok {
			c.JSON(status, apierrors.CreateError(status, msgKey, lang))
			return
		}

		zap.L().Error("failed to update task", zap.String("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID := strings.TrimSpace(c.Param("id"))
	if taskID == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return
	}

	err := h.taskService.DeleteTask(c.Request.Context(), middleware.BearerToken(c), taskID, middleware.CurrentUserID(c))
	if err != nil {
		if status, msgKey, ok := taskErrorStatus(err); ok {
			c.JSON(status, apierrors.CreateError(status, msgKey, lang))
			return
		}

		zap.L().Error("failed to delete task", zap.String("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteTask, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) ProjectTaskStats(c *gin.Context) {
	lang := middleware.GetLang(c)

	projectID := strings.TrimSpace(c.Param("projectId"))
	if projectID == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return
	}

	stats, err := h.taskService.ProjectTaskStats(c.Request.Context(), projectID)
	if err != nil {
		zap.L().Error("failed to compute task stats", zap.String("project_id", projectID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailTaskStats, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskStatItems(stats))
}

// BatchTasks serves id->name resolution for sibling services. The ids query
// parameter is a comma separated list.
func (h *TaskHandler) BatchTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	ids := splitBatchIDs(c.Query("ids"))
	if len(ids) == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgMissingBatchIDs, lang),
		)
		return
	}

	summaries, err := h.taskService.BatchTasks(c.Request.Context(), ids)
	if err != nil {
		zap.L().Error("failed to batch tasks", zap.Int("ids", len(ids)), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskBatchResponse(summaries))
}

// ListAllTasks is the unauthenticated internal listing consumed by the
// reminder sweep.
func (h *TaskHandler) ListAllTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	tasks, err := h.taskService.ListAllTasks(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list all tasks", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskReminderItems(tasks))
}

func taskErrorStatus(err error) (int, string, bool) {
	switch {
	case errors.Is(err, domain.ErrInvalidDateRange):
		return http.StatusBadRequest, apierrors.MsgInvalidDateRange, true
	case errors.Is(err, domain.ErrTaskStartBeforeProjectStart):
		return http.StatusBadRequest, apierrors.MsgTaskStartBeforeProject, true
	case errors.Is(err, domain.ErrTaskDueAfterProjectEnd):
		return http.StatusBadRequest, apierrors.MsgTaskDueAfterProject, true
	case errors.Is(err, domain.ErrProjectMissingStartDate):
		return http.StatusBadRequest, apierrors.MsgProjectMissingStartDate, true
	case errors.Is(err, domain.ErrProjectMissingEndDate):
		return http.StatusBadRequest, apierrors.MsgProjectMissingEndDate, true
	case errors.Is(err, domain.ErrAssigneeNotTeamMember):
		return http.StatusForbidden, apierrors.MsgAssigneeNotTeamMember, true
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, apierrors.MsgForbidden, true
	case errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound, apierrors.MsgTaskNotFound, true
	case errors.Is(err, domain.ErrProjectNotFound):
		return http.StatusNotFound, apierrors.MsgProjectNotFound, true
	case errors.Is(err, domain.ErrTeamNotFound):
		return http.StatusNotFound, apierrors.MsgTeamNotFound, true
	case errors.Is(err, domain.ErrRemoteUnavailable):
		return http.StatusBadGateway, apierrors.MsgRemoteUnavailable, true
	}
	return 0, "", false
}

func splitBatchIDs(value string) []string {
	parts := strings.Split(value, ",")
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		id := strings.TrimSpace(part)
		if id == "" {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
