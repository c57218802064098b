package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/adapter/http/dto"
	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/adapter/http/mapper"
	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/adapter/http/middleware"
	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/domain"
	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/ports"
	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/pkg/apierrors"
)

type ActivityHandler struct {
	activityService ports.ActivityService
}

func NewActivityHandler(activityService ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// RecordActivity is unauthenticated: it sits on the internal network and
// sibling services call it fire-and-forget.
func (h *ActivityHandler) RecordActivity(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidActivityPayload, lang),
		)
		return
	}

	entry, err := h.activityService.RecordActivity(c.Request.Context(), domain.ActivityEntryInput{
		UserID:      req.UserID,
		Action:      strings.TrimSpace(req.Action),
		RelatedID:   req.RelatedID,
		RelatedType: domain.RelatedType(req.RelatedType),
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRelatedType) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRelatedType, lang),
			)
			return
		}

		zap.L().Error("failed to record activity", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateActivity, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToActivityItem(domain.EnrichedActivityEntry{ActivityEntry: entry}))
}

func (h *ActivityHandler) ListUserActivities(c *gin.Context) {
	lang := middleware.GetLang(c)

	userID := strings.TrimSpace(c.Param("userId"))
	if userID == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidActivityPayload, lang),
		)
		return
	}

	filter, ok := parseActivityFilter(c)
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRelatedType, lang),
		)
		return
	}

	page, err := h.activityService.ListUserActivities(c.Request.Context(), userID, filter)
	if err != nil {
		zap.L().Error("failed to list user activities", zap.String("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListActivity, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToActivityListResponse(page))
}

func (h *ActivityHandler) ListRelatedActivities(c *gin.Context) {
	lang := middleware.GetLang(c)

	relatedType := domain.RelatedType(c.Param("relatedType"))
	relatedID := strings.TrimSpace(c.Param("relatedId"))
	if !relatedType.Valid() || relatedID == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRelatedType, lang),
		)
		return
	}

	filter, ok := parseActivityFilter(c)
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRelatedType, lang),
		)
		return
	}

	page, err := h.activityService.ListRelatedActivities(
		c.Request.Context(),
		middleware.BearerToken(c),
		relatedID,
		relatedType,
		filter,
	)
	if err != nil {
		zap.L().Error("failed to list related activities",
			zap.String("related_type", string(relatedType)),
			zap.String("related_id", relatedID),
			zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListActivity, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToActivityListResponse(page))
}

func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	lang := middleware.GetLang(c)

	activityID := strings.TrimSpace(c.Param("id"))
	if activityID == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidActivityPayload, lang),
		)
		return
	}

	if err := h.activityService.DeleteActivity(c.Request.Context(), activityID); err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgActivityNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete activity", zap.String("activity_id", activityID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteActivity, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseActivityFilter(c *gin.Context) (domain.ActivityFilter, bool) {
	filter := domain.ActivityFilter{
		Page:  parsePositiveInt(c.Query("page"), 1),
		Limit: parsePositiveInt(c.Query("limit"), 0),
	}

	if value := strings.TrimSpace(c.Query("related_type")); value != "" {
		relatedType := domain.RelatedType(value)
		if !relatedType.Valid() {
			return domain.ActivityFilter{}, false
		}
		filter.RelatedType = &relatedType
	}

	return filter, true
}

func parsePositiveInt(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 1 {
		return fallback
	}
	return parsed
}
