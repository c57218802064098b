package handlers

import (
	"errors"
	"net/http"
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

type NotificationHandler struct {
	notificationService ports.NotificationService
}

func NewNotificationHandler(notificationService ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidNotificationPayload, lang),
		)
		return
	}

	notification, err := h.notificationService.CreateNotification(c.Request.Context(), domain.CreateNotificationInput{
		UserID:  req.UserID,
		TaskID:  req.TaskID,
		Message: strings.TrimSpace(req.Message),
	})
	if err != nil {
		zap.L().Error("failed to create notification", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateNotification, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToNotificationItem(notification))
}

// SendNotification pushes a one-off notification by email without storing
// it. The mail leg is best effort: nothing is persisted and a mail failure
// never fails the request.
func (h *NotificationHandler) SendNotification(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidNotificationPayload, lang),
		)
		return
	}

	transient := domain.Notification{
		UserID:  req.UserID,
		TaskID:  req.TaskID,
		Message: strings.TrimSpace(req.Message),
	}
	h.notificationService.SendMail(c.Request.Context(), middleware.BearerToken(c), transient, false)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *NotificationHandler) ListMyNotifications(c *gin.Context) {
	lang := middleware.GetLang(c)

	notifications, err := h.notificationService.ListUserNotifications(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		zap.L().Error("failed to list notifications", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListNotification, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToNotificationItems(notifications))
}

func (h *NotificationHandler) GetNotification(c *gin.Context) {
	lang := middleware.GetLang(c)

	notificationID := strings.TrimSpace(c.Param("id"))
	if notificationID == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidNotificationID, lang),
		)
		return
	}

	detail, err := h.notificationService.GetNotification(c.Request.Context(), middleware.BearerToken(c), notificationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotificationNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgNotificationNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to get notification", zap.String("notification_id", notificationID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListNotification, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToNotificationDetailItem(detail))
}

func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	lang := middleware.GetLang(c)

	notificationID := strings.TrimSpace(c.Param("id"))
	if notificationID == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidNotificationID, lang),
		)
		return
	}

	notification, err := h.notificationService.MarkNotificationRead(c.Request.Context(), notificationID, middleware.CurrentUserID(c))
	if err != nil {
		if status, msgKey, ok := notificationErrorStatus(err); ok {
			c.JSON(status, apierrors.CreateError(status, msgKey, lang))
			return
		}

		zap.L().Error("failed to mark notification read", zap.String("notification_id", notificationID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailMarkNotificationRead, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToNotificationItem(notification))
}

func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	lang := middleware.GetLang(c)

	notificationID := strings.TrimSpace(c.Param("id"))
	if notificationID == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidNotificationID, lang),
		)
		return
	}

	err := h.notificationService.DeleteNotification(c.Request.Context(), notificationID, middleware.CurrentUserID(c))
	if err != nil {
		if status, msgKey, ok := notificationErrorStatus(err); ok {
			c.JSON(status, apierrors.CreateError(status, msgKey, lang))
			return
		}

		zap.L().Error("failed to delete notification", zap.String("notification_id", notificationID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteNotification, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func notificationErrorStatus(err error) (int, string, bool) {
	switch {
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, apierrors.MsgForbidden, true
	case errors.Is(err, domain.ErrNotificationNotFound):
		return http.StatusNotFound, apierrors.MsgNotificationNotFound, true
	}
	return 0, "", false
}
