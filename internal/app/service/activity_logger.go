package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/domain"
	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/ports"
)

// ActivityLogger appends audit entries through the Activity collaborator.
// Every append is best-effort: the primary mutation must succeed or fail
// independently of whether its audit entry was recorded, so failures are
// logged and dropped here.
type ActivityLogger struct {
	recorder ports.ActivityRecorder
}

func NewActivityLogger(recorder ports.ActivityRecorder) *ActivityLogger {
	return &ActivityLogger{recorder: recorder}
}

func (l *ActivityLogger) TaskCreated(ctx context.Context, token, userID, taskID, taskName string) {
	l.log(ctx, token, userID, taskID, fmt.Sprintf("Created task: %s", taskName))
}

func (l *ActivityLogger) TaskUpdated(ctx context.Context, token, userID, taskID, taskName string, status domain.TaskStatus) {
	l.log(ctx, token, userID, taskID, fmt.Sprintf("Updated task: %s (%s)", taskName, status))
}

func (l *ActivityLogger) TaskDeleted(ctx context.Context, token, userID, taskID, taskName string) {
	l.log(ctx, token, userID, taskID, fmt.Sprintf("Deleted task: %s", taskName))
}

func (l *ActivityLogger) log(ctx context.Context, token, userID, taskID, action string) {
	if l == nil || l.recorder == nil {
		return
	}

	relatedID := taskID
	err := l.recorder.Record(ctx, token, domain.ActivityEntryInput{
		UserID:      userID,
		Action:      action,
		RelatedID:   &relatedID,
		RelatedType: domain.RelatedTypeTask,
	})
	if err != nil {
		zap.L().Warn("failed to record activity", zap.String("action", action), zap.Error(err))
	}
}
