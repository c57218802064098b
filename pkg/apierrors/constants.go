package apierrors

const (
	MsgUnauthorized = "unauthorized"
	MsgForbidden    = "forbidden"

	MsgInvalidTaskID              = "invalidTaskID"
	MsgInvalidTaskPayload         = "invalidTaskPayload"
	MsgTaskNotFound               = "taskNotFound"
	MsgProjectNotFound            = "projectNotFound"
	MsgTeamNotFound               = "teamNotFound"
	MsgInvalidDateRange           = "invalidDateRange"
	MsgTaskStartBeforeProject     = "taskStartBeforeProjectStart"
	MsgTaskDueAfterProject        = "taskDueAfterProjectEnd"
	MsgProjectMissingStartDate    = "projectMissingStartDate"
	MsgProjectMissingEndDate      = "projectMissingEndDate"
	MsgAssigneeNotTeamMember      = "assigneeNotTeamMember"
	MsgRemoteUnavailable          = "remoteUnavailable"
	MsgFailCreateTask             = "failCreateTask"
	MsgFailListTask               = "failListTask"
	MsgFailGetTask                = "failGetTask"
	MsgFailUpdateTask             = "failUpdateTask"
	MsgFailDeleteTask             = "failDeleteTask"
	MsgFailTaskStats              = "failTaskStats"
	MsgMissingBatchIDs            = "missingBatchIDs"
	MsgInvalidNotificationID      = "invalidNotificationID"
	MsgInvalidNotificationPayload = "invalidNotificationPayload"
	MsgNotificationNotFound       = "notificationNotFound"
	MsgFailCreateNotification     = "failCreateNotification"
	MsgFailListNotification       = "failListNotification"
	MsgFailMarkNotificationRead   = "failMarkNotificationRead"
	MsgFailDeleteNotification     = "failDeleteNotification"
	MsgInvalidActivityPayload     = "invalidActivityPayload"
	MsgInvalidRelatedType         = "invalidRelatedType"
	MsgActivityNotFound           = "activityNotFound"
	MsgFailCreateActivity         = "failCreateActivity"
	MsgFailListActivity           = "failListActivity"
	MsgFailDeleteActivity         = "failDeleteActivity"
)
