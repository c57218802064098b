package domain

// ResolveStatusProgress applies the status/progress coupling rule to an
// update carrying a new status and/or progress on top of the previously
// persisted pair. The returned pair always satisfies:
//
//	Done => 100, To Do => 0, In Progress => at least 1.
//
// Review does not force a progress value; progress is only clamped there.
func ResolveStatusProgress(prevStatus TaskStatus, prevProgress int, newStatus *TaskStatus, newProgress *int) (TaskStatus, int) {
	status := prevStatus
	if newStatus != nil {
		status = *newStatus
	}

	progress := prevProgress
	if newProgress != nil {
		progress = clampProgress(*newProgress)
	}

	if newStatus != nil {
		switch status {
		case TaskStatusDone:
			progress = 100
		case TaskStatusToDo:
			progress = 0
		case TaskStatusInProgress:
			if progress == 0 {
				progress = 1
			}
		}
		return status, progress
	}

	if newProgress != nil {
		switch {
		case progress == 100:
			status = TaskStatusDone
		case progress == 0:
			status = TaskStatusToDo
		case prevStatus == TaskStatusDone || prevStatus == TaskStatusToDo:
			status = TaskStatusInProgress
		}
	}

	return status, progress
}

func clampProgress(progress int) int {
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}
