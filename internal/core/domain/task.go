package domain

import "time"

// TaskStatus is the lifecycle state of a background task.
type TaskStatus string

// Background task statuses reported by the platform.
const (
	TaskStatusPending   TaskStatus = "Pending"
	TaskStatusRunning   TaskStatus = "Running"
	TaskStatusCompleted TaskStatus = "SuccessfullyCompleted"
	TaskStatusFaulted   TaskStatus = "Faulted"
)

// Terminal reports whether the status is final and polling may stop.
func (s TaskStatus) Terminal() bool {
	return s == TaskStatusCompleted || s == TaskStatusFaulted
}

// Succeeded reports whether the task finished successfully.
func (s TaskStatus) Succeeded() bool {
	return s == TaskStatusCompleted
}

// BackgroundTask is an asynchronous job record (for example a data
// export) tracked by the platform. The client polls it until the
// status becomes terminal.
type BackgroundTask struct {
	ID     string     `json:"Id"`
	Type   string     `json:"TaskType,omitempty"`
	Status TaskStatus `json:"Status"`

	// ResultURL points at the produced artifact once the task has
	// completed successfully. Empty otherwise.
	ResultURL string `json:"ResultUrl,omitempty"`

	CreatedAt  time.Time  `json:"CreationTime,omitempty"`
	FinishedAt *time.Time `json:"FinishTime,omitempty"`
}
