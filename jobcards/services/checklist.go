package services

import (
	"errors"

	"jobcard-backend/db/models"
)

var ErrTaskIndexOutOfRange = errors.New("task index out of range")

// NewServiceChecklist synthesizes a fresh flat checklist for a standard
// service tier: every task from the catalog with status nil and empty
// mutable fields. Callers switching a card's service selection must use this
// to replace the old checklist wholesale; the switch is destructive and any
// prior task state is discarded.
func NewServiceChecklist(serviceType models.ServiceType) models.ServiceProgress {
	return models.ServiceProgress{
		ServiceType: string(serviceType),
		Tasks:       freshTasks(TaskNamesFor(serviceType), ""),
	}
}

// NewTrailerChecklist synthesizes the sectioned trailer inspection list.
// Tasks are stored flat; each carries its section tag.
func NewTrailerChecklist() models.TrailerProgress {
	var tasks []models.ServiceTask
	for _, section := range TrailerSections {
		tasks = append(tasks, freshTasks(trailerTasksBySection[section], section)...)
	}
	return models.TrailerProgress{Tasks: tasks}
}

// NewOtherChecklist starts the user-extensible checklist empty. Rows are
// added and removed freely by the client.
func NewOtherChecklist() models.OtherProgress {
	return models.OtherProgress{Tasks: []models.ServiceTask{}}
}

func freshTasks(names []string, section string) []models.ServiceTask {
	tasks := make([]models.ServiceTask, 0, len(names))
	for _, name := range names {
		tasks = append(tasks, models.ServiceTask{
			Task:    name,
			Section: section,
		})
	}
	return tasks
}

// ToggleTaskStatus applies the tri-state toggle to one task: applying a
// status different from the current one sets it, re-applying the current
// status clears it back to nil. There are no combined states.
func ToggleTaskStatus(tasks []models.ServiceTask, index int, status models.TaskStatus) error {
	if index < 0 || index >= len(tasks) {
		return ErrTaskIndexOutOfRange
	}
	if !models.ValidTaskStatus(status) {
		return errors.New("invalid task status: " + string(status))
	}
	current := tasks[index].Status
	if current != nil && *current == status {
		tasks[index].Status = nil
		return nil
	}
	s := status
	tasks[index].Status = &s
	return nil
}

// ChecklistProgress counts addressed tasks. A task is addressed once its
// status is non-nil; cross and n/a count the same as tick.
func ChecklistProgress(tasks []models.ServiceTask) (completed, total int) {
	for _, t := range tasks {
		if t.Status != nil {
			completed++
		}
	}
	return completed, len(tasks)
}

// SectionProgress computes per-section addressed/total counts for a sectioned
// checklist. Tasks with no section tag are grouped under the empty key.
func SectionProgress(tasks []models.ServiceTask) map[string][2]int {
	progress := make(map[string][2]int)
	for _, t := range tasks {
		counts := progress[t.Section]
		if t.Status != nil {
			counts[0]++
		}
		counts[1]++
		progress[t.Section] = counts
	}
	return progress
}
