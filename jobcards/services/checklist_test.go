package services

import (
	"testing"

	"jobcard-backend/db/models"
)

func TestNewServiceChecklistTaskCounts(t *testing.T) {
	cases := []struct {
		serviceType models.ServiceType
		want        int
	}{
		{models.ServiceA, 46},
		{models.ServiceB, 54},
		{models.ServiceC, 65},
		{models.ServiceD, 72},
	}
	for _, tc := range cases {
		doc := NewServiceChecklist(tc.serviceType)
		if len(doc.Tasks) != tc.want {
			t.Fatalf("%s: got %d tasks, want %d", tc.serviceType, len(doc.Tasks), tc.want)
		}
		if doc.ServiceType != string(tc.serviceType) {
			t.Fatalf("%s: document carries service type %q", tc.serviceType, doc.ServiceType)
		}
	}
}

func TestTiersAreCumulative(t *testing.T) {
	a := NewServiceChecklist(models.ServiceA)
	d := NewServiceChecklist(models.ServiceD)

	for i, task := range a.Tasks {
		if d.Tasks[i].Task != task.Task {
			t.Fatalf("tier D task %d diverges from tier A: %q vs %q", i, d.Tasks[i].Task, task.Task)
		}
	}
}

func TestNewServiceChecklistStartsUnaddressed(t *testing.T) {
	doc := NewServiceChecklist(models.ServiceB)
	for i, task := range doc.Tasks {
		if task.Status != nil {
			t.Fatalf("task %d starts with status %q, want nil", i, *task.Status)
		}
		if task.Description != "" || task.DoneBy != "" || task.Hours != nil {
			t.Fatalf("task %d starts with non-empty mutable fields", i)
		}
	}
}

func TestNewTrailerChecklistSections(t *testing.T) {
	doc := NewTrailerChecklist()
	if len(doc.Tasks) != 30 {
		t.Fatalf("trailer checklist: got %d tasks, want 30", len(doc.Tasks))
	}

	progress := SectionProgress(doc.Tasks)
	if len(progress) != 5 {
		t.Fatalf("trailer sections: got %d, want 5", len(progress))
	}
	for _, section := range TrailerSections {
		counts, ok := progress[section]
		if !ok {
			t.Fatalf("missing trailer section %q", section)
		}
		if counts[1] != 6 {
			t.Fatalf("section %q: got %d tasks, want 6", section, counts[1])
		}
		if counts[0] != 0 {
			t.Fatalf("section %q: fresh checklist reports %d addressed", section, counts[0])
		}
	}
}

func TestNewOtherChecklistStartsEmpty(t *testing.T) {
	doc := NewOtherChecklist()
	if doc.Tasks == nil {
		t.Fatalf("other checklist Tasks should be an empty slice, not nil")
	}
	if len(doc.Tasks) != 0 {
		t.Fatalf("other checklist: got %d tasks, want 0", len(doc.Tasks))
	}
}

func TestToggleTaskStatus(t *testing.T) {
	tasks := freshTasks([]string{"Check oil level"}, "")

	if err := ToggleTaskStatus(tasks, 0, models.StatusTick); err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if tasks[0].Status == nil || *tasks[0].Status != models.StatusTick {
		t.Fatalf("status after tick: got %v, want tick", tasks[0].Status)
	}

	// Different status overwrites, no combined states.
	if err := ToggleTaskStatus(tasks, 0, models.StatusCross); err != nil {
		t.Fatalf("overwrite toggle: %v", err)
	}
	if *tasks[0].Status != models.StatusCross {
		t.Fatalf("status after cross: got %q, want cross", *tasks[0].Status)
	}

	// Re-applying the current status clears back to unaddressed.
	if err := ToggleTaskStatus(tasks, 0, models.StatusCross); err != nil {
		t.Fatalf("clearing toggle: %v", err)
	}
	if tasks[0].Status != nil {
		t.Fatalf("status after re-apply: got %q, want nil", *tasks[0].Status)
	}
}

func TestToggleTaskStatusRejectsBadInput(t *testing.T) {
	tasks := freshTasks([]string{"Check oil level"}, "")

	if err := ToggleTaskStatus(tasks, 5, models.StatusTick); err != ErrTaskIndexOutOfRange {
		t.Fatalf("out-of-range index: got %v, want ErrTaskIndexOutOfRange", err)
	}
	if err := ToggleTaskStatus(tasks, -1, models.StatusTick); err != ErrTaskIndexOutOfRange {
		t.Fatalf("negative index: got %v, want ErrTaskIndexOutOfRange", err)
	}
	if err := ToggleTaskStatus(tasks, 0, models.TaskStatus("done")); err == nil {
		t.Fatalf("unknown status should be rejected")
	}
}

func TestChecklistProgressCountsAnyStatus(t *testing.T) {
	tasks := freshTasks([]string{"a", "b", "c", "d"}, "")
	ToggleTaskStatus(tasks, 0, models.StatusTick)
	ToggleTaskStatus(tasks, 1, models.StatusCross)
	ToggleTaskStatus(tasks, 2, models.StatusNA)

	completed, total := ChecklistProgress(tasks)
	if completed != 3 || total != 4 {
		t.Fatalf("progress: got %d/%d, want 3/4", completed, total)
	}
}
