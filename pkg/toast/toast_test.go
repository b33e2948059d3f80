package toast_test

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vango-dev/selectdemo/pkg/toast"
)

func TestSuccess(t *testing.T) {
	rec := &toast.Recorder{}

	n := toast.Success(rec, "Item saved!")

	if len(rec.Events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(rec.Events))
	}

	event := rec.Events[0]
	if event.Name != toast.EventName {
		t.Errorf("expected event name %q, got %q", toast.EventName, event.Name)
	}

	data := event.Data.(map[string]any)
	if data["level"] != "success" {
		t.Errorf("expected level success, got %v", data["level"])
	}
	if data["message"] != "Item saved!" {
		t.Errorf("expected message 'Item saved!', got %v", data["message"])
	}
	if data["id"] != n.ID {
		t.Errorf("expected id %q, got %v", n.ID, data["id"])
	}
	if _, err := uuid.Parse(n.ID); err != nil {
		t.Errorf("id %q is not a uuid: %v", n.ID, err)
	}
}

func TestError(t *testing.T) {
	rec := &toast.Recorder{}

	toast.Error(rec, "Failed")

	data := rec.Toasts()[0]
	if data["level"] != "error" {
		t.Errorf("expected level error, got %v", data["level"])
	}
	if _, ok := data["title"]; ok {
		t.Error("title should be omitted when empty")
	}
}

func TestOptions(t *testing.T) {
	rec := &toast.Recorder{}

	n := toast.Success(rec, "Submit successful",
		toast.WithDuration(2*time.Second),
		toast.AtPosition(toast.PositionMiddle),
		toast.WithTitle("Form"))

	if n.Duration != 2*time.Second || n.Position != toast.PositionMiddle || n.Title != "Form" {
		t.Errorf("notification = %+v", n)
	}
	data := rec.Toasts()[0]
	if data["duration"] != int64(2000) {
		t.Errorf("expected duration 2000, got %v", data["duration"])
	}
	if data["position"] != "middle" {
		t.Errorf("expected position middle, got %v", data["position"])
	}
	if data["title"] != "Form" {
		t.Errorf("expected title Form, got %v", data["title"])
	}
}

func TestDefaults(t *testing.T) {
	n := toast.New(toast.TypeInfo, "hello")
	if n.Duration != toast.DefaultDuration {
		t.Errorf("Duration = %v, want default", n.Duration)
	}
	if n.Position != toast.PositionBottomEnd {
		t.Errorf("Position = %v, want bottom-end", n.Position)
	}
	if n.ID == toast.New(toast.TypeInfo, "hello").ID {
		t.Error("notification ids should be unique")
	}
}

func TestRecorderToastsSkipsOtherEvents(t *testing.T) {
	rec := &toast.Recorder{}
	rec.Emit("other", "x")
	toast.Info(rec, "one")

	if got := len(rec.Toasts()); got != 1 {
		t.Errorf("Toasts() len = %d, want 1", got)
	}
}
