package toast

import (
	"time"

	"github.com/google/uuid"
)

// EventName is the event name dispatched for toasts.
// Client-side code listens for this event.
const EventName = "selectdemo:toast"

// Type represents the toast notification type.
type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeWarning Type = "warning"
	TypeInfo    Type = "info"
)

// Position is where the client places the toast.
type Position string

const (
	PositionTopEnd    Position = "top-end"
	PositionMiddle    Position = "middle"
	PositionBottomEnd Position = "bottom-end"
)

// DefaultDuration is how long a toast stays visible unless overridden.
const DefaultDuration = 5 * time.Second

// Notification is a transient message shown to the user.
type Notification struct {
	ID       string
	Level    Type
	Title    string
	Message  string
	Duration time.Duration
	Position Position
}

// Detail returns the event payload sent to the client.
func (n Notification) Detail() map[string]any {
	d := map[string]any{
		"id":       n.ID,
		"level":    string(n.Level),
		"message":  n.Message,
		"duration": n.Duration.Milliseconds(),
		"position": string(n.Position),
	}
	if n.Title != "" {
		d["title"] = n.Title
	}
	return d
}

// Emitter delivers events to a client. A live session pushes them over
// its connection; a page request stores them as a flash.
type Emitter interface {
	Emit(name string, data any)
}

// Option customizes a notification.
type Option func(*Notification)

// WithDuration sets how long the toast stays visible.
func WithDuration(d time.Duration) Option {
	return func(n *Notification) { n.Duration = d }
}

// AtPosition sets where the toast is shown.
func AtPosition(p Position) Option {
	return func(n *Notification) { n.Position = p }
}

// WithTitle adds a title above the message.
func WithTitle(title string) Option {
	return func(n *Notification) { n.Title = title }
}

// New builds a notification without emitting it.
func New(level Type, message string, opts ...Option) Notification {
	n := Notification{
		ID:       uuid.NewString(),
		Level:    level,
		Message:  message,
		Duration: DefaultDuration,
		Position: PositionBottomEnd,
	}
	for _, opt := range opts {
		opt(&n)
	}
	return n
}

// Show emits a toast notification and returns it.
//
// The client receives a CustomEvent with:
//   - event.type = "selectdemo:toast"
//   - event.detail = { id, level, message, duration, position }
func Show(e Emitter, level Type, message string, opts ...Option) Notification {
	n := New(level, message, opts...)
	e.Emit(EventName, n.Detail())
	return n
}

// Success shows a success toast.
//
//	toast.Success(e, "Submit successful", toast.WithDuration(2*time.Second))
func Success(e Emitter, message string, opts ...Option) Notification {
	return Show(e, TypeSuccess, message, opts...)
}

// Error shows an error toast.
func Error(e Emitter, message string, opts ...Option) Notification {
	return Show(e, TypeError, message, opts...)
}

// Info shows an info toast.
func Info(e Emitter, message string, opts ...Option) Notification {
	return Show(e, TypeInfo, message, opts...)
}

// Recorder is an Emitter that keeps the emitted notifications in order.
// Page requests use it to carry toasts across a redirect.
type Recorder struct {
	Events []Event
}

// Event is one recorded emission.
type Event struct {
	Name string
	Data any
}

// Emit implements Emitter.
func (r *Recorder) Emit(name string, data any) {
	r.Events = append(r.Events, Event{Name: name, Data: data})
}

// Toasts returns the payloads of recorded toast events.
func (r *Recorder) Toasts() []map[string]any {
	var out []map[string]any
	for _, ev := range r.Events {
		if ev.Name != EventName {
			continue
		}
		if d, ok := ev.Data.(map[string]any); ok {
			out = append(out, d)
		}
	}
	return out
}
