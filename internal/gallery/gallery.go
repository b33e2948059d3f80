package gallery

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vango-dev/selectdemo/internal/data"
	"github.com/vango-dev/selectdemo/pkg/binder"
	"github.com/vango-dev/selectdemo/pkg/catalog"
	"github.com/vango-dev/selectdemo/pkg/toast"
	"github.com/vango-dev/selectdemo/pkg/vdom"
)

//go:embed demos.go
var demoSource string

// ErrUnknownWidget is returned for events naming a widget the gallery
// does not have.
var ErrUnknownWidget = errors.New("gallery: unknown widget")

// ErrUnknownForm is returned for submits naming an unknown form.
var ErrUnknownForm = errors.New("gallery: unknown form")

const binderFormID = "employee-form"

// Deps are the collaborators the demos draw their data from.
type Deps struct {
	Departments data.DepartmentProvider
	Teams       data.TeamProvider

	// EventsPath is the form action for widget events. Defaults to "/events".
	EventsPath string

	// Static renders forms for pages served without the events endpoint.
	// Their required fields are checked in the browser and a valid submit
	// shows the success toast there.
	Static bool

	// Logger receives debug logs of handled events. Defaults to slog.Default().
	Logger *slog.Logger
}

// Gallery is one instance of the select demo catalog with its live
// widgets. A Gallery is not safe for concurrent use; callers serialize
// access per session.
type Gallery struct {
	deps     Deps
	logger   *slog.Logger
	registry *catalog.Registry
	sources  map[string]string

	widgets map[string]*widget
	forms   map[string]*form

	pendingWidgets []chooser
	pendingForms   []*form
}

// chooser is the user-event side of a selectfield.Select.
type chooser interface {
	ID() string
	Choose(key string) error
}

type widget struct {
	chooser
	anchor string
}

type form struct {
	id     string
	anchor string
	fields []string
	submit func(toast.Emitter) binder.Result[data.Employee]
}

// offline is what a form needs to behave without a server: the messages
// of its required fields and the toast shown after a valid submit.
type offline struct {
	required map[string]string
	success  toast.Notification
}

// New builds the gallery. Missing providers fall back to the built-in
// sample data.
func New(deps Deps) *Gallery {
	if deps.Departments == nil {
		deps.Departments = data.DepartmentData{}
	}
	if deps.Teams == nil {
		deps.Teams = data.TeamData{}
	}
	if deps.EventsPath == "" {
		deps.EventsPath = "/events"
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	g := &Gallery{
		deps:     deps,
		logger:   logger.With("component", "gallery"),
		registry: catalog.New(),
		sources:  extractExamples(demoSource),
		widgets:  make(map[string]*widget),
		forms:    make(map[string]*form),
	}
	g.build()
	return g
}

// Registry returns the demo catalog.
func (g *Gallery) Registry() *catalog.Registry {
	return g.registry
}

// Cards returns the demo cards in catalog order.
func (g *Gallery) Cards() []catalog.Card {
	return g.registry.Cards()
}

// Render builds the catalog body with the widgets' current state.
func (g *Gallery) Render() *vdom.VNode {
	return g.registry.Render()
}

// WidgetIDs returns the ids of the interactive widgets.
func (g *Gallery) WidgetIDs() []string {
	ids := make([]string, 0, len(g.widgets))
	for id := range g.widgets {
		ids = append(ids, id)
	}
	return ids
}

// FormFields returns the widget ids posted with a form.
func (g *Gallery) FormFields(formID string) ([]string, bool) {
	f, ok := g.forms[formID]
	if !ok {
		return nil, false
	}
	return append([]string(nil), f.fields...), true
}

// Update reports the card an event changed.
type Update struct {
	Card catalog.Card

	// Submit is set for form submits.
	Submit *binder.Result[data.Employee]
}

// HandleChange applies a user choice of option key to a widget.
func (g *Gallery) HandleChange(widgetID, key string) (Update, error) {
	w, ok := g.widgets[widgetID]
	if !ok {
		return Update{}, fmt.Errorf("%w: %q", ErrUnknownWidget, widgetID)
	}
	if err := w.Choose(key); err != nil {
		g.logger.Debug("choice rejected", "widget", widgetID, "key", key, "error", err)
		return Update{}, fmt.Errorf("widget %q: %w", widgetID, err)
	}
	g.logger.Debug("choice applied", "widget", widgetID, "key", key)
	return Update{Card: g.card(w.anchor)}, nil
}

// Submit validates a form and, if valid, writes it back. Notifications
// go to e. Validation failure is reported in Update.Submit, not as an
// error.
func (g *Gallery) Submit(formID string, e toast.Emitter) (Update, error) {
	f, ok := g.forms[formID]
	if !ok {
		return Update{}, fmt.Errorf("%w: %q", ErrUnknownForm, formID)
	}
	res := f.submit(e)
	g.logger.Debug("form submitted", "form", formID, "ok", res.OK(), "errors", len(res.Errors))
	return Update{Card: g.card(f.anchor), Submit: &res}, nil
}

// register adds a card whose source is the example of the same heading.
// w, if not nil, receives user events.
func (g *Gallery) register(group, sub string, w chooser, fragments ...any) {
	if w != nil {
		g.track(w)
	}
	heading := sub
	if heading == "" {
		heading = group
	}

	args := append(fragments, catalog.WithSource(g.sources[heading]))
	g.registry.Register(group, sub, args...)

	cards := g.registry.Cards()
	anchor := cards[len(cards)-1].Anchor
	for _, c := range g.pendingWidgets {
		g.widgets[c.ID()] = &widget{chooser: c, anchor: anchor}
	}
	for _, f := range g.pendingForms {
		f.anchor = anchor
		g.forms[f.id] = f
	}
	g.pendingWidgets, g.pendingForms = nil, nil
}

// track routes user events for w to the next registered card.
func (g *Gallery) track(w chooser) {
	g.pendingWidgets = append(g.pendingWidgets, w)
}

// form wraps content in a form posting to the events endpoint. Widgets
// tracked so far that are not yet registered are its fields. In static
// mode the form does not post; client.js checks it using off.
func (g *Gallery) form(id string, submit func(toast.Emitter) binder.Result[data.Employee], off offline, content ...any) *vdom.VNode {
	f := &form{id: id, submit: submit}
	for _, c := range g.pendingWidgets {
		f.fields = append(f.fields, c.ID())
	}
	g.pendingForms = append(g.pendingForms, f)

	if g.deps.Static {
		return vdom.Form(append(g.offlineAttrs(id, off), content...)...)
	}
	args := []any{
		vdom.Method("post"),
		vdom.Action(g.deps.EventsPath),
		vdom.Data("form", id),
		vdom.Class("demo-form"),
		vdom.Input(vdom.Type("hidden"), vdom.Name("form"), vdom.Value(id)),
	}
	return vdom.Form(append(args, content...)...)
}

func (g *Gallery) offlineAttrs(id string, off offline) []any {
	detail := off.success.Detail()
	delete(detail, "id")
	success, err := json.Marshal(detail)
	if err != nil {
		panic(fmt.Sprintf("gallery: encode toast of form %s: %v", id, err))
	}

	args := []any{
		vdom.Data("form", id),
		vdom.Data("static", "true"),
		vdom.Data("success", string(success)),
		vdom.Class("demo-form"),
	}
	for field, msg := range off.required {
		args = append(args, vdom.Data("required-"+field, msg))
	}
	return args
}

func (g *Gallery) card(anchor string) catalog.Card {
	for _, c := range g.registry.Cards() {
		if c.Anchor == anchor {
			return c
		}
	}
	return catalog.Card{}
}
