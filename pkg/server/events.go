package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/vango-dev/selectdemo/internal/gallery"
	"github.com/vango-dev/selectdemo/pkg/selectfield"
	"github.com/vango-dev/selectdemo/pkg/toast"
)

// errUnknownEvent is returned for event kinds other than change and submit.
var errUnknownEvent = errors.New("server: unknown event type")

// event is a user action on the gallery, from either transport.
type event struct {
	Kind   string // "change" or "submit"
	Widget string
	Key    string
	Form   string
	Values map[string]string
}

func (ev event) target() string {
	if ev.Kind == "submit" {
		return ev.Form
	}
	return ev.Widget
}

// dispatch applies ev to g. A submit first applies the posted field values
// so the form fallback and the live channel validate the same state.
func dispatch(g *gallery.Gallery, ev event, e toast.Emitter) (gallery.Update, error) {
	switch ev.Kind {
	case "change":
		return g.HandleChange(ev.Widget, ev.Key)
	case "submit":
		fields, ok := g.FormFields(ev.Form)
		if !ok {
			return gallery.Update{}, fmt.Errorf("%w: %q", gallery.ErrUnknownForm, ev.Form)
		}
		for _, field := range fields {
			key, ok := ev.Values[field]
			if !ok {
				continue
			}
			if _, err := g.HandleChange(field, key); err != nil {
				return gallery.Update{}, err
			}
		}
		return g.Submit(ev.Form, e)
	default:
		return gallery.Update{}, fmt.Errorf("%w: %q", errUnknownEvent, ev.Kind)
	}
}

// errorType maps an event error to a metrics label; nil maps to "".
func errorType(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, selectfield.ErrDisabled),
		errors.Is(err, selectfield.ErrReadOnly),
		errors.Is(err, selectfield.ErrItemDisabled):
		return "rejected"
	case errors.Is(err, selectfield.ErrUnknownOption),
		errors.Is(err, gallery.ErrUnknownWidget),
		errors.Is(err, gallery.ErrUnknownForm),
		errors.Is(err, errUnknownEvent):
		return "not_found"
	default:
		return "internal"
	}
}

// isClientError reports errors caused by a request naming something that
// does not exist.
func isClientError(err error) bool {
	return errors.Is(err, gallery.ErrUnknownWidget) ||
		errors.Is(err, gallery.ErrUnknownForm) ||
		errors.Is(err, errUnknownEvent)
}

// handleEvents is the no-script path: apply the posted event, keep any
// notifications for the next render and redirect back to the card.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	sess := s.session(w, r)

	ev := event{Kind: "change", Widget: r.PostForm.Get("widget"), Key: r.PostForm.Get("key")}
	if form := r.PostForm.Get("form"); form != "" {
		ev = event{Kind: "submit", Form: form, Values: make(map[string]string)}
		for name, vals := range r.PostForm {
			if name != "form" && len(vals) > 0 {
				ev.Values[name] = vals[0]
			}
		}
	}

	_, done := s.eventTimer(r.Context(), ev, sess.ID, "form")
	var (
		rec toast.Recorder
		upd gallery.Update
		err error
	)
	sess.Do(func(g *gallery.Gallery) {
		upd, err = dispatch(g, ev, &rec)
	})
	done(err)

	if err != nil {
		if isClientError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.logger.Info("event rejected", "session_id", sess.ID, "target", ev.target(), "error", err)
	}

	toasts := rec.Toasts()
	s.recordToasts(toasts)
	sess.AddFlash(toasts...)
	http.Redirect(w, r, anchorURL(upd.Card.Anchor), http.StatusSeeOther)
}

func (s *Server) recordToasts(toasts []map[string]any) {
	for _, t := range toasts {
		level, _ := t["level"].(string)
		s.deps.Metrics.ToastShown(level)
	}
}
