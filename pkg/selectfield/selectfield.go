package selectfield

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/vango-dev/selectdemo/pkg/vdom"
)

// ErrDisabled is returned when a user choice reaches a disabled widget.
var ErrDisabled = errors.New("selectfield: widget is disabled")

// ErrReadOnly is returned when a user choice reaches a read-only widget.
var ErrReadOnly = errors.New("selectfield: widget is read-only")

// ErrItemDisabled is returned when the chosen option is not enabled.
var ErrItemDisabled = errors.New("selectfield: option is disabled")

// ErrUnknownOption is returned for option keys the widget did not render.
var ErrUnknownOption = errors.New("selectfield: unknown option")

// ErrUnknownItem is returned by SetValue for values outside the item list.
var ErrUnknownItem = errors.New("selectfield: value is not one of the items")

// EmptyKey is the option key of the empty-selection entry.
const EmptyKey = ""

// Config holds the presentation and behaviour of a Select. The function
// fields are optional; a nil function falls back to the default noted on
// the field.
type Config[T any] struct {
	// Label is shown above the dropdown.
	Label string

	// Placeholder is shown while no value is selected.
	Placeholder string

	// ItemLabel generates the text shown for the selected value.
	// Defaults to TextRenderer, then fmt.Sprint.
	ItemLabel func(T) string

	// TextRenderer generates the text of each dropdown option.
	// Defaults to ItemLabel, then fmt.Sprint.
	TextRenderer func(T) string

	// Render builds custom option content. When set, options are rendered
	// as a listbox so they may contain markup.
	Render func(T) *vdom.VNode

	// ItemEnabled decides per item whether it can be chosen.
	// Defaults to every item enabled.
	ItemEnabled func(T) bool

	// EmptySelectionAllowed adds an entry that represents "no value".
	EmptySelectionAllowed bool

	// EmptySelectionCaption is the text of the empty-selection entry.
	EmptySelectionCaption string

	// EmptySelectionCaptionOnly shows the empty-selection entry as a
	// heading that cannot be chosen.
	EmptySelectionCaptionOnly bool

	Disabled bool
	ReadOnly bool

	// Required shows the required indicator next to the label.
	Required bool
}

// ValueChangeEvent describes a change of the selected value.
type ValueChangeEvent[T comparable] struct {
	Source     *Select[T]
	OldValue   T
	HadValue   bool
	Value      T
	HasValue   bool
	FromClient bool
}

// Select is a dropdown over items of type T.
//
// The selected value is held separately from the item list: Value reports
// (item, true) when an item is selected and (zero, false) otherwise. The
// empty-selection entry is never an item.
type Select[T comparable] struct {
	id  string
	cfg Config[T]

	items    []T
	value    T
	hasValue bool

	separatorsAfterEmpty int
	separatorsAfter      map[T]int

	listeners []func(ValueChangeEvent[T])

	requiredIndicator bool
	errorMessage      string
}

// New creates a Select with the given DOM id, configuration and items.
func New[T comparable](id string, cfg Config[T], items ...T) *Select[T] {
	s := &Select[T]{
		id:                id,
		cfg:               cfg,
		separatorsAfter:   make(map[T]int),
		requiredIndicator: cfg.Required,
	}
	s.SetItems(items...)
	return s
}

// ID returns the DOM id, also used as the form field name.
func (s *Select[T]) ID() string { return s.id }

// Label returns the configured label.
func (s *Select[T]) Label() string { return s.cfg.Label }

// SetItems replaces the item list. A selected value that is not part of
// the new list is cleared.
func (s *Select[T]) SetItems(items ...T) {
	s.items = append([]T(nil), items...)
	if s.hasValue && s.indexOf(s.value) < 0 {
		s.setValue(*new(T), false, false)
	}
}

// Items returns a copy of the item list.
func (s *Select[T]) Items() []T {
	return append([]T(nil), s.items...)
}

// Value returns the selected item and whether there is one.
func (s *Select[T]) Value() (T, bool) {
	return s.value, s.hasValue
}

// SetValue selects item programmatically. Unlike Choose it ignores the
// disabled, read-only and item-enabled state.
func (s *Select[T]) SetValue(item T) error {
	if s.indexOf(item) < 0 {
		return fmt.Errorf("%w: %v", ErrUnknownItem, item)
	}
	s.setValue(item, true, false)
	return nil
}

// Clear removes the selection.
func (s *Select[T]) Clear() {
	s.setValue(*new(T), false, false)
}

// Choose applies a user selection identified by option key.
// Choosing EmptyKey clears the value.
func (s *Select[T]) Choose(key string) error {
	if s.cfg.Disabled {
		return ErrDisabled
	}
	if s.cfg.ReadOnly {
		return ErrReadOnly
	}

	if key == EmptyKey {
		if !s.cfg.EmptySelectionAllowed {
			return fmt.Errorf("%w: %q", ErrUnknownOption, key)
		}
		if s.cfg.EmptySelectionCaptionOnly {
			return ErrItemDisabled
		}
		s.setValue(*new(T), false, true)
		return nil
	}

	item, ok := s.itemForKey(key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownOption, key)
	}
	if !s.isEnabled(item) {
		return ErrItemDisabled
	}
	s.setValue(item, true, true)
	return nil
}

// OnValueChange registers a listener called after every value change.
func (s *Select[T]) OnValueChange(listener func(ValueChangeEvent[T])) {
	s.listeners = append(s.listeners, listener)
}

// AddSeparatorAfterEmpty places a divider after the empty-selection entry.
func (s *Select[T]) AddSeparatorAfterEmpty() {
	s.separatorsAfterEmpty++
}

// AddSeparatorAfter places a divider after item. Items not in the list are
// remembered and take effect if the item is added later.
func (s *Select[T]) AddSeparatorAfter(item T) {
	s.separatorsAfter[item]++
}

// SetRequiredIndicatorVisible toggles the required marker next to the label.
func (s *Select[T]) SetRequiredIndicatorVisible(visible bool) {
	s.requiredIndicator = visible
}

// RequiredIndicatorVisible reports whether the required marker is shown.
func (s *Select[T]) RequiredIndicatorVisible() bool {
	return s.requiredIndicator
}

// SetError shows msg under the widget and marks it invalid. An empty msg
// clears the error.
func (s *Select[T]) SetError(msg string) {
	s.errorMessage = msg
}

// ErrorMessage returns the current validation message, if any.
func (s *Select[T]) ErrorMessage() string {
	return s.errorMessage
}

// Invalid reports whether a validation message is shown.
func (s *Select[T]) Invalid() bool {
	return s.errorMessage != ""
}

// SelectedLabel returns the text for the current value, or the placeholder
// when nothing is selected.
func (s *Select[T]) SelectedLabel() string {
	if !s.hasValue {
		return s.cfg.Placeholder
	}
	return s.itemLabel(s.value)
}

func (s *Select[T]) setValue(item T, has bool, fromClient bool) {
	if has == s.hasValue && (!has || item == s.value) {
		return
	}
	ev := ValueChangeEvent[T]{
		Source:     s,
		OldValue:   s.value,
		HadValue:   s.hasValue,
		Value:      item,
		HasValue:   has,
		FromClient: fromClient,
	}
	s.value, s.hasValue = item, has
	for _, l := range s.listeners {
		l(ev)
	}
}

func (s *Select[T]) indexOf(item T) int {
	for i, it := range s.items {
		if it == item {
			return i
		}
	}
	return -1
}

// itemKey keys items by 1-based position so EmptyKey never collides.
func itemKey(index int) string {
	return strconv.Itoa(index + 1)
}

func (s *Select[T]) itemForKey(key string) (T, bool) {
	n, err := strconv.Atoi(key)
	if err != nil || n < 1 || n > len(s.items) {
		return *new(T), false
	}
	return s.items[n-1], true
}

func (s *Select[T]) isEnabled(item T) bool {
	return s.cfg.ItemEnabled == nil || s.cfg.ItemEnabled(item)
}

func (s *Select[T]) itemLabel(item T) string {
	switch {
	case s.cfg.ItemLabel != nil:
		return s.cfg.ItemLabel(item)
	case s.cfg.TextRenderer != nil:
		return s.cfg.TextRenderer(item)
	default:
		return fmt.Sprint(item)
	}
}

func (s *Select[T]) optionText(item T) string {
	switch {
	case s.cfg.TextRenderer != nil:
		return s.cfg.TextRenderer(item)
	case s.cfg.ItemLabel != nil:
		return s.cfg.ItemLabel(item)
	default:
		return fmt.Sprint(item)
	}
}
