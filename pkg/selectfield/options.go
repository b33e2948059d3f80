package selectfield

// OptionKind distinguishes the entries of a dropdown.
type OptionKind uint8

const (
	OptionItem      OptionKind = iota // A selectable item
	OptionEmpty                       // The empty-selection entry
	OptionSeparator                   // A divider between entries
)

// String returns the string representation of the OptionKind.
func (k OptionKind) String() string {
	switch k {
	case OptionItem:
		return "Item"
	case OptionEmpty:
		return "Empty"
	case OptionSeparator:
		return "Separator"
	default:
		return "Unknown"
	}
}

// Option is one entry of the dropdown as it will be presented.
type Option[T any] struct {
	Kind     OptionKind
	Key      string // Form value; EmptyKey for the empty entry, "" for separators
	Item     T      // Zero unless Kind is OptionItem
	Text     string
	Enabled  bool
	Selected bool
}

// Options returns the dropdown entries in display order: the optional
// empty-selection entry, then the items, with separators where requested.
func (s *Select[T]) Options() []Option[T] {
	opts := make([]Option[T], 0, len(s.items)+1)

	if s.cfg.EmptySelectionAllowed {
		opts = append(opts, Option[T]{
			Kind:     OptionEmpty,
			Key:      EmptyKey,
			Text:     s.cfg.EmptySelectionCaption,
			Enabled:  !s.cfg.EmptySelectionCaptionOnly,
			Selected: !s.hasValue,
		})
		opts = appendSeparators[T](opts, s.separatorsAfterEmpty)
	}

	for i, item := range s.items {
		opts = append(opts, Option[T]{
			Kind:     OptionItem,
			Key:      itemKey(i),
			Item:     item,
			Text:     s.optionText(item),
			Enabled:  s.isEnabled(item),
			Selected: s.hasValue && item == s.value,
		})
		opts = appendSeparators[T](opts, s.separatorsAfter[item])
	}

	return opts
}

// SelectedKey returns the option key of the current value, or EmptyKey.
func (s *Select[T]) SelectedKey() string {
	if !s.hasValue {
		return EmptyKey
	}
	if i := s.indexOf(s.value); i >= 0 {
		return itemKey(i)
	}
	return EmptyKey
}

func appendSeparators[T any](opts []Option[T], n int) []Option[T] {
	for i := 0; i < n; i++ {
		opts = append(opts, Option[T]{Kind: OptionSeparator})
	}
	return opts
}
