package gallery

import (
	"time"

	"github.com/vango-dev/selectdemo/internal/data"
	"github.com/vango-dev/selectdemo/pkg/binder"
	"github.com/vango-dev/selectdemo/pkg/selectfield"
	"github.com/vango-dev/selectdemo/pkg/toast"
	. "github.com/vango-dev/selectdemo/pkg/vdom"
)

// build registers every demo card, in catalog order.
func (g *Gallery) build() {
	g.basicDemo()
	g.entityListDemo()
	g.disabledItemDemo()
	g.disabledAndReadOnlyDemo()
	g.requiredDemo()
	g.binderDemo()
	g.separatorDemo()
	g.customOptionsDemo()
	g.stylingDemo()
}

func (g *Gallery) basicDemo() {
	// example: Basic usage
	sel := selectfield.New("basic-select", selectfield.Config[string]{
		Label: "Name",
	}, "Jose", "Manolo", "Pedro")

	value := "Select a value"
	sel.OnValueChange(func(ev selectfield.ValueChangeEvent[string]) {
		value = "Selected: " + ev.Value
	})
	valueDiv := ComponentFunc(func() *VNode {
		return Div(Class("select-value"), ID("basic-value"), Text(value))
	})
	// end-example

	g.register("Basic usage", "", sel, VerticalLayout(sel, valueDiv))
}

func (g *Gallery) entityListDemo() {
	// example: Entity list
	sel := selectfield.New("department-select", selectfield.Config[data.Department]{
		Label: "Department",
		// Choose which property from Department is the presentation value
		ItemLabel: func(d data.Department) string { return d.Name },
	}, g.deps.Departments.Departments()...)
	// end-example

	g.register("Entity list", "", sel, sel)
}

func (g *Gallery) disabledItemDemo() {
	// example: Disabled item
	sel := selectfield.New("team-select", selectfield.Config[data.Team]{
		Label:        "Team",
		TextRenderer: func(t data.Team) string { return t.Name },
		ItemEnabled: func(t data.Team) bool {
			return t.Name != "Developers Journey and Onboarding"
		},
	}, g.deps.Teams.Teams()...)
	// end-example

	g.register("Disabled item", "", sel, sel)
}

func (g *Gallery) disabledAndReadOnlyDemo() {
	// example: Disabled and Read-only
	disabled := selectfield.New("disabled-select", selectfield.Config[string]{
		Label:    "Disabled",
		Disabled: true,
	}, "Option one", "Option two")

	readOnly := selectfield.New("readonly-select", selectfield.Config[string]{
		Label:    "Read-only",
		ReadOnly: true,
	}, "Option one", "Option two")
	if err := readOnly.SetValue("Option one"); err != nil {
		panic(err)
	}
	// end-example

	g.track(disabled)
	g.track(readOnly)
	g.register("Disabled and Read-only", "", nil,
		HorizontalLayout(Class("wrap"), disabled, readOnly))
}

func (g *Gallery) requiredDemo() {
	// example: Required
	sel := selectfield.New("required-select", selectfield.Config[string]{
		Label:    "Required",
		Required: true,
		// The empty selection entry is not an item; with the caption it
		// doubles as the placeholder.
		Placeholder:           "Select an option",
		EmptySelectionAllowed: true,
		EmptySelectionCaption: "Select an option",
	}, "Option one", "Option two", "Option three")

	// add a divider after the empty selection entry
	sel.AddSeparatorAfterEmpty()
	// end-example

	g.register("Validation", "Required", sel, FlexLayout(Class("wrap"), sel))
}

func (g *Gallery) binderDemo() {
	// example: Using with Binder
	var employee data.Employee
	b := binder.New[data.Employee]()

	title := selectfield.New("title-select", selectfield.Config[string]{
		Label:                 "Title",
		EmptySelectionAllowed: true,
		EmptySelectionCaption: "Select you title",
	}, "Account Manager", "Designer", "Marketing Manager", "Developer")
	title.AddSeparatorAfterEmpty()

	binder.ForField[data.Employee, string](b, title).
		AsRequired("Please choose the option closest to your profession").
		Bind(
			func(e *data.Employee) string { return e.Title },
			func(e *data.Employee, v string) { e.Title = v },
		)

	submit := func(e toast.Emitter) binder.Result[data.Employee] {
		res := b.Submit(&employee)
		if res.OK() {
			toast.Success(e, "Submit successful",
				toast.WithDuration(2*time.Second),
				toast.AtPosition(toast.PositionMiddle))
		}
		return res
	}
	// end-example

	success := toast.New(toast.TypeSuccess, "Submit successful",
		toast.WithDuration(2*time.Second),
		toast.AtPosition(toast.PositionMiddle))
	off := offline{required: b.RequiredMessages(), success: success}

	// A user choice re-validates the bound field, like a live form.
	title.OnValueChange(func(ev selectfield.ValueChangeEvent[string]) {
		if ev.FromClient {
			b.Validate()
		}
	})

	g.track(title)
	form := g.form(binderFormID, submit, off, HorizontalLayout(Class("baseline"),
		title,
		Button(Type("submit"), Class("button-primary"), Text("Submit")),
	))
	g.register("Validation", "Using with Binder", nil, form)
}

func (g *Gallery) separatorDemo() {
	// example: Separators
	sel := selectfield.New("weekday-select", selectfield.Config[data.Weekday]{
		Label:                     "Weekday",
		EmptySelectionAllowed:     true,
		EmptySelectionCaption:     "Weekdays",
		EmptySelectionCaptionOnly: true,
	}, data.Weekdays()...)
	sel.AddSeparatorAfterEmpty()
	sel.AddSeparatorAfter(data.Friday)
	// end-example

	g.register("Presentation", "Separators", sel, sel)
}

func (g *Gallery) customOptionsDemo() {
	// example: Customizing drop down options
	sel := selectfield.New("emotion-select", selectfield.Config[data.Emotion]{
		Label: "How are you feeling today?",
		Render: func(e data.Emotion) *VNode {
			return FlexLayout(
				Raw(e.Icon.SVG()),
				Div(Class("emotion-text"), Text(e.Text)),
			)
		},
		// ItemLabel, when set, is shown for the selected value instead of
		// the icon and text.
	}, data.Emotions()...)
	// end-example

	g.register("Presentation", "Customizing drop down options", sel, sel)
}

// styleHooks are the selectors styles.css gives the widgets. Pages restyle
// a select by overriding them.
var styleHooks = []struct{ selector, styles string }{
	{".select-field", "the wrapper around label, control and error"},
	{".select-label", "the caption above the control"},
	{".required-indicator", "the marker of a required field"},
	{".select-input", "the native drop down"},
	{".select-listbox", "the option list of a select with custom rendering"},
	{".select-option", "one option of that list"},
	{".select-separator", "the rule between option groups"},
	{".select-error", "the validation message"},
	{".select-field.is-invalid", "a field failing validation"},
	{".select-field.is-disabled", "a disabled field"},
	{".select-field.is-readonly", "a read-only field"},
	{".select-option.is-disabled", "an option that cannot be chosen"},
	{".select-option.is-selected", "the chosen option"},
}

func (g *Gallery) stylingDemo() {
	intro := Div(Text("The widgets are styled with plain CSS. Override these classes from styles.css to restyle them:"))
	hooks := Ul(Class("style-hooks"), Range(styleHooks, func(_ int, h struct{ selector, styles string }) *VNode {
		return Li(Code(Text(h.selector)), Text(" styles "+h.styles))
	}))

	g.register("Styling", "Styling references", nil, intro, hooks)
}
