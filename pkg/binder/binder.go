package binder

// Field is a form widget a Binder can read, write and annotate.
// selectfield.Select satisfies it.
type Field[V any] interface {
	ID() string
	Value() (V, bool)
	SetValue(V) error
	Clear()
	SetError(msg string)
	SetRequiredIndicatorVisible(bool)
}

// Binder connects form fields to the properties of a bean of type B.
// Beans are only written when every bound field is valid.
type Binder[B any] struct {
	bindings []*binding[B]
}

type binding[B any] struct {
	field    string
	required string
	validate func() error
	read     func(*B) error
	write    func(*B)
	setError func(string)
}

// New creates an empty Binder.
func New[B any]() *Binder[B] {
	return &Binder[B]{}
}

// Builder configures one binding. Finish it with Bind.
type Builder[B any, V comparable] struct {
	binder     *Binder[B]
	field      Field[V]
	validators []Validator
	required   string
}

// ForField starts a binding for field.
//
//	binder.ForField[Employee, string](b, titleSelect).
//		AsRequired("Please choose a title").
//		Bind(getTitle, setTitle)
func ForField[B any, V comparable](b *Binder[B], field Field[V]) *Builder[B, V] {
	return &Builder[B, V]{binder: b, field: field}
}

// AsRequired rejects an empty field with msg and shows the required
// indicator on the field.
func (bb *Builder[B, V]) AsRequired(msg string) *Builder[B, V] {
	bb.field.SetRequiredIndicatorVisible(true)
	req := Required(msg)
	bb.required = messageOf(req.Validate(nil))
	bb.validators = append(bb.validators, req)
	return bb
}

// WithValidator adds a validator. Validators run in the order added and
// the first failure wins.
func (bb *Builder[B, V]) WithValidator(v Validator) *Builder[B, V] {
	bb.validators = append(bb.validators, v)
	return bb
}

// Bind completes the binding. get reads the bean property into the field;
// a zero value clears the field. set writes the field value back, receiving
// the zero value when the field is empty.
func (bb *Builder[B, V]) Bind(get func(*B) V, set func(*B, V)) {
	field := bb.field
	validators := append([]Validator(nil), bb.validators...)

	bb.binder.bindings = append(bb.binder.bindings, &binding[B]{
		field:    field.ID(),
		required: bb.required,
		validate: func() error {
			var value any
			if v, ok := field.Value(); ok {
				value = v
			}
			for _, val := range validators {
				if err := val.Validate(value); err != nil {
					return err
				}
			}
			return nil
		},
		read: func(bean *B) error {
			v := get(bean)
			var zero V
			if v == zero {
				field.Clear()
				return nil
			}
			return field.SetValue(v)
		},
		write: func(bean *B) {
			v, _ := field.Value()
			set(bean, v)
		},
		setError: field.SetError,
	})
}

// ReadBean loads bean properties into the bound fields and clears their
// validation errors.
func (b *Binder[B]) ReadBean(bean *B) error {
	for _, bnd := range b.bindings {
		if err := bnd.read(bean); err != nil {
			return err
		}
		bnd.setError("")
	}
	return nil
}

// Validate runs the validators of every binding, updates the fields'
// error messages and returns the failures in binding order.
func (b *Binder[B]) Validate() []ValidationError {
	var errs []ValidationError
	for _, bnd := range b.bindings {
		if err := bnd.validate(); err != nil {
			msg := messageOf(err)
			bnd.setError(msg)
			errs = append(errs, ValidationError{Field: bnd.field, Message: msg})
			continue
		}
		bnd.setError("")
	}
	return errs
}

// RequiredMessages maps the ID of every required field to the message
// shown when it is left empty.
func (b *Binder[B]) RequiredMessages() map[string]string {
	msgs := make(map[string]string)
	for _, bnd := range b.bindings {
		if bnd.required != "" {
			msgs[bnd.field] = bnd.required
		}
	}
	return msgs
}

// IsValid reports whether every binding validates, without touching the
// fields' error messages.
func (b *Binder[B]) IsValid() bool {
	for _, bnd := range b.bindings {
		if bnd.validate() != nil {
			return false
		}
	}
	return true
}

// WriteBeanIfValid writes all field values to bean if every binding
// validates and reports whether it did.
func (b *Binder[B]) WriteBeanIfValid(bean *B) bool {
	return b.Submit(bean).OK()
}

// Result is the outcome of Submit: the written bean or the validation
// failures that prevented the write.
type Result[B any] struct {
	Bean   *B
	Errors []ValidationError
}

// OK reports whether the bean was written.
func (r Result[B]) OK() bool {
	return len(r.Errors) == 0
}

// Submit validates every binding and writes the bean only if all pass.
// On failure the bean is left untouched.
func (b *Binder[B]) Submit(bean *B) Result[B] {
	if errs := b.Validate(); len(errs) > 0 {
		return Result[B]{Errors: errs}
	}
	for _, bnd := range b.bindings {
		bnd.write(bean)
	}
	return Result[B]{Bean: bean}
}
