// Package binder binds form fields to the properties of a bean and
// validates them before write-back.
//
//	b := binder.New[Employee]()
//	binder.ForField[Employee, string](b, titleSelect).
//		AsRequired("Please choose the option closest to your profession").
//		Bind(
//			func(e *Employee) string { return e.Title },
//			func(e *Employee, v string) { e.Title = v },
//		)
//
//	if res := b.Submit(&employee); res.OK() {
//		// employee.Title is set
//	}
//
// Validation failure is a value (Result.Errors), not an error.
package binder
