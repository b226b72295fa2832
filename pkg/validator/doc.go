// Package validator provides declarative validation rules.
//
// Each rule captures a value and a check; Apply runs them all and returns
// ValidationErrors listing every failure:
//
//	err := validator.Apply(
//		validator.RequiredString("name", rec.Name),
//		validator.ValidEmail("email", rec.Email),
//	)
//
// The HTTP layer converts ValidationErrors into a 422 response with per-field messages.
package validator
