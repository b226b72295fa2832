// Package sanitizer normalizes user input before it is validated and stored.
//
// Transforms are plain functions and can be chained with Apply or Compose:
//
//	name := sanitizer.Apply(raw, sanitizer.StripControl, sanitizer.NormalizeWhitespace)
//	email := sanitizer.NormalizeEmail(raw)
package sanitizer
