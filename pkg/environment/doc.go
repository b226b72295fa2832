// Package environment identifies the deployment stage (development, staging
// or production) and carries it through request contexts so handlers can,
// for example, show error details only in development.
package environment
