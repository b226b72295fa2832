// Package samples provides sample personas used for template previews and
// for seeding test data. The personas are embedded from personas.yaml.
package samples
