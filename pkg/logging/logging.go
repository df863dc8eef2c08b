// Package logging defines the shared structured log field names.
package logging

const (
	FieldService   = "service"
	FieldComponent = "component"
	FieldType      = "type"
	FieldPort      = "port"
	FieldSignal    = "signal"
	FieldAction    = "action"
	FieldISBN      = "isbn"
)
