package logging

// Structured field names shared by every component.
const (
	FieldRunID       = "runId"
	FieldComponent   = "component"
	FieldDocument    = "document"
	FieldPath        = "path"
	FieldURL         = "url"
	FieldStatus      = "status"
	FieldDuration    = "duration"
	FieldSuggestions = "suggestions"
	FieldCount       = "count"
	FieldWorkers     = "workers"
)
