package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldImage      = "image_path"
	FieldSource     = "source"
	FieldPattern    = "pattern"
	FieldValue      = "value"
	FieldConfidence = "confidence"
	FieldCount      = "count"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldCategory   = "category"
	FieldWorkers    = "workers"
)
