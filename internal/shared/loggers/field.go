package loggers

const (
	FieldApp       = "app"
	FieldComponent = "component"
	FieldRunID     = "run_id"

	FieldDuration   = "duration"
	FieldErrorCode  = "error_code"
	FieldErrorStack = "error_stack"

	FieldCategory    = "category"
	FieldWindowStart = "window_start"
	FieldWindowEnd   = "window_end"
	FieldFilePath    = "file_path"
	FieldBatchSize   = "batch_size"
)
