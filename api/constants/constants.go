package constants

// Common error messages
const (
	ErrInvalidJSON         = "Invalid JSON"
	ErrInvalidRequestBody  = "Invalid request body"
	ErrMethodNotAllowed    = "Method Not Allowed"
	ErrTableRequired       = "table is required"
	ErrRecordIDRequired    = "record id is required"
	ErrStoreUnavailable    = "Record store unavailable"
	ErrUnsupportedFileType = "Unsupported file type"
	ErrNoFilesUploaded     = "No files uploaded"
	ErrFileTooLarge        = "File size must be less than 10MB"
	ErrValidationFailed    = "Validation failed"
)

// Content Types
const (
	ContentTypeJSON = "application/json"
	ContentTypeCSV  = "text/csv"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)
