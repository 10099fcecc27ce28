package models

// Fields that can fail validation on the submission path
const (
	FieldAmount      = "amount"
	FieldDate        = "date"
	FieldType        = "type"
	FieldCategory    = "category"
	FieldDescription = "description"
)

// Validation failure reasons
const (
	ReasonInvalidAmount      = "INVALID_AMOUNT"
	ReasonInvalidDate        = "INVALID_DATE"
	ReasonInvalidType        = "INVALID_TYPE"
	ReasonInvalidCategory    = "INVALID_CATEGORY"
	ReasonMissingDescription = "MISSING_DESCRIPTION"
)

// ValidationError describes a single malformed field in a submission.
// It is reported inline to the submitting collaborator and never persisted.
type ValidationError struct {
	Field   string `json:"field"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// NewValidationError creates a validation error for a single field
func NewValidationError(field, reason, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Reason:  reason,
		Message: message,
	}
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
