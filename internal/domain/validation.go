package domain

// ValidationResult is the outcome of business-rule validation.
// Errors keeps every violated rule in evaluation order.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// Decision is the combined availability verdict for one prospective appointment
type Decision struct {
	Validation ValidationResult
	Conflict   bool
	Available  bool
}
