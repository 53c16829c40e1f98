package deposit

import "fmt"

// ValidationError indicates malformed input; no state was written.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NotFoundError indicates a referenced deposit or booking does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// PolicyViolationError indicates an illegal deposit state transition.
type PolicyViolationError struct {
	RecordID  string
	Status    string
	Operation string
}

func (e *PolicyViolationError) Error() string {
	return fmt.Sprintf("cannot %s deposit record %s in status %q", e.Operation, e.RecordID, e.Status)
}
