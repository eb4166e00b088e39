package provisioning

import "fmt"

// PhaseError wraps the failure that aborted the pipeline.
type PhaseError struct {
	Phase string
	Err   error
}

// Error implements the error interface.
func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s phase failed: %v", e.Phase, e.Err)
}

// Unwrap supports errors.Is/As against the underlying cause.
func (e *PhaseError) Unwrap() error {
	return e.Err
}

// PreconditionError indicates a missing requirement (tool, credential,
// earlier phase result) detected before any cloud state was touched.
type PreconditionError struct {
	Name string
	Err  error
}

// Error implements the error interface.
func (e *PreconditionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("precondition %s: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("precondition %s not met", e.Name)
}

// Unwrap supports errors.Is/As against the underlying cause.
func (e *PreconditionError) Unwrap() error {
	return e.Err
}
