package memutils

// Validatable is used by the DebugValidate method to allow it to act upon
// anything that can check its own invariants, such as a buffer header
type Validatable interface {
	Validate() error
}
