package model

// ConfirmFunc asks the user a yes/no question and returns the answer. An
// empty response resolves to defaultYes. Implementations for tests can be
// always-true or always-false; force flags bypass the prompt entirely at the
// call sites.
type ConfirmFunc func(message string, defaultYes bool) bool

// ConfirmAlways returns a ConfirmFunc that answers yes to everything.
func ConfirmAlways() ConfirmFunc {
	return func(string, bool) bool { return true }
}

// ConfirmNever returns a ConfirmFunc that answers no to everything.
func ConfirmNever() ConfirmFunc {
	return func(string, bool) bool { return false }
}
