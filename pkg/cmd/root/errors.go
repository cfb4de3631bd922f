package root

// UsageError is returned when the command line can't be parsed,
// e.g. an unknown flag or a stray argument.
type UsageError struct {
	err error
}

func (e *UsageError) Error() string {
	return e.err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.err
}
