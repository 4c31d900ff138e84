package core

// IOError reports that the target file could not be read.
// The underlying error already names the path.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}
