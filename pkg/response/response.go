package response

import (
	"errors"
)

type Error struct {
	Code    int
	Err     error
	Details map[string]interface{}
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Is(target error) bool {
	var t *Error
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Err.Error() == t.Err.Error()
}

func NewError(code int, err string) error {
	return &Error{Code: code, Err: errors.New(err)}
}

// WithDetails returns a copy of err carrying extra key/value context for
// the error response body. Non-response errors are returned unchanged.
func WithDetails(err error, details map[string]interface{}) error {
	var respErr *Error
	if !errors.As(err, &respErr) {
		return err
	}
	return &Error{Code: respErr.Code, Err: respErr.Err, Details: details}
}
