package exceptions

import "errors"

// CommonException is the single application error type. Services return it
// at lookup and rule failures; the global error handler renders it.
type CommonException struct {
	StatusEnum StatusEnum
	Detail     string
}

func (e *CommonException) Error() string {
	if e.Detail != "" {
		return e.StatusEnum.Message + ": " + e.Detail
	}
	return e.StatusEnum.Message
}

func New(status StatusEnum) *CommonException {
	return &CommonException{StatusEnum: status}
}

func WithDetail(status StatusEnum, detail string) *CommonException {
	return &CommonException{StatusEnum: status, Detail: detail}
}

// As unwraps err into a CommonException.
func As(err error) (*CommonException, bool) {
	var ce *CommonException
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// Is reports whether err carries the given status.
func Is(err error, status StatusEnum) bool {
	ce, ok := As(err)
	return ok && ce.StatusEnum.Status == status.Status
}
