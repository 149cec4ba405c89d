package extract

import "github.com/pkg/errors"

// UnavailableError reports that a strategy's engine is not installed or not
// compiled in. It is recovered like any other strategy failure.
type UnavailableError struct {
	Msg string
}

func (e *UnavailableError) Error() string {
	return e.Msg
}

// IsUnavailable reports whether err marks a missing engine
func IsUnavailable(err error) bool {
	var ue *UnavailableError
	return errors.As(err, &ue)
}
