package callback

import "errors"

// ListError implements errors unique to a callback List.
type ListError struct {
	Op  string
	Err error
}

// Error satisfies the error interface
func (e *ListError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

var errNoEpisodeObserver error = errors.New("callback implements neither " +
	"episode nor epoch events")

var errNoStepObserver error = errors.New("callback implements neither " +
	"step nor batch events")

// IsUnsupportedCapability returns whether or not an error reports that a
// callback could not be registered because it supports neither the
// episode/step naming convention nor the legacy epoch/batch convention for
// one of the required events.
//
// Such an error is a programming error in the callback being registered,
// not a recoverable runtime condition.
func IsUnsupportedCapability(err error) bool {
	if listErr, ok := err.(*ListError); ok {
		err = listErr.Err
	}
	return err == errNoEpisodeObserver || err == errNoStepObserver
}
