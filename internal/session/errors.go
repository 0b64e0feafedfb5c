// internal/session/errors.go
package session

import (
	"fmt"
	"time"
)

// StartupError reports that the browser process or a tab could not be
// brought up: missing binary, unreachable display, or an unresponsive
// process. It is fatal to the scenario that requested the session; no
// partial session is ever returned alongside it.
type StartupError struct {
	Stage string // "launch" or "session"
	Err   error
}

func (e *StartupError) Error() string {
	return fmt.Sprintf("browser %s failed: %v", e.Stage, e.Err)
}

func (e *StartupError) Unwrap() error { return e.Err }

// WaitTimeoutError reports that an explicit wait condition (element
// visible, element clickable, title contains) never held within its bound.
// Target names the locator or page attribute the wait observed.
type WaitTimeoutError struct {
	Target    string
	Condition string
	Timeout   time.Duration
	Err       error
}

func (e *WaitTimeoutError) Error() string {
	return fmt.Sprintf("wait timed out after %s: %s (target %s)", e.Timeout, e.Condition, e.Target)
}

func (e *WaitTimeoutError) Unwrap() error { return e.Err }
