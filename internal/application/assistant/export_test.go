package assistant

import "time"

// SetNow fija el reloj del registro en los tests.
func (r *SessionRegistry) SetNow(now func() time.Time) { r.now = now }
