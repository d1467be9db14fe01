package app

import "github.com/google/uuid"

// newReceipt returns a unique receipt token for the gateway's own audit and
// idempotency. It is never used as the order's identity.
func newReceipt() string {
	return "rcpt_" + uuid.NewString()
}
