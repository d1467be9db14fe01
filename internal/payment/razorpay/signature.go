package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/SinhaGautam/nothing-server-app/internal/domain"
)

// VerifySignature checks that a payment-completion signature was produced by
// the gateway: HMAC-SHA256 over "orderID|paymentID" with the shared key
// secret, hex encoded. The comparison is constant time.
func (c *Client) VerifySignature(orderID, paymentID, signature string) error {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return domain.ErrInvalidSignature
	}
	return nil
}
