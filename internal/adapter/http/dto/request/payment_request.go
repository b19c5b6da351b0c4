package request

import "encoding/json"

// PaymentCollectRequest is the payload for collecting a scheduled payment.
//
// `payload` is forwarded as-is (raw JSON) to support varying provider
// schemas; the amount is always overridden from the stored schedule entry.

type PaymentCollectRequest struct {
	Payload json.RawMessage `json:"payload"`
}
