package model

// VerifyWebhookRequest carries Facebook's subscription handshake query
// parameters.
type VerifyWebhookRequest struct {
	Mode        string `json:"hub.mode"`
	VerifyToken string `json:"hub.verify_token"`
	Challenge   string `json:"hub.challenge"`
}

type VerifyWebhookResponse struct{}

// PostWebhookRequest captures the inbound Messenger event payload without
// interpreting it; the downstream engine owns its semantics.
type PostWebhookRequest struct {
	Events []byte `json:"-"`
}

func (r *PostWebhookRequest) UnmarshalJSON(b []byte) error {
	r.Events = append(r.Events[:0], b...)
	return nil
}

type PostWebhookResponse struct {
	Status string `json:"status"`
}
