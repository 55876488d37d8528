package domain

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/luckyspin-lab/backend/internal/client"
	"github.com/luckyspin-lab/backend/internal/model"
	"github.com/luckyspin-lab/backend/pkg/errorx"
	"github.com/luckyspin-lab/backend/pkg/xcontext"
)

type WebhookDomain interface {
	Verify(context.Context, *model.VerifyWebhookRequest) (*model.VerifyWebhookResponse, error)
	Receive(context.Context, *model.PostWebhookRequest) (*model.PostWebhookResponse, error)
}

type webhookDomain struct {
	engineCaller client.EngineCaller
}

func NewWebhookDomain(engineCaller client.EngineCaller) WebhookDomain {
	return &webhookDomain{engineCaller: engineCaller}
}

// Verify answers Facebook's subscription handshake: echo the challenge iff
// the mode and the verify token match. The mismatched token is never echoed
// back.
func (d *webhookDomain) Verify(
	ctx context.Context, req *model.VerifyWebhookRequest,
) (*model.VerifyWebhookResponse, error) {
	verifyToken := xcontext.Configs(ctx).Webhook.VerifyToken
	if req.Mode != "subscribe" || req.VerifyToken != verifyToken {
		xcontext.Logger(ctx).Debugf("Webhook verification failed (mode %q)", req.Mode)
		return nil, errorx.New(errorx.PermissionDenied, "Verification failed")
	}

	// Facebook requires the raw challenge as the body, not a JSON envelope.
	w := xcontext.HTTPWriter(ctx)
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(req.Challenge)); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot write the challenge: %v", err)
	}

	return nil, nil
}

// Receive forwards the raw event payload to the game engine and always
// acknowledges. A non-2xx or slow answer here makes Facebook re-deliver the
// event aggressively, which would duplicate user-visible draws; a downstream
// outage instead silently drops events.
func (d *webhookDomain) Receive(
	ctx context.Context, req *model.PostWebhookRequest,
) (*model.PostWebhookResponse, error) {
	relayID := uuid.NewString()
	if err := d.engineCaller.ForwardEvents(ctx, req.Events); err != nil {
		xcontext.Logger(ctx).Warnf("Relay %s: cannot forward events to engine: %v", relayID, err)
	} else {
		xcontext.Logger(ctx).Debugf("Relay %s: forwarded %d bytes", relayID, len(req.Events))
	}

	return &model.PostWebhookResponse{Status: "ok"}, nil
}
