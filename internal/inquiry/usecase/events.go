package usecase

import (
	"context"
	"encoding/json"
	"time"

	"collab-srv/internal/model"
)

// Lifecycle event names published to the Kafka topic.
const (
	eventInquiryCreated       = "inquiry.created"
	eventInquiryClosed        = "inquiry.closed"
	eventInquiryStatusChanged = "inquiry.status_changed"
)

type inquiryEvent struct {
	Event        string `json:"event"`
	InquiryID    string `json:"inquiryId"`
	InfluencerID string `json:"influencerId"`
	Status       string `json:"status"`
	OccurredAt   string `json:"occurredAt"`
}

// publishEvent - Best effort. Event loss never fails the operation.
func (uc *implUseCase) publishEvent(ctx context.Context, event string, inq model.Inquiry) {
	if uc.producer == nil {
		return
	}

	payload, err := json.Marshal(inquiryEvent{
		Event:        event,
		InquiryID:    inq.ID,
		InfluencerID: inq.InfluencerID,
		Status:       inq.Status,
		OccurredAt:   time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		uc.l.Errorf(ctx, "inquiry.usecase.publishEvent: marshal %s failed: %v", event, err)
		return
	}

	if err := uc.producer.Publish([]byte(inq.ID), payload); err != nil {
		uc.l.Errorf(ctx, "inquiry.usecase.publishEvent: publish %s failed: %v", event, err)
	}
}
