package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IPublisherService queues best-effort follow-up work (entry counting,
// achievement re-evaluation, leaderboard sync) on the in-process bus so the
// primary request never blocks on secondary bookkeeping.
type IPublisherService interface {
	Publish(ctx context.Context, topic string, payload interface{}) error
}

type publisherService struct {
	pubSub *gochannel.GoChannel
}

func NewPublisherService(pubSub *gochannel.GoChannel) IPublisherService {
	return &publisherService{
		pubSub: pubSub,
	}
}

func (s *publisherService) Publish(ctx context.Context, topic string, payload interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	msg := message.NewMessage(watermill.NewUUID(), raw)
	msg.SetContext(ctx)
	return s.pubSub.Publish(topic, msg)
}
