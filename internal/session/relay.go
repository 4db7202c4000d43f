package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/pixil98/go-chat/internal/commands"
)

// Subscriber provides the ability to subscribe to messages on a subject.
type Subscriber interface {
	Subscribe(subject string, handler func(data []byte)) (func(), error)
}

// ShoutRelay bridges the server-wide shout subject into the session
// service. It runs as a worker: the broker comes up as a sibling worker,
// so subscription is retried until the broker accepts it.
type ShoutRelay struct {
	sub Subscriber
	svc *Service
}

func NewShoutRelay(sub Subscriber, svc *Service) *ShoutRelay {
	return &ShoutRelay{sub: sub, svc: svc}
}

func (r *ShoutRelay) Start(ctx context.Context) error {
	var unsubscribe func()
	for unsubscribe == nil {
		var err error
		unsubscribe, err = r.sub.Subscribe(commands.ShoutSubject, r.svc.DeliverShout)
		if err != nil {
			slog.WarnContext(ctx, "subscribing to shout subject", "error", err)
			select {
			case <-time.After(time.Second):
			case <-ctx.Done():
				return nil
			}
		}
	}
	defer unsubscribe()

	slog.InfoContext(ctx, "shout relay running", "subject", commands.ShoutSubject)
	<-ctx.Done()
	return nil
}
