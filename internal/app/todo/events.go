package todo

import (
	"context"

	"github.com/timada-org/todo/pkg/client"
	"github.com/timada-org/todo/pkg/topic"
)

const (
	EventCreated = "Created"
	EventUpdated = "Updated"
	EventDeleted = "Deleted"
)

const topicPrefix = "todos"

// Publisher delivers change events. *client.Client implements it.
type Publisher interface {
	Send(ctx context.Context, event *client.Event) error
}

// publish sends the event in the background; failures are only logged.
func (app *App) publish(name, id string, data any) {
	if app.publisher == nil {
		return
	}

	go func() {
		t, err := topic.Join(topicPrefix, id)
		if err != nil {
			app.logger.Log("msg", "publish", "event", name, "id", id, "err", err)
			return
		}

		err = app.publisher.Send(context.Background(), &client.Event{
			Topic: t,
			Name:  name,
			Data:  data,
		})
		if err != nil {
			app.logger.Log("msg", "publish", "event", name, "id", id, "err", err)
		}
	}()
}
