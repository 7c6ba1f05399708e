package client

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/apache/pulsar-client-go/pulsar"
	"github.com/timada-org/todo/pkg/topic"
)

// Event is the payload published for every todo change.
type Event struct {
	Topic    *topic.TopicName `json:"topic"`
	Name     string           `json:"name"`
	Data     any              `json:"data"`
	Metadata any              `json:"metadata"`
}

type ClientOptions struct {
	URL   string
	Topic string
	Name  string
}

type Client struct {
	Client   pulsar.Client
	producer pulsar.Producer
}

func New(options ClientOptions) (*Client, error) {
	client, err := pulsar.NewClient(pulsar.ClientOptions{
		URL: options.URL,
	})
	if err != nil {
		return nil, err
	}

	producer, err := client.CreateProducer(pulsar.ProducerOptions{
		Topic: options.Topic,
		Name:  options.Name,
	})
	if err != nil {
		client.Close()
		return nil, err
	}

	return &Client{
		Client:   client,
		producer: producer,
	}, nil
}

// Encode returns the wire form of an event.
func Encode(event *Event) ([]byte, error) {
	if event.Topic == nil {
		return nil, errors.New("event topic cannot be empty")
	}

	return json.Marshal(event)
}

func (c *Client) Send(ctx context.Context, event *Event) error {
	if c.producer == nil {
		return errors.New("producer not initialized")
	}

	payload, err := Encode(event)
	if err != nil {
		return err
	}

	_, err = c.producer.Send(ctx, &pulsar.ProducerMessage{
		Key:     event.Topic.Value,
		Payload: payload,
	})

	return err
}

func (c *Client) Close() {
	if c.producer != nil {
		c.producer.Close()
	}

	c.Client.Close()
}
