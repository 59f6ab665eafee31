package mqtt

import (
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
)

const (
	qos             = 1
	publishTimeout  = 10 * time.Second
	disconnectQuiet = 250
)

// Publisher is the surface the rest of the server needs. It lets handlers
// and the broadcaster run without a live broker in tests.
type Publisher interface {
	Publish(topic string, payload []byte) error
}

// AthanTopic is where a screen listens for its daily times.
func AthanTopic(deviceID string) string {
	return fmt.Sprintf("tv/%s/athan", deviceID)
}

type Client struct {
	cli paho.Client
}

// Connect dials brokerURL (e.g. tcp://broker:1883) and blocks until the
// session is up.
func Connect(brokerURL, clientID string) (*Client, error) {
	opts := paho.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)
	opts.SetDefaultPublishHandler(func(_ paho.Client, msg paho.Message) {
		log.Debug().Str("topic", msg.Topic()).Bytes("payload", msg.Payload()).Msg("received mqtt message")
	})
	opts.OnConnect = func(paho.Client) {
		log.Info().Str("broker", brokerURL).Msg("connected to MQTT broker")
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		log.Warn().Err(err).Msg("MQTT connection lost")
	}

	cli := paho.NewClient(opts)
	if token := cli.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	return &Client{cli: cli}, nil
}

func (c *Client) Publish(topic string, payload []byte) error {
	token := c.cli.Publish(topic, qos, true, payload)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("publish to %s: timed out after %s", topic, publishTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}
	log.Debug().Str("topic", topic).Msg("message published")
	return nil
}

func (c *Client) Close() {
	c.cli.Disconnect(disconnectQuiet)
	log.Info().Msg("MQTT client disconnected")
}

// Discard drops every message. It stands in when no broker is configured.
type Discard struct{}

func (Discard) Publish(topic string, _ []byte) error {
	log.Debug().Str("topic", topic).Msg("no MQTT broker configured, message dropped")
	return nil
}
