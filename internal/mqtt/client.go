// Package mqtt provides the MQTT broker transport used to publish
// sensor discovery documents and values.
package mqtt

import (
	"errors"
	"fmt"
	"os"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"
)

const (
	keepAlive      = 5 * time.Second
	connectTimeout = 10 * time.Second
	publishTimeout = 10 * time.Second

	// disconnectQuiesce is how long Disconnect waits for in-flight
	// messages to drain before closing the connection.
	disconnectQuiesce = 2 * time.Second
)

// Settings holds the broker connection parameters, resolved from CLI
// flags with environment fallbacks.
type Settings struct {
	Host     string
	Port     int
	ClientID string
	Username string
	Password string
}

// Validate checks required fields and fills defaults: port 1883 and a
// pid-suffixed client id.
func (s *Settings) Validate() error {
	if s.Host == "" {
		return errors.New("MQTT host is required: set --host or MQTT_HOST")
	}
	if s.Port == 0 {
		s.Port = 1883
	}
	if s.ClientID == "" {
		s.ClientID = fmt.Sprintf("unraid-mqtt-stats-%d", os.Getpid())
	}
	return nil
}

// Client wraps the paho MQTT client behind the publish transport
// interface.
type Client struct {
	mqtt   paho.Client
	logger *zap.Logger
}

// Connect establishes a broker session with the given settings.
func Connect(settings Settings, logger *zap.Logger) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts := paho.NewClientOptions().
		AddBroker(fmt.Sprintf("tcp://%s:%d", settings.Host, settings.Port)).
		SetClientID(settings.ClientID).
		SetKeepAlive(keepAlive).
		SetConnectTimeout(connectTimeout)
	if settings.Username != "" && settings.Password != "" {
		opts.SetUsername(settings.Username)
		opts.SetPassword(settings.Password)
	}

	client := paho.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("connecting to %s:%d: timeout", settings.Host, settings.Port)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connecting to %s:%d: %w", settings.Host, settings.Port, err)
	}
	logger.Debug("Connected to MQTT broker",
		zap.String("host", settings.Host),
		zap.Int("port", settings.Port),
		zap.String("client_id", settings.ClientID))
	return &Client{mqtt: client, logger: logger}, nil
}

// Publish sends one message at QoS 1 and waits for completion.
func (c *Client) Publish(topic, payload string, retain bool) error {
	token := c.mqtt.Publish(topic, 1, retain, payload)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("publishing to %s: timeout", topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publishing to %s: %w", topic, err)
	}
	return nil
}

// Disconnect drains in-flight messages and closes the connection.
func (c *Client) Disconnect() {
	c.mqtt.Disconnect(uint(disconnectQuiesce / time.Millisecond))
}
