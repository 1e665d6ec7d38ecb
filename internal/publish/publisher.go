// Package publish walks the final sensor list and forwards discovery
// documents and sensor values to an injected transport. The same passes
// drive an MQTT session or a flat JSON output stream.
package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/unraid-mqtt-stats/agent/internal/sensor"
)

// Transport is the injected publish capability.
type Transport interface {
	Publish(topic, payload string, retain bool) error
}

// Publisher runs the discovery and value passes over a sensor list.
// Disabled sensors are skipped in both passes; a sensor that produces no
// value this cycle is skipped silently. Transport failures propagate.
type Publisher struct {
	transport       Transport
	logger          *zap.Logger
	deviceName      string
	discoveryPrefix string
}

// New creates a Publisher for the given device identity.
func New(transport Transport, logger *zap.Logger, deviceName, discoveryPrefix string) *Publisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Publisher{
		transport:       transport,
		logger:          logger,
		deviceName:      deviceName,
		discoveryPrefix: discoveryPrefix,
	}
}

// NodeID returns the MQTT node identity for the device.
func (p *Publisher) NodeID() string {
	return "unraid_" + p.deviceName
}

// PublishDiscovery publishes each enabled sensor's Home Assistant
// discovery document, retained.
func (p *Publisher) PublishDiscovery(ctx context.Context, sensors []*sensor.Sensor) error {
	deviceInfo := DeviceInfo(p.deviceName)
	nodeID := p.NodeID()
	for _, s := range sensors {
		if s.Disabled {
			continue
		}
		doc, err := s.DiscoveryConfig(p.deviceName, nodeID, deviceInfo)
		if err != nil {
			return fmt.Errorf("sensor %s: rendering discovery config: %w", s.ID, err)
		}
		topic := s.DiscoveryTopic(p.discoveryPrefix, nodeID)
		if err := p.transport.Publish(topic, string(doc), true); err != nil {
			return fmt.Errorf("sensor %s: publishing discovery: %w", s.ID, err)
		}
	}
	return nil
}

// PublishValues invokes each enabled sensor's reporter and publishes the
// produced values, unretained. An empty reading is a normal cycle, not
// an error.
func (p *Publisher) PublishValues(ctx context.Context, sensors []*sensor.Sensor) error {
	nodeID := p.NodeID()
	for _, s := range sensors {
		if s.Disabled || s.Reporter == nil {
			continue
		}
		value, ok := s.Reporter.ProduceValue(ctx)
		if !ok {
			p.logger.Debug("Sensor produced no value", zap.String("sensor", s.ID))
			continue
		}
		p.logger.Debug("Sensor value",
			zap.String("sensor", s.ID),
			zap.String("value", value))
		if err := p.transport.Publish(s.StateTopic(nodeID), value, false); err != nil {
			return fmt.Errorf("sensor %s: publishing value: %w", s.ID, err)
		}
	}
	return nil
}

// JSONTransport writes each publish as a JSON line, the flat-output mode.
type JSONTransport struct {
	w io.Writer
}

// NewJSONTransport creates a transport writing JSON lines to w.
func NewJSONTransport(w io.Writer) *JSONTransport {
	return &JSONTransport{w: w}
}

// Publish writes one {"topic": ..., "payload": ...} line. The retain
// flag has no meaning for a flat stream and is ignored.
func (t *JSONTransport) Publish(topic, payload string, retain bool) error {
	line, err := json.Marshal(struct {
		Topic   string `json:"topic"`
		Payload string `json:"payload"`
	}{Topic: topic, Payload: payload})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(t.w, string(line))
	return err
}
