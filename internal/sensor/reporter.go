package sensor

import "context"

// Reporter is the polymorphic value source bound to a Sensor.
type Reporter interface {
	// ProduceValue returns the sensor's current value. The second return
	// is false when no value could be produced this cycle; reporters
	// never surface errors, a failed read is a normal empty reading.
	ProduceValue(ctx context.Context) (string, bool)
}
