package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/unraid-mqtt-stats/agent/internal/catalog"
	"github.com/unraid-mqtt-stats/agent/internal/config"
	"github.com/unraid-mqtt-stats/agent/internal/dockerclient"
	"github.com/unraid-mqtt-stats/agent/internal/mqtt"
	"github.com/unraid-mqtt-stats/agent/internal/publish"
	"github.com/unraid-mqtt-stats/agent/internal/sensor"
)

// version is set at build time via -ldflags.
var version = "dev"

// options holds all CLI flag values for one invocation.
type options struct {
	host            string
	port            int
	clientID        string
	username        string
	password        string
	configFile      string
	sensorDump      string
	jsonOutput      bool
	discoveryPrefix string
	deviceName      string
	skipDiscovery   bool
	logLevel        string
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "unraid-mqtt-stats",
		Short: "Publish Unraid host and Docker sensors to MQTT for Home Assistant",
		Long: `unraid-mqtt-stats reads host statistics, disk and array state, and
Docker engine metrics, applies user sensor overrides from a TOML file,
and publishes Home Assistant discovery documents and sensor values to an
MQTT broker. It can also print the (topic, payload) pairs as JSON lines
or dump the resolved sensor metadata back to a TOML file.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyEnvFallbacks(cmd, opts)
			return run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.host, "host", "H", "", "MQTT broker host (env MQTT_HOST)")
	flags.IntVarP(&opts.port, "port", "p", 1883, "MQTT broker port (env MQTT_PORT)")
	flags.StringVarP(&opts.clientID, "client-id", "i", "", "MQTT client ID (env MQTT_CLIENT_ID)")
	flags.StringVarP(&opts.username, "username", "u", "", "MQTT username (env MQTT_USER)")
	flags.StringVarP(&opts.password, "password", "P", "", "MQTT password (env MQTT_PASSWORD)")
	flags.StringVarP(&opts.configFile, "config-file", "c", "", "TOML sensor configuration file")
	flags.StringVar(&opts.sensorDump, "sensor-dump", "", "dump overridable sensor settings to this file and exit")
	flags.BoolVar(&opts.jsonOutput, "json-output", false, "print stats to stdout as JSON lines instead of MQTT")
	flags.StringVar(&opts.discoveryPrefix, "discovery-prefix", "homeassistant", "Home Assistant discovery prefix")
	flags.StringVar(&opts.deviceName, "device-name", "unraid", "device name for Home Assistant")
	flags.BoolVar(&opts.skipDiscovery, "skip-discovery", false, "skip Home Assistant discovery messages")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	return cmd
}

// applyEnvFallbacks fills MQTT flags from the environment when the flag
// was not set on the command line.
func applyEnvFallbacks(cmd *cobra.Command, opts *options) {
	if opts.host == "" {
		opts.host = os.Getenv("MQTT_HOST")
	}
	if opts.clientID == "" {
		opts.clientID = os.Getenv("MQTT_CLIENT_ID")
	}
	if opts.username == "" {
		opts.username = os.Getenv("MQTT_USER")
	}
	if opts.password == "" {
		opts.password = os.Getenv("MQTT_PASSWORD")
	}
	if !cmd.Flags().Changed("port") {
		if port, err := strconv.Atoi(os.Getenv("MQTT_PORT")); err == nil {
			opts.port = port
		}
	}
}

// run performs one full cycle with the resolved options.
func run(ctx context.Context, opts *options) error {
	logger := initLogger(opts.logLevel)
	defer logger.Sync()

	var cfg *config.Config
	if opts.configFile != "" {
		var err error
		cfg, err = config.Load(opts.configFile)
		if err != nil {
			return err
		}
	}

	engine, err := dockerclient.New()
	if err != nil {
		return fmt.Errorf("connecting to Docker: %w", err)
	}
	defer engine.Close()

	snap, err := sensor.CollectSnapshot(ctx)
	if err != nil {
		logger.Warn("Host metrics unavailable", zap.Error(err))
		snap = &sensor.Snapshot{}
	}

	runner := sensor.ExecRunner{}
	builder := catalog.NewBuilder(engine, runner, logger, opts.deviceName)
	sensors := catalog.Apply(builder.Build(ctx, snap), cfg, runner, logger)

	if opts.sensorDump != "" {
		logger.Debug("Dumping sensor settings", zap.String("path", opts.sensorDump))
		return config.DumpSensors(sensors).WriteFile(opts.sensorDump)
	}

	if opts.jsonOutput {
		pub := publish.New(publish.NewJSONTransport(os.Stdout), logger, opts.deviceName, opts.discoveryPrefix)
		return publishCycle(ctx, pub, sensors, opts.skipDiscovery, logger)
	}

	settings := mqtt.Settings{
		Host:     opts.host,
		Port:     opts.port,
		ClientID: opts.clientID,
		Username: opts.username,
		Password: opts.password,
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	client, err := mqtt.Connect(settings, logger)
	if err != nil {
		return err
	}
	defer client.Disconnect()

	pub := publish.New(client, logger, opts.deviceName, opts.discoveryPrefix)
	if err := publishCycle(ctx, pub, sensors, opts.skipDiscovery, logger); err != nil {
		return err
	}
	logger.Info("Stats published", zap.Int("sensors", len(sensors)))
	return nil
}

// publishCycle runs the discovery pass (unless skipped) and the value pass.
func publishCycle(ctx context.Context, pub *publish.Publisher, sensors []*sensor.Sensor, skipDiscovery bool, logger *zap.Logger) error {
	if !skipDiscovery {
		logger.Debug("Publishing Home Assistant discovery messages")
		if err := pub.PublishDiscovery(ctx, sensors); err != nil {
			return err
		}
	}
	logger.Debug("Publishing sensor values")
	return pub.PublishValues(ctx, sensors)
}

// initLogger creates a console zap logger on stderr, keeping stdout free
// for the JSON output mode.
func initLogger(level string) *zap.Logger {
	var lvl zapcore.Level
	switch level {
	case "debug":
		lvl = zapcore.DebugLevel
	case "warn":
		lvl = zapcore.WarnLevel
	case "error":
		lvl = zapcore.ErrorLevel
	default:
		lvl = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		lvl,
	)
	return zap.New(core)
}
