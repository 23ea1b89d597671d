package remote

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/henkwiedig/msposd-remote/pkg/input"
	"github.com/henkwiedig/msposd-remote/pkg/msp"
)

// Config defines the configuration of the remote control sender.
type Config struct {
	// Target is the UDP address of the MSP receiver, fixed for the
	// process lifetime.
	Target string

	// Interval is the control loop tick cadence.
	Interval time.Duration

	// RCCommand is the MSP command ID carrying the control vector.
	// It denotes the firmware's "set control channels" command and
	// may vary by target firmware version.
	RCCommand int

	// Pins maps board pins to control keys, e.g. "16:w,13:a".
	// Empty disables the GPIO source.
	Pins string

	// MQTTBrokerURL enables the MQTT input source when non-empty.
	// e.g. mqtt://host:port/topic-prefix
	MQTTBrokerURL string

	// MQTTTopic is the topic (under the prefix) carrying key symbols.
	MQTTTopic string
}

var defaultConfig = Config{
	Target:    "127.0.0.1:14551",
	Interval:  100 * time.Millisecond,
	RCCommand: int(msp.CmdRC),
	Pins:      "16:w,13:a,18:s,11:d,32:m,38:x",
	MQTTTopic: "keys",
}

func init() {
	if val := os.Getenv("MSPOSD_REMOTE_MQTT_URL"); val != "" {
		defaultConfig.MQTTBrokerURL = val
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Target, "target", defaultConfig.Target, "UDP address of the MSP receiver.")
	flag.DurationVar(&defaultConfig.Interval, "interval", defaultConfig.Interval, "Control loop tick interval.")
	flag.IntVar(&defaultConfig.RCCommand, "rc-cmd", defaultConfig.RCCommand, "MSP command ID for control vector frames.")
	flag.StringVar(&defaultConfig.Pins, "pins", defaultConfig.Pins, "Board pin to key mapping, empty to disable GPIO.")
	flag.StringVar(&defaultConfig.MQTTBrokerURL, "mqtt", defaultConfig.MQTTBrokerURL, "MQTT broker URL for remote key input, empty to disable.")
	flag.StringVar(&defaultConfig.MQTTTopic, "mqtt-topic", defaultConfig.MQTTTopic, "MQTT topic carrying key symbols.")
}

// NewConfig creates a config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// PinMapping parses the Pins option into pin numbers (in mapping
// order) and the pin to key mapping.
func (c *Config) PinMapping() ([]int, map[int]input.Event, error) {
	if c.Pins == "" {
		return nil, nil, nil
	}
	var pins []int
	mapping := make(map[int]input.Event)
	for _, entry := range strings.Split(c.Pins, ",") {
		parts := strings.SplitN(strings.TrimSpace(entry), ":", 2)
		if len(parts) != 2 {
			return nil, nil, fmt.Errorf("bad pin mapping entry %q", entry)
		}
		pin, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, nil, fmt.Errorf("bad pin number %q: %v", parts[0], err)
		}
		ev, ok := input.ParseEvent(parts[1])
		if !ok || ev == input.KeyQuit {
			return nil, nil, fmt.Errorf("bad key %q for pin %d", parts[1], pin)
		}
		if _, dup := mapping[pin]; dup {
			return nil, nil, fmt.Errorf("pin %d mapped twice", pin)
		}
		pins = append(pins, pin)
		mapping[pin] = ev
	}
	return pins, mapping, nil
}

// RCCommandByte validates and narrows the RC command ID.
func (c *Config) RCCommandByte() (byte, error) {
	if c.RCCommand < 0 || c.RCCommand > 255 {
		return 0, fmt.Errorf("rc-cmd out of range: %d", c.RCCommand)
	}
	return byte(c.RCCommand), nil
}
