// Package monitor publishes board input events to an MQTT broker.
package monitor

import (
	"encoding/json"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"

	fx "github.com/betz-engineering/uiboard.go/pkg/framework"
	"github.com/betz-engineering/uiboard.go/pkg/host"
)

// InputSource reads one buttons/encoder report per call, consuming the
// encoder delta. *host.Board implements it.
type InputSource interface {
	Inputs() (host.InputState, error)
}

// Publisher publishes event payloads. *mqtt.Queue implements it.
type Publisher interface {
	Pub(topic string, payload []byte) paho.Token
}

// Event is the published form of one input report. Only reports that
// carry a button change or encoder movement are published.
type Event struct {
	Flags        byte  `json:"flags"`
	EncoderDelta int8  `json:"encoder_delta"`
	UnixMilli    int64 `json:"ts"`
}

// Controller polls the board inputs at a fixed interval from the control
// loop and publishes events. Polling consumes the encoder delta on the
// device, so the monitor must be the only input reader while it runs.
type Controller struct {
	Source   InputSource
	Queue    Publisher
	Interval time.Duration
	Topic    string

	lastPoll  time.Time
	lastFlags byte
	polled    bool
}

// NewController creates a Controller publishing to topic.
func NewController(source InputSource, queue Publisher, topic string, interval time.Duration) *Controller {
	return &Controller{Source: source, Queue: queue, Topic: topic, Interval: interval}
}

// AddToLoop implements framework.LoopAdder.
func (c *Controller) AddToLoop(loop *fx.Loop) {
	loop.AddController(fx.PhasePoll, c)
}

// Control implements framework.Controller.
func (c *Controller) Control(cc fx.ControlContext) error {
	now := cc.Time()
	if c.polled && now.Sub(c.lastPoll) < c.Interval {
		return nil
	}
	c.lastPoll, c.polled = now, true

	state, err := c.Source.Inputs()
	if err != nil {
		log.Warnf("input poll failed: %v", err)
		return err
	}
	if state.EncoderDelta == 0 && state.Flags == c.lastFlags {
		return nil
	}
	c.lastFlags = state.Flags

	payload, err := json.Marshal(Event{
		Flags:        state.Flags,
		EncoderDelta: state.EncoderDelta,
		UnixMilli:    now.UnixMilli(),
	})
	if err != nil {
		return err
	}
	c.Queue.Pub(c.Topic, payload)
	return nil
}
