package stream

import (
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
)

// resyncThreshold is the largest frame delta fed to the engine as-is; anything
// longer means the host was suspended and clocks need realigning.
const resyncThreshold = 2 * time.Second

// Streamer that streams RGB data frames to an ledrx device.
type Streamer struct {
	client     mqtt.Client
	config     Config
	controller *Controller
	runtimeMs  int64
	lastFrame  time.Time
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client mqtt.Client) *Streamer {
	s := new(Streamer)
	s.client = client
	s.config = config
	s.controller = NewController(config)

	return s
}

// Controller exposes the animation controller.
func (s *Streamer) Controller() *Controller {
	return s.controller
}

func (s *Streamer) frameInterval() time.Duration {
	return time.Duration(float64(time.Second) / s.config.FrameRate)
}

// frameDelta measures the time since the previous frame, substituting one
// nominal frame interval when the host clock jumped.
func (s *Streamer) frameDelta(now time.Time) time.Duration {
	delta := now.Sub(s.lastFrame)
	s.lastFrame = now
	if delta > resyncThreshold {
		log.Warn().Dur("delta", delta).Msg("Clock jumped, resyncing")
		delta = s.frameInterval()
	}

	return delta
}

// SendFrame advances the engine by delta and sends the resulting frame as
// binary over MQTT to an ledrx device.
func (s *Streamer) SendFrame(delta time.Duration) {
	s.runtimeMs += delta.Milliseconds()
	s.controller.Advance(delta)

	f := s.controller.CalculateFrame(s.runtimeMs)
	b, _ := f.MarshalBinary()
	token := s.client.Publish(s.config.Mqtt.Topics.Stream, 2, false, b)
	token.Wait()
}

// Run causes the Streamer to send Frames continuously.
func (s *Streamer) Run() {
	s.lastFrame = time.Now()
	publishTimer := time.NewTicker(s.frameInterval())
	for now := range publishTimer.C {
		s.SendFrame(s.frameDelta(now))
	}
}
