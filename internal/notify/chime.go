package notify

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/oguzhankocabas81/focus-pet/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// Chime plays a short synthesized tone through the speaker. Initialization
// is lazy; if the audio device is unavailable the chime stays silent.
type Chime struct {
	mu          sync.Mutex
	initialized bool
	broken      bool
}

func NewChime() *Chime {
	return &Chime{}
}

func (c *Chime) init() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.broken {
		return false
	}
	if c.initialized {
		return true
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		c.broken = true
		return false
	}
	c.initialized = true
	return true
}

func (c *Chime) SessionComplete(mode game.Mode) {
	if !c.init() {
		return
	}
	// Focus done rings brighter than a break ending.
	freq := 660.0
	if mode.IsBreak() {
		freq = 440.0
	}
	speaker.Play(beep.Seq(
		newTone(freq, 120*time.Millisecond),
		newTone(freq*1.5, 180*time.Millisecond),
	))
}

// tone is a fixed-length sine streamer.
type tone struct {
	freq     float64
	phase    float64
	duration int
	position int
}

func newTone(freq float64, d time.Duration) beep.Streamer {
	return &tone{freq: freq, duration: sampleRate.N(d)}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, false
		}
		val := math.Sin(2 * math.Pi * t.phase)
		// Soft fade-out to avoid a click at the end.
		remaining := t.duration - t.position
		if fade := float64(remaining) / float64(t.duration); fade < 0.2 {
			val *= fade * 5
		}
		samples[i][0] = val * 0.4
		samples[i][1] = val * 0.4

		t.phase += t.freq / float64(sampleRate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
