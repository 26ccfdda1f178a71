package sound

import (
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/Kuadribal/touchblob/internal/body"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

var _ body.Effects = (*Player)(nil)

// Player turns body cues into sounds. Until Start succeeds every cue is
// dropped, so a machine without audio just stays quiet.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	log         *slog.Logger

	// play hands a stream to the output; replaced in tests.
	play func(beep.Streamer)
}

func NewPlayer(volume float64, logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
		log:    logger,
	}
	p.play = p.mix
	return p
}

// Start opens the audio device.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences anything still playing and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

func (p *Player) mix(s beep.Streamer) {
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

func (p *Player) cue(c Cue, gain float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.log.Debug("sound cue", "cue", c.String(), "gain", gain)
	p.play(Synth(c, SampleRate, p.volume*gain))
}

func (p *Player) Jumped(x, y float64)             { p.cue(CueJump, 1) }
func (p *Player) Splatted(x, y float64)           { p.cue(CueSplat, 1) }
func (p *Player) Squished(x, y float64)           { p.cue(CueSquish, 1) }
func (p *Player) Poked(x, y float64, hint string) { p.cue(CuePoke, 1) }

// Landed scales with impact speed; the hardest landings play at full
// volume.
func (p *Player) Landed(x, y, magnitude float64) {
	p.cue(CueLand, LandingGain(magnitude))
}

// LandingGain maps an impact speed to a volume factor in [0.3, 1].
func LandingGain(magnitude float64) float64 {
	return math.Min(math.Max(magnitude/20, 0.3), 1)
}
