package cue

import (
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

var logger = log.New(os.Stderr, "cue: ", log.LstdFlags)

// Player plays short tones on the default audio device.
type Player struct {
	format    beep.Format
	frequency float64
	duration  time.Duration
	volume    float64
}

// NewPlayer initialises the speaker. It must be called at most once per
// process, the same restriction speaker.Init has.
func NewPlayer(sampleRate int, frequency float64, duration time.Duration, volume float64) (*Player, error) {
	sr := beep.SampleRate(sampleRate)
	bufferSize := sr.N(time.Second / 20)
	if err := speaker.Init(sr, bufferSize); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	return &Player{
		format:    beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2},
		frequency: frequency,
		duration:  duration,
		volume:    volume,
	}, nil
}

// Blip queues one tone. Safe to call from the game loop; it does not block.
func (p *Player) Blip() {
	if p == nil {
		return
	}
	speaker.Play(Tone(p.format.SampleRate, p.frequency, p.duration, p.volume))
	logger.Printf("blip %.0fHz %v", p.frequency, p.duration)
}

// Close stops anything still playing.
func (p *Player) Close() {
	if p == nil {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}

// Tone is a sine wave of the given length that fades out linearly so it ends
// without a click.
func Tone(sr beep.SampleRate, frequency float64, d time.Duration, volume float64) beep.Streamer {
	total := sr.N(d)
	pos := 0
	step := 2 * math.Pi * frequency / float64(sr)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				break
			}
			env := 1 - float64(pos)/float64(total)
			v := volume * env * math.Sin(step*float64(pos))
			samples[i][0] = v
			samples[i][1] = v
			pos++
			n++
		}
		return n, true
	})
}
