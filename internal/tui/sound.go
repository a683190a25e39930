package tui

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	tickFreq   = 660
	tickLength = 40 * time.Millisecond
)

// Sound plays the cue for an active item change
type Sound interface {
	Tick()
	Close()
}

// Mute is a Sound that never plays
type Mute struct{}

func (Mute) Tick()  {}
func (Mute) Close() {}

// Speaker plays cues through the default audio device
type Speaker struct {
	mu    sync.Mutex
	ready bool
}

// NewSpeaker initialises the audio device. Failure is logged and leaves the speaker silent.
func NewSpeaker() *Speaker {
	s := &Speaker{}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("Audio initialization failed: %v", err)
		return s
	}
	s.ready = true
	return s
}

// Tick plays a short quiet sine blip
func (s *Speaker) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return
	}

	sine, err := generators.SineTone(sampleRate, tickFreq)
	if err != nil {
		log.Printf("audio: %v", err)
		return
	}
	speaker.Play(&effects.Volume{
		Streamer: beep.Take(sampleRate.N(tickLength), sine),
		Base:     2,
		Volume:   -3,
	})
}

// Close releases the audio device
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready {
		speaker.Close()
		s.ready = false
	}
}
