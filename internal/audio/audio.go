// Package audio starts the background song. Playback is fire-and-forget:
// once started the greeting never pauses, stops or adjusts it.
package audio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// ErrNoPath is returned when no audio file is configured.
var ErrNoPath = errors.New("no audio path configured")

// Player starts playback of an audio file at a fixed linear volume in [0, 1].
type Player interface {
	Play(path string, volume float64) error
}

// Nop is a Player that never plays anything.
type Nop struct{}

func (Nop) Play(string, float64) error { return nil }

// SpeakerPlayer plays MP3 files on the default output device.
type SpeakerPlayer struct {
	mu          sync.Mutex
	initialized bool

	// streams guards open; the speaker's callback goroutine takes it.
	streams sync.Mutex
	open    map[beep.StreamSeekCloser]struct{}
}

// NewSpeakerPlayer creates a player. The device is opened on first Play.
func NewSpeakerPlayer() *SpeakerPlayer {
	return &SpeakerPlayer{}
}

// Play decodes the file at path and queues it on the speaker. It returns
// once playback has started.
func (p *SpeakerPlayer) Play(path string, volume float64) error {
	if path == "" {
		return ErrNoPath
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open audio: %w", err)
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("decode %s: %w", path, err)
	}

	if err := p.init(); err != nil {
		streamer.Close()
		return fmt.Errorf("init speaker: %w", err)
	}

	var s beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, s)
	}

	p.track(streamer)
	speaker.Play(beep.Seq(
		WithVolume(s, volume),
		beep.Callback(func() { p.release(streamer) }),
	))
	return nil
}

// Close stops playback, closes the decoders still playing and releases
// the device. It is safe to call more than once.
func (p *SpeakerPlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		speaker.Clear()
		speaker.Close()
		p.initialized = false
	}
	return p.closeStreams()
}

func (p *SpeakerPlayer) track(s beep.StreamSeekCloser) {
	p.streams.Lock()
	defer p.streams.Unlock()
	if p.open == nil {
		p.open = make(map[beep.StreamSeekCloser]struct{})
	}
	p.open[s] = struct{}{}
}

// release closes s once it has finished playing.
func (p *SpeakerPlayer) release(s beep.StreamSeekCloser) {
	p.streams.Lock()
	_, ok := p.open[s]
	delete(p.open, s)
	p.streams.Unlock()
	if ok {
		s.Close()
	}
}

func (p *SpeakerPlayer) closeStreams() error {
	p.streams.Lock()
	open := p.open
	p.open = nil
	p.streams.Unlock()

	var errs []error
	for s := range open {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (p *SpeakerPlayer) init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	p.initialized = true
	return nil
}

// WithVolume scales s by a linear gain in [0, 1].
func WithVolume(s beep.Streamer, volume float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	switch {
	case volume <= 0:
		v.Silent = true
	case volume < 1:
		v.Volume = math.Log2(volume)
	}
	return v
}
