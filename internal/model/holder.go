package model

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
)

var ErrNotLoaded = errors.New("no model loaded")

// Snapshot is the active model together with where and when it was loaded.
type Snapshot struct {
	Model    *Model
	Path     string
	LoadedAt time.Time
}

// Holder serves predictions from whichever model was stored last. Stores are
// atomic, so in-flight predictions finish on the model they started with.
type Holder struct {
	cur   atomic.Pointer[Snapshot]
	clock clockwork.Clock
}

// NewHolder returns an empty Holder. A nil clock uses real time.
func NewHolder(clock clockwork.Clock) *Holder {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Holder{clock: clock}
}

func (h *Holder) Store(path string, m *Model) {
	h.cur.Store(&Snapshot{Model: m, Path: path, LoadedAt: h.clock.Now()})
}

// Current returns the active snapshot, or nil before the first Store.
func (h *Holder) Current() *Snapshot {
	return h.cur.Load()
}

func (h *Holder) Predict(rows [][]float64) ([]float64, error) {
	snap := h.cur.Load()
	if snap == nil {
		return nil, ErrNotLoaded
	}
	return snap.Model.Predict(rows)
}
