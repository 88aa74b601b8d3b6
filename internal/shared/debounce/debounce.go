package debounce

import (
	"sync"
	"time"
)

// DefaultWindow adalah quiescence window search box dashboard.
const DefaultWindow = 400 * time.Millisecond

// Debouncer meneruskan nilai ke Out() hanya setelah nilai itu stabil selama
// satu window penuh. Setiap Set me-restart timer; nilai yang tersusul oleh
// nilai baru sebelum window habis dibuang tanpa pernah dikirim.
type Debouncer[T any] struct {
	window time.Duration
	out    chan T

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

func New[T any](window time.Duration) *Debouncer[T] {
	return &Debouncer[T]{
		window: window,
		out:    make(chan T, 1),
	}
}

// Set mencatat nilai baru dan me-restart window timer.
// Window <= 0 meneruskan nilai seketika tanpa delay.
func (d *Debouncer[T]) Set(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	if d.window <= 0 {
		d.push(v)
		return
	}

	d.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.stopped {
			return
		}
		d.timer = nil
		d.push(v)
	})
}

// Out adalah stream nilai yang sudah lolos quiescence window.
// Buffer satu slot; nilai yang belum dibaca diganti oleh yang lebih baru.
func (d *Debouncer[T]) Out() <-chan T {
	return d.out
}

// Stop membuang timer yang masih pending tanpa pernah mengirim nilainya.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// push dipanggil dengan mu held.
func (d *Debouncer[T]) push(v T) {
	// Latest wins: slot yang belum dikonsumsi diganti, tidak ditunggu.
	select {
	case d.out <- v:
	default:
		select {
		case <-d.out:
		default:
		}
		d.out <- v
	}
}
