package gateway

import (
	"context"
	"sync"
	"time"

	"hr-dashboard/internal/shared/debounce"
	"hr-dashboard/internal/shared/listquery"

	"go.uber.org/zap"
)

// fetchFunc mengeksekusi satu list fetch untuk term yang sudah stabil.
type fetchFunc func(ctx context.Context, q listquery.Query) (ListViewState, error)

// SearchCoordinator menggandeng debouncer dengan list fetch: keystroke
// masuk lewat Submit, fetch hanya terjadi setelah term diam selama satu
// window, dan hanya hasil request terbaru yang disimpan.
type SearchCoordinator struct {
	deb    *debounce.Debouncer[string]
	fetch  fetchFunc
	logger *zap.Logger

	mu     sync.RWMutex
	latest *ListViewState

	done chan struct{}
}

func NewSearchCoordinator(window time.Duration, fetch fetchFunc, logger ...*zap.Logger) *SearchCoordinator {
	l := zap.L().Named("search")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("search")
	}

	s := &SearchCoordinator{
		deb:    debounce.New[string](window),
		fetch:  fetch,
		logger: l,
		done:   make(chan struct{}),
	}
	go s.run()
	return s
}

// Submit mencatat keystroke terbaru. Term yang tersusul sebelum window
// habis tidak pernah menghasilkan fetch.
func (s *SearchCoordinator) Submit(term string) {
	s.deb.Set(term)
}

// Latest mengembalikan hasil fetch terakhir yang berhasil, kalau ada.
func (s *SearchCoordinator) Latest() (ListViewState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.latest == nil {
		return ListViewState{}, false
	}
	return *s.latest, true
}

func (s *SearchCoordinator) Stop() {
	s.deb.Stop()
	close(s.done)
}

func (s *SearchCoordinator) run() {
	for {
		select {
		case <-s.done:
			return
		case term := <-s.deb.Out():
			s.runFetch(term)
		}
	}
}

func (s *SearchCoordinator) runFetch(term string) {
	// Search baru selalu mulai dari halaman pertama.
	q := listquery.Normalize(listquery.Raw{Search: term})

	state, err := s.fetch(context.Background(), q)
	if err != nil {
		// Response stale atau fetch gagal: hasil terakhir yang valid
		// tetap dipertahankan.
		s.logger.Debug("search fetch dropped", zap.String("term", term), zap.Error(err))
		return
	}

	s.mu.Lock()
	s.latest = &state
	s.mu.Unlock()
}
