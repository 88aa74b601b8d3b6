package client

import (
	"sync"
)

// Credentials dibawa eksplisit ke setiap call yang butuh auth;
// tidak ada lookup global ambient di dalam HTTP layer.
type Credentials struct {
	AccessToken string
	UserID      int64
}

func (c Credentials) Valid() bool {
	return c.AccessToken != ""
}

// SessionHolder adalah satu-satunya state session proses ini.
// Ditulis hanya oleh login/logout; semua pembaca lain read-only.
type SessionHolder struct {
	mu    sync.RWMutex
	creds Credentials
}

func NewSessionHolder() *SessionHolder {
	return &SessionHolder{}
}

// Set dipanggil oleh login flow saja.
func (h *SessionHolder) Set(creds Credentials) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.creds = creds
}

// Clear dipanggil oleh logout flow saja.
func (h *SessionHolder) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.creds = Credentials{}
}

func (h *SessionHolder) Current() Credentials {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.creds
}
