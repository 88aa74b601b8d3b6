package client

import (
	"errors"
)

// ErrUnauthorized berarti tidak ada session token; request tidak pernah
// dikirim ke backend.
var ErrUnauthorized = errors.New("unauthorized")

// ErrStaleResponse berarti response ini milik request list yang sudah
// tersusul request yang lebih baru; pemanggil harus membuangnya, bukan
// me-render-nya.
var ErrStaleResponse = errors.New("stale list response")

// FetchFailedError membawa pesan dari envelope backend (atau fallback
// generik) untuk ditampilkan sebagai inline error yang bisa di-dismiss.
// Error transport mentah tidak pernah sampai ke view layer: Err hanya
// untuk logging.
type FetchFailedError struct {
	Message string
	Err     error
}

func (e *FetchFailedError) Error() string {
	return e.Message
}

func (e *FetchFailedError) Unwrap() error {
	return e.Err
}

func fetchFailed(message, fallback string) error {
	if message == "" {
		message = fallback
	}
	return &FetchFailedError{Message: message}
}

// IsFetchFailed mengecek apakah err adalah kegagalan backend/transport
// yang sudah dinormalisasi.
func IsFetchFailed(err error) (string, bool) {
	var ff *FetchFailedError
	if errors.As(err, &ff) {
		return ff.Message, true
	}
	return "", false
}

func wrapTransport(err error, fallback string) error {
	return &FetchFailedError{Message: fallback, Err: err}
}
