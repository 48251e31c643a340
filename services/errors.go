package services

import "errors"

var (
	// ErrMenuNotFound: snapshot kosong atau slug tidak dikenal.
	ErrMenuNotFound = errors.New("menu not found")
	// ErrStaleResponse is returned to a load that was superseded by a newer
	// request for the same key; its result must be discarded.
	ErrStaleResponse   = errors.New("stale response discarded")
	ErrInvalidSnapshot = errors.New("invalid menu snapshot")
	ErrInvalidColor    = errors.New("invalid color, expected #rgb or #rrggbb")
	// ErrForbidden: menu milik user lain.
	ErrForbidden = errors.New("menu belongs to another user")
)
