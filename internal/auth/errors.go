package auth

import "errors"

var (
	// ErrInvalidCredentials is the single undifferentiated rejection for wrong
	// password, unknown username, and bad/expired/malformed tokens. Causes are
	// logged server-side only; callers must not be able to tell them apart.
	ErrInvalidCredentials = errors.New("could not validate credentials")

	// ErrInactiveUser reports an authenticated but disabled account. This is
	// the one rejection that stays distinguishable outward.
	ErrInactiveUser = errors.New("inactive user")
)
