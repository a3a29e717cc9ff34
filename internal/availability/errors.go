package availability

import "errors"

var (
	// ErrInvalidDuration возвращается при неположительной длительности слота
	ErrInvalidDuration = errors.New("availability: duration must be positive")
)
