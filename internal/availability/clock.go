package availability

import "time"

// Clock abstracts time.Now so sweeps and indicators can be tested at a
// fixed instant.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
