package ports

import "github.com/benbjohnson/clock"

type Clock = clock.Clock
