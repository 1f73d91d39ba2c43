package interceptors

import (
	"encoding/hex"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const replayCacheSize = 100000

// replayCache remembers the signed calls seen within the timestamp window.
// Entries are keyed by caller and signed digest, so a malleated signature of
// the same call is still a repeat.
type replayCache struct {
	lock  *sync.Mutex
	calls *expirable.LRU[string, struct{}]
}

// newReplayCache keeps every call for twice maxSkew, the longest span over
// which the same timestamp can be accepted.
func newReplayCache(maxSkew time.Duration) *replayCache {
	return &replayCache{
		lock:  &sync.Mutex{},
		calls: expirable.NewLRU[string, struct{}](replayCacheSize, nil, 2*maxSkew),
	}
}

// seen records the call and tells whether it was already recorded.
func (c *replayCache) seen(caller string, digest []byte) bool {
	key := caller + ":" + hex.EncodeToString(digest)

	c.lock.Lock()
	defer c.lock.Unlock()

	if c.calls.Contains(key) {
		return true
	}
	c.calls.Add(key, struct{}{})
	return false
}
