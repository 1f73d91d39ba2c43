package badgerdb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValueLogGCStops(t *testing.T) {
	store, stopGC, err := createDB(t.TempDir(), nil)
	require.NoError(t, err)

	stop := startValueLogGC(store, 10*time.Millisecond, nil)
	time.Sleep(50 * time.Millisecond)

	stopped := make(chan struct{})
	go func() {
		stop()
		stopGC()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("value log gc did not stop")
	}

	// Stopping twice is a no-op.
	stop()
	stopGC()
	require.NoError(t, store.Close())
}

func TestCloseStopsValueLogGC(t *testing.T) {
	repoManager, err := NewRepoManager(t.TempDir(), nil)
	require.NoError(t, err)

	closed := make(chan struct{})
	go func() {
		repoManager.Close()
		close(closed)
	}()

	select {
	case <-closed:
	case <-time.After(5 * time.Second):
		t.Fatal("close did not return")
	}
}
