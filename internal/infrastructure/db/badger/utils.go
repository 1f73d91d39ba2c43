package badgerdb

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/timshannon/badgerhold/v4"
)

const valueLogGCInterval = 30 * time.Minute

// createDB opens the store and, unless in memory, starts the periodic value
// log GC. The returned func stops the GC and must be called before closing.
func createDB(
	dbDir string, logger badger.Logger,
) (*badgerhold.Store, func(), error) {
	isInMemory := len(dbDir) <= 0

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = logger

	if isInMemory {
		opts.InMemory = true
	} else {
		opts.Compression = options.ZSTD
	}

	db, err := badgerhold.Open(badgerhold.Options{
		Encoder:          badgerhold.DefaultEncode,
		Decoder:          badgerhold.DefaultDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
	if err != nil {
		return nil, nil, err
	}

	if isInMemory {
		return db, func() {}, nil
	}
	return db, startValueLogGC(db, valueLogGCInterval, logger), nil
}

// startValueLogGC runs the value log GC every interval until the returned
// func is called. The func waits for the running GC to return.
func startValueLogGC(
	db *badgerhold.Store, interval time.Duration, logger badger.Logger,
) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				err := db.Badger().RunValueLogGC(0.5)
				if err != nil && !errors.Is(err, badger.ErrNoRewrite) && logger != nil {
					logger.Errorf("%s", err)
				}
			}
		}
	}()

	once := &sync.Once{}
	return func() {
		once.Do(func() {
			close(done)
			wg.Wait()
		})
	}
}

func txFromContext(ctx context.Context) *badger.Txn {
	if ctx.Value("tx") == nil {
		return nil
	}
	tx, _ := ctx.Value("tx").(*badger.Txn)
	return tx
}

// get returns false without error if key is not found.
func get(
	ctx context.Context, store *badgerhold.Store, key, result interface{},
) (bool, error) {
	var err error
	if tx := txFromContext(ctx); tx != nil {
		err = store.TxGet(tx, key, result)
	} else {
		err = store.Get(key, result)
	}
	if err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func upsert(
	ctx context.Context, store *badgerhold.Store, key, data interface{},
) error {
	if tx := txFromContext(ctx); tx != nil {
		return store.TxUpsert(tx, key, data)
	}
	return store.Upsert(key, data)
}

func insert(
	ctx context.Context, store *badgerhold.Store, key, data interface{},
) error {
	if tx := txFromContext(ctx); tx != nil {
		return store.TxInsert(tx, key, data)
	}
	return store.Insert(key, data)
}

func remove(
	ctx context.Context, store *badgerhold.Store, key, dataType interface{},
) error {
	var err error
	if tx := txFromContext(ctx); tx != nil {
		err = store.TxDelete(tx, key, dataType)
	} else {
		err = store.Delete(key, dataType)
	}
	if errors.Is(err, badgerhold.ErrNotFound) {
		return nil
	}
	return err
}

func find(
	ctx context.Context, store *badgerhold.Store,
	result interface{}, query *badgerhold.Query,
) error {
	if tx := txFromContext(ctx); tx != nil {
		return store.TxFind(tx, result, query)
	}
	return store.Find(result, query)
}
