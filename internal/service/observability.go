package service

import "log"

// SyncObserver receives notice of degraded persistence: the local write
// succeeded but the remote mirror did not. Degradation is never an error for
// the caller; work continues on the local cache.
type SyncObserver interface {
	PersistenceDegraded(op string, err error)
}

// LogSyncObserver writes degradation warnings to the standard logger.
type LogSyncObserver struct{}

func (LogSyncObserver) PersistenceDegraded(op string, err error) {
	log.Printf("sync_degraded op=%s err=%v", op, err)
}

// NoopSyncObserver discards degradation events.
type NoopSyncObserver struct{}

func (NoopSyncObserver) PersistenceDegraded(string, error) {}
