// Package pagestore implements the page store abstraction behind overflow
// file storage (§3.7, §4.7, §6.2): attach/allocate/free/dirty over a
// bounded in-memory cache, backed by a free-page bitmap per physical file.
package pagestore

import (
	"errors"

	"github.com/DoqueDB/doquedb-sub038/overflow"
)

var (
	ErrFileFull   = errors.New("pagestore: file is full")
	ErrNotAttached = errors.New("pagestore: page is not attached")
	ErrClosed     = errors.New("pagestore: store is closed")
)

// Loader fetches a page's raw bytes on a cache miss.
type Loader func(id overflow.PageID) ([]byte, error)

// Handle is a live reference to a resident page's buffer.
type Handle struct {
	ID    overflow.PageID
	Bytes []byte

	dirty bool
}

// Dirty marks the handle's page as modified.
func (h *Handle) Dirty() { h.dirty = true }

// IsDirty reports whether the handle was marked dirty since attach.
func (h *Handle) IsDirty() bool { return h.dirty }

// PageStore is the storage-engine-facing contract (§6.2): attach a page
// into memory (loading it if necessary), allocate a fresh page, free a
// page back to the pool, and mark a resident page dirty.
type PageStore interface {
	Attach(id overflow.PageID) (*Handle, error)
	Allocate() (*Handle, error)
	Free(id overflow.PageID) error
	Dirty(h *Handle)
	Report() Report
	Close() error
}
