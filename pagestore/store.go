package pagestore

import (
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"github.com/zeebo/xxh3"

	"github.com/DoqueDB/doquedb-sub038/errutil"
	"github.com/DoqueDB/doquedb-sub038/overflow"
)

// Config configures a Store.
type Config struct {
	PageSize    uint32
	MaxFileSize uint64
	MaxPageID   uint32
	Identifier  uint8
	Budget      int // resident page budget (cache capacity)
	Load        Loader
}

// Store is the default PageStore: an LRU-bounded cache of resident pages
// over per-file free-page bitmaps. Safe for concurrent use (§5): multiple
// query goroutines may share one Store even though each owns its own
// single-threaded iterator tree.
type Store struct {
	mu sync.Mutex

	header      *overflow.Header
	load        Loader
	cache       *lru.Cache

	files       map[uint32]*freeBitmap
	currentFile uint32
	haveFile    bool

	hits    uint64
	misses  uint64
	flushes uint64
	closed  bool
}

// New builds a Store over a fresh overflow header (§4.4).
func New(cfg Config) (*Store, error) {
	if cfg.Budget <= 0 {
		cfg.Budget = 256
	}
	s := &Store{
		header: overflow.NewHeader(cfg.PageSize, cfg.MaxFileSize, cfg.MaxPageID, cfg.Identifier),
		load:   cfg.Load,
		files:  make(map[uint32]*freeBitmap),
	}
	cache, err := lru.NewWithEvict(cfg.Budget, s.onEvict)
	if err != nil {
		return nil, err
	}
	s.cache = cache
	return s, nil
}

// cacheKey folds a PageID through xxh3 so the LRU's internal bucketing
// doesn't correlate with the page id's bit layout (overflow ids cluster
// densely within one file, which would otherwise skew hashing).
func cacheKey(id overflow.PageID) uint64 {
	var buf [4]byte
	buf[0] = byte(id)
	buf[1] = byte(id >> 8)
	buf[2] = byte(id >> 16)
	buf[3] = byte(id >> 24)
	return xxh3.Hash(buf[:])
}

func (s *Store) onEvict(key, value interface{}) {
	h := value.(*Handle)
	errutil.BugOn(h.IsDirty(), "pagestore: evicting dirty page %d without flush", h.ID)
}

// Attach loads a page into memory, reusing a resident copy when present.
func (s *Store) Attach(id overflow.PageID) (*Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}
	key := cacheKey(id)
	if v, ok := s.cache.Get(key); ok {
		s.hits++
		return v.(*Handle), nil
	}
	s.misses++
	if s.load == nil {
		return nil, ErrNotAttached
	}
	buf, err := s.load(id)
	if err != nil {
		return nil, err
	}
	h := &Handle{ID: id, Bytes: buf}
	s.cache.Add(key, h)
	return h, nil
}

// openNextFile registers the next physical file and makes it the active
// allocation target.
func (s *Store) openNextFile() error {
	idx, ok := s.header.AllocateFile(s.header.UsedFileNum)
	if !ok {
		return ErrFileFull
	}
	s.files[idx] = newFreeBitmap()
	s.currentFile = idx
	s.haveFile = true
	return nil
}

// Allocate reserves a fresh page, advancing to the next physical file
// when the current one is exhausted, per §4.4/§4.7.
func (s *Store) Allocate() (*Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}

	if !s.haveFile {
		if err := s.openNextFile(); err != nil {
			return nil, err
		}
	}
	fb := s.files[s.currentFile]
	if fb.used >= s.header.MaxPageID {
		if err := s.openNextFile(); err != nil {
			return nil, err
		}
		fb = s.files[s.currentFile]
	}

	slot := fb.allocate()
	id := s.header.Layout.Make(s.currentFile, slot)
	h := &Handle{ID: id, Bytes: make([]byte, s.header.PageSize)}
	s.cache.Add(cacheKey(id), h)
	return h, nil
}

// Free releases a page back to its file's free bitmap.
func (s *Store) Free(id overflow.PageID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	fileIndex := s.header.Layout.FileIndex(id)
	slot := s.header.Layout.PhysicalPageID(id)
	fb := s.files[fileIndex]
	if fb == nil || !fb.isAllocated(slot) {
		return ErrNotAttached
	}
	fb.free(slot)
	s.cache.Remove(cacheKey(id))
	return nil
}

// Dirty marks a resident handle as modified; dirty pages are held by the
// cache until Flush, never evicted silently.
func (s *Store) Dirty(h *Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h.Dirty()
}

// Flush clears the dirty flag on every resident page, as if written back.
func (s *Store) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range s.cache.Keys() {
		if v, ok := s.cache.Peek(key); ok {
			v.(*Handle).dirty = false
		}
	}
	s.flushes++
}

// Close releases the store. Resident dirty pages must be flushed first.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.cache.Purge()
	return nil
}
