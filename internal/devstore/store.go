// Package devstore implements an in-memory object store with per-object
// revision counters and a per-account change cursor. It backs the
// development server that stands in for a real cloud file store.
package devstore

import (
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// FileRecord describes one stored object.
type FileRecord struct {
	ID      string
	Name    string
	Version int64
}

type object struct {
	id       string
	name     string
	version  int64
	revision int64
	data     []byte
}

// folder is one account's private object namespace.
type folder struct {
	objects  map[string]*object // keyed by name
	byID     map[string]*object
	revision int64
}

// ObjectStore holds every account's folder. All methods are safe for
// concurrent use. Contents live only as long as the process.
type ObjectStore struct {
	mu       sync.Mutex
	accounts map[string]*folder
}

func New() *ObjectStore {
	return &ObjectStore{accounts: make(map[string]*folder)}
}

// Write stores data under name in the account's folder, overwriting any
// previous revision. The object's version and the account's change cursor
// both advance on every write.
func (s *ObjectStore) Write(account, name string, data []byte) FileRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.folder(account)
	obj, ok := f.objects[name]
	if !ok {
		obj = &object{id: uuid.NewString(), name: name}
		f.objects[name] = obj
		f.byID[obj.id] = obj
	}

	f.revision++
	obj.version++
	obj.revision = f.revision
	obj.data = append([]byte(nil), data...)

	return record(obj)
}

// Read returns the object with the given id.
func (s *ObjectStore) Read(account, id string) ([]byte, FileRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.folder(account)
	obj, ok := f.byID[id]
	if !ok {
		return nil, FileRecord{}, ErrObjectNotFound
	}
	return append([]byte(nil), obj.data...), record(obj), nil
}

// List returns the objects under the scope prefix changed since the given
// cursor, plus the cursor to use for the next incremental listing. An empty
// or unparseable cursor yields a full listing.
func (s *ObjectStore) List(account, scope, since string) ([]FileRecord, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.folder(account)

	var sinceRev int64
	if since != "" {
		if parsed, err := strconv.ParseInt(since, 10, 64); err == nil {
			sinceRev = parsed
		}
	}

	prefix := scope + "/"
	var files []FileRecord
	for _, obj := range f.objects {
		if scope != "" && !strings.HasPrefix(obj.name, prefix) {
			continue
		}
		if obj.revision <= sinceRev {
			continue
		}
		files = append(files, record(obj))
	}

	return files, strconv.FormatInt(f.revision, 10)
}

func (s *ObjectStore) folder(account string) *folder {
	f, ok := s.accounts[account]
	if !ok {
		f = &folder{objects: make(map[string]*object), byID: make(map[string]*object)}
		s.accounts[account] = f
	}
	return f
}

func record(obj *object) FileRecord {
	return FileRecord{ID: obj.id, Name: obj.name, Version: obj.version}
}
