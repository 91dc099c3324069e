package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"

	"go.uber.org/zap"

	"jsonvault/internal/crypto"
	"jsonvault/internal/domain"
	"jsonvault/internal/util/memzero"
)

// Store is a JSON document kept in memory and mirrored to one file.
//
// Every method runs to completion before returning; a Store is not safe for
// concurrent use and two processes must not open the same file.
type Store struct {
	filename  string
	opts      options
	persister domain.Persister
	cipher    domain.Cipher
	ownCipher bool
	log       *zap.Logger

	data   map[string]any
	dirty  bool
	closed bool
}

// Open loads (or creates) the document at filename.
//
// Unless WithRecovery is given, a file that cannot be read, decrypted or
// decoded makes Open fail with an error wrapping ErrIO, ErrDecryption or
// ErrDecode.
func Open(filename string, opts ...Option) (*Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if filename == "" && o.persister == nil {
		return nil, fmt.Errorf("%w: filename required", domain.ErrIO)
	}
	own := false
	if o.encrypt && o.cipher == nil {
		o.cipher = crypto.NewCodec(o.key, o.codecOpts...)
		own = true
	}
	if o.persister == nil {
		o.persister = NewFilePersister(filename, o.mode)
	}

	s := &Store{
		filename:  filename,
		opts:      o,
		persister: o.persister,
		cipher:    o.cipher,
		ownCipher: own,
		log:       o.logger.With(zap.String("file", filename)),
		data:      make(map[string]any),
	}
	if err := s.Load(); err != nil {
		_ = s.closeCipher()
		return nil, err
	}
	return s, nil
}

// Filename returns the backing file path.
func (s *Store) Filename() string { return s.filename }

// Encrypted reports whether the document is encrypted at rest.
func (s *Store) Encrypted() bool { return s.cipher != nil }

// Load replaces the in-memory document with the one on disk, creating the
// file first when it does not exist.
func (s *Store) Load() error {
	if s.closed {
		return domain.ErrClosed
	}
	created, err := s.persister.Ensure(func() ([]byte, error) {
		return s.encode(make(map[string]any))
	})
	if err != nil {
		return s.loadFailed(err)
	}
	if created {
		s.log.Debug("created document file", zap.Bool("encrypted", s.Encrypted()))
	}

	raw, err := s.persister.Read()
	if err != nil {
		return s.loadFailed(err)
	}
	doc, err := s.decode(raw)
	if err != nil {
		return s.loadFailed(err)
	}
	s.data = doc
	s.dirty = false
	s.log.Debug("document loaded", zap.Int("bytes", len(raw)), zap.Int("keys", len(doc)))
	return nil
}

func (s *Store) loadFailed(err error) error {
	s.data = make(map[string]any)
	s.dirty = false
	if s.opts.recover {
		s.log.Warn("load failed, continuing with an empty document", zap.Error(err))
		return nil
	}
	return err
}

// Save writes the in-memory document to disk. A failed save keeps the
// in-memory state; the file then holds the last successful save.
func (s *Store) Save() error {
	if s.closed {
		return domain.ErrClosed
	}
	b, err := s.encode(s.data)
	if err == nil {
		err = s.persister.Write(b)
	}
	if err != nil {
		if s.opts.recover {
			s.log.Error("save failed, file may be stale", zap.Error(err))
			return nil
		}
		return err
	}
	s.dirty = false
	s.log.Debug("document saved", zap.Int("bytes", len(b)))
	return nil
}

// Flush saves pending mutations, if any.
func (s *Store) Flush() error {
	if s.closed {
		return domain.ErrClosed
	}
	if !s.dirty {
		return nil
	}
	return s.Save()
}

// Close flushes pending mutations and wipes key material held by the store. Reads on a closed
// store return absent; everything else returns ErrClosed.
func (s *Store) Close() error {
	if s.closed {
		return nil
	}
	err := s.Flush()
	err = errors.Join(err, s.closeCipher())
	s.closed = true
	s.data = nil
	return err
}

// closeCipher wipes a codec built by Open. A cipher from WithCipher belongs
// to the caller and is left open.
func (s *Store) closeCipher() error {
	if !s.ownCipher {
		return nil
	}
	if c, ok := s.cipher.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Get returns a copy of the value at p. An empty path returns the whole document.
func (s *Store) Get(p domain.Path) (any, bool) {
	if s.closed {
		return nil, false
	}
	v, ok := navigateForRead(s.data, p)
	if !ok {
		return nil, false
	}
	return cloneValue(v), true
}

// GetPath is an alias of Get.
func (s *Store) GetPath(p domain.Path) (any, bool) { return s.Get(p) }

// Set writes v at p, creating intermediate mappings as the vivify policy
// allows. It reports false without touching the disk when p already holds an
// equal value. When persisting fails the new value stays in memory and the
// error is returned with true.
func (s *Store) Set(v any, p domain.Path) (bool, error) {
	if s.closed {
		return false, domain.ErrClosed
	}
	if len(p) == 0 {
		return false, domain.ErrEmptyPath
	}
	val, err := canonicalize(v)
	if err != nil {
		return false, err
	}
	return s.set(val, p)
}

func (s *Store) set(val any, p domain.Path) (bool, error) {
	parent, key, err := navigateForWrite(s.data, p, s.opts.vivify)
	if err != nil {
		return false, err
	}
	if cur, ok := parent[key]; ok && reflect.DeepEqual(cur, val) {
		return false, nil
	}
	parent[key] = val
	return true, s.commit()
}

// Delete removes key from the mapping at parent (the root when parent is
// empty) and reports whether key was present. When parent does not resolve to
// a mapping nothing happens; otherwise the document is persisted even if key
// was already missing.
func (s *Store) Delete(key string, parent domain.Path) (bool, error) {
	if s.closed {
		return false, domain.ErrClosed
	}
	v, ok := navigateForRead(s.data, parent)
	if !ok {
		return false, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return false, nil
	}
	_, existed := m[key]
	delete(m, key)
	return existed, s.commit()
}

// Append adds v to the array at p. A missing or non-array value is replaced
// by a new array first.
func (s *Store) Append(v any, p domain.Path) error {
	if s.closed {
		return domain.ErrClosed
	}
	if len(p) == 0 {
		return domain.ErrEmptyPath
	}
	val, err := canonicalize(v)
	if err != nil {
		return err
	}
	cur, _ := navigateForRead(s.data, p)
	list, _ := cur.([]any)

	next := make([]any, len(list), len(list)+1)
	copy(next, list)
	next = append(next, val)
	_, err = s.set(next, p)
	return err
}

// Index returns a copy of element i of the array at p, or false when p is not
// an array or i is out of range.
func (s *Store) Index(i int, p domain.Path) (any, bool) {
	if s.closed {
		return nil, false
	}
	v, ok := navigateForRead(s.data, p)
	if !ok {
		return nil, false
	}
	list, ok := v.([]any)
	if !ok || i < 0 || i >= len(list) {
		return nil, false
	}
	return cloneValue(list[i]), true
}

func (s *Store) commit() error {
	s.dirty = true
	if s.opts.sync == SyncManual {
		return nil
	}
	return s.Save()
}

func (s *Store) encode(doc map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if !s.opts.minify {
		enc.SetIndent("", "    ")
	}
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	b := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
	if s.cipher == nil {
		return b, nil
	}

	defer memzero.Zero(b)
	ct, err := s.cipher.Encrypt(b)
	if err != nil {
		return nil, fmt.Errorf("encrypt document: %w", err)
	}
	return ct, nil
}

func (s *Store) decode(raw []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return make(map[string]any), nil
	}
	plain := raw
	if s.cipher != nil {
		pt, err := s.cipher.Decrypt(raw)
		if err != nil {
			if !errors.Is(err, domain.ErrDecryption) {
				err = fmt.Errorf("%w: %w", domain.ErrDecryption, err)
			}
			return nil, err
		}
		defer memzero.Zero(pt)
		plain = pt
	}

	var doc map[string]any
	if err := json.Unmarshal(plain, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDecode, err)
	}
	if doc == nil {
		doc = make(map[string]any)
	}
	return doc, nil
}
