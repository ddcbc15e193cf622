package tracker

import (
	"fmt"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/hobby-tracker/internal/catalog"
	"github.com/ytget/hobby-tracker/internal/model"
)

// HobbyIDPrefix prefixes every generated hobby id
const HobbyIDPrefix = "hobby-"

// maxIDAttempts bounds regeneration when a generator returns an id that was
// already issued.
const maxIDAttempts = 8

var _ HobbyStore = (*Service)(nil)

// Service is the in-memory HobbyStore.
type Service struct {
	hobbies      []model.Hobby
	mu           sync.RWMutex
	defaultEmoji string

	// ids ever issued, including removed records
	issued   map[string]struct{}
	idSeq    uint64
	generate func() string

	listeners   map[SubscriptionID]Listener
	nextSubID   SubscriptionID
	dispatching bool
}

// Option configures a Service
type Option func(*Service)

// WithIDGenerator replaces the UUID-based id generator.
func WithIDGenerator(generate func() string) Option {
	return func(s *Service) {
		if generate != nil {
			s.generate = generate
		}
	}
}

// NewService creates a store pre-populated with seed. Seed entries are not
// duplicate-checked; entries without an emoji get defaultEmoji.
func NewService(seed []model.Seed, defaultEmoji string, opts ...Option) *Service {
	s := &Service{
		hobbies:      make([]model.Hobby, 0, len(seed)),
		defaultEmoji: defaultEmoji,
		issued:       make(map[string]struct{}, len(seed)),
		generate:     generateHobbyID,
		listeners:    make(map[SubscriptionID]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, entry := range seed {
		s.hobbies = append(s.hobbies, model.Hobby{
			ID:    s.nextID(),
			Name:  entry.Name,
			Emoji: s.emojiOrDefault(entry.Emoji),
		})
	}

	return s
}

// NewServiceFromCatalog creates a store seeded from c.
func NewServiceFromCatalog(c *catalog.Catalog, opts ...Option) *Service {
	return NewService(c.SeedCopy(), c.DefaultEmoji, opts...)
}

// AddHobby appends a new hobby unless one with the same name (compared
// case-insensitively) already exists. An empty emoji is replaced by the
// default glyph. The name length gate belongs to the caller.
func (s *Service) AddHobby(name, emoji string) (model.Hobby, error) {
	s.mu.Lock()
	if s.dispatching {
		s.mu.Unlock()
		return model.Hobby{}, ErrReentrantMutation
	}

	key := model.FoldName(name)
	for _, existing := range s.hobbies {
		if model.FoldName(existing.Name) == key {
			s.mu.Unlock()
			return model.Hobby{}, &DuplicateNameError{Name: name, Existing: existing.Name}
		}
	}

	hobby := model.Hobby{
		ID:    s.nextID(),
		Name:  name,
		Emoji: s.emojiOrDefault(emoji),
	}
	s.hobbies = append(s.hobbies, hobby)
	snapshot, listeners := s.beginDispatch()
	s.mu.Unlock()

	log.Printf("Hobby added: ID=%s, Name=%s, Emoji=%s", hobby.ID, hobby.Name, hobby.Emoji)

	s.dispatch(snapshot, listeners)
	return hobby, nil
}

// RemoveHobby removes and returns the hobby at index. Later records shift
// down by one.
func (s *Service) RemoveHobby(index int) (model.Hobby, error) {
	s.mu.Lock()
	if s.dispatching {
		s.mu.Unlock()
		return model.Hobby{}, ErrReentrantMutation
	}

	if index < 0 || index >= len(s.hobbies) {
		err := &IndexError{Index: index, Len: len(s.hobbies)}
		s.mu.Unlock()
		return model.Hobby{}, err
	}

	removed := s.hobbies[index]
	s.hobbies = slices.Delete(s.hobbies, index, index+1)
	snapshot, listeners := s.beginDispatch()
	s.mu.Unlock()

	log.Printf("Hobby removed: ID=%s, Name=%s", removed.ID, removed.Name)

	s.dispatch(snapshot, listeners)
	return removed, nil
}

// RemoveHobbies removes the hobbies at the given positions, all measured
// against the collection before any removal. If any position is out of
// range nothing is removed. Repeated positions count once. The removed
// records are returned in their original order; a single notification is
// sent. An empty input is a no-op.
func (s *Service) RemoveHobbies(indexes []int) ([]model.Hobby, error) {
	s.mu.Lock()
	if s.dispatching {
		s.mu.Unlock()
		return nil, ErrReentrantMutation
	}

	for _, index := range indexes {
		if index < 0 || index >= len(s.hobbies) {
			err := &IndexError{Index: index, Len: len(s.hobbies)}
			s.mu.Unlock()
			return nil, err
		}
	}

	if len(indexes) == 0 {
		s.mu.Unlock()
		return []model.Hobby{}, nil
	}

	positions := slices.Clone(indexes)
	slices.Sort(positions)
	positions = slices.Compact(positions)

	removed := make([]model.Hobby, 0, len(positions))
	for _, index := range positions {
		removed = append(removed, s.hobbies[index])
	}

	// Highest first so earlier positions stay valid.
	for i := len(positions) - 1; i >= 0; i-- {
		index := positions[i]
		s.hobbies = slices.Delete(s.hobbies, index, index+1)
	}
	snapshot, listeners := s.beginDispatch()
	s.mu.Unlock()

	log.Printf("Hobbies removed: count=%d, remaining=%d", len(removed), len(snapshot))

	s.dispatch(snapshot, listeners)
	return removed, nil
}

// Hobbies returns a snapshot of the collection in display order.
func (s *Service) Hobbies() []model.Hobby {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Hobby returns the hobby at index.
func (s *Service) Hobby(index int) (model.Hobby, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.hobbies) {
		return model.Hobby{}, false
	}
	return s.hobbies[index], true
}

// Len returns the number of tracked hobbies.
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.hobbies)
}

// Contains reports whether a hobby with the given name (compared
// case-insensitively) is tracked.
func (s *Service) Contains(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, existing := range s.hobbies {
		if model.SameName(existing.Name, name) {
			return true
		}
	}
	return false
}

// DefaultEmoji returns the glyph used when AddHobby gets an empty emoji.
func (s *Service) DefaultEmoji() string {
	return s.defaultEmoji
}

// Subscribe registers listener for change notifications. A listener added
// during a notification is first called on the next mutation.
func (s *Service) Subscribe(listener Listener) SubscriptionID {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSubID++
	id := s.nextSubID
	s.listeners[id] = listener
	return id
}

// Unsubscribe removes a listener. Unknown ids are ignored.
func (s *Service) Unsubscribe(id SubscriptionID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.listeners, id)
}

// beginDispatch marks a notification in progress and captures the state to
// deliver. Must be called with mu held.
func (s *Service) beginDispatch() ([]model.Hobby, []Listener) {
	s.dispatching = true

	ids := make([]SubscriptionID, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	listeners := make([]Listener, 0, len(ids))
	for _, id := range ids {
		listeners = append(listeners, s.listeners[id])
	}
	return s.snapshotLocked(), listeners
}

// dispatch calls every listener with its own copy of snapshot, without
// holding mu, then clears the in-progress mark.
func (s *Service) dispatch(snapshot []model.Hobby, listeners []Listener) {
	defer func() {
		s.mu.Lock()
		s.dispatching = false
		s.mu.Unlock()
	}()

	for _, listener := range listeners {
		if listener == nil {
			continue
		}
		listener(slices.Clone(snapshot))
	}
}

func (s *Service) snapshotLocked() []model.Hobby {
	out := make([]model.Hobby, len(s.hobbies))
	copy(out, s.hobbies)
	return out
}

func (s *Service) emojiOrDefault(emoji string) string {
	if emoji == "" {
		return s.defaultEmoji
	}
	return emoji
}

// nextID returns an id never issued by this store before. Must be called
// with mu held (or before the store is shared).
func (s *Service) nextID() string {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := s.generate()
		if _, taken := s.issued[id]; !taken && id != "" {
			s.issued[id] = struct{}{}
			return id
		}
	}

	// Generator keeps colliding; fall back to a store-local sequence.
	for {
		s.idSeq++
		id := fmt.Sprintf("%sseq-%d", HobbyIDPrefix, s.idSeq)
		if _, taken := s.issued[id]; !taken {
			s.issued[id] = struct{}{}
			return id
		}
	}
}

// generateHobbyID generates a unique hobby ID using UUID v7
func generateHobbyID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(HobbyIDPrefix+"%d", time.Now().UnixNano())
	}
	return HobbyIDPrefix + id.String()
}
