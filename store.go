package ringq

import (
	"log/slog"
	"math"
	"strings"

	"deedles.dev/ringq/internal/list"
)

type slotState uint8

const (
	slotFree slotState = iota
	slotSentinel
	slotLinked
	slotDetached
)

func (s slotState) String() string {
	switch s {
	case slotFree:
		return "free"
	case slotSentinel:
		return "sentinel"
	case slotLinked:
		return "linked"
	case slotDetached:
		return "detached"
	default:
		return "unknown"
	}
}

// slot is a single node of the arena. A sentinel slot anchors a queue
// and never holds a value.
type slot struct {
	next, prev uint32
	gen        uint32
	state      slotState
	val        string
}

// Store is an arena that owns every node of the queues created from
// it. Queues can only be merged with other queues from the same
// Store.
//
// A Store must not be copied after first use.
type Store struct {
	_ noCopy

	slots []slot
	free  list.Single[uint32]

	live     int
	bytes    int
	capacity int
	maxBytes int
	alloc    func(kind AllocKind, size int) bool
	log      *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithCapacity limits the number of nodes, sentinels included, that
// can be live in the store at once. A limit of zero or less means
// unlimited.
func WithCapacity(n int) Option {
	return func(s *Store) { s.capacity = n }
}

// WithMaxBytes limits the total number of value bytes held by the
// store. A limit of zero or less means unlimited.
func WithMaxBytes(n int) Option {
	return func(s *Store) { s.maxBytes = n }
}

// AllocKind identifies what an allocation is for.
type AllocKind int

const (
	// AllocNode is the allocation of a node, either a queue's sentinel
	// or an element.
	AllocNode AllocKind = iota

	// AllocValue is the allocation of the copy of an element's value.
	AllocValue
)

func (k AllocKind) String() string {
	switch k {
	case AllocNode:
		return "node"
	case AllocValue:
		return "value"
	default:
		return "unknown"
	}
}

// WithAllocHook installs a function that is consulted before every
// allocation with its kind and the number of bytes being requested.
// Returning false makes the allocation fail. Node allocations are
// reported with a size of zero.
func WithAllocHook(f func(kind AllocKind, size int) bool) Option {
	return func(s *Store) { s.alloc = f }
}

// WithLogger sets the logger used by the store. The default is
// slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// NewStore returns a new, empty Store.
func NewStore(opts ...Option) *Store {
	s := Store{log: slog.Default()}
	for _, opt := range opts {
		opt(&s)
	}
	return &s
}

// Live returns the number of allocated nodes, sentinels included.
func (s *Store) Live() int {
	return s.live
}

// Bytes returns the number of value bytes currently held.
func (s *Store) Bytes() int {
	return s.bytes
}

func (s *Store) allowed(kind AllocKind, size int) bool {
	return s.alloc == nil || s.alloc(kind, size)
}

// allocSlot claims a slot in the given state, reusing freed slots
// first.
func (s *Store) allocSlot(state slotState) (uint32, bool) {
	if s.capacity > 0 && s.live >= s.capacity {
		return 0, false
	}
	if !s.allowed(AllocNode, 0) {
		return 0, false
	}

	i, ok := s.free.Dequeue()
	if !ok {
		if uint64(len(s.slots)) >= math.MaxUint32 {
			return 0, false
		}
		s.slots = append(s.slots, slot{})
		i = uint32(len(s.slots) - 1)
	}

	sl := &s.slots[i]
	sl.state = state
	sl.next = i
	sl.prev = i
	s.live++
	return i, true
}

// setValue copies v into slot i. The slot is left without a value if
// the copy cannot be allocated.
func (s *Store) setValue(i uint32, v string) bool {
	if s.maxBytes > 0 && s.bytes+len(v) > s.maxBytes {
		return false
	}
	if !s.allowed(AllocValue, len(v)) {
		return false
	}

	s.slots[i].val = strings.Clone(v)
	s.bytes += len(v)
	return true
}

// freeSlot releases slot i, invalidating every handle that refers to
// it.
func (s *Store) freeSlot(i uint32) {
	sl := &s.slots[i]
	s.bytes -= len(sl.val)
	*sl = slot{gen: sl.gen + 1, next: i, prev: i}
	s.live--
	s.free.Enqueue(i)
}

// newElement allocates a detached element holding a copy of v.
func (s *Store) newElement(v string) (uint32, bool) {
	i, ok := s.allocSlot(slotDetached)
	if !ok {
		s.log.Debug("element allocation failed", "live", s.live)
		return 0, false
	}
	if !s.setValue(i, v) {
		s.log.Debug("value allocation failed", "size", len(v), "bytes", s.bytes)
		s.freeSlot(i)
		return 0, false
	}
	return i, true
}

func (s *Store) valid(i, gen uint32, state slotState) bool {
	return int(i) < len(s.slots) && s.slots[i].gen == gen && s.slots[i].state == state
}

func (s *Store) value(i uint32) string {
	return s.slots[i].val
}

func (s *Store) next(i uint32) uint32 {
	return s.slots[i].next
}

func (s *Store) prev(i uint32) uint32 {
	return s.slots[i].prev
}
