package sched

import (
	"fmt"
	"sort"

	"dayplan/internal/daytime"
)

// defaultInstances is the family size produced by a periodic admission:
// the base instance plus six derived ones.
const defaultInstances = 7

// Store holds the event set and enforces its invariants: no two events
// outside a shared recurrence family overlap, one-shot names are unique,
// and the set never exceeds MaxEvents.
//
// The store does no locking of its own. The owning App serializes every
// call through the process-wide lock.
type Store struct {
	events []Event

	// nextRecurrence allocates family ids; 0 is reserved for "no family".
	nextRecurrence int
}

func NewStore() *Store {
	return &Store{nextRecurrence: 1}
}

// Len returns the current event count.
func (s *Store) Len() int { return len(s.events) }

// Add admits a new event. startText and endText are HH:MM command tokens.
//
// Check order: time parse, intrinsic validity, one-shot name uniqueness
// (one-shot admission only), overlap scan. The checks and the consequent
// append happen under one lock acquisition in the caller, so there is no
// window between detection and insertion.
func (s *Store) Add(name, startText, endText, description string, kind Kind) (Event, error) {
	start, err := daytime.Parse(startText)
	if err != nil {
		return Event{}, err
	}
	end, err := daytime.Parse(endText)
	if err != nil {
		return Event{}, err
	}

	ev := Event{
		Name:        name,
		Start:       start,
		End:         end,
		Description: description,
		Kind:        kind,
	}
	if err := ev.Validate(); err != nil {
		return Event{}, err
	}

	if kind == OneShot && s.hasOneShotNamed(name) {
		return Event{}, invalidName(name)
	}

	if s.conflicts(ev) {
		return Event{}, ErrConflict
	}

	if kind == OneShot {
		s.events = append(s.events, ev)
		return ev, nil
	}

	// The candidate already passed the overlap scan above, so the family
	// base goes in unchecked.
	s.expand(ev, defaultInstances, false)
	return ev, nil
}

// Remove deletes the first event named name. For a recurring event the whole
// recurrence family goes with it. The returned flag reports whether a family
// (rather than a single event) was removed.
func (s *Store) Remove(name string) (series bool, err error) {
	idx := -1
	for i, ev := range s.events {
		if ev.Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, &NotFoundError{Name: name}
	}

	if found := s.events[idx]; found.Recurring() {
		id := found.RecurrenceID
		kept := s.events[:0]
		for _, ev := range s.events {
			if ev.RecurrenceID != id {
				kept = append(kept, ev)
			}
		}
		s.events = kept
		return true, nil
	}

	s.events = append(s.events[:idx], s.events[idx+1:]...)
	return false, nil
}

// List returns a copy of the event set ordered by start minute. Events with
// equal starts keep their insertion order.
func (s *Store) List() []Event {
	out := make([]Event, len(s.events))
	copy(out, s.events)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Minutes() < out[j].Start.Minutes()
	})
	return out
}

// Clear empties the event set.
func (s *Store) Clear() {
	s.events = nil
}

// Extend re-runs expansion with count 1 for every recurring event currently
// in the store, stopping short of the event cap. Each re-seed opens a new
// recurrence family, so it is admitted only if it passes the overlap check
// like any other expansion-produced instance; a re-seed landing on its
// source family's slot is silently skipped. Used by the background updater;
// returns the number of events added.
func (s *Store) Extend() int {
	recurring := make([]Event, 0, len(s.events))
	for _, ev := range s.events {
		if ev.Kind != OneShot {
			recurring = append(recurring, ev)
		}
	}

	before := len(s.events)
	for _, base := range recurring {
		if len(s.events) >= MaxEvents {
			break
		}
		s.expand(base, 1, true)
	}
	return len(s.events) - before
}

// conflicts reports whether the candidate interval [s, e) strictly
// intersects any stored event outside the candidate's recurrence family.
// Shared endpoints do not overlap. Linear scan; the set is bounded by
// MaxEvents.
func (s *Store) conflicts(candidate Event) bool {
	cs := candidate.Start.Minutes()
	ce := candidate.End.Minutes()

	for _, existing := range s.events {
		if candidate.RecurrenceID != 0 && existing.RecurrenceID == candidate.RecurrenceID {
			continue
		}
		if cs < existing.End.Minutes() && ce > existing.Start.Minutes() {
			return true
		}
	}
	return false
}

func (s *Store) hasOneShotNamed(name string) bool {
	for _, ev := range s.events {
		if ev.Kind == OneShot && ev.Name == name {
			return true
		}
	}
	return false
}

// expand allocates a fresh recurrence family and appends count instances of
// base into it: the base itself, then derived instances named "<base> #k"
// for k = 2, 3, ....
//
// Each derived instance rotates the hour component by the kind's stride
// modulo 24, which lands every instance on the base's minute of day; the
// family members therefore coincide and rely on the same-family exemption in
// the overlap rule. Instances that conflict with an outside event are
// skipped without aborting the family. Every append is guarded by the event
// cap. checkBase applies the overlap check to the base instance as well;
// admission has already vetted its candidate, Extend has not.
func (s *Store) expand(base Event, count int, checkBase bool) {
	if base.Kind == OneShot || count <= 0 {
		return
	}

	id := s.nextRecurrence
	s.nextRecurrence++
	base.RecurrenceID = id

	if len(s.events) >= MaxEvents {
		return
	}
	if checkBase && s.conflicts(base) {
		return
	}
	s.events = append(s.events, base)

	start := base.Start
	end := base.End
	stride := base.Kind.strideHours()

	for i := 1; i < count && len(s.events) < MaxEvents; i++ {
		start.Hour = (start.Hour + stride) % 24
		end.Hour = (end.Hour + stride) % 24

		instance := Event{
			Name:         fmt.Sprintf("%s #%d", base.Name, i+1),
			Start:        start,
			End:          end,
			Description:  base.Description,
			Kind:         base.Kind,
			RecurrenceID: id,
		}
		if !s.conflicts(instance) {
			s.events = append(s.events, instance)
		}
	}
}
