package rules

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Trigger priority tiers. Lower tiers resolve first when one event sets off
// several triggers at once.
const (
	TierCommander = 0
	TierStrategy  = 1
	TierDefault   = 2
)

// Pending is a triggered ability that has fired and is waiting to resolve.
type Pending struct {
	ID          string
	SourceID    string
	SourceName  string
	Description string
	Resolve     func() error
}

// Trigger encapsulates the logic for reacting to a specific event and
// producing a pending resolution when the conditions are satisfied.
type Trigger struct {
	ID         string
	SourceID   string
	SourceName string
	Tier       int
	EventType  EventType
	Condition  func(Event) bool
	Build      func(Event) Pending
	Once       bool

	seq int // registration order, breaks ties within a tier
}

// TriggerRegistry stores triggers and collects the ones an event sets off.
type TriggerRegistry struct {
	mu       sync.Mutex
	triggers []Trigger
	nextSeq  int
}

// NewTriggerRegistry creates an empty trigger registry.
func NewTriggerRegistry() *TriggerRegistry {
	return &TriggerRegistry{
		triggers: make([]Trigger, 0, 16),
	}
}

// Register adds a new trigger and returns its ID.
func (tr *TriggerRegistry) Register(trigger Trigger) string {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	if trigger.ID == "" {
		trigger.ID = uuid.NewString()
	}
	trigger.seq = tr.nextSeq
	tr.nextSeq++
	tr.triggers = append(tr.triggers, trigger)
	return trigger.ID
}

// Unregister removes a trigger by ID.
func (tr *TriggerRegistry) Unregister(id string) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	for i := len(tr.triggers) - 1; i >= 0; i-- {
		if tr.triggers[i].ID == id {
			tr.triggers = append(tr.triggers[:i], tr.triggers[i+1:]...)
			return
		}
	}
}

// UnregisterSource removes all triggers belonging to a source permanent.
// Called when the permanent leaves the battlefield.
func (tr *TriggerRegistry) UnregisterSource(sourceID string) {
	if sourceID == "" {
		return
	}
	tr.mu.Lock()
	defer tr.mu.Unlock()
	kept := tr.triggers[:0]
	for _, trigger := range tr.triggers {
		if trigger.SourceID != sourceID {
			kept = append(kept, trigger)
		}
	}
	tr.triggers = kept
}

// Count returns the number of registered triggers.
func (tr *TriggerRegistry) Count() int {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return len(tr.triggers)
}

// Collect evaluates the provided event against all registered triggers and
// returns the pending resolutions they produce, ordered by tier and then by
// registration order. Collect never resolves anything itself; execution is
// the caller's job once the event that fired these has fully published.
func (tr *TriggerRegistry) Collect(event Event) []Pending {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	if len(tr.triggers) == 0 {
		return nil
	}

	var matched []Trigger
	for _, trigger := range tr.triggers {
		if trigger.EventType != event.Type {
			continue
		}
		if trigger.Condition != nil && !trigger.Condition(event) {
			continue
		}
		if trigger.Build == nil {
			continue
		}
		matched = append(matched, trigger)
	}
	if len(matched) == 0 {
		return nil
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Tier != matched[j].Tier {
			return matched[i].Tier < matched[j].Tier
		}
		return matched[i].seq < matched[j].seq
	})

	var (
		pending  []Pending
		toRemove []string
	)
	for _, trigger := range matched {
		item := trigger.Build(event)
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		if item.SourceID == "" {
			item.SourceID = trigger.SourceID
		}
		if item.SourceName == "" {
			item.SourceName = trigger.SourceName
		}
		pending = append(pending, item)

		if trigger.Once {
			toRemove = append(toRemove, trigger.ID)
		}
	}

	for _, id := range toRemove {
		for i := len(tr.triggers) - 1; i >= 0; i-- {
			if tr.triggers[i].ID == id {
				tr.triggers = append(tr.triggers[:i], tr.triggers[i+1:]...)
				break
			}
		}
	}

	return pending
}
