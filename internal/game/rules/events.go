package rules

import (
	"sync"
	"time"
)

// EventType indicates the category of a rules event.
type EventType string

const (
	// Turn structure events
	EventTurnBegan     EventType = "TURN_BEGAN"
	EventPhaseChanged  EventType = "PHASE_CHANGED"
	EventStepChanged   EventType = "STEP_CHANGED"
	EventUpkeepStep    EventType = "UPKEEP_STEP"
	EventEndStep       EventType = "END_STEP"
	EventCleanupStep   EventType = "CLEANUP_STEP"
	EventEmptyManaPool EventType = "EMPTY_MANA_POOL"

	// Zone events
	EventZoneChange      EventType = "ZONE_CHANGE"
	EventShuffleLibrary  EventType = "SHUFFLE_LIBRARY"
	EventLeavesGraveyard EventType = "LEAVES_GRAVEYARD"

	// Card events
	EventCardDrawn  EventType = "CARD_DRAWN"
	EventCardMilled EventType = "CARD_MILLED"
	EventDeckedOut  EventType = "DECKED_OUT"

	// Spell, land and ability events
	EventLandPlayed       EventType = "LAND_PLAYED"
	EventSpellCast        EventType = "SPELL_CAST"
	EventAbilityActivated EventType = "ABILITY_ACTIVATED"

	// Battlefield events
	EventEntersBattlefield   EventType = "ENTERS_BATTLEFIELD"
	EventPermanentDies       EventType = "PERMANENT_DIES"
	EventPermanentSacrificed EventType = "PERMANENT_SACRIFICED"
	EventTokenCreated        EventType = "TOKEN_CREATED"
	EventCountersAdded       EventType = "COUNTERS_ADDED"
	EventEquipmentAttached   EventType = "EQUIPMENT_ATTACHED"

	// Combat events
	EventAttackerDeclared EventType = "ATTACKER_DECLARED"
	EventCombatDamage     EventType = "COMBAT_DAMAGE"

	// Mana events
	EventManaAdded     EventType = "MANA_ADDED"
	EventTappedForMana EventType = "TAPPED_FOR_MANA"

	// Life events
	EventLifeGained         EventType = "LIFE_GAINED"
	EventOpponentLostLife   EventType = "OPPONENT_LOST_LIFE"
	EventOpponentEliminated EventType = "OPPONENT_ELIMINATED"
)

// Event represents a state change that other subsystems may react to.
type Event struct {
	Type       EventType
	ID         string    // Unique event ID
	TargetID   string    // ID of the object the event happened to
	SourceID   string    // ID of the object that caused the event
	SourceName string    // Card name of the source, for conditions and logs
	Amount     int       // Numeric value (damage, tokens, cards, life)
	Flag       bool      // Qualifier (noncreature cast, combat damage, token)
	Data       string    // Additional string data (type line, phase name)
	FromZone   string    // Zone the object left, for zone change events
	ToZone     string    // Zone the object entered, for zone change events
	Timestamp  time.Time // When the event occurred
}

// Listener defines a callback that reacts to incoming events.
type Listener func(Event)

// TypedListener defines a callback that reacts to a specific event type.
type TypedListener struct {
	Handle    int
	EventType EventType
	Callback  func(Event)
}

// EventBus provides a synchronous publish/subscribe implementation with type filtering.
type EventBus struct {
	mu             sync.RWMutex
	listeners      map[int]Listener              // All listeners
	typedListeners map[EventType][]TypedListener // Listeners filtered by event type
	nextHandle     int
}

// NewEventBus constructs a fresh event bus instance.
func NewEventBus() *EventBus {
	return &EventBus{
		listeners:      make(map[int]Listener),
		typedListeners: make(map[EventType][]TypedListener),
	}
}

// Subscribe registers a listener for all events and returns a handle.
func (bus *EventBus) Subscribe(listener Listener) int {
	if listener == nil {
		return -1
	}
	bus.mu.Lock()
	defer bus.mu.Unlock()
	handle := bus.nextHandle
	bus.nextHandle++
	bus.listeners[handle] = listener
	return handle
}

// SubscribeTyped registers a listener for a specific event type.
func (bus *EventBus) SubscribeTyped(eventType EventType, callback func(Event)) int {
	if callback == nil {
		return -1
	}
	bus.mu.Lock()
	defer bus.mu.Unlock()
	handle := bus.nextHandle
	bus.nextHandle++
	listener := TypedListener{
		Handle:    handle,
		EventType: eventType,
		Callback:  callback,
	}
	bus.typedListeners[eventType] = append(bus.typedListeners[eventType], listener)
	return handle
}

// Unsubscribe removes the listener identified by the provided handle.
func (bus *EventBus) Unsubscribe(handle int) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	delete(bus.listeners, handle)
	for eventType, listeners := range bus.typedListeners {
		for i := len(listeners) - 1; i >= 0; i-- {
			if listeners[i].Handle == handle {
				bus.typedListeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Publish delivers the event to all registered listeners synchronously.
func (bus *EventBus) Publish(event Event) {
	bus.mu.RLock()
	defer bus.mu.RUnlock()

	for _, listener := range bus.listeners {
		listener(event)
	}

	if typedListeners, ok := bus.typedListeners[event.Type]; ok {
		for _, listener := range typedListeners {
			listener.Callback(event)
		}
	}
}

// PublishBatch publishes multiple events in order.
func (bus *EventBus) PublishBatch(events []Event) {
	for _, event := range events {
		bus.Publish(event)
	}
}

// NewEvent creates a new event with common fields populated.
func NewEvent(eventType EventType, targetID, sourceID, sourceName string) Event {
	return Event{
		Type:       eventType,
		TargetID:   targetID,
		SourceID:   sourceID,
		SourceName: sourceName,
		Timestamp:  time.Now(),
	}
}

// NewEventWithAmount creates a new event with an amount value.
func NewEventWithAmount(eventType EventType, targetID, sourceID, sourceName string, amount int) Event {
	evt := NewEvent(eventType, targetID, sourceID, sourceName)
	evt.Amount = amount
	return evt
}

// NewEventWithFlag creates a new event with a flag value.
func NewEventWithFlag(eventType EventType, targetID, sourceID, sourceName string, flag bool) Event {
	evt := NewEvent(eventType, targetID, sourceID, sourceName)
	evt.Flag = flag
	return evt
}
