package watchers

import (
	"github.com/manacurve/goldfish/internal/game/rules"
)

// SpellsCastWatcher tracks spells the pilot cast this turn.
type SpellsCastWatcher struct {
	*rules.BaseWatcher
	names       []string
	noncreature int
}

// NewSpellsCastWatcher creates a new spells cast watcher.
func NewSpellsCastWatcher() *SpellsCastWatcher {
	w := &SpellsCastWatcher{
		BaseWatcher: rules.NewBaseWatcher(rules.WatcherScopeTurn),
	}
	w.SetKey("SpellsCastWatcher")
	return w
}

// Watch implements the Watcher interface.
func (w *SpellsCastWatcher) Watch(event rules.Event) {
	if event.Type != rules.EventSpellCast {
		return
	}
	w.names = append(w.names, event.SourceName)
	if event.Flag {
		w.noncreature++
	}
	w.SetCondition(true)
}

// Reset clears the watcher's state.
func (w *SpellsCastWatcher) Reset() {
	w.BaseWatcher.Reset()
	w.names = nil
	w.noncreature = 0
}

// Count returns the number of spells cast this turn.
func (w *SpellsCastWatcher) Count() int {
	return len(w.names)
}

// NoncreatureCount returns the number of noncreature spells cast this turn.
func (w *SpellsCastWatcher) NoncreatureCount() int {
	return w.noncreature
}

// Names returns the names of spells cast this turn, in casting order.
func (w *SpellsCastWatcher) Names() []string {
	return w.names
}

// LandsPlayedWatcher tracks land drops this turn.
type LandsPlayedWatcher struct {
	*rules.BaseWatcher
	count int
}

// NewLandsPlayedWatcher creates a new lands played watcher.
func NewLandsPlayedWatcher() *LandsPlayedWatcher {
	w := &LandsPlayedWatcher{
		BaseWatcher: rules.NewBaseWatcher(rules.WatcherScopeTurn),
	}
	w.SetKey("LandsPlayedWatcher")
	return w
}

// Watch implements the Watcher interface.
func (w *LandsPlayedWatcher) Watch(event rules.Event) {
	if event.Type != rules.EventLandPlayed {
		return
	}
	w.count++
	w.SetCondition(true)
}

// Reset clears the watcher's state.
func (w *LandsPlayedWatcher) Reset() {
	w.BaseWatcher.Reset()
	w.count = 0
}

// Count returns the number of lands played this turn.
func (w *LandsPlayedWatcher) Count() int {
	return w.count
}

// LifeGainedWatcher tracks life the pilot gained this turn.
type LifeGainedWatcher struct {
	*rules.BaseWatcher
	amount int
}

// NewLifeGainedWatcher creates a new life gained watcher.
func NewLifeGainedWatcher() *LifeGainedWatcher {
	w := &LifeGainedWatcher{
		BaseWatcher: rules.NewBaseWatcher(rules.WatcherScopeTurn),
	}
	w.SetKey("LifeGainedWatcher")
	return w
}

// Watch implements the Watcher interface.
func (w *LifeGainedWatcher) Watch(event rules.Event) {
	if event.Type != rules.EventLifeGained {
		return
	}
	w.amount += event.Amount
	w.SetCondition(true)
}

// Reset clears the watcher's state.
func (w *LifeGainedWatcher) Reset() {
	w.BaseWatcher.Reset()
	w.amount = 0
}

// Amount returns the life gained this turn.
func (w *LifeGainedWatcher) Amount() int {
	return w.amount
}

// CreaturesDiedWatcher tracks creatures that died over the whole game.
type CreaturesDiedWatcher struct {
	*rules.BaseWatcher
	total int
}

// NewCreaturesDiedWatcher creates a new creatures died watcher.
func NewCreaturesDiedWatcher() *CreaturesDiedWatcher {
	w := &CreaturesDiedWatcher{
		BaseWatcher: rules.NewBaseWatcher(rules.WatcherScopeGame),
	}
	w.SetKey("CreaturesDiedWatcher")
	return w
}

// Watch implements the Watcher interface.
func (w *CreaturesDiedWatcher) Watch(event rules.Event) {
	if event.Type != rules.EventPermanentDies {
		return
	}
	if !event.Flag {
		return
	}
	w.total++
	w.SetCondition(true)
}

// Reset clears the watcher's state.
func (w *CreaturesDiedWatcher) Reset() {
	w.BaseWatcher.Reset()
	w.total = 0
}

// Total returns the number of creatures that have died this game.
func (w *CreaturesDiedWatcher) Total() int {
	return w.total
}

// TokensCreatedWatcher tracks tokens created over the whole game.
type TokensCreatedWatcher struct {
	*rules.BaseWatcher
	total int
}

// NewTokensCreatedWatcher creates a new tokens created watcher.
func NewTokensCreatedWatcher() *TokensCreatedWatcher {
	w := &TokensCreatedWatcher{
		BaseWatcher: rules.NewBaseWatcher(rules.WatcherScopeGame),
	}
	w.SetKey("TokensCreatedWatcher")
	return w
}

// Watch implements the Watcher interface.
func (w *TokensCreatedWatcher) Watch(event rules.Event) {
	if event.Type != rules.EventTokenCreated {
		return
	}
	w.total += event.Amount
	w.SetCondition(true)
}

// Reset clears the watcher's state.
func (w *TokensCreatedWatcher) Reset() {
	w.BaseWatcher.Reset()
	w.total = 0
}

// Total returns the number of tokens created this game.
func (w *TokensCreatedWatcher) Total() int {
	return w.total
}

// DamageDealtWatcher tracks damage dealt to opponents over the whole game,
// split into combat and noncombat. Combat damage publishes both a
// COMBAT_DAMAGE and an OPPONENT_LOST_LIFE event, so the total comes from
// life loss alone and the combat share is tracked separately.
type DamageDealtWatcher struct {
	*rules.BaseWatcher
	total  int
	combat int
}

// NewDamageDealtWatcher creates a new damage dealt watcher.
func NewDamageDealtWatcher() *DamageDealtWatcher {
	w := &DamageDealtWatcher{
		BaseWatcher: rules.NewBaseWatcher(rules.WatcherScopeGame),
	}
	w.SetKey("DamageDealtWatcher")
	return w
}

// Watch implements the Watcher interface.
func (w *DamageDealtWatcher) Watch(event rules.Event) {
	switch event.Type {
	case rules.EventOpponentLostLife:
		w.total += event.Amount
		w.SetCondition(true)
	case rules.EventCombatDamage:
		w.combat += event.Amount
	}
}

// Reset clears the watcher's state.
func (w *DamageDealtWatcher) Reset() {
	w.BaseWatcher.Reset()
	w.total = 0
	w.combat = 0
}

// Total returns all damage dealt to opponents this game.
func (w *DamageDealtWatcher) Total() int {
	return w.total
}

// Combat returns the combat damage dealt to opponents this game.
func (w *DamageDealtWatcher) Combat() int {
	return w.combat
}

// Noncombat returns the damage dealt outside combat this game.
func (w *DamageDealtWatcher) Noncombat() int {
	return w.total - w.combat
}

// CardsDrawnWatcher tracks cards the pilot has drawn over the whole game.
type CardsDrawnWatcher struct {
	*rules.BaseWatcher
	total int
}

// NewCardsDrawnWatcher creates a new cards drawn watcher.
func NewCardsDrawnWatcher() *CardsDrawnWatcher {
	w := &CardsDrawnWatcher{
		BaseWatcher: rules.NewBaseWatcher(rules.WatcherScopeGame),
	}
	w.SetKey("CardsDrawnWatcher")
	return w
}

// Watch implements the Watcher interface.
func (w *CardsDrawnWatcher) Watch(event rules.Event) {
	if event.Type != rules.EventCardDrawn {
		return
	}
	w.total++
	w.SetCondition(true)
}

// Reset clears the watcher's state.
func (w *CardsDrawnWatcher) Reset() {
	w.BaseWatcher.Reset()
	w.total = 0
}

// Total returns the number of cards drawn this game.
func (w *CardsDrawnWatcher) Total() int {
	return w.total
}

// ManaWastedWatcher tracks floating mana lost when pools empty on step
// changes, summed over the whole game.
type ManaWastedWatcher struct {
	*rules.BaseWatcher
	total int
}

// NewManaWastedWatcher creates a new mana wasted watcher.
func NewManaWastedWatcher() *ManaWastedWatcher {
	w := &ManaWastedWatcher{
		BaseWatcher: rules.NewBaseWatcher(rules.WatcherScopeGame),
	}
	w.SetKey("ManaWastedWatcher")
	return w
}

// Watch implements the Watcher interface.
func (w *ManaWastedWatcher) Watch(event rules.Event) {
	if event.Type != rules.EventEmptyManaPool {
		return
	}
	w.total += event.Amount
	w.SetCondition(true)
}

// Reset clears the watcher's state.
func (w *ManaWastedWatcher) Reset() {
	w.BaseWatcher.Reset()
	w.total = 0
}

// Total returns the mana lost to emptying pools this game.
func (w *ManaWastedWatcher) Total() int {
	return w.total
}
