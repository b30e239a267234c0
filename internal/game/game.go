// Package game simulates one Commander goldfish game: a single pilot deck
// played against silent opponents that are nothing but life totals.
package game

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/manacurve/goldfish/internal/deck"
	"github.com/manacurve/goldfish/internal/game/mana"
	"github.com/manacurve/goldfish/internal/game/rules"
	"github.com/manacurve/goldfish/internal/game/watchers"
)

// Zone names carried in zone change events.
const (
	ZoneLibrary     = "library"
	ZoneHand        = "hand"
	ZoneBattlefield = "battlefield"
	ZoneGraveyard   = "graveyard"
	ZoneCommand     = "command"
	ZoneExile       = "exile"
)

// Table defaults.
const (
	DefaultOpponents         = 3
	DefaultStartingLife      = 40
	OpeningHandSize          = 7
	MaxHandSize              = 7
	CommanderDamageThreshold = 21
	MaxMulligans             = 2
)

// Opponent is a goldfish opponent: a life total that never takes actions and
// never blocks.
type Opponent struct {
	Name            string
	Life            int
	CommanderDamage int
	Eliminated      bool
}

// Options configure a new game.
type Options struct {
	Seed         int64
	Opponents    int
	StartingLife int
	Logger       *zap.Logger
}

type attack struct {
	permanentID string
	opponent    int
}

// Game holds the complete state of one goldfish game.
type Game struct {
	logger *zap.Logger
	rng    *rand.Rand

	deck        *deck.Deck
	library     []*deck.CardDefinition
	hand        []*deck.CardDefinition
	graveyard   []*deck.CardDefinition
	exile       []*deck.CardDefinition
	battlefield []*Permanent

	commander      *deck.CardDefinition
	commanderInCmd bool
	commanderCasts int

	life      int
	opponents []*Opponent

	pool     *mana.Pool
	bus      *rules.EventBus
	triggers *rules.TriggerRegistry
	pending  *rules.PendingQueue
	watchers *rules.WatcherRegistry
	turn     *rules.TurnManager

	strategyCards map[string]bool
	deckColors    []mana.ManaType

	landsPlayedThisTurn int
	attacks             []attack
	mulligans           int

	over   bool
	won    bool
	decked bool
}

// NewGame builds a game from a validated deck, shuffles the library and puts
// the commander in the command zone. No cards are drawn yet.
func NewGame(d *deck.Deck, opts Options) *Game {
	if opts.Opponents <= 0 {
		opts.Opponents = DefaultOpponents
	}
	if opts.StartingLife <= 0 {
		opts.StartingLife = DefaultStartingLife
	}

	g := &Game{
		logger:         opts.Logger,
		rng:            rand.New(rand.NewSource(opts.Seed)),
		deck:           d,
		library:        d.Expand(),
		commander:      d.Commander,
		commanderInCmd: true,
		life:           opts.StartingLife,
		pool:           mana.NewPool(),
		bus:            rules.NewEventBus(),
		triggers:       rules.NewTriggerRegistry(),
		pending:        rules.NewPendingQueue(),
		watchers:       rules.NewWatcherRegistry(),
		turn:           rules.NewTurnManager(),
		strategyCards:  make(map[string]bool),
		deckColors:     deckColors(d),
	}

	for i := 0; i < opts.Opponents; i++ {
		g.opponents = append(g.opponents, &Opponent{
			Name: fmt.Sprintf("opponent-%d", i+1),
			Life: opts.StartingLife,
		})
	}

	g.watchers.AddWatcher(watchers.NewSpellsCastWatcher())
	g.watchers.AddWatcher(watchers.NewLandsPlayedWatcher())
	g.watchers.AddWatcher(watchers.NewLifeGainedWatcher())
	g.watchers.AddWatcher(watchers.NewCreaturesDiedWatcher())
	g.watchers.AddWatcher(watchers.NewTokensCreatedWatcher())
	g.watchers.AddWatcher(watchers.NewCardsDrawnWatcher())
	g.watchers.AddWatcher(watchers.NewDamageDealtWatcher())
	g.watchers.AddWatcher(watchers.NewManaWastedWatcher())

	g.shuffleLibrary()
	return g
}

// deckColors derives the colors the deck can want from an any-color source,
// commander first, falling back to the spread of the list.
func deckColors(d *deck.Deck) []mana.ManaType {
	if d.Commander != nil {
		if colors := d.Commander.Cost.Colors(); len(colors) > 0 {
			return colors
		}
	}
	seen := make(map[mana.ManaType]bool)
	var colors []mana.ManaType
	for _, entry := range d.Entries {
		for _, mt := range entry.Card.Cost.Colors() {
			if !seen[mt] {
				seen[mt] = true
				colors = append(colors, mt)
			}
		}
	}
	if len(colors) == 0 {
		colors = []mana.ManaType{mana.ManaColorless}
	}
	return colors
}

// publish is the single pipeline every state change goes through: event bus
// listeners, then watchers, then trigger collection into the pending queue.
func (g *Game) publish(event rules.Event) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	g.bus.Publish(event)
	g.watchers.NotifyWatchers(event)
	g.pending.Enqueue(g.triggers.Collect(event)...)
}

// EventBus exposes the game's event bus for additional listeners such as
// trace recorders.
func (g *Game) EventBus() *rules.EventBus {
	return g.bus
}

// WatcherRegistry exposes the game's watchers for tallying and AI signals.
func (g *Game) WatcherRegistry() *rules.WatcherRegistry {
	return g.watchers
}

// SetStrategyCards marks card names whose triggers resolve ahead of ordinary
// ones, after the commander's.
func (g *Game) SetStrategyCards(names []string) {
	g.strategyCards = make(map[string]bool, len(names))
	for _, name := range names {
		g.strategyCards[name] = true
	}
}

// Accessors.

// Turn returns the current turn number.
func (g *Game) Turn() int { return g.turn.TurnNumber() }

// Phase returns the current phase.
func (g *Game) Phase() rules.Phase { return g.turn.CurrentPhase() }

// Step returns the current step.
func (g *Game) Step() rules.Step { return g.turn.CurrentStep() }

// Life returns the pilot's life total.
func (g *Game) Life() int { return g.life }

// Opponents returns the opponents. Callers must not mutate them.
func (g *Game) Opponents() []*Opponent { return g.opponents }

// LivingOpponents returns the opponents still in the game.
func (g *Game) LivingOpponents() []*Opponent {
	var alive []*Opponent
	for _, opp := range g.opponents {
		if !opp.Eliminated {
			alive = append(alive, opp)
		}
	}
	return alive
}

// Hand returns the cards in hand in order.
func (g *Game) Hand() []*deck.CardDefinition {
	out := make([]*deck.CardDefinition, len(g.hand))
	copy(out, g.hand)
	return out
}

// Battlefield returns the permanents in play in entry order.
func (g *Game) Battlefield() []*Permanent {
	out := make([]*Permanent, len(g.battlefield))
	copy(out, g.battlefield)
	return out
}

// GraveyardCards returns the graveyard, oldest first.
func (g *Game) GraveyardCards() []*deck.CardDefinition {
	out := make([]*deck.CardDefinition, len(g.graveyard))
	copy(out, g.graveyard)
	return out
}

// LibraryCount returns the number of cards left in the library.
func (g *Game) LibraryCount() int { return len(g.library) }

// HandCount returns the number of cards in hand.
func (g *Game) HandCount() int { return len(g.hand) }

// Pool returns a copy of the current mana pool.
func (g *Game) Pool() *mana.Pool { return g.pool.Copy() }

// Commander returns the deck's commander card.
func (g *Game) Commander() *deck.CardDefinition { return g.commander }

// CommanderInCommandZone reports whether the commander is waiting to be cast.
func (g *Game) CommanderInCommandZone() bool { return g.commanderInCmd }

// CommanderTax returns the additional generic cost on the next commander cast.
func (g *Game) CommanderTax() int { return 2 * g.commanderCasts }

// CommanderPermanent returns the commander if it is on the battlefield.
func (g *Game) CommanderPermanent() *Permanent {
	for _, p := range g.battlefield {
		if p.Commander {
			return p
		}
	}
	return nil
}

// Mulligans returns how many mulligans were taken.
func (g *Game) Mulligans() int { return g.mulligans }

// LandsPlayedThisTurn returns the number of land drops used this turn.
func (g *Game) LandsPlayedThisTurn() int { return g.landsPlayedThisTurn }

// Over reports whether the game has ended.
func (g *Game) Over() bool { return g.over }

// Won reports whether every opponent was eliminated.
func (g *Game) Won() bool { return g.won }

// DeckedOut reports whether the game ended on an empty-library draw.
func (g *Game) DeckedOut() bool { return g.decked }

// FindPermanent looks up a battlefield permanent by ID.
func (g *Game) FindPermanent(id string) (*Permanent, bool) {
	for _, p := range g.battlefield {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// Zone movement.

func (g *Game) shuffleLibrary() {
	g.rng.Shuffle(len(g.library), func(i, j int) {
		g.library[i], g.library[j] = g.library[j], g.library[i]
	})
	g.publish(rules.NewEvent(rules.EventShuffleLibrary, "", "", ""))
}

// DrawOpeningHand draws the opening hand.
func (g *Game) DrawOpeningHand() {
	g.Draw(OpeningHandSize)
}

// TakeMulligan shuffles the hand back and draws a fresh seven. Returns false
// once the mulligan allowance is spent.
func (g *Game) TakeMulligan() bool {
	if g.mulligans >= MaxMulligans {
		return false
	}
	g.library = append(g.library, g.hand...)
	g.hand = g.hand[:0]
	g.shuffleLibrary()
	g.mulligans++
	if g.logger != nil {
		g.logger.Debug("mulligan taken",
			zap.Int("count", g.mulligans))
	}
	g.Draw(OpeningHandSize)
	return true
}

// Draw moves up to n cards from the top of the library to the hand. Drawing
// from an empty library ends the game immediately. Returns the number drawn.
func (g *Game) Draw(n int) int {
	drawn := 0
	for i := 0; i < n; i++ {
		if g.over {
			break
		}
		if len(g.library) == 0 {
			g.decked = true
			g.over = true
			if g.logger != nil {
				g.logger.Info("decked out",
					zap.Int("turn", g.turn.TurnNumber()))
			}
			g.publish(rules.NewEvent(rules.EventDeckedOut, "", "", ""))
			break
		}
		card := g.library[0]
		g.library = g.library[1:]
		g.hand = append(g.hand, card)
		drawn++
		evt := rules.NewEvent(rules.EventCardDrawn, "", "", card.Name)
		evt.FromZone = ZoneLibrary
		evt.ToZone = ZoneHand
		g.publish(evt)
	}
	return drawn
}

// Mill moves up to n cards from the top of the library to the graveyard.
// Unlike drawing, milling an empty library is harmless.
func (g *Game) Mill(n int) []*deck.CardDefinition {
	var milled []*deck.CardDefinition
	for i := 0; i < n && len(g.library) > 0; i++ {
		card := g.library[0]
		g.library = g.library[1:]
		g.graveyard = append(g.graveyard, card)
		milled = append(milled, card)
		evt := rules.NewEvent(rules.EventCardMilled, "", "", card.Name)
		evt.FromZone = ZoneLibrary
		evt.ToZone = ZoneGraveyard
		evt.Flag = card.IsCreature()
		evt.Data = card.TypeLine
		g.publish(evt)
	}
	return milled
}

// Discard moves the hand card at the given index to the graveyard.
func (g *Game) Discard(index int) error {
	if index < 0 || index >= len(g.hand) {
		return illegalAction("discard", "no hand card at index %d", index)
	}
	card := g.hand[index]
	g.hand = append(g.hand[:index], g.hand[index+1:]...)
	g.graveyard = append(g.graveyard, card)
	evt := rules.NewEvent(rules.EventZoneChange, "", "", card.Name)
	evt.FromZone = ZoneHand
	evt.ToZone = ZoneGraveyard
	g.publish(evt)
	return nil
}

func (g *Game) removeFromHand(card *deck.CardDefinition) bool {
	for i, c := range g.hand {
		if c == card {
			g.hand = append(g.hand[:i], g.hand[i+1:]...)
			return true
		}
	}
	return false
}

func (g *Game) removeFromBattlefield(p *Permanent) bool {
	for i, perm := range g.battlefield {
		if perm == p {
			g.battlefield = append(g.battlefield[:i], g.battlefield[i+1:]...)
			return true
		}
	}
	return false
}

// enterBattlefield places a permanent onto the battlefield, registers its
// triggered abilities and publishes the entry.
func (g *Game) enterBattlefield(p *Permanent) {
	g.battlefield = append(g.battlefield, p)
	g.registerTriggers(p)

	evt := rules.NewEvent(rules.EventEntersBattlefield, p.ID, p.ID, p.Name)
	evt.Flag = p.IsCreature()
	evt.Data = p.TypeLine
	evt.ToZone = ZoneBattlefield
	g.publish(evt)
}

// moveToGraveyard handles a permanent leaving the battlefield by death. Dies
// events fire before the triggers deregister so the permanent's own death
// trigger still collects. The commander returns to the command zone instead
// of the graveyard; tokens cease to exist.
func (g *Game) moveToGraveyard(p *Permanent, sacrificed bool) {
	if !g.removeFromBattlefield(p) {
		return
	}
	g.detach(p)

	if sacrificed {
		evt := rules.NewEvent(rules.EventPermanentSacrificed, p.ID, p.ID, p.Name)
		evt.Flag = p.IsCreature()
		evt.Data = p.TypeLine
		g.publish(evt)
	}

	dies := rules.NewEvent(rules.EventPermanentDies, p.ID, p.ID, p.Name)
	dies.Flag = p.IsCreature()
	dies.Data = p.TypeLine
	dies.FromZone = ZoneBattlefield
	dies.ToZone = ZoneGraveyard

	switch {
	case p.Commander:
		dies.ToZone = ZoneCommand
		g.commanderInCmd = true
	case p.Token:
		// Tokens vanish; the dies event still fires.
	default:
		g.graveyard = append(g.graveyard, p.Card)
	}

	g.publish(dies)
	g.triggers.UnregisterSource(p.ID)
}

// detach unlinks equipment relationships before a permanent changes zones.
func (g *Game) detach(p *Permanent) {
	if p.AttachedTo != "" {
		if host, ok := g.FindPermanent(p.AttachedTo); ok {
			for i, id := range host.Attachments {
				if id == p.ID {
					host.Attachments = append(host.Attachments[:i], host.Attachments[i+1:]...)
					break
				}
			}
		}
		p.AttachedTo = ""
	}
	for _, id := range p.Attachments {
		if equip, ok := g.FindPermanent(id); ok {
			equip.AttachedTo = ""
		}
	}
	p.Attachments = nil
}

// SacrificePermanent moves one of the pilot's permanents to the graveyard as
// a sacrifice.
func (g *Game) SacrificePermanent(id string) error {
	p, ok := g.FindPermanent(id)
	if !ok {
		return illegalAction("sacrifice", "permanent %s is not on the battlefield", id)
	}
	g.moveToGraveyard(p, true)
	g.CheckStateBasedActions()
	return nil
}

// ReturnFromGraveyard moves a graveyard card to the hand or straight onto the
// battlefield.
func (g *Game) ReturnFromGraveyard(card *deck.CardDefinition, toBattlefield bool) error {
	idx := -1
	for i, c := range g.graveyard {
		if c == card {
			idx = i
			break
		}
	}
	if idx < 0 {
		return illegalAction("return", "%s is not in the graveyard", card.Name)
	}
	g.graveyard = append(g.graveyard[:idx], g.graveyard[idx+1:]...)

	evt := rules.NewEvent(rules.EventLeavesGraveyard, "", "", card.Name)
	evt.FromZone = ZoneGraveyard
	evt.Flag = card.IsCreature()
	evt.Data = card.TypeLine
	if toBattlefield && card.IsPermanent() {
		evt.ToZone = ZoneBattlefield
		g.publish(evt)
		p := NewPermanent(card, g.turn.TurnNumber())
		p.Commander = card == g.commander
		g.enterBattlefield(p)
		return nil
	}
	evt.ToZone = ZoneHand
	g.publish(evt)
	g.hand = append(g.hand, card)
	return nil
}

// CreateTokens creates count tokens, doubled once per token doubler on the
// battlefield, and returns them.
func (g *Game) CreateTokens(spec TokenSpec, count int) []*Permanent {
	if count <= 0 {
		return nil
	}
	if d := g.tokenDoublers(); d > 0 {
		count <<= d
	}

	created := make([]*Permanent, 0, count)
	for i := 0; i < count; i++ {
		p := NewTokenPermanent(spec, g.turn.TurnNumber())
		created = append(created, p)
	}

	evt := rules.NewEventWithAmount(rules.EventTokenCreated, "", "", title(spec.Name), count)
	g.publish(evt)
	for _, p := range created {
		g.enterBattlefield(p)
	}
	if g.logger != nil {
		g.logger.Debug("tokens created",
			zap.String("name", title(spec.Name)),
			zap.Int("count", count))
	}
	return created
}

// Life changes.

// GainLife adds life to the pilot.
func (g *Game) GainLife(amount int, sourceID, sourceName string) {
	if amount <= 0 {
		return
	}
	g.life += amount
	g.publish(rules.NewEventWithAmount(rules.EventLifeGained, "", sourceID, sourceName, amount))
}

// PutCounters puts counters of the named kind on a permanent and publishes
// the addition.
func (g *Game) PutCounters(p *Permanent, name string, amount int, sourceID, sourceName string) {
	if p == nil || amount <= 0 {
		return
	}
	p.Counters.Add(name, amount)
	evt := rules.NewEventWithAmount(rules.EventCountersAdded, p.ID, sourceID, sourceName, amount)
	evt.Data = name
	g.publish(evt)
}

// OpponentLosesLife removes life from one opponent.
func (g *Game) OpponentLosesLife(index, amount int, sourceName string) {
	if index < 0 || index >= len(g.opponents) || amount <= 0 {
		return
	}
	opp := g.opponents[index]
	if opp.Eliminated {
		return
	}
	opp.Life -= amount
	g.publish(rules.NewEventWithAmount(rules.EventOpponentLostLife, opp.Name, "", sourceName, amount))
}

// EachOpponentLosesLife removes life from every living opponent.
func (g *Game) EachOpponentLosesLife(amount int, sourceName string) {
	for i, opp := range g.opponents {
		if !opp.Eliminated {
			g.OpponentLosesLife(i, amount, sourceName)
		}
	}
}

// weakestOpponent returns the living opponent with the lowest life, the one
// closest to elimination. Returns -1 when all are gone.
func (g *Game) weakestOpponent() int {
	best := -1
	for i, opp := range g.opponents {
		if opp.Eliminated {
			continue
		}
		if best < 0 || opp.Life < g.opponents[best].Life {
			best = i
		}
	}
	return best
}

// Turn housekeeping.

// BeginTurn untaps everything and resets per-turn accounting. The caller
// advances steps; this fires at untap.
func (g *Game) BeginTurn() {
	for _, p := range g.battlefield {
		p.Tapped = false
	}
	g.landsPlayedThisTurn = 0
	g.attacks = nil
	g.publish(rules.NewEventWithAmount(rules.EventTurnBegan, "", "", "", g.turn.TurnNumber()))
}

// UpkeepStep publishes the upkeep, firing upkeep triggers.
func (g *Game) UpkeepStep() {
	g.publish(rules.NewEvent(rules.EventUpkeepStep, "", "", ""))
}

// DrawStep performs the turn draw. The first turn's draw is skipped, as on
// the play.
func (g *Game) DrawStep() {
	if g.turn.TurnNumber() == 1 {
		return
	}
	g.Draw(1)
}

// EndStep publishes the end step, firing end step triggers.
func (g *Game) EndStep() {
	g.publish(rules.NewEvent(rules.EventEndStep, "", "", ""))
}

// CleanupStep clears damage and until-end-of-turn effects and resets
// turn-scoped watchers.
func (g *Game) CleanupStep() {
	for _, p := range g.battlefield {
		p.ClearTurnState()
	}
	g.watchers.ResetWatchersByScope(rules.WatcherScopeTurn)
	g.publish(rules.NewEvent(rules.EventCleanupStep, "", "", ""))
}

// EmptyManaPool drops any floating mana. Called on every step change.
func (g *Game) EmptyManaPool() {
	if total := g.pool.Total(); total > 0 {
		g.publish(rules.NewEventWithAmount(rules.EventEmptyManaPool, "", "", "", total))
	}
	g.pool.Empty()
}

// AdvanceStep empties the mana pool and moves to the next step, publishing
// the step change. Phase changes publish separately.
func (g *Game) AdvanceStep() (rules.Phase, rules.Step) {
	g.EmptyManaPool()
	prevPhase := g.turn.CurrentPhase()
	phase, step := g.turn.AdvanceStep()

	if phase != prevPhase {
		evt := rules.NewEvent(rules.EventPhaseChanged, "", "", "")
		evt.Data = phase.String()
		g.publish(evt)
	}
	evt := rules.NewEvent(rules.EventStepChanged, "", "", "")
	evt.Data = step.String()
	g.publish(evt)
	return phase, step
}

// Pending trigger handling.

// PendingCount returns the number of fired triggers waiting to resolve.
func (g *Game) PendingCount() int {
	return g.pending.Len()
}

// ResolveNext resolves the front pending trigger. State-based actions run
// after the resolution. Returns false when the queue is empty.
func (g *Game) ResolveNext() (bool, error) {
	item, ok := g.pending.Next()
	if !ok {
		return false, nil
	}
	if g.logger != nil {
		g.logger.Debug("resolving trigger",
			zap.String("source", item.SourceName),
			zap.String("description", item.Description))
	}
	var err error
	if item.Resolve != nil {
		err = item.Resolve()
	}
	g.CheckStateBasedActions()
	return true, err
}

// DiscardPending drops every queued trigger and returns how many were lost.
// Used when a phase blows its action budget.
func (g *Game) DiscardPending() int {
	dropped := g.pending.Clear()
	if len(dropped) > 0 && g.logger != nil {
		g.logger.Warn("pending triggers discarded",
			zap.Int("count", len(dropped)))
	}
	return len(dropped)
}

// CheckStateBasedActions applies the simultaneous rules checks: opponents at
// zero life or lethal commander damage leave the game, creatures with zero
// toughness or lethal marked damage die. Repeats until nothing changes.
func (g *Game) CheckStateBasedActions() {
	for {
		somethingHappened := false

		for _, opp := range g.opponents {
			if opp.Eliminated {
				continue
			}
			if opp.Life <= 0 || opp.CommanderDamage >= CommanderDamageThreshold {
				opp.Eliminated = true
				somethingHappened = true
				if g.logger != nil {
					g.logger.Info("opponent eliminated",
						zap.String("opponent", opp.Name),
						zap.Int("life", opp.Life),
						zap.Int("commander_damage", opp.CommanderDamage))
				}
				g.publish(rules.NewEvent(rules.EventOpponentEliminated, opp.Name, "", ""))
			}
		}

		creaturesToRemove := make([]*Permanent, 0)
		for _, p := range g.battlefield {
			if !p.IsCreature() {
				continue
			}
			toughness := g.ToughnessOf(p)
			if toughness <= 0 {
				creaturesToRemove = append(creaturesToRemove, p)
				continue
			}
			if p.Damage >= toughness && !g.HasKeyword(p, "indestructible") {
				creaturesToRemove = append(creaturesToRemove, p)
			}
		}
		for _, p := range creaturesToRemove {
			if g.logger != nil {
				g.logger.Debug("creature died to state check",
					zap.String("name", p.Name),
					zap.Int("damage", p.Damage),
					zap.Int("toughness", g.ToughnessOf(p)))
			}
			g.moveToGraveyard(p, false)
			somethingHappened = true
		}

		if !somethingHappened {
			break
		}
	}

	if !g.over && len(g.LivingOpponents()) == 0 {
		g.over = true
		g.won = true
		if g.logger != nil {
			g.logger.Info("all opponents eliminated",
				zap.Int("turn", g.turn.TurnNumber()))
		}
	}
}

// EndGame marks the game over without a win, for turn-limit cutoffs.
func (g *Game) EndGame() {
	g.over = true
}

// CheckZoneInvariant verifies that no card has been duplicated or lost across
// zones. Tokens are not counted. A failure is unrecoverable.
func (g *Game) CheckZoneInvariant() error {
	expected := g.deck.TotalQuantity() + 1 // plus commander

	actual := len(g.library) + len(g.hand) + len(g.graveyard) + len(g.exile)
	for _, p := range g.battlefield {
		if !p.Token {
			actual++
		}
	}
	if g.commanderInCmd {
		actual++
	}

	if actual != expected {
		err := &CorruptZoneStateError{
			Expected: expected,
			Actual:   actual,
			Detail: fmt.Sprintf("library=%d hand=%d graveyard=%d exile=%d battlefield=%d command=%t",
				len(g.library), len(g.hand), len(g.graveyard), len(g.exile), len(g.battlefield), g.commanderInCmd),
		}
		if g.logger != nil {
			g.logger.Error("zone invariant violated", zap.Error(err))
		}
		return err
	}
	return nil
}
