package game

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/manacurve/goldfish/internal/ability"
	"github.com/manacurve/goldfish/internal/deck"
	"github.com/manacurve/goldfish/internal/game/mana"
	"github.com/manacurve/goldfish/internal/game/rules"
)

// PlayLand plays a land from hand. One land per turn, main steps only.
func (g *Game) PlayLand(card *deck.CardDefinition) error {
	if g.over {
		return illegalAction("play land", "the game is over")
	}
	if !g.turn.CurrentStep().IsMain() {
		return illegalAction("play land", "outside a main step")
	}
	if !card.IsLand() {
		return illegalAction("play land", "%s is not a land", card.Name)
	}
	if g.landsPlayedThisTurn >= 1 {
		return illegalAction("play land", "already played a land this turn")
	}
	if !g.removeFromHand(card) {
		return illegalAction("play land", "%s is not in hand", card.Name)
	}
	g.landsPlayedThisTurn++

	evt := rules.NewEvent(rules.EventLandPlayed, "", "", card.Name)
	evt.Data = card.TypeLine
	g.publish(evt)

	p := NewPermanent(card, g.turn.TurnNumber())
	g.enterBattlefield(p)
	return nil
}

// EffectiveCost is the cost of casting the card right now: printed cost,
// minus battlefield reductions, plus commander tax when the card is the
// commander coming out of the command zone.
func (g *Game) EffectiveCost(card *deck.CardDefinition) *mana.Cost {
	base := card.Cost
	cost := base.WithReduction(g.CostReductionFor(card))
	if card == g.commander && g.commanderInCmd {
		cost = cost.WithSurcharge(g.CommanderTax())
	}
	return cost
}

// CanCast reports whether the card could be cast right now, tapping whatever
// is needed.
func (g *Game) CanCast(card *deck.CardDefinition) bool {
	if g.over || !g.turn.CurrentStep().IsMain() {
		return false
	}
	if card.IsLand() {
		return false
	}
	fromCommand := card == g.commander && g.commanderInCmd
	if !fromCommand && !g.inHand(card) {
		return false
	}
	return g.CanPayFor(g.EffectiveCost(card), 0)
}

func (g *Game) inHand(card *deck.CardDefinition) bool {
	for _, c := range g.hand {
		if c == card {
			return true
		}
	}
	return false
}

// CastSpell casts a card from hand, or the commander from the command zone,
// paying its effective cost. Permanents enter the battlefield; instants and
// sorceries apply their effects and go to the graveyard.
func (g *Game) CastSpell(card *deck.CardDefinition, x int) error {
	if g.over {
		return illegalAction("cast", "the game is over")
	}
	if !g.turn.CurrentStep().IsMain() {
		return illegalAction("cast", "outside a main step")
	}
	if card.IsLand() {
		return illegalAction("cast", "lands are played, not cast")
	}

	fromCommand := card == g.commander && g.commanderInCmd
	if !fromCommand && !g.inHand(card) {
		return illegalAction("cast", "%s is not in hand", card.Name)
	}

	cost := g.EffectiveCost(card)
	if !g.CanPayFor(cost, x) {
		return illegalAction("cast", "cannot pay %s for %s", cost.String(), card.Name)
	}
	if err := g.tapForMana(cost, x); err != nil {
		return err
	}
	if !g.pool.Pay(cost, x) {
		return illegalAction("cast", "mana pool cannot cover %s", cost.String())
	}

	if fromCommand {
		g.commanderInCmd = false
		g.commanderCasts++
	} else {
		g.removeFromHand(card)
	}

	if g.logger != nil {
		g.logger.Debug("spell cast",
			zap.String("card", card.Name),
			zap.String("cost", cost.String()),
			zap.Int("turn", g.turn.TurnNumber()))
	}

	spellID := uuid.NewString()
	evt := rules.NewEvent(rules.EventSpellCast, spellID, spellID, card.Name)
	evt.Flag = !card.IsCreature()
	evt.Data = card.TypeLine
	evt.Amount = cost.ManaValue() + x
	g.publish(evt)

	if card.IsPermanent() {
		p := NewPermanent(card, g.turn.TurnNumber())
		p.Commander = card == g.commander
		g.enterBattlefield(p)
	} else {
		err := g.applyEffects(card.Abilities.SpellEffects, effectContext{
			sourceID:   spellID,
			sourceName: card.Name,
			x:          x,
		})
		g.graveyard = append(g.graveyard, card)
		change := rules.NewEvent(rules.EventZoneChange, spellID, spellID, card.Name)
		change.FromZone = ZoneHand
		change.ToZone = ZoneGraveyard
		g.publish(change)
		if err != nil {
			return err
		}
	}

	g.CheckStateBasedActions()
	return nil
}

// Mana production.

// manaSource is an untapped permanent with a usable tap mana ability.
type manaSource struct {
	perm *Permanent
	ab   ability.Activated
}

// production returns the fixed mana this source adds and how many
// any-color units it can choose freely.
func (s manaSource) production() (fixed []mana.ManaType, wild int) {
	for _, e := range s.ab.Effects {
		if e.Kind != ability.EffectAddMana {
			continue
		}
		if e.AnyColor {
			n := e.Amount.Value(0)
			if n <= 0 {
				n = 1
			}
			wild += n
			continue
		}
		fixed = append(fixed, e.Mana...)
	}
	return fixed, wild
}

// usableManaSources lists permanents that could be tapped for mana right
// now, in battlefield order.
func (g *Game) usableManaSources() []manaSource {
	var sources []manaSource
	for _, p := range g.battlefield {
		if p.Tapped {
			continue
		}
		if p.IsCreature() && p.EnteredTurn == g.turn.TurnNumber() && !g.HasKeyword(p, "haste") {
			continue
		}
		for _, ab := range p.Abilities.Activated {
			if !ab.IsManaAbility() || !ab.Tap {
				continue
			}
			if ab.ManaCost != nil && !ab.ManaCost.IsFree() {
				continue
			}
			sources = append(sources, manaSource{perm: p, ab: ab})
			break
		}
	}
	return sources
}

// CanPayFor reports whether the pool plus everything tappable covers the
// cost. Any-color sources cover colored symbols but never {C}.
func (g *Game) CanPayFor(cost *mana.Cost, x int) bool {
	if cost == nil || (cost.IsFree() && x <= 0) {
		return true
	}

	fixed := make(map[mana.ManaType]int)
	wild := 0
	for _, src := range g.usableManaSources() {
		f, w := src.production()
		for _, mt := range f {
			fixed[mt]++
		}
		wild += w
	}

	short := 0
	for _, mt := range mana.ColorOrder {
		if mt == mana.ManaColorless {
			continue
		}
		need := cost.Colored(mt) - g.pool.Get(mt) - fixed[mt]
		if need > 0 {
			short += need
		}
	}
	if short > wild {
		return false
	}
	if cost.Colored(mana.ManaColorless) > g.pool.Get(mana.ManaColorless)+fixed[mana.ManaColorless] {
		return false
	}

	total := g.pool.Total() + wild
	for _, n := range fixed {
		total += n
	}
	return total >= cost.ManaValue()+x
}

// AvailableManaTotal is the total mana reachable right now: floating plus
// every usable source.
func (g *Game) AvailableManaTotal() int {
	total := g.pool.Total()
	for _, src := range g.usableManaSources() {
		f, w := src.production()
		total += len(f) + w
	}
	return total
}

// tapForMana taps sources until the pool can pay the cost. Sources that keep
// the board (plain taps) go before ones that cost a permanent (treasures).
func (g *Game) tapForMana(cost *mana.Cost, x int) error {
	if cost == nil {
		return nil
	}
	for !g.pool.CanPay(cost, x) {
		src, ok := g.nextManaSource(cost, x)
		if !ok {
			return illegalAction("tap for mana", "not enough mana for %s", cost.String())
		}
		g.tapSource(src, cost, x)
	}
	return nil
}

// nextManaSource picks the next source to tap: first one producing a color
// still short, then any fixed producer, then any-color producers, with
// sacrifice sources always last.
func (g *Game) nextManaSource(cost *mana.Cost, x int) (manaSource, bool) {
	sources := g.usableManaSources()
	if len(sources) == 0 {
		return manaSource{}, false
	}

	shortColors := g.shortColors(cost)

	type pick struct {
		src  manaSource
		rank int
	}
	best := pick{rank: -1}
	for _, src := range sources {
		fixed, wild := src.production()
		rank := -1
		switch {
		case producesAny(fixed, shortColors):
			rank = 0
		case wild > 0 && len(shortColors) > 0:
			rank = 1
		case len(fixed) > 0:
			rank = 2
		case wild > 0:
			rank = 3
		}
		if rank < 0 {
			continue
		}
		if src.ab.SacSelf {
			rank += 4
		}
		if best.rank < 0 || rank < best.rank {
			best = pick{src: src, rank: rank}
		}
	}
	if best.rank < 0 {
		return manaSource{}, false
	}
	return best.src, true
}

// shortColors lists the colored symbols the pool cannot yet cover.
func (g *Game) shortColors(cost *mana.Cost) []mana.ManaType {
	var short []mana.ManaType
	for _, mt := range mana.ColorOrder {
		if mt == mana.ManaColorless {
			continue
		}
		if cost.Colored(mt) > g.pool.Get(mt) {
			short = append(short, mt)
		}
	}
	return short
}

func producesAny(fixed []mana.ManaType, wanted []mana.ManaType) bool {
	for _, mt := range fixed {
		for _, w := range wanted {
			if mt == w {
				return true
			}
		}
	}
	return false
}

// tapSource taps one source, adds its mana and pays any self-sacrifice.
func (g *Game) tapSource(src manaSource, cost *mana.Cost, x int) {
	p := src.perm
	p.Tapped = true
	g.publish(rules.NewEvent(rules.EventTappedForMana, p.ID, p.ID, p.Name))

	fixed, wild := src.production()
	added := 0
	for _, mt := range fixed {
		g.pool.Add(mt, 1)
		added++
	}
	for i := 0; i < wild; i++ {
		g.pool.Add(g.pickAnyColor(cost), 1)
		added++
	}
	if added > 0 {
		g.publish(rules.NewEventWithAmount(rules.EventManaAdded, p.ID, p.ID, p.Name, added))
	}

	if src.ab.SacSelf {
		g.moveToGraveyard(p, true)
	}
}

// pickAnyColor chooses what an any-color source should make: the first color
// the cost is still short on, then the deck's colors, then colorless.
func (g *Game) pickAnyColor(cost *mana.Cost) mana.ManaType {
	if cost != nil {
		if short := g.shortColors(cost); len(short) > 0 {
			return short[0]
		}
	}
	if len(g.deckColors) > 0 {
		return g.deckColors[0]
	}
	return mana.ManaColorless
}

// Activation holds the choices that accompany an ability activation.
type Activation struct {
	X           int
	SacrificeID string
}

// ActivateAbility pays the costs of the permanent's activated ability at the
// given index and applies its effects. Mana abilities work at any step;
// everything else is main-step only.
func (g *Game) ActivateAbility(permID string, index int, act Activation) error {
	if g.over {
		return illegalAction("activate", "the game is over")
	}
	p, ok := g.FindPermanent(permID)
	if !ok {
		return illegalAction("activate", "permanent %s is not on the battlefield", permID)
	}
	if index < 0 || index >= len(p.Abilities.Activated) {
		return illegalAction("activate", "%s has no ability %d", p.Name, index)
	}
	ab := p.Abilities.Activated[index]

	if !ab.IsManaAbility() && !g.turn.CurrentStep().IsMain() {
		return illegalAction("activate", "outside a main step")
	}
	if ab.Tap {
		if p.Tapped {
			return illegalAction("activate", "%s is tapped", p.Name)
		}
		if p.IsCreature() && p.EnteredTurn == g.turn.TurnNumber() && !g.HasKeyword(p, "haste") {
			return illegalAction("activate", "%s has summoning sickness", p.Name)
		}
	}
	if ab.ManaCost != nil && !g.CanPayFor(ab.ManaCost, act.X) {
		return illegalAction("activate", "cannot pay %s", ab.ManaCost.String())
	}

	var fodder *Permanent
	if ab.SacCreature {
		fodder = g.resolveSacrifice(ab.SacType, act.SacrificeID, p.ID)
		if fodder == nil {
			return illegalAction("activate", "nothing to sacrifice for %s", p.Name)
		}
	}

	// Costs are all checked; pay them.
	if ab.Tap {
		p.Tapped = true
	}
	if ab.ManaCost != nil {
		if err := g.tapForMana(ab.ManaCost, act.X); err != nil {
			return err
		}
		if !g.pool.Pay(ab.ManaCost, act.X) {
			return illegalAction("activate", "mana pool cannot cover %s", ab.ManaCost.String())
		}
	}
	if fodder != nil {
		g.moveToGraveyard(fodder, true)
	}
	if ab.SacSelf {
		g.moveToGraveyard(p, true)
	}

	evt := rules.NewEvent(rules.EventAbilityActivated, p.ID, p.ID, p.Name)
	evt.Data = ab.Text
	g.publish(evt)

	err := g.applyEffects(ab.Effects, effectContext{
		source:     p,
		sourceID:   p.ID,
		sourceName: p.Name,
		x:          act.X,
	})
	g.CheckStateBasedActions()
	return err
}

// resolveSacrifice picks the permanent to sacrifice for a cost: the named
// choice if given, otherwise the cheapest fodder, tokens first.
func (g *Game) resolveSacrifice(sacType, chosenID, excludeID string) *Permanent {
	wanted := sacType
	if wanted == "" {
		wanted = "creature"
	}
	if chosenID != "" {
		p, ok := g.FindPermanent(chosenID)
		if ok && matchesSacType(p, wanted) {
			return p
		}
		return nil
	}

	var best *Permanent
	for _, p := range g.battlefield {
		if p.ID == excludeID || !matchesSacType(p, wanted) {
			continue
		}
		if best == nil || sacRank(p) < sacRank(best) {
			best = p
		}
	}
	return best
}

func matchesSacType(p *Permanent, sacType string) bool {
	if sacType == "permanent" {
		return true
	}
	return p.IsType(sacType)
}

// sacRank orders sacrifice fodder: tokens before cards, weak before strong.
func sacRank(p *Permanent) int {
	rank := p.SelfPower()*4 + p.ManaValue()
	if !p.Token {
		rank += 100
	}
	return rank
}

// AttachEquipment pays the equip cost and attaches the equipment to one of
// the pilot's creatures.
func (g *Game) AttachEquipment(equipID, hostID string) error {
	if g.over {
		return illegalAction("equip", "the game is over")
	}
	if !g.turn.CurrentStep().IsMain() {
		return illegalAction("equip", "outside a main step")
	}
	equip, ok := g.FindPermanent(equipID)
	if !ok {
		return illegalAction("equip", "equipment %s is not on the battlefield", equipID)
	}
	if equip.Abilities.EquipCost == nil {
		return illegalAction("equip", "%s has no equip cost", equip.Name)
	}
	host, ok := g.FindPermanent(hostID)
	if !ok || !host.IsCreature() {
		return illegalAction("equip", "no creature %s to carry %s", hostID, equip.Name)
	}
	if equip.AttachedTo == host.ID {
		return illegalAction("equip", "%s already carries %s", host.Name, equip.Name)
	}

	cost := equip.Abilities.EquipCost
	if !g.CanPayFor(cost, 0) {
		return illegalAction("equip", "cannot pay %s", cost.String())
	}
	if err := g.tapForMana(cost, 0); err != nil {
		return err
	}
	if !g.pool.Pay(cost, 0) {
		return illegalAction("equip", "mana pool cannot cover %s", cost.String())
	}

	if equip.AttachedTo != "" {
		if old, ok := g.FindPermanent(equip.AttachedTo); ok {
			for i, id := range old.Attachments {
				if id == equip.ID {
					old.Attachments = append(old.Attachments[:i], old.Attachments[i+1:]...)
					break
				}
			}
		}
	}
	equip.AttachedTo = host.ID
	host.Attachments = append(host.Attachments, equip.ID)

	evt := rules.NewEvent(rules.EventEquipmentAttached, host.ID, equip.ID, equip.Name)
	g.publish(evt)
	return nil
}
