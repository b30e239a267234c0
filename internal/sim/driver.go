package sim

import (
	"math"

	"go.uber.org/zap"

	"github.com/manacurve/goldfish/internal/ai"
	"github.com/manacurve/goldfish/internal/archetype"
	"github.com/manacurve/goldfish/internal/deck"
	"github.com/manacurve/goldfish/internal/game"
	"github.com/manacurve/goldfish/internal/game/rules"
	"github.com/manacurve/goldfish/internal/game/watchers"
)

// Defaults for a single simulated game.
const (
	DefaultMaxTurns  = 20
	DefaultActionCap = 64
)

// Mulligan policy bounds: opening hands outside this land range go back.
const (
	minKeepableLands = 2
	maxKeepableLands = 5
)

// Params configure one simulated game.
type Params struct {
	Seed         int64
	MaxTurns     int
	ActionCap    int
	Opponents    int
	StartingLife int
	EnhancedAI   bool
	Logger       *zap.Logger
	Trace        *Trace

	// Strategy carries a precomputed classification so a batch classifies
	// the deck once. Nil means classify here.
	Strategy *archetype.Result
}

// RunGame plays one goldfish game to its terminal state and returns its
// record.
func RunGame(d *deck.Deck, p Params) Result {
	if p.MaxTurns <= 0 {
		p.MaxTurns = DefaultMaxTurns
	}
	if p.ActionCap <= 0 {
		p.ActionCap = DefaultActionCap
	}

	strategy := p.Strategy
	if strategy == nil {
		classified := archetype.Classify(d)
		strategy = &classified
	}

	g := game.NewGame(d, game.Options{
		Seed:         p.Seed,
		Opponents:    p.Opponents,
		StartingLife: p.StartingLife,
		Logger:       p.Logger,
	})
	g.SetStrategyCards(strategy.StrategyCards)
	if p.Trace != nil {
		p.Trace.Attach(g)
	}

	var scorer ai.Scorer = ai.Baseline{}
	if p.EnhancedAI {
		scorer = ai.NewEnhanced(p.Logger)
	}

	dr := &driver{
		game:    g,
		scorer:  scorer,
		weights: strategy.Weights,
		params:  p,
	}
	res := dr.play()
	res.Seed = p.Seed
	res.Archetype = strategy.Primary
	return res
}

// driver walks one game through the fixed phase sequence, asking the scorer
// what to do at every legal-action point.
type driver struct {
	game    *game.Game
	scorer  ai.Scorer
	weights archetype.PriorityWeights
	params  Params

	spellsCast  int
	landsPlayed int
	peakPower   int
}

func (d *driver) play() Result {
	g := d.game

	g.DrawOpeningHand()
	for !g.Over() && !d.keepableHand() && g.TakeMulligan() {
	}
	if d.params.Trace != nil && g.Mulligans() > 0 {
		d.params.Trace.Notef("kept after %d mulligans", g.Mulligans())
	}

	for !g.Over() {
		d.runStep(g.Step())
		if g.Over() {
			break
		}
		if g.Step() == rules.StepCleanup {
			if err := g.CheckZoneInvariant(); err != nil {
				return d.failedResult(err)
			}
			if g.Turn() >= d.params.MaxTurns {
				g.EndGame()
				break
			}
		}
		g.AdvanceStep()
	}

	return d.result()
}

func (d *driver) runStep(step rules.Step) {
	g := d.game
	switch step {
	case rules.StepUntap:
		g.BeginTurn()
	case rules.StepUpkeep:
		g.UpkeepStep()
		d.drainPending()
	case rules.StepDraw:
		g.DrawStep()
		d.drainPending()
	case rules.StepMain1, rules.StepMain2:
		d.mainPhase()
		d.notePeakPower()
	case rules.StepDeclareAttackers:
		d.declareAttacks()
		d.drainPending()
	case rules.StepCombatDamage:
		g.ResolveCombatDamage()
		d.drainPending()
	case rules.StepEnd:
		g.EndStep()
		d.drainPending()
	case rules.StepCleanup:
		d.discardToHandSize()
		g.CleanupStep()
	}
}

// drainPending resolves queued triggers until the queue empties or the
// action budget is spent.
func (d *driver) drainPending() {
	g := d.game
	for resolved := 0; g.PendingCount() > 0; resolved++ {
		if resolved >= d.params.ActionCap {
			d.budgetExceeded()
			return
		}
		if _, err := g.ResolveNext(); err != nil && d.params.Logger != nil {
			d.params.Logger.Debug("trigger resolution failed", zap.Error(err))
		}
	}
}

// mainPhase loops on the scorer until it passes or the phase blows its
// action budget.
func (d *driver) mainPhase() {
	g := d.game
	for actions := 0; !g.Over(); actions++ {
		if actions >= d.params.ActionCap {
			d.budgetExceeded()
			return
		}
		if !d.act() {
			return
		}
	}
}

// act performs the single next action: resolving a pending trigger, the
// turn's land drop, attaching idle equipment, activating a value ability,
// or casting the best spell. Returns false to pass the phase.
func (d *driver) act() bool {
	g := d.game

	if g.PendingCount() > 0 {
		if _, err := g.ResolveNext(); err != nil && d.params.Logger != nil {
			d.params.Logger.Debug("trigger resolution failed", zap.Error(err))
		}
		return true
	}

	if g.LandsPlayedThisTurn() == 0 {
		for _, card := range g.Hand() {
			if !card.IsLand() {
				continue
			}
			if err := g.PlayLand(card); err == nil {
				d.landsPlayed++
			}
			break
		}
		if g.LandsPlayedThisTurn() > 0 {
			return true
		}
	}

	if d.attachEquipment() {
		return true
	}
	if d.activateValueAbility() {
		return true
	}
	return d.castBestSpell()
}

// castBestSpell asks the scorer for the best castable candidate that is not
// worth holding and casts it.
func (d *driver) castBestSpell() bool {
	g := d.game
	v := ai.NewView(g, d.weights)

	var cands []ai.Candidate
	for _, c := range ai.Candidates(g) {
		if c.Castable && d.scorer.ShouldHold(c.Card, v) {
			continue
		}
		cands = append(cands, c)
	}
	best, ok := d.scorer.ChooseBest(cands, v)
	if !ok {
		return false
	}

	x := 0
	if best.Cost != nil && best.Cost.X {
		if spare := g.AvailableManaTotal() - best.Cost.ManaValue(); spare > 0 {
			x = spare
		}
	}
	if err := g.CastSpell(best.Card, x); err != nil {
		if d.params.Logger != nil {
			d.params.Logger.Debug("cast rejected",
				zap.String("card", best.Card.Name),
				zap.Error(err))
		}
		return false
	}
	d.spellsCast++
	return true
}

// attachEquipment moves one idle equipment onto the biggest creature, the
// commander winning ties.
func (d *driver) attachEquipment() bool {
	g := d.game

	var host *game.Permanent
	for _, p := range g.Battlefield() {
		if !p.IsCreature() {
			continue
		}
		if host == nil || g.PowerOf(p) > g.PowerOf(host) ||
			(g.PowerOf(p) == g.PowerOf(host) && p.Commander && !host.Commander) {
			host = p
		}
	}
	if host == nil {
		return false
	}

	for _, p := range g.Battlefield() {
		if p.Abilities.EquipCost == nil || p.AttachedTo != "" || p.ID == host.ID {
			continue
		}
		if !g.CanPayFor(p.Abilities.EquipCost, 0) {
			continue
		}
		if err := g.AttachEquipment(p.ID, host.ID); err == nil {
			return true
		}
	}
	return false
}

// activateValueAbility fires one payable non-mana activated ability. Plain
// tap abilities are free value; sacrifice costs only ever spend tokens, so
// the engine never eats its own board.
func (d *driver) activateValueAbility() bool {
	g := d.game
	for _, p := range g.Battlefield() {
		for i, ab := range p.Abilities.Activated {
			if ab.IsManaAbility() || ab.SacSelf {
				continue
			}
			if ab.Tap && p.Tapped {
				continue
			}
			if ab.ManaCost != nil && !g.CanPayFor(ab.ManaCost, 0) {
				continue
			}
			act := game.Activation{}
			if ab.SacCreature {
				fodder := d.expendableToken(p.ID, ab.SacType)
				if fodder == "" {
					continue
				}
				act.SacrificeID = fodder
			}
			if err := g.ActivateAbility(p.ID, i, act); err != nil {
				continue
			}
			return true
		}
	}
	return false
}

// expendableToken finds a token to feed a sacrifice cost.
func (d *driver) expendableToken(outletID, sacType string) string {
	want := sacType
	if want == "" {
		want = "creature"
	}
	for _, p := range d.game.Battlefield() {
		if p.Token && p.ID != outletID && p.IsType(want) {
			return p.ID
		}
	}
	return ""
}

// declareAttacks sends every body that can attack at the healthiest living
// opponent.
func (d *driver) declareAttacks() {
	g := d.game

	target := -1
	for i, opp := range g.Opponents() {
		if opp.Eliminated {
			continue
		}
		if target == -1 || opp.Life > g.Opponents()[target].Life {
			target = i
		}
	}
	if target == -1 {
		return
	}

	var ids []string
	for _, p := range g.Battlefield() {
		if g.CanAttack(p) {
			ids = append(ids, p.ID)
		}
	}
	if len(ids) == 0 {
		return
	}
	if err := g.DeclareAttackers(ids, target); err != nil && d.params.Logger != nil {
		d.params.Logger.Debug("attack declaration failed", zap.Error(err))
	}
}

// discardToHandSize pitches down to the hand limit at cleanup: surplus
// lands first, then whatever the scorer values least.
func (d *driver) discardToHandSize() {
	g := d.game
	for g.HandCount() > game.MaxHandSize {
		if err := g.Discard(d.discardIndex()); err != nil {
			return
		}
	}
}

func (d *driver) discardIndex() int {
	g := d.game
	hand := g.Hand()

	lands := 0
	firstLand := -1
	for i, card := range hand {
		if card.IsLand() {
			lands++
			if firstLand == -1 {
				firstLand = i
			}
		}
	}
	if lands > maxKeepableLands {
		return firstLand
	}

	v := ai.NewView(g, d.weights)
	worst, worstScore := 0, math.Inf(1)
	for i, card := range hand {
		if card.IsLand() {
			continue
		}
		score := d.scorer.Score(ai.Candidate{Card: card, Cost: &card.Cost}, v)
		if score < worstScore {
			worst, worstScore = i, score
		}
	}
	if math.IsInf(worstScore, 1) && firstLand >= 0 {
		return firstLand
	}
	return worst
}

// budgetExceeded logs the blown phase budget and drops whatever triggers
// were still queued. The phase itself still advances.
func (d *driver) budgetExceeded() {
	g := d.game
	dropped := g.DiscardPending()
	if d.params.Logger != nil {
		d.params.Logger.Warn("phase action budget exceeded",
			zap.Int("turn", g.Turn()),
			zap.String("step", g.Step().String()),
			zap.Int("cap", d.params.ActionCap),
			zap.Int("dropped", dropped))
	}
	if d.params.Trace != nil {
		d.params.Trace.Notef("  action budget hit, %d pending dropped", dropped)
	}
}

func (d *driver) notePeakPower() {
	total := 0
	for _, p := range d.game.Battlefield() {
		if p.IsCreature() {
			total += d.game.PowerOf(p)
		}
	}
	if total > d.peakPower {
		d.peakPower = total
	}
}

func (d *driver) keepableHand() bool {
	lands := 0
	for _, card := range d.game.Hand() {
		if card.IsLand() {
			lands++
		}
	}
	return lands >= minKeepableLands && lands <= maxKeepableLands
}

func (d *driver) result() Result {
	g := d.game
	res := Result{
		Turns:          g.Turn(),
		Won:            g.Won(),
		DeckedOut:      g.DeckedOut(),
		OpponentsSlain: len(g.Opponents()) - len(g.LivingOpponents()),
		Mulligans:      g.Mulligans(),
		PeakBoardPower: d.peakPower,
		SpellsCast:     d.spellsCast,
		LandsPlayed:    d.landsPlayed,
	}

	reg := g.WatcherRegistry()
	if w, ok := reg.GetWatcher("DamageDealtWatcher").(*watchers.DamageDealtWatcher); ok {
		res.TotalDamage = w.Total()
		res.CombatDamage = w.Combat()
		res.NoncombatDamage = w.Noncombat()
	}
	if w, ok := reg.GetWatcher("CardsDrawnWatcher").(*watchers.CardsDrawnWatcher); ok {
		res.CardsDrawn = w.Total()
	}
	if w, ok := reg.GetWatcher("TokensCreatedWatcher").(*watchers.TokensCreatedWatcher); ok {
		res.TokensCreated = w.Total()
	}
	if w, ok := reg.GetWatcher("ManaWastedWatcher").(*watchers.ManaWastedWatcher); ok {
		res.ManaWasted = w.Total()
	}
	return res
}

func (d *driver) failedResult(err error) Result {
	if d.params.Logger != nil {
		d.params.Logger.Error("game abandoned", zap.Error(err))
	}
	res := d.result()
	res.Failed = true
	res.FailureCause = err.Error()
	return res
}
