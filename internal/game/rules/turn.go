package rules

import (
	"fmt"
)

// Phase represents the broad phases of a simulated turn.
type Phase int

const (
	PhaseBeginning Phase = iota
	PhasePrecombatMain
	PhaseCombat
	PhasePostcombatMain
	PhaseEnding
)

var phaseNames = map[Phase]string{
	PhaseBeginning:      "BEGINNING",
	PhasePrecombatMain:  "PRECOMBAT_MAIN",
	PhaseCombat:         "COMBAT",
	PhasePostcombatMain: "POSTCOMBAT_MAIN",
	PhaseEnding:         "ENDING",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PHASE_%d", int(p))
}

// Step represents the individual steps that comprise a turn.
type Step int

const (
	StepUntap Step = iota
	StepUpkeep
	StepDraw
	StepMain1
	StepDeclareAttackers
	StepCombatDamage
	StepMain2
	StepEnd
	StepCleanup
)

var stepNames = map[Step]string{
	StepUntap:            "UNTAP",
	StepUpkeep:           "UPKEEP",
	StepDraw:             "DRAW",
	StepMain1:            "MAIN1",
	StepDeclareAttackers: "DECLARE_ATTACKERS",
	StepCombatDamage:     "COMBAT_DAMAGE",
	StepMain2:            "MAIN2",
	StepEnd:              "END",
	StepCleanup:          "CLEANUP",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("STEP_%d", int(s))
}

// IsMain reports whether the step is one of the two main steps, where
// sorcery-speed actions happen.
func (s Step) IsMain() bool {
	return s == StepMain1 || s == StepMain2
}

type turnEntry struct {
	phase Phase
	step  Step
}

// turnSequence is the fixed turn structure. Goldfish games have no blockers
// and no first strike step; combat is declare then damage.
var turnSequence = []turnEntry{
	{PhaseBeginning, StepUntap},
	{PhaseBeginning, StepUpkeep},
	{PhaseBeginning, StepDraw},
	{PhasePrecombatMain, StepMain1},
	{PhaseCombat, StepDeclareAttackers},
	{PhaseCombat, StepCombatDamage},
	{PhasePostcombatMain, StepMain2},
	{PhaseEnding, StepEnd},
	{PhaseEnding, StepCleanup},
}

// TurnManager tracks progression through the fixed turn structure.
type TurnManager struct {
	orderIndex int
	turnNumber int
}

// NewTurnManager creates a new turn manager initialized at turn 1, untap step.
func NewTurnManager() *TurnManager {
	return &TurnManager{
		orderIndex: 0,
		turnNumber: 1,
	}
}

// CurrentPhase returns the phase currently in progress.
func (tm *TurnManager) CurrentPhase() Phase {
	return turnSequence[tm.orderIndex].phase
}

// CurrentStep returns the step currently in progress.
func (tm *TurnManager) CurrentStep() Step {
	return turnSequence[tm.orderIndex].step
}

// TurnNumber returns the current turn number (1-based).
func (tm *TurnManager) TurnNumber() int {
	return tm.turnNumber
}

// AdvanceStep advances to the next step in the turn structure. When the end
// of the structure is reached the turn number is incremented and progression
// wraps to the untap step. Returns the new phase and step.
func (tm *TurnManager) AdvanceStep() (Phase, Step) {
	tm.orderIndex++
	if tm.orderIndex >= len(turnSequence) {
		tm.orderIndex = 0
		tm.turnNumber++
	}
	return tm.CurrentPhase(), tm.CurrentStep()
}

// StepsPerTurn returns the length of the turn structure.
func StepsPerTurn() int {
	return len(turnSequence)
}
