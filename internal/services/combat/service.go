package combat

//go:generate mockgen -destination=mock/mock_service.go -package=mockcombat -source=service.go

import (
	"context"
	"fmt"

	"github.com/wartrail/wartrail/internal/dice"
	"github.com/wartrail/wartrail/internal/entities"
	gameerr "github.com/wartrail/wartrail/internal/errors"
	"github.com/wartrail/wartrail/internal/interfaces"
	"github.com/wartrail/wartrail/internal/services/loot"
)

// Difficulty tiers supported by the engine. The tier sets enemy HP and
// skews every combat-odds formula.
const (
	MinDifficulty = 1
	MaxDifficulty = 3
)

// Action is one of the six choices offered each combat round
type Action int

const (
	ActionShootLeft Action = iota
	ActionShootCenter
	ActionShootRight
	ActionTakeCover
	ActionFlee
	ActionSpecial
)

// actionLabels are presented in menu order; indexes match Action values
var actionLabels = []string{
	"Shoot left",
	"Shoot center",
	"Shoot right",
	"Take cover",
	"Attempt to flee",
	"Use special/item",
}

// Result reports how a combat ended. A dead character is a normal result,
// not an error: Survived is false and the caller checks the character.
type Result struct {
	Survived bool
	Fled     bool
	Rounds   int

	// Loot is the scavenged item on a victorious exit, empty otherwise
	Loot entities.Item
}

// Service defines the combat service interface
type Service interface {
	// Run fights the character against an enemy of the given difficulty
	// tier. Errors are reserved for programmatic misuse and interrupted
	// sessions.
	Run(ctx context.Context, char *entities.Character, difficulty int) (*Result, error)
}

type service struct {
	roller   dice.Roller
	lootSvc  loot.Service
	prompter interfaces.Prompter
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Roller   dice.Roller         // Required
	Loot     loot.Service        // Required
	Prompter interfaces.Prompter // Required
}

// NewService creates a new combat service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Roller == nil {
		panic("roller is required")
	}
	if cfg.Loot == nil {
		panic("loot service is required")
	}
	if cfg.Prompter == nil {
		panic("prompter is required")
	}
	return &service{
		roller:   cfg.Roller,
		lootSvc:  cfg.Loot,
		prompter: cfg.Prompter,
	}
}

// HitChance is the pre-clamp accuracy of a shooting action
func HitChance(action Action, accuracyBonus, difficulty int) int {
	chance := 50 + accuracyBonus - difficulty*5
	switch action {
	case ActionShootLeft:
		chance -= 5
	case ActionShootCenter:
		chance += 5
	case ActionShootRight:
		chance -= 2
	}
	return chance
}

// ClampPct bounds a shooting hit chance to the fair range
func ClampPct(pct int) int {
	if pct < 5 {
		return 5
	}
	if pct > 95 {
		return 95
	}
	return pct
}

// Run implements Service.Run
func (s *service) Run(ctx context.Context, char *entities.Character, difficulty int) (*Result, error) {
	if difficulty < MinDifficulty || difficulty > MaxDifficulty {
		return nil, gameerr.InvalidArgumentf("difficulty must be %d-%d, got %d",
			MinDifficulty, MaxDifficulty, difficulty)
	}

	s.prompter.Narrate("Combat initiated!")

	// One flat instant-death check per combat, before the enemy even
	// gets hit points.
	if s.roller.Chance(10) {
		s.prompter.Narrate("A single, well-placed shot ends everything. Instant fatality.")
		char.Kill()
		return &Result{}, nil
	}

	f := &fight{
		svc:        s,
		char:       char,
		difficulty: difficulty,
		enemyHP:    difficulty,
	}
	result := &Result{}

	for f.enemyHP > 0 && char.IsAlive() {
		result.Rounds++
		s.prompter.Narrate(fmt.Sprintf("--- Combat Round %d ---", result.Rounds))
		s.prompter.Narrate(char.StatusLine())

		choice, err := s.prompter.Choose("Your move:", actionLabels)
		if err != nil {
			return nil, err
		}

		switch f.resolve(Action(choice)) {
		case outcomeFled:
			result.Survived = true
			result.Fled = true
			return result, nil
		case outcomeEnemyCounter:
			if f.enemyHP > 0 {
				f.enemyCounter()
			}
		}
	}

	if !char.IsAlive() {
		return result, nil
	}

	result.Survived = true
	s.prompter.Narrate("Enemy neutralized. You survived the battle.")
	if s.roller.Chance(50 + difficulty*10) {
		item := s.lootSvc.Scavenge(ctx)
		s.prompter.Narrate(fmt.Sprintf("You scavenge: %s", item))
		char.AddItem(item)
		result.Loot = item
	}
	return result, nil
}

// stepOutcome tells the round loop what an action resolution decided
type stepOutcome int

const (
	// outcomeNextRound ends the round with no enemy counter; the action
	// already settled any return fire itself
	outcomeNextRound stepOutcome = iota

	// outcomeEnemyCounter lets the enemy return fire if still standing
	outcomeEnemyCounter

	// outcomeFled ends the combat with the character escaped
	outcomeFled
)

// fight carries the per-combat state through the round loop
type fight struct {
	svc        *service
	char       *entities.Character
	difficulty int
	enemyHP    int
}

func (f *fight) resolve(action Action) stepOutcome {
	switch action {
	case ActionFlee:
		return f.resolveFlee()
	case ActionSpecial:
		return f.resolveSpecial()
	case ActionTakeCover:
		return f.resolveCover()
	default:
		return f.resolveShot(action)
	}
}

// resolveFlee attempts to leave the fight. A failed attempt exposes the
// character to a parting shot but ends the round.
func (f *fight) resolveFlee() stepOutcome {
	if f.svc.roller.Chance(30 - f.difficulty*5) {
		f.narrate("You successfully retreat from the fight.")
		return outcomeFled
	}
	f.narrate("Failed to flee! You're caught in the open!")
	if f.svc.roller.Chance(10 + f.difficulty*10) {
		f.narrate("Enemy fires a critical shot while you escape!")
		f.damage(1)
	}
	return outcomeNextRound
}

// resolveSpecial tries role abilities and items in priority order: Medic
// field heal, Sniper one-shot, a held Med Pack, then an Assault Rifle
// burst. A failed attempt converts the round into an enemy-favored no-op:
// the enemy gets its counterattack, the player gets no shot.
func (f *fight) resolveSpecial() stepOutcome {
	switch {
	case f.char.UseHealCharge():
		f.narrate("You use your medical kit to heal yourself mid-fight.")
		f.heal(1)
	case f.char.Role.Ability == entities.AbilityGuaranteedShot && !f.char.SniperShotUsed:
		f.narrate("You steady your breath and land a perfect headshot.")
		f.enemyHP = 0
		f.char.SniperShotUsed = true
	case f.char.RemoveItem(entities.ItemMedPack):
		f.narrate("You quickly use a Med Pack.")
		f.heal(1)
	case f.char.HasItem(entities.ItemAssaultRifle) && f.svc.roller.Chance(60):
		f.narrate("You fire a controlled burst with your upgraded rifle!")
		f.enemyHP = 0
	default:
		f.narrate("No useful action taken — enemy fires!")
		return outcomeEnemyCounter
	}

	// Enemy may retaliate before going down
	if f.enemyHP > 0 && f.svc.roller.Chance(40+f.difficulty*10) {
		f.narrate("Enemy retaliates before going down!")
		f.damage(1)
	}
	return outcomeNextRound
}

// resolveCover trades the player's aimed shot for a defensive round with
// independent return-fire and incoming-fire rolls.
func (f *fight) resolveCover() stepOutcome {
	f.narrate("You dive behind cover.")
	if f.svc.roller.Chance(20 + f.difficulty*10) {
		f.narrate("You return fire from cover and hit the enemy!")
		f.enemyHP--
	}
	if f.svc.roller.Chance(30 + f.difficulty*20) {
		f.narrate("Enemy lands a glancing shot through cover.")
		f.damage(1)
	}
	return outcomeNextRound
}

func (f *fight) resolveShot(action Action) stepOutcome {
	chance := ClampPct(HitChance(action, f.char.AccuracyBonus, f.difficulty))
	if f.svc.roller.Chance(chance) {
		f.narrate("You hit your target!")
		dmg := 1
		if f.char.HasItem(entities.ItemAssaultRifle) && f.svc.roller.Chance(40) {
			dmg = 2
		}
		f.enemyHP -= dmg
		f.narrate(fmt.Sprintf("You dealt %d damage. Enemy HP: %d", dmg, f.enemyHP))
	} else {
		f.narrate("You miss your shot.")
	}
	return outcomeEnemyCounter
}

// enemyCounter is the enemy's return fire: a Soldier may dodge outright,
// a hit carries a small chance of an instant kill, otherwise 1 damage.
func (f *fight) enemyCounter() {
	if f.char.Role.Ability == entities.AbilityDodge && f.svc.roller.Chance(20) {
		f.narrate("You duck just in time — no damage taken.")
		return
	}
	if f.svc.roller.Chance(40 + f.difficulty*15) {
		if f.svc.roller.Chance(3) {
			f.narrate("Critical hit! A lethal headshot ends it instantly.")
			f.char.Kill()
			return
		}
		f.narrate("Enemy bullet hits you.")
		f.damage(1)
		return
	}
	f.narrate("Enemy misses their shot.")
}

func (f *fight) narrate(text string) {
	f.svc.prompter.Narrate(text)
}

func (f *fight) damage(amount int) {
	f.char.TakeDamage(amount)
	f.narrate(fmt.Sprintf("You take %d damage. HP is now %d.", amount, f.char.DisplayHP()))
}

func (f *fight) heal(amount int) {
	f.char.Heal(amount)
	f.narrate(fmt.Sprintf("You heal %d point(s). HP is now %d.", amount, f.char.HP))
}
