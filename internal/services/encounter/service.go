package encounter

//go:generate mockgen -destination=mock/mock_service.go -package=mockencounter -source=service.go

import (
	"context"
	"fmt"
	"strings"

	"github.com/wartrail/wartrail/internal/dice"
	"github.com/wartrail/wartrail/internal/entities"
	gameerr "github.com/wartrail/wartrail/internal/errors"
	"github.com/wartrail/wartrail/internal/interfaces"
	"github.com/wartrail/wartrail/internal/services/combat"
)

// Type identifies one of the five scripted scenarios
type Type string

const (
	TypeCheckpoint    Type = "village_checkpoint"
	TypeMountainPass  Type = "mountain_pass"
	TypeAbandonedBase Type = "abandoned_base"
	TypeNightRaid     Type = "night_raid"
	TypeConvoyAmbush  Type = "convoy_ambush"
)

var catalog = []Type{
	TypeCheckpoint,
	TypeMountainPass,
	TypeAbandonedBase,
	TypeNightRaid,
	TypeConvoyAmbush,
}

// Types returns the full encounter catalog in selection order
func Types() []Type {
	return append([]Type(nil), catalog...)
}

// Service defines the encounter service interface
type Service interface {
	// Resolve plays the named encounter against the character. True
	// means the character came through alive; false means death or a
	// non-recoverable in-scene failure.
	Resolve(ctx context.Context, char *entities.Character, encounter Type) (bool, error)
}

type service struct {
	combatSvc combat.Service
	roller    dice.Roller
	prompter  interfaces.Prompter
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Combat   combat.Service      // Required
	Roller   dice.Roller         // Required
	Prompter interfaces.Prompter // Required
}

// NewService creates a new encounter service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Combat == nil {
		panic("combat service is required")
	}
	if cfg.Roller == nil {
		panic("roller is required")
	}
	if cfg.Prompter == nil {
		panic("prompter is required")
	}
	return &service{
		combatSvc: cfg.Combat,
		roller:    cfg.Roller,
		prompter:  cfg.Prompter,
	}
}

// Resolve implements Service.Resolve
func (s *service) Resolve(ctx context.Context, char *entities.Character, encounter Type) (bool, error) {
	s.prompter.Narrate(fmt.Sprintf("Mission: %s", displayName(encounter)))

	// Intelligence Officers sometimes get a read on the field before
	// committing. Pure flavor, but it consumes a draw, so it stays
	// gated on the role to keep non-Intel runs draw-for-draw stable.
	if char.Role.ID == entities.RoleIntel && s.roller.Chance(40) {
		s.prompter.Narrate("[Intel] Your recon suggests the left route may be less guarded.")
	}

	switch encounter {
	case TypeCheckpoint:
		return s.checkpoint(ctx, char)
	case TypeMountainPass:
		return s.mountainPass(ctx, char)
	case TypeAbandonedBase:
		return s.abandonedBase(ctx, char)
	case TypeNightRaid:
		return s.nightRaid(ctx, char)
	case TypeConvoyAmbush:
		return s.convoyAmbush(ctx, char)
	default:
		return false, gameerr.NotFoundf("unknown encounter type %q", encounter)
	}
}

func (s *service) checkpoint(ctx context.Context, char *entities.Character) (bool, error) {
	s.prompter.Narrate("You approach a small village checkpoint controlled by local militia.")
	choice, err := s.prompter.Choose("How do you proceed?", []string{
		"Try to talk your way through (stealth or diplomacy).",
		"Take the fields around the checkpoint (possible ambush).",
		"Force entry with weapons (high risk).",
	})
	if err != nil {
		return false, err
	}

	switch choice {
	case 0:
		if char.Role.ID == entities.RoleIntel || s.roller.Chance(65) {
			s.prompter.Narrate("You negotiate successfully and pass safely. You find a med pack on the ground.")
			char.AddItem(entities.ItemMedPack)
			return true, nil
		}
		s.prompter.Narrate("The militia grows suspicious. Weapons are raised.")
		return s.fight(ctx, char, 1)
	case 1:
		s.prompter.Narrate("You move through the tall fields — the wind hides your movement.")
		if s.roller.Chance(40) {
			s.prompter.Narrate("Ambush! Hidden fighters open fire from the bushes.")
			return s.fight(ctx, char, 2)
		}
		s.prompter.Narrate("You sneak through unnoticed and loot some spare ammo.")
		char.AddItem(entities.ItemAmmo)
		return true, nil
	default:
		s.prompter.Narrate("You open fire and storm the checkpoint!")
		return s.fight(ctx, char, 3)
	}
}

func (s *service) mountainPass(ctx context.Context, char *entities.Character) (bool, error) {
	s.prompter.Narrate("You face a narrow mountain pass — a perfect ambush site.")
	choice, err := s.prompter.Choose("Your strategy?", []string{
		"Move quickly and stay low.",
		"Use a drone or radio to scout ahead.",
		"Let the Engineer inspect for traps.",
	})
	if err != nil {
		return false, err
	}

	switch choice {
	case 0:
		if char.Role.ID == entities.RoleSniper && s.roller.Chance(50) {
			s.prompter.Narrate("Your sharp eyes spot movement before danger arises. You cross safely.")
			return true, nil
		}
		if s.roller.Chance(30) {
			s.prompter.Narrate("A sniper opens fire — you scramble for cover!")
			return s.fight(ctx, char, 2)
		}
		s.prompter.Narrate("You slip past quietly and find ration packs.")
		char.AddItem(entities.ItemRations)
		return true, nil
	case 1:
		if char.HasItem(entities.ItemEncryptedRadio) || char.Role.ID == entities.RoleIntel {
			s.prompter.Narrate("Your scout relays sniper positions. You avoid danger.")
			return true, nil
		}
		s.prompter.Narrate("No drone available. The noise alerts nearby fighters.")
		return s.fight(ctx, char, 2)
	default:
		if char.Role.ID == entities.RoleEngineer && s.roller.Chance(70) {
			s.prompter.Narrate("You successfully disarm a buried IED. Team morale rises.")
			char.AddItem(entities.ItemIEDComponents)
			return true, nil
		}
		if s.roller.Chance(40) {
			s.prompter.Narrate("A trap triggers — partial explosion injures you.")
			s.damage(char, 1)
			return char.IsAlive(), nil
		}
		s.prompter.Narrate("You cautiously neutralize the traps and move forward.")
		return true, nil
	}
}

func (s *service) abandonedBase(ctx context.Context, char *entities.Character) (bool, error) {
	s.prompter.Narrate("You arrive at an abandoned base. Silence hides danger.")
	choice, err := s.prompter.Choose("Your action?", []string{
		"Search the main building.",
		"Check perimeter and move on.",
		"Camp overnight in the base.",
	})
	if err != nil {
		return false, err
	}

	switch choice {
	case 0:
		if s.roller.Chance(50) {
			s.prompter.Narrate("You find a weapons cache — upgraded rifle acquired.")
			char.AddItem(entities.ItemAssaultRifle)
			return true, nil
		}
		s.prompter.Narrate("Hostile survivors emerge from the shadows!")
		return s.fight(ctx, char, 3)
	case 1:
		s.prompter.Narrate("Perimeter sweep yields a few supplies.")
		char.AddItem(entities.ItemHandfulOfAmmo)
		return true, nil
	default:
		s.prompter.Narrate("You camp for the night... footsteps echo nearby.")
		return s.fight(ctx, char, 2)
	}
}

func (s *service) nightRaid(ctx context.Context, char *entities.Character) (bool, error) {
	s.prompter.Narrate("Night operation: enemy compound targeted for destruction.")
	choice, err := s.prompter.Choose("Your approach?", []string{
		"Lead a frontal assault.",
		"Send a stealth team.",
		"Hold and wait for reinforcements.",
	})
	if err != nil {
		return false, err
	}

	switch choice {
	case 0:
		return s.fight(ctx, char, 3)
	case 1:
		if char.Role.ID == entities.RoleSniper || char.Role.ID == entities.RoleIntel || s.roller.Chance(55) {
			s.prompter.Narrate("Stealth team succeeds — high-value target captured.")
			char.AddItem(entities.ItemIntelDocuments)
			return true, nil
		}
		s.prompter.Narrate("Stealth fails; firefight breaks out.")
		return s.fight(ctx, char, 3)
	default:
		s.prompter.Narrate("You wait for reinforcements under cover.")
		if s.roller.Chance(50) {
			s.prompter.Narrate("Reinforcements arrive; mission success with minimal casualties.")
			return true, nil
		}
		s.prompter.Narrate("Enemies spot your position before backup arrives!")
		return s.fight(ctx, char, 2)
	}
}

func (s *service) convoyAmbush(ctx context.Context, char *entities.Character) (bool, error) {
	s.prompter.Narrate("Your supply convoy is under ambush in a narrow valley.")
	choice, err := s.prompter.Choose("Your decision?", []string{
		"Rush to defend the convoy.",
		"Flank the attackers.",
		"Call in an airstrike.",
	})
	if err != nil {
		return false, err
	}

	switch choice {
	case 0:
		return s.fight(ctx, char, 3)
	case 1:
		if char.Role.ID == entities.RoleSoldier && s.roller.Chance(60) {
			s.prompter.Narrate("You execute a flawless flank, neutralizing enemies.")
			char.AddItem(entities.ItemLootedSupplies)
			return true, nil
		}
		if s.roller.Chance(40) {
			s.prompter.Narrate("Flank fails — enemy fire grazes you.")
			s.damage(char, 1)
			return char.IsAlive(), nil
		}
		s.prompter.Narrate("Flank works, but you sustain minor wounds.")
		s.damage(char, 1)
		return char.IsAlive(), nil
	default:
		if char.HasItem(entities.ItemEncryptedRadio) || char.Role.ID == entities.RoleIntel {
			s.prompter.Narrate("Airstrike called successfully. Enemies eliminated.")
			return true, nil
		}
		s.prompter.Narrate("No communication gear — failed call costs you precious time.")
		return s.fight(ctx, char, 2)
	}
}

// fight delegates to the combat engine and folds its result into the
// encounter's survive/fail signal
func (s *service) fight(ctx context.Context, char *entities.Character, difficulty int) (bool, error) {
	result, err := s.combatSvc.Run(ctx, char, difficulty)
	if err != nil {
		return false, err
	}
	return result.Survived, nil
}

func (s *service) damage(char *entities.Character, amount int) {
	char.TakeDamage(amount)
	s.prompter.Narrate(fmt.Sprintf("You take %d damage. HP is now %d.", amount, char.DisplayHP()))
}

// displayName turns a snake_case encounter id into a title for narration
func displayName(t Type) string {
	words := strings.Split(string(t), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
