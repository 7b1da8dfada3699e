package campaign

//go:generate mockgen -destination=mock/mock_service.go -package=mockcampaign -source=service.go

import (
	"context"
	"fmt"

	"github.com/wartrail/wartrail/internal/dice"
	"github.com/wartrail/wartrail/internal/entities"
	gameerr "github.com/wartrail/wartrail/internal/errors"
	"github.com/wartrail/wartrail/internal/interfaces"
	"github.com/wartrail/wartrail/internal/services/encounter"
	"github.com/wartrail/wartrail/internal/uuid"
)

// Mission count bounds for a single campaign
const (
	MinMissions     = 1
	MaxMissions     = 10
	DefaultMissions = 3
)

// Summary is the end-of-run report handed back to the presentation layer
type Summary struct {
	RunID             string
	Name              string
	Role              string
	MissionsCompleted int
	FinalHP           int
	Inventory         []entities.Item

	// TourCompleted is true when the character survived the full
	// mission sequence and reached extraction
	TourCompleted bool

	// WentHome is true when the extraction draw came up safe
	WentHome bool

	// Survived mirrors the character's final alive state
	Survived bool
}

// Service defines the campaign service interface
type Service interface {
	// Run sequences the requested number of missions and, if the
	// character survives them all, the final extraction draw.
	Run(ctx context.Context, char *entities.Character, missions int) (*Summary, error)
}

type service struct {
	encounterSvc encounter.Service
	roller       dice.Roller
	prompter     interfaces.Prompter
	uuidGen      uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Encounter     encounter.Service   // Required
	Roller        dice.Roller         // Required
	Prompter      interfaces.Prompter // Required
	UUIDGenerator uuid.Generator      // Optional
}

// NewService creates a new campaign service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Encounter == nil {
		panic("encounter service is required")
	}
	if cfg.Roller == nil {
		panic("roller is required")
	}
	if cfg.Prompter == nil {
		panic("prompter is required")
	}

	svc := &service{
		encounterSvc: cfg.Encounter,
		roller:       cfg.Roller,
		prompter:     cfg.Prompter,
		uuidGen:      cfg.UUIDGenerator,
	}
	if svc.uuidGen == nil {
		svc.uuidGen = uuid.NewGoogleUUIDGenerator()
	}
	return svc
}

// Run implements Service.Run
func (s *service) Run(ctx context.Context, char *entities.Character, missions int) (*Summary, error) {
	if missions < MinMissions || missions > MaxMissions {
		return nil, gameerr.InvalidArgumentf("missions must be %d-%d, got %d",
			MinMissions, MaxMissions, missions)
	}

	runID := s.uuidGen.New()
	types := encounter.Types()

	for i := 1; i <= missions; i++ {
		s.prompter.Narrate(fmt.Sprintf("=== Mission %d of %d ===", i, missions))
		next := types[s.roller.Pick(len(types))]

		success, err := s.encounterSvc.Resolve(ctx, char, next)
		if err != nil {
			return nil, err
		}

		if !char.IsAlive() {
			s.prompter.Narrate("You have fallen during this mission.")
			return s.summary(runID, char, false, false), nil
		}

		if success {
			s.prompter.Narrate("Mission accomplished.")
			char.MissionsCompleted++
		} else {
			// A failed mission is not a death; the tour goes on.
			s.prompter.Narrate("Mission had complications, but you push on.")
		}

		// Medics patch themselves up between missions. This is
		// separate from the once-per-run field-heal charge.
		if char.Role.ID == entities.RoleMedic && s.roller.Chance(30) {
			s.prompter.Narrate("You stabilize minor wounds during rest.")
			char.Heal(1)
		}
	}

	wentHome := s.finalExtraction(char)
	return s.summary(runID, char, true, wentHome), nil
}

// finalExtraction is the single end-of-tour draw: 10% instant death,
// 45% safe return, 45% death from sustained injuries.
func (s *service) finalExtraction(char *entities.Character) bool {
	s.prompter.Narrate("All missions complete. Extraction begins...")

	switch draw := s.roller.Range(100); {
	case draw <= 10:
		s.prompter.Narrate("Tragic luck: a sudden fatal shot ends your journey.")
		char.Kill()
		return false
	case draw <= 55:
		s.prompter.Narrate("Against the odds, you make it home safely.")
		return true
	default:
		s.prompter.Narrate("Wounds take their toll during extraction. You succumb.")
		char.Kill()
		return false
	}
}

func (s *service) summary(runID string, char *entities.Character, tourCompleted, wentHome bool) *Summary {
	return &Summary{
		RunID:             runID,
		Name:              char.Name,
		Role:              char.Role.Name,
		MissionsCompleted: char.MissionsCompleted,
		FinalHP:           char.DisplayHP(),
		Inventory:         append([]entities.Item(nil), char.Inventory...),
		TourCompleted:     tourCompleted,
		WentHome:          wentHome,
		Survived:          char.IsAlive(),
	}
}
