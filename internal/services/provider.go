package services

import (
	"github.com/wartrail/wartrail/internal/dice"
	"github.com/wartrail/wartrail/internal/interfaces"
	campaignService "github.com/wartrail/wartrail/internal/services/campaign"
	combatService "github.com/wartrail/wartrail/internal/services/combat"
	encounterService "github.com/wartrail/wartrail/internal/services/encounter"
	lootService "github.com/wartrail/wartrail/internal/services/loot"
	"github.com/wartrail/wartrail/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	LootService      lootService.Service
	CombatService    combatService.Service
	EncounterService encounterService.Service
	CampaignService  campaignService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Prompter      interfaces.Prompter // Required
	Roller        dice.Roller         // Optional - defaults to a time-seeded roller
	UUIDGenerator uuid.Generator      // Optional
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	if cfg.Prompter == nil {
		panic("prompter is required")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller(0)
	}

	lootSvc := lootService.NewService(&lootService.ServiceConfig{
		Roller: roller,
	})

	combatSvc := combatService.NewService(&combatService.ServiceConfig{
		Roller:   roller,
		Loot:     lootSvc,
		Prompter: cfg.Prompter,
	})

	encounterSvc := encounterService.NewService(&encounterService.ServiceConfig{
		Combat:   combatSvc,
		Roller:   roller,
		Prompter: cfg.Prompter,
	})

	campaignSvc := campaignService.NewService(&campaignService.ServiceConfig{
		Encounter:     encounterSvc,
		Roller:        roller,
		Prompter:      cfg.Prompter,
		UUIDGenerator: cfg.UUIDGenerator,
	})

	return &Provider{
		LootService:      lootSvc,
		CombatService:    combatSvc,
		EncounterService: encounterSvc,
		CampaignService:  campaignSvc,
	}
}
