package loot

//go:generate mockgen -destination=mock/mock_service.go -package=mockloot -source=service.go

import (
	"context"

	"github.com/wartrail/wartrail/internal/dice"
	"github.com/wartrail/wartrail/internal/entities"
)

// scavengeTable is the fixed set of items worth pulling off a battlefield
var scavengeTable = []entities.Item{
	entities.ItemAmmo,
	entities.ItemMedPack,
	entities.ItemIntelDocuments,
	entities.ItemAssaultRifle,
	entities.ItemRations,
}

// Service defines the loot service interface
type Service interface {
	// Scavenge returns one random item from the battlefield scavenge table
	Scavenge(ctx context.Context) entities.Item
}

type service struct {
	roller dice.Roller
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Roller dice.Roller // Required
}

// NewService creates a new loot service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Roller == nil {
		panic("roller is required")
	}
	return &service{roller: cfg.Roller}
}

// Scavenge returns one random item from the battlefield scavenge table
func (s *service) Scavenge(_ context.Context) entities.Item {
	return scavengeTable[s.roller.Pick(len(scavengeTable))]
}

// Table returns a copy of the scavenge table, mainly for display and tests
func Table() []entities.Item {
	return append([]entities.Item(nil), scavengeTable...)
}
