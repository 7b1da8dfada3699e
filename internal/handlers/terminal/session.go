package terminal

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/wartrail/wartrail/internal/entities"
	gameerr "github.com/wartrail/wartrail/internal/errors"
	"github.com/wartrail/wartrail/internal/interfaces"
	"github.com/wartrail/wartrail/internal/services/campaign"
	"github.com/wartrail/wartrail/internal/uuid"
)

// Session drives the full interactive run: briefing, character creation,
// the campaign itself, and the closing summary.
type Session struct {
	prompter        interfaces.Prompter
	campaignSvc     campaign.Service
	defaultMissions int
	uuidGen         uuid.Generator
}

// SessionConfig holds configuration for the session
type SessionConfig struct {
	Prompter        interfaces.Prompter // Required
	Campaign        campaign.Service    // Required
	DefaultMissions int                 // Zero means campaign.DefaultMissions
	UUIDGenerator   uuid.Generator      // Optional
}

// NewSession creates a new interactive session
func NewSession(cfg *SessionConfig) *Session {
	if cfg.Prompter == nil {
		panic("prompter is required")
	}
	if cfg.Campaign == nil {
		panic("campaign service is required")
	}

	s := &Session{
		prompter:        cfg.Prompter,
		campaignSvc:     cfg.Campaign,
		defaultMissions: cfg.DefaultMissions,
		uuidGen:         cfg.UUIDGenerator,
	}
	if s.defaultMissions == 0 {
		s.defaultMissions = campaign.DefaultMissions
	}
	if s.uuidGen == nil {
		s.uuidGen = uuid.NewGoogleUUIDGenerator()
	}
	return s
}

// Run plays one complete game. An interrupted session is not an error:
// it narrates a farewell and returns nil so the process can exit clean.
func (s *Session) Run(ctx context.Context) error {
	s.intro()

	name, err := s.prompter.ReadLine("Enter your name, soldier:")
	if err != nil {
		return s.finish(err)
	}
	if name == "" {
		name = "Player"
	}

	role, err := s.pickRole()
	if err != nil {
		return s.finish(err)
	}

	char := entities.NewCharacter(s.uuidGen.New(), name, role)
	s.briefing(char)

	missions, err := s.pickMissionCount()
	if err != nil {
		return s.finish(err)
	}

	s.prompter.Narrate(fmt.Sprintf("Starting %d missions. Good luck, %s.", missions, char.Name))

	result, err := s.campaignSvc.Run(ctx, char, missions)
	if err != nil {
		return s.finish(err)
	}

	switch {
	case !result.TourCompleted:
		s.prompter.Narrate("GAME OVER — you did not survive the campaign.")
	case result.WentHome:
		s.prompter.Narrate("CONGRATULATIONS — you made it home alive!")
	default:
		s.prompter.Narrate("You did not survive the extraction. Your service is remembered.")
	}

	s.summary(result)
	return nil
}

func (s *Session) intro() {
	s.divider()
	s.prompter.Narrate("WELCOME: Wartrail — Text War Adventure")
	s.prompter.Narrate("You will make choices, fight, loot, and try to survive the war.")
	s.prompter.Narrate("Rules snapshot:")
	s.prompter.Narrate(" - You start with 3 HP. Each hit = -1 HP. 0 HP = death.")
	s.prompter.Narrate(" - Each combat has a 10% chance of instant fatal headshot.")
	s.prompter.Narrate(" - If you survive all missions, you may or may not make it home.")
	s.prompter.Narrate(" - Choose your path carefully; every decision can save or end you.")
	s.divider()
}

func (s *Session) pickRole() (*entities.Role, error) {
	roles := entities.Roles()
	options := make([]string, len(roles))
	for i, role := range roles {
		options[i] = fmt.Sprintf("%s — %s", role.Name, role.Description)
	}

	idx, err := s.prompter.Choose("Choose your role:", options)
	if err != nil {
		return nil, err
	}
	return roles[idx], nil
}

func (s *Session) briefing(char *entities.Character) {
	s.divider()
	s.prompter.Narrate(fmt.Sprintf("You are %s, a %s. %s", char.Name, char.Role.Name, char.Role.Description))
	s.prompter.Narrate(fmt.Sprintf("Starting inventory: %s", char.InventoryLine()))
	s.prompter.Narrate(fmt.Sprintf("Special: %s", char.Role.AbilityDesc))
	s.divider()
}

// pickMissionCount re-validates free-text entry to the campaign bounds.
// Empty input takes the configured default.
func (s *Session) pickMissionCount() (int, error) {
	s.prompter.Narrate(fmt.Sprintf("How many missions would you like to attempt? (%d-%d, default %d)",
		campaign.MinMissions, campaign.MaxMissions, s.defaultMissions))
	for {
		line, err := s.prompter.ReadLine("")
		if err != nil {
			return 0, err
		}
		if line == "" {
			return s.defaultMissions, nil
		}
		if n, convErr := strconv.Atoi(line); convErr == nil && n >= campaign.MinMissions && n <= campaign.MaxMissions {
			return n, nil
		}
		s.prompter.Narrate(fmt.Sprintf("Please enter a number between %d and %d.",
			campaign.MinMissions, campaign.MaxMissions))
	}
}

func (s *Session) summary(result *campaign.Summary) {
	s.divider()
	s.prompter.Narrate("=== CAMPAIGN SUMMARY ===")
	s.prompter.Narrate(fmt.Sprintf("Run ID: %s", result.RunID))
	s.prompter.Narrate(fmt.Sprintf("Name: %s", result.Name))
	s.prompter.Narrate(fmt.Sprintf("Role: %s", result.Role))
	s.prompter.Narrate(fmt.Sprintf("Missions completed: %d", result.MissionsCompleted))
	s.prompter.Narrate(fmt.Sprintf("Final HP: %d", result.FinalHP))
	s.prompter.Narrate(fmt.Sprintf("Inventory remaining: [%s]", itemsLine(result.Inventory)))
	if result.Survived {
		s.prompter.Narrate("Status: SURVIVED")
	} else {
		s.prompter.Narrate("Status: DECEASED")
	}
	s.divider()
	s.prompter.Narrate("Thank you for playing Wartrail!")
}

// finish converts an interrupted session into a clean exit
func (s *Session) finish(err error) error {
	if gameerr.IsInterrupted(err) {
		s.prompter.Narrate("")
		s.prompter.Narrate("Game interrupted. Goodbye, soldier.")
		return nil
	}
	return err
}

func (s *Session) divider() {
	s.prompter.Narrate(strings.Repeat("-", 60))
}

func itemsLine(items []entities.Item) string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = string(item)
	}
	return strings.Join(names, ", ")
}
