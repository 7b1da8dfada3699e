package terminal_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/wartrail/wartrail/internal/entities"
	gameerr "github.com/wartrail/wartrail/internal/errors"
	"github.com/wartrail/wartrail/internal/handlers/terminal"
	"github.com/wartrail/wartrail/internal/services/campaign"
	mockcampaign "github.com/wartrail/wartrail/internal/services/campaign/mock"
	"github.com/wartrail/wartrail/internal/testutils"
)

type fixedUUID string

func (f fixedUUID) New() string { return string(f) }

type sessionFixture struct {
	session  *terminal.Session
	prompter *testutils.ScriptedPrompter
	campaign *mockcampaign.MockService
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	prompter := testutils.NewScriptedPrompter()
	campaignSvc := mockcampaign.NewMockService(ctrl)

	return &sessionFixture{
		session: terminal.NewSession(&terminal.SessionConfig{
			Prompter:      prompter,
			Campaign:      campaignSvc,
			UUIDGenerator: fixedUUID("char-uuid"),
		}),
		prompter: prompter,
		campaign: campaignSvc,
	}
}

func TestSessionRun_HappyPath(t *testing.T) {
	f := newSessionFixture(t)

	f.prompter.QueueLine("Dana") // name
	f.prompter.QueueChoice(2)    // Medic
	f.prompter.QueueLine("")     // mission count: take the default

	var created *entities.Character
	f.campaign.EXPECT().
		Run(gomock.Any(), gomock.Any(), campaign.DefaultMissions).
		DoAndReturn(func(_ context.Context, char *entities.Character, missions int) (*campaign.Summary, error) {
			created = char
			return &campaign.Summary{
				RunID:             "run-9",
				Name:              char.Name,
				Role:              char.Role.Name,
				MissionsCompleted: missions,
				FinalHP:           2,
				Inventory:         char.Inventory,
				TourCompleted:     true,
				WentHome:          true,
				Survived:          true,
			}, nil
		})

	err := f.session.Run(context.Background())
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, "char-uuid", created.ID)
	assert.Equal(t, "Dana", created.Name)
	assert.Equal(t, entities.RoleMedic, created.Role.ID)

	assert.True(t, f.prompter.HasNarration("WELCOME"))
	assert.True(t, f.prompter.HasNarration("You are Dana, a Medic."))
	assert.True(t, f.prompter.HasNarration("CONGRATULATIONS — you made it home alive!"))
	assert.True(t, f.prompter.HasNarration("Run ID: run-9"))
	assert.True(t, f.prompter.HasNarration("Status: SURVIVED"))
	assert.True(t, f.prompter.HasNarration("Thank you for playing Wartrail!"))
}

func TestSessionRun_EmptyNameDefaultsToPlayer(t *testing.T) {
	f := newSessionFixture(t)

	f.prompter.QueueLine("") // name
	f.prompter.QueueChoice(0)
	f.prompter.QueueLine("") // mission count

	f.campaign.EXPECT().
		Run(gomock.Any(), gomock.Any(), campaign.DefaultMissions).
		DoAndReturn(func(_ context.Context, char *entities.Character, _ int) (*campaign.Summary, error) {
			assert.Equal(t, "Player", char.Name)
			return &campaign.Summary{TourCompleted: true, WentHome: true, Survived: true}, nil
		})

	require.NoError(t, f.session.Run(context.Background()))
}

func TestSessionRun_MissionCountRevalidates(t *testing.T) {
	f := newSessionFixture(t)

	f.prompter.QueueLine("Echo")
	f.prompter.QueueChoice(0)
	f.prompter.QueueLine("42", "lots", "0", "5")

	f.campaign.EXPECT().
		Run(gomock.Any(), gomock.Any(), 5).
		Return(&campaign.Summary{TourCompleted: true, WentHome: true, Survived: true}, nil)

	require.NoError(t, f.session.Run(context.Background()))
	assert.True(t, f.prompter.HasNarration("Please enter a number between 1 and 10."))
}

func TestSessionRun_DeathInTheField(t *testing.T) {
	f := newSessionFixture(t)

	f.prompter.QueueLine("Foxtrot")
	f.prompter.QueueChoice(1)
	f.prompter.QueueLine("")

	f.campaign.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&campaign.Summary{
			Name:     "Foxtrot",
			Role:     "Sniper",
			FinalHP:  0,
			Survived: false,
		}, nil)

	require.NoError(t, f.session.Run(context.Background()))
	assert.True(t, f.prompter.HasNarration("GAME OVER — you did not survive the campaign."))
	assert.True(t, f.prompter.HasNarration("Status: DECEASED"))
}

func TestSessionRun_ExtractionDeath(t *testing.T) {
	f := newSessionFixture(t)

	f.prompter.QueueLine("Golf")
	f.prompter.QueueChoice(0)
	f.prompter.QueueLine("")

	f.campaign.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&campaign.Summary{
			TourCompleted: true,
			WentHome:      false,
			Survived:      false,
		}, nil)

	require.NoError(t, f.session.Run(context.Background()))
	assert.True(t, f.prompter.HasNarration("You did not survive the extraction. Your service is remembered."))
}

func TestSessionRun_InterruptedIsACleanExit(t *testing.T) {
	f := newSessionFixture(t)
	f.prompter.Err = gameerr.Interrupted("input stream closed")

	err := f.session.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, f.prompter.HasNarration("Game interrupted. Goodbye, soldier."))
}

func TestSessionRun_CampaignErrorPropagates(t *testing.T) {
	f := newSessionFixture(t)

	f.prompter.QueueLine("Hotel")
	f.prompter.QueueChoice(0)
	f.prompter.QueueLine("")

	f.campaign.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, gameerr.Internal("storage offline"))

	err := f.session.Run(context.Background())
	assert.Error(t, err)
	assert.True(t, gameerr.IsInternal(err))
}
