package encounter_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	ddbmock "github.com/KirkDiggler/ddb-importer/internal/clients/ddb/mock"
	ddbentities "github.com/KirkDiggler/ddb-importer/internal/entities/ddb"
	"github.com/KirkDiggler/ddb-importer/internal/errors"
	"github.com/KirkDiggler/ddb-importer/internal/orchestrators/encounter"
	"github.com/KirkDiggler/ddb-importer/internal/repositories/compendium"
	compendiummock "github.com/KirkDiggler/ddb-importer/internal/repositories/compendium/mock"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockClient     *ddbmock.MockClient
	mockCompendium *compendiummock.MockRepository
	orchestrator   encounter.Service
	ctx            context.Context

	encounters []*ddbentities.Encounter
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = ddbmock.NewMockClient(s.ctrl)
	s.mockCompendium = compendiummock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	var err error
	s.orchestrator, err = encounter.NewOrchestrator(&encounter.Config{
		Client:     s.mockClient,
		Compendium: s.mockCompendium,
	})
	s.Require().NoError(err)

	hard := 3
	s.encounters = []*ddbentities.Encounter{
		{
			ID:         "enc-1",
			Name:       "Goblin Ambush",
			FlavorText: "Arrows from the trees",
			Rewards:    "50 gp",
			Difficulty: &hard,
			Campaign:   &ddbentities.Campaign{ID: 100, Name: "Phandelver"},
			Monsters: []ddbentities.EncounterMonster{
				{ID: 16907, Quantity: 4},
				{ID: 17000, Quantity: 1},
			},
			Players: []ddbentities.EncounterPlayer{
				{ID: 501, Name: "Thia"},
				{ID: 502, Name: "Bron"},
				{ID: 503, Name: "Ghost", Hidden: true},
			},
		},
		{
			ID:       "enc-2",
			Name:     "Dragon",
			Campaign: &ddbentities.Campaign{ID: 200, Name: "Tiamat"},
		},
		{
			ID:   "enc-3",
			Name: "Homeless",
		},
	}
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestNewOrchestrator() {
	testCases := []struct {
		name   string
		config *encounter.Config
	}{
		{name: "nil config", config: nil},
		{name: "missing client", config: &encounter.Config{Compendium: s.mockCompendium}},
		{name: "missing compendium", config: &encounter.Config{Client: s.mockClient}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			svc, err := encounter.NewOrchestrator(tc.config)
			s.Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Nil(svc)
		})
	}
}

func (s *OrchestratorTestSuite) TestListEncounters() {
	campaigns := []*ddbentities.Campaign{{ID: 100}, {ID: 200}}

	testCases := []struct {
		name         string
		campaignID   string
		setupMock    func()
		wantIDs      []string
		wantFiltered bool
	}{
		{
			name:       "no filter",
			campaignID: "",
			setupMock: func() {
				s.mockClient.EXPECT().ListEncounters(s.ctx).Return(s.encounters, nil)
			},
			wantIDs: []string{"enc-1", "enc-2", "enc-3"},
		},
		{
			name:       "filter by known campaign",
			campaignID: " 200 ",
			setupMock: func() {
				s.mockClient.EXPECT().ListEncounters(s.ctx).Return(s.encounters, nil)
				s.mockClient.EXPECT().ListCampaigns(s.ctx).Return(campaigns, nil)
			},
			wantIDs:      []string{"enc-2"},
			wantFiltered: true,
		},
		{
			name:       "unknown campaign returns everything",
			campaignID: "999",
			setupMock: func() {
				s.mockClient.EXPECT().ListEncounters(s.ctx).Return(s.encounters, nil)
				s.mockClient.EXPECT().ListCampaigns(s.ctx).Return(campaigns, nil)
			},
			wantIDs: []string{"enc-1", "enc-2", "enc-3"},
		},
		{
			name:       "non numeric campaign returns everything",
			campaignID: "abc",
			setupMock: func() {
				s.mockClient.EXPECT().ListEncounters(s.ctx).Return(s.encounters, nil)
			},
			wantIDs: []string{"enc-1", "enc-2", "enc-3"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.setupMock()

			out, err := s.orchestrator.ListEncounters(s.ctx, &encounter.ListEncountersInput{CampaignID: tc.campaignID})
			s.Require().NoError(err)

			ids := make([]string, len(out.Encounters))
			for i, e := range out.Encounters {
				ids[i] = e.ID
			}
			s.Equal(tc.wantIDs, ids)
			s.Equal(tc.wantFiltered, out.Filtered)
		})
	}
}

func (s *OrchestratorTestSuite) TestListEncountersClientError() {
	s.mockClient.EXPECT().ListEncounters(s.ctx).Return(nil, errors.Unavailable("API Failure: down"))

	_, err := s.orchestrator.ListEncounters(s.ctx, nil)
	s.Error(err)
	s.True(errors.IsUnavailable(err))
}

func (s *OrchestratorTestSuite) TestNullEncountersAreSkipped() {
	withNulls := []*ddbentities.Encounter{nil, s.encounters[0], nil, s.encounters[1]}

	s.Run("unfiltered", func() {
		s.mockClient.EXPECT().ListEncounters(s.ctx).Return(withNulls, nil)

		out, err := s.orchestrator.ListEncounters(s.ctx, &encounter.ListEncountersInput{})
		s.Require().NoError(err)
		s.Equal([]*ddbentities.Encounter{s.encounters[0], s.encounters[1]}, out.Encounters)
	})

	s.Run("filtered", func() {
		s.mockClient.EXPECT().ListEncounters(s.ctx).Return(withNulls, nil)
		s.mockClient.EXPECT().ListCampaigns(s.ctx).Return([]*ddbentities.Campaign{nil, {ID: 200}}, nil)

		out, err := s.orchestrator.ListEncounters(s.ctx, &encounter.ListEncountersInput{CampaignID: "200"})
		s.Require().NoError(err)
		s.Require().Len(out.Encounters, 1)
		s.Equal("enc-2", out.Encounters[0].ID)
	})

	s.Run("parse", func() {
		s.mockClient.EXPECT().ListEncounters(s.ctx).Return(withNulls, nil)

		out, err := s.orchestrator.ParseEncounter(s.ctx, &encounter.ParseEncounterInput{EncounterID: "enc-2"})
		s.Require().NoError(err)
		s.Equal("Dragon", out.Name)
	})
}

func (s *OrchestratorTestSuite) TestParseEncounter() {
	s.mockClient.EXPECT().ListEncounters(s.ctx).Return(s.encounters, nil)
	s.mockCompendium.EXPECT().
		FindByDDBID(s.ctx, &compendium.FindByDDBIDInput{
			Kind:   compendium.IndexKindMonster,
			DDBIDs: []int{16907, 17000},
		}).
		Return(&compendium.FindByDDBIDOutput{Entries: map[int]compendium.IndexEntry{
			16907: {DDBID: 16907, DocumentID: "goblin0000000001", Name: "Goblin"},
		}}, nil)
	s.mockCompendium.EXPECT().
		FindByDDBID(s.ctx, &compendium.FindByDDBIDInput{
			Kind:   compendium.IndexKindActor,
			DDBIDs: []int{501, 502},
		}).
		Return(&compendium.FindByDDBIDOutput{Entries: map[int]compendium.IndexEntry{
			502: {DDBID: 502, DocumentID: "actorBron0000001", Name: "Bron Ironfist"},
		}}, nil)

	out, err := s.orchestrator.ParseEncounter(s.ctx, &encounter.ParseEncounterInput{EncounterID: " enc-1 "})
	s.Require().NoError(err)

	s.Equal("Goblin Ambush", out.Name)
	s.Equal("Arrows from the trees", out.Summary)
	s.Equal("50 gp", out.Rewards)
	s.Equal("Hard", out.Difficulty.Name)
	s.Equal("orange", out.Difficulty.Color)
	s.Equal(100, out.Campaign.ID)

	s.Equal([]encounter.MatchedMonster{
		{DDBID: 16907, DocumentID: "goblin0000000001", Name: "Goblin", Quantity: 4},
	}, out.GoodMonsters)
	s.Equal([]encounter.MissingMonster{{DDBID: 17000, Quantity: 1}}, out.MissingMonsters)
	s.Equal([]encounter.MatchedCharacter{
		{DDBID: 502, DocumentID: "actorBron0000001", Name: "Bron Ironfist"},
	}, out.GoodCharacters)
	s.Equal([]encounter.MissingCharacter{{DDBID: 501, Name: "Thia"}}, out.MissingCharacters)
	s.True(out.HasMissing())
}

func (s *OrchestratorTestSuite) TestParseEncounterWithoutMonstersOrPlayers() {
	s.mockClient.EXPECT().ListEncounters(s.ctx).Return(s.encounters, nil)

	out, err := s.orchestrator.ParseEncounter(s.ctx, &encounter.ParseEncounterInput{EncounterID: "enc-2"})
	s.Require().NoError(err)
	s.Equal(encounter.DifficultyNone, out.Difficulty)
	s.Empty(out.GoodMonsters)
	s.Empty(out.MissingCharacters)
	s.False(out.HasMissing())
}

func (s *OrchestratorTestSuite) TestParseEncounterNotFound() {
	s.mockClient.EXPECT().ListEncounters(s.ctx).Return(s.encounters, nil)

	_, err := s.orchestrator.ParseEncounter(s.ctx, &encounter.ParseEncounterInput{EncounterID: "enc-404"})
	s.Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestParseEncounterRequiresID() {
	_, err := s.orchestrator.ParseEncounter(s.ctx, &encounter.ParseEncounterInput{EncounterID: "  "})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestParseEncounterIndexFailure() {
	s.mockClient.EXPECT().ListEncounters(s.ctx).Return(s.encounters, nil)
	s.mockCompendium.EXPECT().
		FindByDDBID(s.ctx, gomock.Any()).
		Return(nil, errors.Internal("redis down"))

	_, err := s.orchestrator.ParseEncounter(s.ctx, &encounter.ParseEncounterInput{EncounterID: "enc-1"})
	s.Error(err)
	s.Contains(err.Error(), "failed to look up encounter monsters")
}

func (s *OrchestratorTestSuite) TestDifficultyFor() {
	level := func(v int) *int { return &v }

	s.Equal(encounter.DifficultyNone, encounter.DifficultyFor(nil))
	s.Equal("Easy", encounter.DifficultyFor(level(1)).Name)
	s.Equal("brown", encounter.DifficultyFor(level(2)).Color)
	s.Equal("Deadly", encounter.DifficultyFor(level(4)).Name)
	s.Equal(encounter.DifficultyNone, encounter.DifficultyFor(level(9)))
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
