package importer_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/ddb-importer/internal/clients/ddb"
	ddbmock "github.com/KirkDiggler/ddb-importer/internal/clients/ddb/mock"
	"github.com/KirkDiggler/ddb-importer/internal/clients/srd"
	srdmock "github.com/KirkDiggler/ddb-importer/internal/clients/srd/mock"
	ddbentities "github.com/KirkDiggler/ddb-importer/internal/entities/ddb"
	"github.com/KirkDiggler/ddb-importer/internal/entities/document"
	"github.com/KirkDiggler/ddb-importer/internal/enrichers"
	"github.com/KirkDiggler/ddb-importer/internal/errors"
	"github.com/KirkDiggler/ddb-importer/internal/orchestrators/importer"
	"github.com/KirkDiggler/ddb-importer/internal/parsers/activity"
	"github.com/KirkDiggler/ddb-importer/internal/parsers/feature"
	"github.com/KirkDiggler/ddb-importer/internal/parsers/spell"
	"github.com/KirkDiggler/ddb-importer/internal/pkg/clock"
	"github.com/KirkDiggler/ddb-importer/internal/pkg/idgen"
	"github.com/KirkDiggler/ddb-importer/internal/repositories/compendium"
	compendiummock "github.com/KirkDiggler/ddb-importer/internal/repositories/compendium/mock"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockDDB        *ddbmock.MockClient
	mockSRD        *srdmock.MockClient
	mockCompendium *compendiummock.MockRepository
	bus            events.EventBus
	published      []events.Event
	spellParser    *spell.Parser
	featureParser  *feature.Parser
	orchestrator   importer.Service
	ctx            context.Context
	now            time.Time
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockDDB = ddbmock.NewMockClient(s.ctrl)
	s.mockSRD = srdmock.NewMockClient(s.ctrl)
	s.mockCompendium = compendiummock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()
	s.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	s.published = nil
	s.bus = events.NewBus()
	s.bus.SubscribeFunc(importer.EventDocumentImported, 0, func(_ context.Context, e events.Event) error {
		s.published = append(s.published, e)
		return nil
	})

	builder, err := activity.NewBuilder(&activity.Config{IDGenerator: idgen.NewSequential("act")})
	s.Require().NoError(err)

	spellHints, err := enrichers.New(&enrichers.Config{Base: enrichers.Spells()})
	s.Require().NoError(err)
	s.spellParser, err = spell.NewParser(&spell.Config{Hints: spellHints, ActivityBuilder: builder})
	s.Require().NoError(err)

	featureHints, err := enrichers.New(&enrichers.Config{Base: enrichers.Features()})
	s.Require().NoError(err)
	s.featureParser, err = feature.NewParser(&feature.Config{Hints: featureHints, ActivityBuilder: builder})
	s.Require().NoError(err)

	s.orchestrator = s.newOrchestrator(s.mockDDB, s.mockSRD)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) newOrchestrator(ddbClient ddb.Client, srdClient srd.Client) importer.Service {
	svc, err := importer.NewOrchestrator(&importer.Config{
		DDBClient:      ddbClient,
		SRDClient:      srdClient,
		Compendium:     s.mockCompendium,
		SpellParser:    s.spellParser,
		FeatureParser:  s.featureParser,
		EventBus:       s.bus,
		RunIDGenerator: idgen.NewSequential("run"),
		Clock:          &clock.Fixed{At: s.now},
	})
	s.Require().NoError(err)
	return svc
}

func spellEntry(name string, def func(*ddbentities.SpellDefinition)) *ddbentities.Spell {
	d := &ddbentities.SpellDefinition{
		Name:        name,
		Level:       1,
		School:      "Evocation",
		Description: "A creature of your choice within range regains hit points.",
		Range:       ddbentities.Range{Origin: ddbentities.RangeOriginTouch},
	}
	if def != nil {
		def(d)
	}
	return &ddbentities.Spell{UsesSpellSlot: true, Definition: d}
}

func (s *OrchestratorTestSuite) TestNewOrchestrator() {
	testCases := []struct {
		name   string
		config *importer.Config
	}{
		{name: "nil config", config: nil},
		{name: "no clients", config: &importer.Config{
			Compendium:    s.mockCompendium,
			SpellParser:   s.spellParser,
			FeatureParser: s.featureParser,
			EventBus:      s.bus,
		}},
		{name: "missing bus", config: &importer.Config{
			DDBClient:     s.mockDDB,
			Compendium:    s.mockCompendium,
			SpellParser:   s.spellParser,
			FeatureParser: s.featureParser,
		}},
		{name: "missing compendium", config: &importer.Config{
			DDBClient:     s.mockDDB,
			SpellParser:   s.spellParser,
			FeatureParser: s.featureParser,
			EventBus:      s.bus,
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			svc, err := importer.NewOrchestrator(tc.config)
			s.Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Nil(svc)
		})
	}
}

func (s *OrchestratorTestSuite) TestImportSpellsFromDDB() {
	s.mockDDB.EXPECT().
		ListClassSpells(s.ctx, &ddb.ListClassSpellsInput{ClassName: "Cleric", CampaignID: "100"}).
		Return([]*ddbentities.Spell{
			spellEntry("Cure Wounds", nil),
			{ID: 9},
			spellEntry("Bless", nil),
		}, nil)
	s.mockCompendium.EXPECT().
		Put(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *compendium.PutInput) (*compendium.PutOutput, error) {
			return &compendium.PutOutput{Key: compendium.GetKey(input.Item.Type, input.Item.ID)}, nil
		}).
		Times(2)

	out, err := s.orchestrator.ImportSpells(s.ctx, &importer.ImportSpellsInput{
		ClassName:  "Cleric",
		CampaignID: "100",
	})
	s.Require().NoError(err)

	s.Equal("run_1", out.RunID)
	s.Equal(importer.SourceDDB, out.Source)
	s.Equal(3, out.Fetched)
	s.Equal(2, out.Parsed)
	s.Equal(2, out.Stored)
	s.Equal(1, out.Failed())
	s.Equal(s.now, out.StartedAt)
	s.Equal(s.now, out.FinishedAt)
	s.Require().Len(out.Items, 2)
	s.Equal("Cure Wounds", out.Items[0].Name)

	s.Require().Len(s.published, 2)
	event := s.published[0]
	s.Equal(importer.EventDocumentImported, event.Type())
	s.Equal(out.Items[0].ID, event.Source().GetID())
	runID, ok := event.Context().Get(importer.ContextKeyRunID)
	s.True(ok)
	s.Equal("run_1", runID)
	kind, ok := event.Context().Get(importer.ContextKeyKind)
	s.True(ok)
	s.Equal("spell", kind)
}

func (s *OrchestratorTestSuite) TestImportSpellsStoreFailure() {
	s.mockDDB.EXPECT().
		ListClassSpells(s.ctx, gomock.Any()).
		Return([]*ddbentities.Spell{spellEntry("Cure Wounds", nil)}, nil)
	s.mockCompendium.EXPECT().
		Put(s.ctx, gomock.Any()).
		Return(nil, errors.Internal("redis down"))

	out, err := s.orchestrator.ImportSpells(s.ctx, &importer.ImportSpellsInput{ClassName: "Cleric"})
	s.Require().NoError(err)
	s.Equal(1, out.Parsed)
	s.Equal(0, out.Stored)
	s.Require().Len(out.Failures, 1)
	s.Equal("Cure Wounds", out.Failures[0].Name)
	s.Contains(out.Failures[0].Error, "redis down")
	s.Empty(s.published)
}

func (s *OrchestratorTestSuite) TestImportSpellsDryRun() {
	s.mockDDB.EXPECT().
		ListClassSpells(s.ctx, gomock.Any()).
		Return([]*ddbentities.Spell{spellEntry("Cure Wounds", nil)}, nil)

	out, err := s.orchestrator.ImportSpells(s.ctx, &importer.ImportSpellsInput{ClassName: "Cleric", DryRun: true})
	s.Require().NoError(err)
	s.Equal(1, out.Parsed)
	s.Equal(0, out.Stored)
	s.Empty(s.published)
}

func (s *OrchestratorTestSuite) TestImportSpellsFromSRD() {
	s.mockSRD.EXPECT().
		ListSpells(s.ctx, &srd.ListSpellsInput{ClassName: "wizard"}).
		Return([]*ddbentities.Spell{spellEntry("Shield", func(d *ddbentities.SpellDefinition) {
			d.Range = ddbentities.Range{Origin: ddbentities.RangeOriginSelf}
		})}, nil)
	s.mockCompendium.EXPECT().Put(s.ctx, gomock.Any()).Return(&compendium.PutOutput{}, nil)

	out, err := s.orchestrator.ImportSpells(s.ctx, &importer.ImportSpellsInput{
		Source:    importer.SourceSRD,
		ClassName: "wizard",
	})
	s.Require().NoError(err)
	s.Equal(importer.SourceSRD, out.Source)
	s.Equal(1, out.Stored)

	s.Require().Len(s.published, 1)
	source, ok := s.published[0].Context().Get(importer.ContextKeySource)
	s.True(ok)
	s.Equal("srd", source)
}

func (s *OrchestratorTestSuite) TestImportSpellsErrors() {
	testCases := []struct {
		name      string
		svc       func() importer.Service
		input     *importer.ImportSpellsInput
		setupMock func()
		check     func(error) bool
	}{
		{
			name:  "nil input",
			svc:   func() importer.Service { return s.orchestrator },
			input: nil,
			check: errors.IsInvalidArgument,
		},
		{
			name:  "unknown source",
			svc:   func() importer.Service { return s.orchestrator },
			input: &importer.ImportSpellsInput{Source: "open5e"},
			check: errors.IsInvalidArgument,
		},
		{
			name:  "ddb class required",
			svc:   func() importer.Service { return s.orchestrator },
			input: &importer.ImportSpellsInput{},
			check: errors.IsInvalidArgument,
		},
		{
			name:  "srd not configured",
			svc:   func() importer.Service { return s.newOrchestrator(s.mockDDB, nil) },
			input: &importer.ImportSpellsInput{Source: importer.SourceSRD},
			check: func(err error) bool { return errors.GetCode(err) == errors.CodeFailedPrecondition },
		},
		{
			name:  "fetch failure",
			svc:   func() importer.Service { return s.orchestrator },
			input: &importer.ImportSpellsInput{ClassName: "Bard"},
			setupMock: func() {
				s.mockDDB.EXPECT().ListClassSpells(s.ctx, gomock.Any()).Return(nil, errors.Unavailable("API Failure: maintenance"))
			},
			check: errors.IsUnavailable,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			if tc.setupMock != nil {
				tc.setupMock()
			}
			out, err := tc.svc().ImportSpells(s.ctx, tc.input)
			s.Error(err)
			s.True(tc.check(err), err.Error())
			s.Nil(out)
		})
	}
}

func (s *OrchestratorTestSuite) TestImportFeatures() {
	s.mockCompendium.EXPECT().
		Put(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *compendium.PutInput) (*compendium.PutOutput, error) {
			s.Equal(document.ItemTypeFeat, input.Item.Type)
			return &compendium.PutOutput{}, nil
		})

	out, err := s.orchestrator.ImportFeatures(s.ctx, &importer.ImportFeaturesInput{
		Features: []*ddbentities.Feature{
			{ID: 1, Name: "Darkvision", Description: "You can see in dim light."},
			{ID: 2},
		},
	})
	s.Require().NoError(err)
	s.Equal(2, out.Fetched)
	s.Equal(1, out.Stored)
	s.Equal(1, out.Failed())
	s.Require().Len(s.published, 1)
	kind, _ := s.published[0].Context().Get(importer.ContextKeyKind)
	s.Equal("feat", kind)
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
