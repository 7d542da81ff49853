package wildshape_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/ironvale/campaign-api/internal/clients/catalog"
	catalogmock "github.com/ironvale/campaign-api/internal/clients/catalog/mock"
	"github.com/ironvale/campaign-api/internal/entities/dnd5e"
	"github.com/ironvale/campaign-api/internal/errors"
	"github.com/ironvale/campaign-api/internal/events"
	eventsmock "github.com/ironvale/campaign-api/internal/events/mock"
	"github.com/ironvale/campaign-api/internal/orchestrators/wildshape"
	"github.com/ironvale/campaign-api/internal/pkg/clock"
	characterrepo "github.com/ironvale/campaign-api/internal/repositories/character"
	characterrepomock "github.com/ironvale/campaign-api/internal/repositories/character/mock"
	"github.com/ironvale/campaign-api/internal/rules"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockCharRepo  *characterrepomock.MockRepository
	mockCatalog   *catalogmock.MockClient
	mockPublisher *eventsmock.MockPublisher
	orchestrator  wildshape.Service
	ctx           context.Context
	now           time.Time
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCharRepo = characterrepomock.NewMockRepository(s.ctrl)
	s.mockCatalog = catalogmock.NewMockClient(s.ctrl)
	s.mockPublisher = eventsmock.NewMockPublisher(s.ctrl)
	s.ctx = context.Background()
	s.now = time.Date(2025, 3, 15, 20, 0, 0, 0, time.UTC)

	orchestrator, err := wildshape.NewOrchestrator(&wildshape.Config{
		CharacterRepo: s.mockCharRepo,
		Catalog:       s.mockCatalog,
		Rules:         rules.NewSRD(),
		Publisher:     s.mockPublisher,
		Clock:         &clock.Fixed{T: s.now},
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) druid() *dnd5e.Character {
	return &dnd5e.Character{
		ID:               "char_1",
		CampaignID:       "camp_1",
		Name:             "Thalia",
		Level:            5,
		Class:            dnd5e.ClassDruid,
		CurrentHP:        30,
		MaxHP:            38,
		WildShapeCharges: 2,
		Version:          1,
	}
}

func wolf() *catalog.MonsterData {
	return &catalog.MonsterData{
		Slug:            "wolf",
		Name:            "Wolf",
		Size:            "Medium",
		Type:            "beast",
		ArmorClass:      13,
		HitPoints:       11,
		ChallengeRating: 0.25,
		Speed:           catalog.MonsterSpeed{Walk: "40 ft."},
		Abilities:       catalog.MonsterAbilities{Strength: 12, Dexterity: 15, Constitution: 12, Intelligence: 3, Wisdom: 12, Charisma: 6},
		Senses:          catalog.MonsterSenses{PassivePerception: 13},
		Skills:          map[string]int{"perception": 3, "stealth": 4},
		Traits: []catalog.MonsterFeature{
			{Name: "Pack Tactics", Description: "Advantage when an ally is adjacent."},
		},
		Actions: []catalog.MonsterFeature{
			{Name: "Bite", Description: "2d4+2 piercing, DC 11 or prone."},
		},
	}
}

func (s *OrchestratorTestSuite) expectGet(char *dnd5e.Character) {
	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{ID: char.ID}).
		Return(&characterrepo.GetOutput{Character: char}, nil)
}

func (s *OrchestratorTestSuite) expectSave(char *dnd5e.Character) {
	s.mockCharRepo.EXPECT().
		Update(s.ctx, characterrepo.UpdateInput{Character: char}).
		Return(&characterrepo.UpdateOutput{Character: char}, nil)
}

func (s *OrchestratorTestSuite) expectPublish(eventType string) {
	s.mockPublisher.EXPECT().
		Publish(s.ctx, gomock.Cond(func(e events.Event) bool {
			return e.Type == eventType && e.Snapshot != nil
		})).
		Return(nil)
}

func (s *OrchestratorTestSuite) TestGetStatus() {
	char := s.druid()
	s.expectGet(char)

	output, err := s.orchestrator.GetStatus(s.ctx, &wildshape.GetStatusInput{
		CharacterID: char.ID,
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.False(output.Transformed)
	s.Equal(2, output.Charges)
	s.Equal(2, output.MaxCharges)
	s.Equal(0.5, output.Limits.MaxCR)
	s.True(output.Limits.CanSwim)
	s.False(output.Limits.CanFly)
}

func (s *OrchestratorTestSuite) TestListForms_FiltersByLimits() {
	char := s.druid()
	s.expectGet(char)
	s.mockCatalog.EXPECT().
		ListBeasts(s.ctx).
		Return([]*catalog.MonsterData{
			wolf(),
			{Slug: "brown-bear", ChallengeRating: 1, Speed: catalog.MonsterSpeed{Walk: "40 ft."}},
			{Slug: "reef-shark", ChallengeRating: 0.5, Speed: catalog.MonsterSpeed{Swim: "40 ft."}},
			{Slug: "giant-eagle", ChallengeRating: 1, Speed: catalog.MonsterSpeed{Fly: "80 ft."}},
		}, nil)

	output, err := s.orchestrator.ListForms(s.ctx, &wildshape.ListFormsInput{
		CharacterID: char.ID,
	})

	s.NoError(err)
	s.Require().NotNil(output)
	// Level 5: CR <= 0.5, swim allowed, fly not. Bear is over CR, eagle flies.
	s.Require().Len(output.Beasts, 2)
	s.Equal("wolf", output.Beasts[0].Slug)
	s.Equal("reef-shark", output.Beasts[1].Slug)
}

func (s *OrchestratorTestSuite) TestListForms_NotDruid() {
	char := s.druid()
	char.Class = dnd5e.ClassFighter
	s.expectGet(char)

	output, err := s.orchestrator.ListForms(s.ctx, &wildshape.ListFormsInput{
		CharacterID: char.ID,
	})

	s.Error(err)
	s.Nil(output)
	s.Equal(errors.CodeWrongClass, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestTransform() {
	char := s.druid()
	s.expectGet(char)
	s.mockCatalog.EXPECT().GetMonster(s.ctx, "wolf").Return(wolf(), nil)
	s.expectSave(char)
	s.expectPublish(events.TypeWildShapeTransform)

	output, err := s.orchestrator.Transform(s.ctx, &wildshape.TransformInput{
		CharacterID: char.ID,
		BeastSlug:   "wolf",
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal(1, output.ChargesRemaining)
	s.Require().NotNil(char.WildShapeForm)
	s.Equal("wolf", char.WildShapeForm.BeastRef)
	s.Equal(11, char.WildShapeForm.CurrentHP)
	s.Equal(11, char.WildShapeForm.MaxHP)
	s.Equal(s.now.Unix(), char.WildShapeForm.TransformedAt)
	s.Equal(12, char.WildShapeForm.Abilities.Strength)
	s.Equal(15, char.WildShapeForm.Abilities.Dexterity)
	s.Equal(13, char.WildShapeForm.Senses.PassivePerception)
	s.Equal(map[string]int{"perception": 3, "stealth": 4}, char.WildShapeForm.Skills)
	s.Len(char.WildShapeForm.Traits, 1)
	s.Len(char.WildShapeForm.Actions, 1)
	// The druid's own HP is untouched by transforming.
	s.Equal(30, char.CurrentHP)
}

func (s *OrchestratorTestSuite) TestTransform_AlreadyTransformed() {
	char := s.druid()
	char.WildShapeForm = &dnd5e.BeastForm{BeastRef: "wolf"}
	s.expectGet(char)

	output, err := s.orchestrator.Transform(s.ctx, &wildshape.TransformInput{
		CharacterID: char.ID,
		BeastSlug:   "brown-bear",
	})

	s.Error(err)
	s.Nil(output)
	s.Equal(errors.CodeAlreadyTransformed, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestTransform_NoCharges() {
	char := s.druid()
	char.WildShapeCharges = 0
	s.expectGet(char)

	output, err := s.orchestrator.Transform(s.ctx, &wildshape.TransformInput{
		CharacterID: char.ID,
		BeastSlug:   "wolf",
	})

	s.Error(err)
	s.Nil(output)
	s.Equal(errors.CodeNoCharges, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestTransform_CRTooHigh() {
	char := s.druid()
	s.expectGet(char)
	s.mockCatalog.EXPECT().
		GetMonster(s.ctx, "brown-bear").
		Return(&catalog.MonsterData{
			Slug: "brown-bear", Name: "Brown Bear", ChallengeRating: 1,
			Speed: catalog.MonsterSpeed{Walk: "40 ft."},
		}, nil)

	output, err := s.orchestrator.Transform(s.ctx, &wildshape.TransformInput{
		CharacterID: char.ID,
		BeastSlug:   "brown-bear",
	})

	s.Error(err)
	s.Nil(output)
	s.Equal(errors.CodeCRTooHigh, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestTransform_SwimGate() {
	char := s.druid()
	char.Level = 2
	s.expectGet(char)
	s.mockCatalog.EXPECT().
		GetMonster(s.ctx, "crab").
		Return(&catalog.MonsterData{
			Slug: "crab", Name: "Crab", ChallengeRating: 0,
			Speed: catalog.MonsterSpeed{Walk: "20 ft.", Swim: "20 ft."},
		}, nil)

	output, err := s.orchestrator.Transform(s.ctx, &wildshape.TransformInput{
		CharacterID: char.ID,
		BeastSlug:   "crab",
	})

	s.Error(err)
	s.Nil(output)
	s.Equal(errors.CodeSwimNotAllowed, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestTransform_FlyGate() {
	char := s.druid()
	s.expectGet(char)
	s.mockCatalog.EXPECT().
		GetMonster(s.ctx, "bat").
		Return(&catalog.MonsterData{
			Slug: "bat", Name: "Bat", ChallengeRating: 0,
			Speed: catalog.MonsterSpeed{Walk: "5 ft.", Fly: "30 ft."},
		}, nil)

	output, err := s.orchestrator.Transform(s.ctx, &wildshape.TransformInput{
		CharacterID: char.ID,
		BeastSlug:   "bat",
	})

	s.Error(err)
	s.Nil(output)
	s.Equal(errors.CodeFlyNotAllowed, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestTransform_MoonDruidHigherCR() {
	char := s.druid()
	char.Subclass = dnd5e.SubclassCircleOfTheMoon
	s.expectGet(char)
	s.mockCatalog.EXPECT().
		GetMonster(s.ctx, "brown-bear").
		Return(&catalog.MonsterData{
			Slug: "brown-bear", Name: "Brown Bear", HitPoints: 34, ChallengeRating: 1,
			Speed: catalog.MonsterSpeed{Walk: "40 ft."},
		}, nil)
	s.expectSave(char)
	s.expectPublish(events.TypeWildShapeTransform)

	output, err := s.orchestrator.Transform(s.ctx, &wildshape.TransformInput{
		CharacterID: char.ID,
		BeastSlug:   "brown-bear",
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal("brown-bear", output.Form.BeastRef)
}

func (s *OrchestratorTestSuite) TestDamage_FormAbsorbs() {
	char := s.druid()
	char.WildShapeForm = &dnd5e.BeastForm{BeastRef: "wolf", MaxHP: 11, CurrentHP: 11}
	s.expectGet(char)
	s.expectSave(char)
	s.expectPublish(events.TypeWildShapeDamage)

	output, err := s.orchestrator.Damage(s.ctx, &wildshape.DamageInput{
		CharacterID: char.ID,
		Amount:      7,
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.False(output.Reverted)
	s.Equal(4, output.Form.CurrentHP)
	s.Equal(30, char.CurrentHP)
}

func (s *OrchestratorTestSuite) TestDamage_DropsFormAndCarriesExcess() {
	char := s.druid()
	char.WildShapeForm = &dnd5e.BeastForm{BeastRef: "wolf", MaxHP: 11, CurrentHP: 3}
	s.expectGet(char)
	s.expectSave(char)
	s.expectPublish(events.TypeWildShapeDamage)
	s.expectPublish(events.TypeWildShapeRevert)

	output, err := s.orchestrator.Damage(s.ctx, &wildshape.DamageInput{
		CharacterID: char.ID,
		Amount:      10,
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.True(output.Reverted)
	s.Equal(7, output.ExcessDamage)
	s.Nil(output.Form)
	s.Nil(char.WildShapeForm)
	s.Equal(23, char.CurrentHP)
}

func (s *OrchestratorTestSuite) TestDamage_TempHPAbsorbsFirst() {
	char := s.druid()
	char.WildShapeForm = &dnd5e.BeastForm{BeastRef: "wolf", MaxHP: 11, CurrentHP: 11, TempHP: 5}
	s.expectGet(char)
	s.expectSave(char)
	s.expectPublish(events.TypeWildShapeDamage)

	output, err := s.orchestrator.Damage(s.ctx, &wildshape.DamageInput{
		CharacterID: char.ID,
		Amount:      7,
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal(0, output.Form.TempHP)
	s.Equal(9, output.Form.CurrentHP)
}

func (s *OrchestratorTestSuite) TestDamage_NotTransformed() {
	char := s.druid()
	s.expectGet(char)

	output, err := s.orchestrator.Damage(s.ctx, &wildshape.DamageInput{
		CharacterID: char.ID,
		Amount:      5,
	})

	s.Error(err)
	s.Nil(output)
	s.Equal(errors.CodeNotTransformed, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestHeal_CapsAtFormMax() {
	char := s.druid()
	char.WildShapeForm = &dnd5e.BeastForm{BeastRef: "wolf", MaxHP: 11, CurrentHP: 8}
	s.expectGet(char)
	s.expectSave(char)
	s.expectPublish(events.TypeWildShapeHeal)

	output, err := s.orchestrator.Heal(s.ctx, &wildshape.HealInput{
		CharacterID: char.ID,
		Amount:      10,
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal(3, output.Healed)
	s.Equal(11, output.Form.CurrentHP)
}

func (s *OrchestratorTestSuite) TestHeal_AlreadyFullIsNoop() {
	char := s.druid()
	char.WildShapeForm = &dnd5e.BeastForm{BeastRef: "wolf", MaxHP: 11, CurrentHP: 11}
	s.expectGet(char)
	// No write, no event.

	output, err := s.orchestrator.Heal(s.ctx, &wildshape.HealInput{
		CharacterID: char.ID,
		Amount:      5,
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal(0, output.Healed)
}

func (s *OrchestratorTestSuite) TestRevert() {
	char := s.druid()
	char.WildShapeForm = &dnd5e.BeastForm{BeastRef: "wolf", MaxHP: 11, CurrentHP: 2}
	s.expectGet(char)
	s.expectSave(char)
	s.expectPublish(events.TypeWildShapeRevert)

	output, err := s.orchestrator.Revert(s.ctx, &wildshape.RevertInput{
		CharacterID: char.ID,
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal("wolf", output.Form.BeastRef)
	s.Nil(char.WildShapeForm)
	// Voluntary revert never touches the druid's own HP.
	s.Equal(30, char.CurrentHP)
}

func (s *OrchestratorTestSuite) TestRevert_NotTransformed() {
	char := s.druid()
	s.expectGet(char)

	output, err := s.orchestrator.Revert(s.ctx, &wildshape.RevertInput{
		CharacterID: char.ID,
	})

	s.Error(err)
	s.Nil(output)
	s.Equal(errors.CodeNotTransformed, errors.GetCode(err))
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
