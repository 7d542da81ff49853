package rest_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/ironvale/campaign-api/internal/entities/dnd5e"
	"github.com/ironvale/campaign-api/internal/errors"
	"github.com/ironvale/campaign-api/internal/events"
	eventsmock "github.com/ironvale/campaign-api/internal/events/mock"
	"github.com/ironvale/campaign-api/internal/orchestrators/rest"
	characterrepo "github.com/ironvale/campaign-api/internal/repositories/character"
	characterrepomock "github.com/ironvale/campaign-api/internal/repositories/character/mock"
	"github.com/ironvale/campaign-api/internal/rules"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockCharRepo  *characterrepomock.MockRepository
	mockPublisher *eventsmock.MockPublisher
	orchestrator  rest.Service
	ctx           context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCharRepo = characterrepomock.NewMockRepository(s.ctrl)
	s.mockPublisher = eventsmock.NewMockPublisher(s.ctrl)
	s.ctx = context.Background()

	orchestrator, err := rest.NewOrchestrator(&rest.Config{
		CharacterRepo: s.mockCharRepo,
		Rules:         rules.NewSRD(),
		Publisher:     s.mockPublisher,
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
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

func (s *OrchestratorTestSuite) druid() *dnd5e.Character {
	return &dnd5e.Character{
		ID:                  "char_1",
		CampaignID:          "camp_1",
		Name:                "Thalia",
		Level:               5,
		Class:               dnd5e.ClassDruid,
		Subclass:            dnd5e.SubclassCircleOfTheLand,
		CurrentHP:           12,
		MaxHP:               38,
		TempHP:              4,
		SpellcastingMod:     3,
		SpellSlotsRemaining: map[int]int{1: 0, 2: 1, 3: 0},
		WildShapeCharges:    0,
		Version:             1,
	}
}

func (s *OrchestratorTestSuite) TestTakeLongRest() {
	char := s.druid()
	char.Concentration = &dnd5e.Concentration{SpellSlug: "moonbeam"}
	char.WildShapeForm = &dnd5e.BeastForm{BeastRef: "wolf", CurrentHP: 3, MaxHP: 11}
	char.ClassResources = []dnd5e.ClassResource{
		{Key: "bardic-inspiration", Name: "Bardic Inspiration", Current: 0, Max: 3, Recharge: dnd5e.RestTypeLong},
	}
	char.AddRecoveryUsed(rules.RecoveryNaturalRecovery, 2)
	s.expectGet(char)
	s.expectSave(char)
	s.expectPublish(events.TypeRestTaken)

	output, err := s.orchestrator.TakeRest(s.ctx, &rest.TakeRestInput{
		CharacterID: char.ID,
		RestType:    dnd5e.RestTypeLong,
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal("8 hours", output.DurationLabel)
	s.Equal(38, char.CurrentHP)
	s.Equal(0, char.TempHP)
	s.Equal(map[int]int{1: 4, 2: 3, 3: 2}, char.SpellSlotsRemaining)
	s.Nil(char.Concentration)
	s.Nil(char.WildShapeForm)
	s.Equal(2, char.WildShapeCharges)
	s.Equal(3, char.ClassResources[0].Current)
	s.Zero(char.RecoveryUsed(rules.RecoveryNaturalRecovery))
	// 26 HP healed; 8 slot refills (4 at level 1, 2 at level 2, 2 at level 3).
	s.Equal(26, output.Restored["hit_points"])
	s.Equal(8, output.Restored["spell_slots"])
	s.Equal(2, output.Restored["wild_shape_charges"])
	s.Equal(1, output.Restored["class_resources"])
	s.Contains(output.Messages, "hit points restored to maximum")
	s.Contains(output.Messages, "concentration ended")
	s.Contains(output.Messages, "wild shape ended")
	s.Contains(output.Messages, "Bardic Inspiration restored")
}

func (s *OrchestratorTestSuite) TestTakeLongRest_AtFullResourcesIsNoOp() {
	char := s.druid()
	char.CurrentHP = char.MaxHP
	char.TempHP = 0
	char.SpellSlotsRemaining = map[int]int{1: 4, 2: 3, 3: 2}
	char.WildShapeCharges = 2
	s.expectGet(char)
	s.expectSave(char)
	s.expectPublish(events.TypeRestTaken)

	output, err := s.orchestrator.TakeRest(s.ctx, &rest.TakeRestInput{
		CharacterID: char.ID,
		RestType:    dnd5e.RestTypeLong,
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Empty(output.Restored)
	s.Empty(output.Messages)
}

func (s *OrchestratorTestSuite) TestTakeShortRest_LeavesSpellcastingSlots() {
	char := s.druid()
	char.ClassResources = []dnd5e.ClassResource{
		{Key: "channel-divinity", Current: 0, Max: 1, Recharge: dnd5e.RestTypeShort},
		{Key: "rage", Current: 1, Max: 3, Recharge: dnd5e.RestTypeLong},
	}
	s.expectGet(char)
	s.expectSave(char)
	s.expectPublish(events.TypeRestTaken)

	output, err := s.orchestrator.TakeRest(s.ctx, &rest.TakeRestInput{
		CharacterID: char.ID,
		RestType:    dnd5e.RestTypeShort,
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal("1 hour", output.DurationLabel)
	// Spellcasting slots and HP untouched on a short rest.
	s.Equal(map[int]int{1: 0, 2: 1, 3: 0}, char.SpellSlotsRemaining)
	s.Equal(12, char.CurrentHP)
	// Short-recharge resources and wild shape charges refill.
	s.Equal(1, char.ClassResources[0].Current)
	s.Equal(1, char.ClassResources[1].Current)
	s.Equal(2, char.WildShapeCharges)
}

func (s *OrchestratorTestSuite) TestTakeShortRest_WarlockPactSlotsReturn() {
	char := s.druid()
	char.Class = dnd5e.ClassWarlock
	char.Subclass = ""
	char.SpellSlotsRemaining = map[int]int{3: 0}
	s.expectGet(char)
	s.expectSave(char)
	s.expectPublish(events.TypeRestTaken)

	_, err := s.orchestrator.TakeRest(s.ctx, &rest.TakeRestInput{
		CharacterID: char.ID,
		RestType:    dnd5e.RestTypeShort,
	})

	s.NoError(err)
	// Level-5 warlock: two level-3 pact slots.
	s.Equal(map[int]int{3: 2}, char.SpellSlotsRemaining)
}

func (s *OrchestratorTestSuite) TestTakeRest_InvalidType() {
	output, err := s.orchestrator.TakeRest(s.ctx, &rest.TakeRestInput{
		CharacterID: "char_1",
		RestType:    "nap",
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGetRecoveryOptions() {
	char := s.druid()
	char.AddRecoveryUsed(rules.RecoveryNaturalRecovery, 2)
	s.expectGet(char)

	output, err := s.orchestrator.GetRecoveryOptions(s.ctx, &rest.GetRecoveryOptionsInput{
		CharacterID: char.ID,
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Require().Len(output.Abilities, 1)
	opt := output.Abilities[0]
	s.Equal(rules.RecoveryNaturalRecovery, opt.Key)
	// Level 5: budget is 3 slot-levels, 2 already spent.
	s.Equal(3, opt.MaxSlotLevels)
	s.Equal(2, opt.Used)
	s.Equal(1, opt.Remaining)
}

func (s *OrchestratorTestSuite) TestGetRecoveryOptions_NoneForClass() {
	char := s.druid()
	char.Class = dnd5e.ClassFighter
	char.Subclass = ""
	s.expectGet(char)

	output, err := s.orchestrator.GetRecoveryOptions(s.ctx, &rest.GetRecoveryOptionsInput{
		CharacterID: char.ID,
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Empty(output.Abilities)
}

func (s *OrchestratorTestSuite) TestUseRecovery() {
	char := s.druid()
	s.expectGet(char)
	s.expectSave(char)
	s.expectPublish(events.TypeRecoveryUsed)

	output, err := s.orchestrator.UseRecovery(s.ctx, &rest.UseRecoveryInput{
		CharacterID: char.ID,
		AbilityKey:  rules.RecoveryNaturalRecovery,
		SlotLevels:  []int{1, 2},
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal(2, output.Restored)
	s.Equal(1, char.SlotsRemaining(1))
	s.Equal(2, char.SlotsRemaining(2))
	// Budget 3 minus the 3 slot-levels just spent.
	s.Equal(0, output.BudgetRemaining)
	s.Equal(3, char.RecoveryUsed(rules.RecoveryNaturalRecovery))
}

func (s *OrchestratorTestSuite) TestUseRecovery_UnknownAbility() {
	char := s.druid()
	s.expectGet(char)

	output, err := s.orchestrator.UseRecovery(s.ctx, &rest.UseRecoveryInput{
		CharacterID: char.ID,
		AbilityKey:  "song-of-rest",
		SlotLevels:  []int{1},
	})

	s.Error(err)
	s.Nil(output)
	s.Equal(errors.CodeUnknownRecoveryAbility, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestUseRecovery_BudgetExceeded() {
	char := s.druid()
	char.AddRecoveryUsed(rules.RecoveryNaturalRecovery, 2)
	s.expectGet(char)

	output, err := s.orchestrator.UseRecovery(s.ctx, &rest.UseRecoveryInput{
		CharacterID: char.ID,
		AbilityKey:  rules.RecoveryNaturalRecovery,
		SlotLevels:  []int{2},
	})

	s.Error(err)
	s.Nil(output)
	s.Equal(errors.CodeRecoveryLimitExceeded, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestUseRecovery_SlotLevelAboveAbilityCap() {
	char := s.druid()
	char.Level = 17
	s.expectGet(char)

	output, err := s.orchestrator.UseRecovery(s.ctx, &rest.UseRecoveryInput{
		CharacterID: char.ID,
		AbilityKey:  rules.RecoveryNaturalRecovery,
		SlotLevels:  []int{6},
	})

	s.Error(err)
	s.Nil(output)
	s.Equal(errors.CodeInvalidSlotLevel, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestUseRecovery_FullPoolStillSpendsBudget() {
	char := s.druid()
	char.SpellSlotsRemaining[1] = 4
	s.expectGet(char)
	s.expectSave(char)
	s.expectPublish(events.TypeRecoveryUsed)

	output, err := s.orchestrator.UseRecovery(s.ctx, &rest.UseRecoveryInput{
		CharacterID: char.ID,
		AbilityKey:  rules.RecoveryNaturalRecovery,
		SlotLevels:  []int{1},
	})

	s.NoError(err)
	s.Require().NotNil(output)
	// The restore clamped at the maximum but the budget is still charged.
	s.Equal(0, output.Restored)
	s.Equal(2, output.BudgetRemaining)
	s.Equal(1, char.RecoveryUsed(rules.RecoveryNaturalRecovery))
}

func (s *OrchestratorTestSuite) TestSpendResource() {
	char := s.druid()
	char.ClassResources = []dnd5e.ClassResource{
		{Key: "rage", Name: "Rage", Current: 3, Max: 3, Recharge: dnd5e.RestTypeLong},
	}
	s.expectGet(char)
	s.expectSave(char)
	s.expectPublish(events.TypeResourceSpent)

	output, err := s.orchestrator.SpendResource(s.ctx, &rest.SpendResourceInput{
		CharacterID: char.ID,
		ResourceKey: "rage",
		Amount:      2,
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal(1, output.Resource.Current)
	s.Equal(1, char.ClassResources[0].Current)
}

func (s *OrchestratorTestSuite) TestSpendResource_DefaultsToOne() {
	char := s.druid()
	char.ClassResources = []dnd5e.ClassResource{
		{Key: "ki", Name: "Ki Points", Current: 5, Max: 5, Recharge: dnd5e.RestTypeShort},
	}
	s.expectGet(char)
	s.expectSave(char)
	s.expectPublish(events.TypeResourceSpent)

	output, err := s.orchestrator.SpendResource(s.ctx, &rest.SpendResourceInput{
		CharacterID: char.ID,
		ResourceKey: "ki",
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal(4, output.Resource.Current)
}

func (s *OrchestratorTestSuite) TestSpendResource_InsufficientUses() {
	char := s.druid()
	char.ClassResources = []dnd5e.ClassResource{
		{Key: "rage", Name: "Rage", Current: 1, Max: 3, Recharge: dnd5e.RestTypeLong},
	}
	s.expectGet(char)
	// No write, no event.

	output, err := s.orchestrator.SpendResource(s.ctx, &rest.SpendResourceInput{
		CharacterID: char.ID,
		ResourceKey: "rage",
		Amount:      2,
	})

	s.Error(err)
	s.Nil(output)
	s.Equal(errors.CodeNoCharges, errors.GetCode(err))
	s.Equal(1, char.ClassResources[0].Current)
}

func (s *OrchestratorTestSuite) TestSpendResource_UnknownKey() {
	char := s.druid()
	s.expectGet(char)

	output, err := s.orchestrator.SpendResource(s.ctx, &rest.SpendResourceInput{
		CharacterID: char.ID,
		ResourceKey: "sorcery-points",
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsNotFound(err))
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
