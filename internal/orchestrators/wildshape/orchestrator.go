// Package wildshape implements the druid transformation state machine:
// eligibility gates, the active-form statblock, damage routing, and revert.
package wildshape

//go:generate mockgen -destination=mock/mock_service.go -package=wildshapemock github.com/ironvale/campaign-api/internal/orchestrators/wildshape Service

import (
	"context"
	"log/slog"

	"github.com/ironvale/campaign-api/internal/clients/catalog"
	"github.com/ironvale/campaign-api/internal/entities/dnd5e"
	"github.com/ironvale/campaign-api/internal/errors"
	"github.com/ironvale/campaign-api/internal/events"
	"github.com/ironvale/campaign-api/internal/pkg/clock"
	"github.com/ironvale/campaign-api/internal/repositories/character"
	"github.com/ironvale/campaign-api/internal/rules"
)

// Service defines the interface for wild shape operations
type Service interface {
	GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error)
	ListForms(ctx context.Context, input *ListFormsInput) (*ListFormsOutput, error)
	Transform(ctx context.Context, input *TransformInput) (*TransformOutput, error)
	Damage(ctx context.Context, input *DamageInput) (*DamageOutput, error)
	Heal(ctx context.Context, input *HealInput) (*HealOutput, error)
	Revert(ctx context.Context, input *RevertInput) (*RevertOutput, error)
}

// Config holds the dependencies for the wild shape orchestrator
type Config struct {
	CharacterRepo character.Repository
	Catalog       catalog.Client
	Rules         rules.Provider
	Publisher     events.Publisher
	Clock         clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Rules == nil {
		vb.RequiredField("Rules")
	}
	if c.Publisher == nil {
		vb.RequiredField("Publisher")
	}

	return vb.Build()
}

type orchestrator struct {
	charRepo  character.Repository
	catalog   catalog.Client
	rules     rules.Provider
	publisher events.Publisher
	clock     clock.Clock
}

// NewOrchestrator creates a new wild shape orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		charRepo:  cfg.CharacterRepo,
		catalog:   cfg.Catalog,
		rules:     cfg.Rules,
		publisher: cfg.Publisher,
		clock:     c,
	}, nil
}

func (o *orchestrator) getCharacter(ctx context.Context, id string) (*dnd5e.Character, error) {
	if id == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}
	out, err := o.charRepo.Get(ctx, character.GetInput{ID: id})
	if err != nil {
		return nil, err
	}
	return out.Character, nil
}

func (o *orchestrator) saveCharacter(ctx context.Context, char *dnd5e.Character) error {
	_, err := o.charRepo.Update(ctx, character.UpdateInput{Character: char})
	return err
}

func (o *orchestrator) publish(ctx context.Context, eventType string, char *dnd5e.Character, payload map[string]interface{}) {
	err := o.publisher.Publish(ctx, events.Event{
		Type:        eventType,
		CampaignID:  char.CampaignID,
		CharacterID: char.ID,
		Snapshot:    char,
		Payload:     payload,
	})
	if err != nil {
		slog.Warn("failed to publish event",
			"type", eventType,
			"character_id", char.ID,
			"error", err,
		)
	}
}

// GetStatus reads transformation state. Works for non-druids too: they
// report zero charges and a zero-CR limit.
func (o *orchestrator) GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error) {
	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	out := &GetStatusOutput{
		Transformed: char.IsTransformed(),
		Form:        char.WildShapeForm,
		Charges:     char.WildShapeCharges,
	}
	if char.Class == dnd5e.ClassDruid {
		out.MaxCharges = o.rules.WildShapeMaxCharges(char.Level)
		out.Limits = o.rules.WildShapeLimits(char.Level, char.Subclass)
	}
	return out, nil
}

// ListForms returns the beasts this druid can currently assume, filtered by
// the level-derived CR and movement gates.
func (o *orchestrator) ListForms(ctx context.Context, input *ListFormsInput) (*ListFormsOutput, error) {
	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	if char.Class != dnd5e.ClassDruid {
		return nil, errors.WrongClassf("only druids can wild shape; %s cannot", char.Class)
	}

	limits := o.rules.WildShapeLimits(char.Level, char.Subclass)

	beasts, err := o.catalog.ListBeasts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list beasts")
	}

	eligible := make([]*catalog.MonsterData, 0, len(beasts))
	for _, beast := range beasts {
		if beastEligible(beast, limits) {
			eligible = append(eligible, beast)
		}
	}

	return &ListFormsOutput{
		Beasts: eligible,
		Limits: limits,
	}, nil
}

// newForm snapshots a statblock into a form at full form HP.
func newForm(beast *catalog.MonsterData, now int64) *dnd5e.BeastForm {
	form := &dnd5e.BeastForm{
		BeastRef:        beast.Slug,
		Name:            beast.Name,
		Size:            beast.Size,
		MaxHP:           beast.HitPoints,
		CurrentHP:       beast.HitPoints,
		ArmorClass:      beast.ArmorClass,
		ChallengeRating: beast.ChallengeRating,
		Speed: dnd5e.FormSpeed{
			Walk: beast.Speed.Walk,
			Swim: beast.Speed.Swim,
			Fly:  beast.Speed.Fly,
		},
		Abilities: dnd5e.FormAbilities{
			Strength:     beast.Abilities.Strength,
			Dexterity:    beast.Abilities.Dexterity,
			Constitution: beast.Abilities.Constitution,
			Intelligence: beast.Abilities.Intelligence,
			Wisdom:       beast.Abilities.Wisdom,
			Charisma:     beast.Abilities.Charisma,
		},
		Senses: dnd5e.FormSenses{
			Blindsight:        beast.Senses.Blindsight,
			Darkvision:        beast.Senses.Darkvision,
			Tremorsense:       beast.Senses.Tremorsense,
			Truesight:         beast.Senses.Truesight,
			PassivePerception: beast.Senses.PassivePerception,
		},
		TransformedAt: now,
	}
	if len(beast.Skills) > 0 {
		form.Skills = make(map[string]int, len(beast.Skills))
		for skill, mod := range beast.Skills {
			form.Skills[skill] = mod
		}
	}
	for _, t := range beast.Traits {
		form.Traits = append(form.Traits, dnd5e.FormFeature{Name: t.Name, Description: t.Description})
	}
	for _, a := range beast.Actions {
		form.Actions = append(form.Actions, dnd5e.FormFeature{Name: a.Name, Description: a.Description})
	}
	return form
}

func beastEligible(beast *catalog.MonsterData, limits rules.WildShapeLimits) bool {
	if beast.ChallengeRating > limits.MaxCR {
		return false
	}
	if beast.Speed.Swim != "" && !limits.CanSwim {
		return false
	}
	if beast.Speed.Fly != "" && !limits.CanFly {
		return false
	}
	return true
}

// Transform assumes a beast form: the statblock is snapshotted onto the
// character at full form HP and one charge is consumed.
func (o *orchestrator) Transform(ctx context.Context, input *TransformInput) (*TransformOutput, error) {
	if input.BeastSlug == "" {
		return nil, errors.InvalidArgument("beast slug cannot be empty")
	}

	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	if char.Class != dnd5e.ClassDruid {
		return nil, errors.WrongClassf("only druids can wild shape; %s cannot", char.Class)
	}
	if char.IsTransformed() {
		return nil, errors.AlreadyTransformed("already wild shaped; revert first")
	}
	if char.WildShapeCharges <= 0 {
		return nil, errors.NoCharges("no wild shape charges remaining")
	}

	beast, err := o.catalog.GetMonster(ctx, input.BeastSlug)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get beast %s", input.BeastSlug)
	}

	form := newForm(beast, o.clock.Now().Unix())

	limits := o.rules.WildShapeLimits(char.Level, char.Subclass)
	if form.ChallengeRating > limits.MaxCR {
		return nil, errors.CRTooHighf("%s is CR %g; maximum at level %d is %g", form.Name, form.ChallengeRating, char.Level, limits.MaxCR)
	}
	if form.HasSwimSpeed() && !limits.CanSwim {
		return nil, errors.SwimNotAllowed("cannot assume forms with a swimming speed before level 4")
	}
	if form.HasFlySpeed() && !limits.CanFly {
		return nil, errors.FlyNotAllowed("cannot assume forms with a flying speed before level 8")
	}

	char.WildShapeForm = form
	char.WildShapeCharges--

	if err := o.saveCharacter(ctx, char); err != nil {
		return nil, err
	}

	o.publish(ctx, events.TypeWildShapeTransform, char, map[string]interface{}{
		"beast":   beast.Slug,
		"charges": char.WildShapeCharges,
	})

	return &TransformOutput{
		Character:        char,
		Form:             form,
		ChargesRemaining: char.WildShapeCharges,
	}, nil
}

// Damage routes a hit into the form. When form HP reaches zero the
// transformation ends and any overflow carries into the druid's own HP.
func (o *orchestrator) Damage(ctx context.Context, input *DamageInput) (*DamageOutput, error) {
	if input.Amount <= 0 {
		return nil, errors.InvalidArgument("damage amount must be positive")
	}

	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	if !char.IsTransformed() {
		return nil, errors.NotTransformed("not wild shaped")
	}

	form := char.WildShapeForm
	result := form.ApplyDamage(input.Amount)

	out := &DamageOutput{Character: char}
	if result.Dropped {
		char.WildShapeForm = nil
		char.ApplyTrueFormDamage(result.Excess)
		out.Reverted = true
		out.ExcessDamage = result.Excess
	} else {
		out.Form = form
	}

	if err := o.saveCharacter(ctx, char); err != nil {
		return nil, err
	}

	o.publish(ctx, events.TypeWildShapeDamage, char, map[string]interface{}{
		"amount":   input.Amount,
		"reverted": result.Dropped,
		"excess":   result.Excess,
	})
	if result.Dropped {
		o.publish(ctx, events.TypeWildShapeRevert, char, map[string]interface{}{
			"forced": true,
			"beast":  form.BeastRef,
		})
	}

	return out, nil
}

// Heal raises form HP, capped at the form's maximum. Healing a form never
// spills over into the druid's own HP.
func (o *orchestrator) Heal(ctx context.Context, input *HealInput) (*HealOutput, error) {
	if input.Amount <= 0 {
		return nil, errors.InvalidArgument("heal amount must be positive")
	}

	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	if !char.IsTransformed() {
		return nil, errors.NotTransformed("not wild shaped")
	}

	form := char.WildShapeForm
	healed := form.ApplyHeal(input.Amount)

	if healed == 0 {
		// Already full: skip the write and the event.
		return &HealOutput{Character: char, Form: form}, nil
	}

	if err := o.saveCharacter(ctx, char); err != nil {
		return nil, err
	}

	o.publish(ctx, events.TypeWildShapeHeal, char, map[string]interface{}{
		"amount": healed,
	})

	return &HealOutput{
		Character: char,
		Form:      form,
		Healed:    healed,
	}, nil
}

// Revert voluntarily ends the transformation. The druid's own HP is
// whatever it was before transforming; form damage does not carry back.
func (o *orchestrator) Revert(ctx context.Context, input *RevertInput) (*RevertOutput, error) {
	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	if !char.IsTransformed() {
		return nil, errors.NotTransformed("not wild shaped")
	}

	form := char.WildShapeForm
	char.WildShapeForm = nil

	if err := o.saveCharacter(ctx, char); err != nil {
		return nil, err
	}

	o.publish(ctx, events.TypeWildShapeRevert, char, map[string]interface{}{
		"forced": false,
		"beast":  form.BeastRef,
	})

	return &RevertOutput{
		Character: char,
		Form:      form,
	}, nil
}
