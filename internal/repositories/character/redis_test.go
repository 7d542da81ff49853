package character_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ironvale/campaign-api/internal/entities/dnd5e"
	"github.com/ironvale/campaign-api/internal/errors"
	"github.com/ironvale/campaign-api/internal/pkg/clock"
	redisclient "github.com/ironvale/campaign-api/internal/redis"
	"github.com/ironvale/campaign-api/internal/repositories/character"
	"github.com/ironvale/campaign-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	client  redisclient.Client
	cleanup func()
	repo    character.Repository
	ctx     context.Context
	now     time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.client, s.cleanup = testutils.CreateTestRedisClient(s.T())
	s.ctx = context.Background()
	s.now = time.Date(2025, 3, 15, 20, 0, 0, 0, time.UTC)

	repo, err := character.NewRedis(&character.RedisConfig{
		Client: s.client,
		Clock:  &clock.Fixed{T: s.now},
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) newCharacter(id string) *dnd5e.Character {
	return &dnd5e.Character{
		ID:         id,
		CampaignID: "camp_1",
		Name:       "Thalia",
		Level:      5,
		Class:      dnd5e.ClassDruid,
		CurrentHP:  38,
		MaxHP:      38,
		SpellSlotsRemaining: map[int]int{
			1: 4, 2: 3, 3: 2,
		},
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	char := s.newCharacter("char_1")

	created, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)
	s.Equal(int64(1), created.Character.Version)
	s.Equal(s.now.Unix(), created.Character.CreatedAt)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_1"})
	s.Require().NoError(err)
	s.Equal("Thalia", got.Character.Name)
	s.Equal(map[int]int{1: 4, 2: 3, 3: 2}, got.Character.SpellSlotsRemaining)
	s.Equal(int64(1), got.Character.Version)
}

func (s *RedisRepositoryTestSuite) TestCreate_Duplicate() {
	char := s.newCharacter("char_1")
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, character.CreateInput{Character: s.newCharacter("char_1")})
	s.Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestGet_NotFound() {
	_, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_404"})
	s.Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpdate_BumpsVersion() {
	char := s.newCharacter("char_1")
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)

	char.SpellSlotsRemaining[1] = 3
	updated, err := s.repo.Update(s.ctx, character.UpdateInput{Character: char})
	s.Require().NoError(err)
	s.Equal(int64(2), updated.Character.Version)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_1"})
	s.Require().NoError(err)
	s.Equal(3, got.Character.SpellSlotsRemaining[1])
	s.Equal(int64(2), got.Character.Version)
}

func (s *RedisRepositoryTestSuite) TestUpdate_StaleVersionAborts() {
	char := s.newCharacter("char_1")
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)

	// Two readers load the same version.
	first, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_1"})
	s.Require().NoError(err)
	second, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_1"})
	s.Require().NoError(err)

	// First writer wins.
	first.Character.CurrentHP = 30
	_, err = s.repo.Update(s.ctx, character.UpdateInput{Character: first.Character})
	s.Require().NoError(err)

	// Second writer holds a stale version and must be rejected.
	second.Character.CurrentHP = 10
	_, err = s.repo.Update(s.ctx, character.UpdateInput{Character: second.Character})
	s.Error(err)
	s.True(errors.IsAborted(err))

	// The first write survived.
	got, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_1"})
	s.Require().NoError(err)
	s.Equal(30, got.Character.CurrentHP)
}

func (s *RedisRepositoryTestSuite) TestUpdate_NotFound() {
	char := s.newCharacter("char_404")
	char.Version = 1
	_, err := s.repo.Update(s.ctx, character.UpdateInput{Character: char})
	s.Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	char := s.newCharacter("char_1")
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: "char_1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, character.GetInput{ID: "char_1"})
	s.True(errors.IsNotFound(err))

	// The campaign index was cleaned up too.
	list, err := s.repo.ListByCampaignID(s.ctx, character.ListByCampaignIDInput{CampaignID: "camp_1"})
	s.Require().NoError(err)
	s.Empty(list.Characters)
}

func (s *RedisRepositoryTestSuite) TestListByCampaignID() {
	for _, id := range []string{"char_1", "char_2"} {
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.newCharacter(id)})
		s.Require().NoError(err)
	}
	other := s.newCharacter("char_3")
	other.CampaignID = "camp_2"
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: other})
	s.Require().NoError(err)

	list, err := s.repo.ListByCampaignID(s.ctx, character.ListByCampaignIDInput{CampaignID: "camp_1"})
	s.Require().NoError(err)
	s.Len(list.Characters, 2)
}

func (s *RedisRepositoryTestSuite) TestListByCampaignID_SkipsStaleEntries() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.newCharacter("char_1")})
	s.Require().NoError(err)

	// Poison the index with an id that has no document behind it.
	s.Require().NoError(s.client.SAdd(s.ctx, "character:campaign:camp_1", "char_ghost").Err())

	list, err := s.repo.ListByCampaignID(s.ctx, character.ListByCampaignIDInput{CampaignID: "camp_1"})
	s.Require().NoError(err)
	s.Len(list.Characters, 1)
	s.Equal("char_1", list.Characters[0].ID)
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
