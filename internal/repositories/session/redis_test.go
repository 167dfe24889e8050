package session

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/hopkinton-cheetahs/rosterd/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestGetSessionAbsent() {
	out, err := s.repo.GetSession(context.Background(), &GetSessionInput{})
	s.Require().NoError(err)
	s.Nil(out.Session)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetSession() {
	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: &models.Session{Role: models.RoleCaptain, Year: 2026},
	})
	s.Require().NoError(err)

	out, err := s.repo.GetSession(context.Background(), &GetSessionInput{})
	s.Require().NoError(err)
	s.Require().NotNil(out.Session)
	s.Equal(models.RoleCaptain, out.Session.Role)
	s.Equal(2026, out.Session.Year)
}

func (s *RedisRepositoryTestSuite) TestClearSession() {
	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: &models.Session{Role: models.RolePlayer, Year: 2026},
	})
	s.Require().NoError(err)

	s.Require().NoError(s.repo.ClearSession(context.Background(), &ClearSessionInput{}))

	out, err := s.repo.GetSession(context.Background(), &GetSessionInput{})
	s.Require().NoError(err)
	s.Nil(out.Session)

	// Clearing an absent session is not an error
	s.NoError(s.repo.ClearSession(context.Background(), &ClearSessionInput{}))
}
