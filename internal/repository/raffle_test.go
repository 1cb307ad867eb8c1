package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafflehq/raffle-sales-api/internal/repository/dao"
)

type stubRaffleDAO struct {
	byPubKey map[string]dao.Raffle
	byName   map[string]dao.Raffle

	pubKeyLookups []string
	nameLookups   []string
}

func (s *stubRaffleDAO) FindByPubKey(ctx context.Context, pubKey string) (dao.Raffle, error) {
	s.pubKeyLookups = append(s.pubKeyLookups, pubKey)
	if raffle, ok := s.byPubKey[pubKey]; ok {
		return raffle, nil
	}

	return dao.Raffle{}, dao.ErrRaffleNotFound
}

func (s *stubRaffleDAO) FindByName(ctx context.Context, name string) (dao.Raffle, error) {
	s.nameLookups = append(s.nameLookups, name)
	if raffle, ok := s.byName[name]; ok {
		return raffle, nil
	}

	return dao.Raffle{}, dao.ErrRaffleNotFound
}

func (s *stubRaffleDAO) FindManager(ctx context.Context, userID, raffleID uint) (dao.RaffleManager, error) {
	return dao.RaffleManager{}, dao.ErrAssignmentNotFound
}

func (s *stubRaffleDAO) FindManagersByUserID(ctx context.Context, userID uint) ([]dao.RaffleManager, error) {
	return nil, nil
}

func TestFindByIdentifier_PubKeyAndSlugResolveSameRaffle(t *testing.T) {
	raffle := dao.Raffle{ID: 5, Name: "Spring Gala", PubKey: "pk_spring_2026"}
	stub := &stubRaffleDAO{
		byPubKey: map[string]dao.Raffle{"pk_spring_2026": raffle},
		byName:   map[string]dao.Raffle{"Spring Gala": raffle},
	}
	repo := NewRaffleRepository(stub)

	byKey, err := repo.FindByIdentifier(context.Background(), "pk_spring_2026")
	require.NoError(t, err)

	bySlug, err := repo.FindByIdentifier(context.Background(), "Spring-Gala")
	require.NoError(t, err)

	assert.Equal(t, byKey, bySlug)
	assert.Equal(t, uint(5), byKey.ID)
}

func TestFindByIdentifier_PubKeyTakesPrecedence(t *testing.T) {
	stub := &stubRaffleDAO{
		byPubKey: map[string]dao.Raffle{"winter": {ID: 1, PubKey: "winter"}},
		byName:   map[string]dao.Raffle{"winter": {ID: 2, Name: "winter"}},
	}
	repo := NewRaffleRepository(stub)

	found, err := repo.FindByIdentifier(context.Background(), "winter")

	require.NoError(t, err)
	assert.Equal(t, uint(1), found.ID)
	assert.Empty(t, stub.nameLookups, "name branch must not run on a pub key hit")
}

func TestFindByIdentifier_HyphensBecomeSpaces(t *testing.T) {
	stub := &stubRaffleDAO{
		byName: map[string]dao.Raffle{"new year s raffle": {ID: 9}},
	}
	repo := NewRaffleRepository(stub)

	found, err := repo.FindByIdentifier(context.Background(), "new-year-s-raffle")

	require.NoError(t, err)
	assert.Equal(t, uint(9), found.ID)
	require.Len(t, stub.nameLookups, 1)
	assert.Equal(t, "new year s raffle", stub.nameLookups[0])
}

func TestFindByIdentifier_NoMatch(t *testing.T) {
	repo := NewRaffleRepository(&stubRaffleDAO{})

	_, err := repo.FindByIdentifier(context.Background(), "nothing-here")

	assert.ErrorIs(t, err, ErrRaffleNotFound)
}
