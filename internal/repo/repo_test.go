package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/pg"
	challengerepo "github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/repo/challenge-repo"
	payoutrepo "github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/repo/payout-repo"
	pickrepo "github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/repo/pick-repo"
	tierrepo "github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/repo/tier-repo"
	userrepo "github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/repo/user-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.TierRepo)
	assert.NotNil(t, repo.ChallengeRepo)
	assert.NotNil(t, repo.PickRepo)
	assert.NotNil(t, repo.PayoutRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &tierrepo.Repository{}, repo.TierRepo)
	assert.IsType(t, &challengerepo.Repository{}, repo.ChallengeRepo)
	assert.IsType(t, &pickrepo.Repository{}, repo.PickRepo)
	assert.IsType(t, &payoutrepo.Repository{}, repo.PayoutRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
