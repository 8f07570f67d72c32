package repository_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nahidasmakeover/boutique/internal/models"
	repository "github.com/nahidasmakeover/boutique/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository(t *testing.T) {
	ctx := t.Context()

	t.Run("Create and Get", func(t *testing.T) {
		repo := repository.NewSessionRepo()

		created, err := repo.Create(ctx)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.Equal(t, models.ViewHome, created.Navigation.View.Name())
		assert.Equal(t, models.ConsultationIdle, created.Consultation.Status)

		fetched, err := repo.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, fetched.ID)
	})

	t.Run("Get - Unknown Session", func(t *testing.T) {
		repo := repository.NewSessionRepo()

		session, err := repo.Get(ctx, uuid.New())

		assert.Nil(t, session)
		assert.ErrorIs(t, err, repository.ErrSessionNotFound)
	})

	t.Run("Update - Persists Mutation", func(t *testing.T) {
		repo := repository.NewSessionRepo()
		created, _ := repo.Create(ctx)

		updated, err := repo.Update(ctx, created.ID, func(s *models.Session) error {
			s.IntroSeen = true
			s.Cart.Add(models.Product{ID: "1", Price: 52})
			return nil
		})

		require.NoError(t, err)
		assert.True(t, updated.IntroSeen)

		fetched, _ := repo.Get(ctx, created.ID)
		assert.True(t, fetched.IntroSeen)
		assert.Equal(t, 1, fetched.Cart.Len())
	})

	t.Run("Update - Error Leaves Session Untouched", func(t *testing.T) {
		repo := repository.NewSessionRepo()
		created, _ := repo.Create(ctx)
		fnErr := errors.New("rejected")

		_, err := repo.Update(ctx, created.ID, func(s *models.Session) error {
			s.Cart.Add(models.Product{ID: "1"})
			return fnErr
		})

		assert.ErrorIs(t, err, fnErr)

		fetched, _ := repo.Get(ctx, created.ID)
		assert.Equal(t, 0, fetched.Cart.Len())
	})

	t.Run("Update - Unknown Session", func(t *testing.T) {
		repo := repository.NewSessionRepo()

		_, err := repo.Update(ctx, uuid.New(), func(s *models.Session) error { return nil })

		assert.ErrorIs(t, err, repository.ErrSessionNotFound)
	})

	t.Run("Returned Sessions Do Not Alias Stored State", func(t *testing.T) {
		repo := repository.NewSessionRepo()
		created, _ := repo.Create(ctx)
		_, _ = repo.Update(ctx, created.ID, func(s *models.Session) error {
			s.Wishlist.Toggle(models.Product{ID: "3"})
			return nil
		})

		fetched, _ := repo.Get(ctx, created.ID)
		fetched.Wishlist.Items[0].ID = "tampered"

		again, _ := repo.Get(ctx, created.ID)
		assert.Equal(t, "3", again.Wishlist.Items[0].ID)
	})

	t.Run("Delete", func(t *testing.T) {
		repo := repository.NewSessionRepo()
		created, _ := repo.Create(ctx)

		require.NoError(t, repo.Delete(ctx, created.ID))
		assert.ErrorIs(t, repo.Delete(ctx, created.ID), repository.ErrSessionNotFound)
	})

	t.Run("Sweep - Removes Idle Sessions", func(t *testing.T) {
		repo := repository.NewSessionRepo()
		idle, _ := repo.Create(ctx)

		cutoff := time.Now().Add(time.Millisecond)
		time.Sleep(2 * time.Millisecond)

		active, _ := repo.Create(ctx)

		removed := repo.Sweep(ctx, cutoff)

		assert.Equal(t, 1, removed)
		_, err := repo.Get(ctx, idle.ID)
		assert.ErrorIs(t, err, repository.ErrSessionNotFound)
		_, err = repo.Get(ctx, active.ID)
		assert.NoError(t, err)
	})

	t.Run("Concurrent Updates", func(t *testing.T) {
		repo := repository.NewSessionRepo()
		created, _ := repo.Create(ctx)

		var wg sync.WaitGroup
		for range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = repo.Update(ctx, created.ID, func(s *models.Session) error {
					s.Cart.Add(models.Product{ID: "5", Price: 34})
					return nil
				})
			}()
		}
		wg.Wait()

		fetched, _ := repo.Get(ctx, created.ID)
		assert.Equal(t, 50, fetched.Cart.Len())
		assert.InDelta(t, 50*34.0, fetched.Cart.Total(), 0.001)
	})
}
