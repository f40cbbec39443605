package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"storecatalog/internal/core/apperror"
	"storecatalog/internal/core/id"
	"storecatalog/pkg/logger"
)

func TestService_CreateSetsUpdatedAt(t *testing.T) {
	svc := NewService(newMockRepo(), nil)
	s := NewStore("Магнит", "ул. Ленина, 1", "m@example.com")

	require.NoError(t, svc.Create(context.Background(), s))
	assert.False(t, s.UpdatedAt.IsZero())
}

func TestService_CreateInvalidIsNotStored(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, nil)

	err := svc.Create(context.Background(), NewStore("Магнит", "", "m@example.com"))
	assert.True(t, apperror.IsValidation(err))
	assert.Zero(t, repo.creates)
}

func TestService_UpdateTouches(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMockRepo(), nil)
	s := NewStore("Магнит", "ул. Ленина, 1", "m@example.com")
	s.UpdatedAt = time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, svc.Create(ctx, s))

	s.Assign("Пятёрочка", "ул. Вязов, 2", "p@example.com")
	require.NoError(t, svc.Update(ctx, s))

	got, err := svc.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Пятёрочка", got.Name)
	assert.True(t, got.UpdatedAt.After(time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestService_DeleteMissing(t *testing.T) {
	svc := NewService(newMockRepo(), nil)

	err := svc.Delete(context.Background(), id.New())
	assert.True(t, apperror.IsNotFound(err))
}

func TestCloner_Copy(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	svc := NewService(repo, nil)

	src := NewStore("Магнит", "ул. Ленина, 1", "m@example.com")
	stamp := time.Date(2019, 5, 6, 7, 8, 9, 0, time.UTC)
	src.UpdatedAt = stamp
	require.NoError(t, svc.Create(ctx, src))

	clone, err := NewCloner(svc).Copy(ctx, src.ID)
	require.NoError(t, err)

	assert.NotEqual(t, src.ID, clone.ID)
	assert.Equal(t, src.Name, clone.Name)
	assert.Equal(t, src.Location, clone.Location)
	assert.Equal(t, src.Email, clone.Email)
	assert.Equal(t, stamp, clone.UpdatedAt)

	stored, err := repo.GetByID(ctx, clone.ID)
	require.NoError(t, err)
	assert.Equal(t, stamp, stored.UpdatedAt)
	assert.Len(t, repo.order, 2)
}

func TestCloner_CopyMissing(t *testing.T) {
	svc := NewService(newMockRepo(), nil)

	_, err := NewCloner(svc).Copy(context.Background(), id.New())
	assert.True(t, apperror.IsNotFound(err))
}

func TestService_LogsLifecycle(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := logger.WithLogger(context.Background(), &logger.Logger{SugaredLogger: zap.New(core).Sugar()})
	svc := NewService(newMockRepo(), nil)

	s := NewStore("Магнит", "ул. Ленина, 1", "m@example.com")
	require.NoError(t, svc.Create(ctx, s))
	s.Assign("Пятёрочка", "ул. Вязов, 2", "p@example.com")
	require.NoError(t, svc.Update(ctx, s))
	require.NoError(t, svc.Delete(ctx, s.ID))

	// A failed delete runs no after-hook.
	require.Error(t, svc.Delete(ctx, s.ID))

	var messages []string
	for _, e := range logs.All() {
		messages = append(messages, e.Message)
		assert.Equal(t, s.ID.String(), fmt.Sprint(e.ContextMap()["store_id"]))
	}
	assert.Equal(t, []string{"store created", "store updated", "store deleted"}, messages)
}
