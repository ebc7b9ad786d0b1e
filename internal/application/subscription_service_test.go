package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/playtube/playtube-api/internal/domain/entity"
	repo "github.com/playtube/playtube-api/internal/domain/repository"
	"github.com/playtube/playtube-api/pkg/apperrors"
)

func TestSubscriptionToggle_SubscribeThenUnsubscribe(t *testing.T) {
	subs := &mockSubscriptionRepo{}
	users := &mockUserRepo{}
	svc := NewSubscriptionService(subs, users)

	users.On("GetByID", mock.Anything, "chan").Return(&entity.User{ID: "chan"}, nil)
	subs.On("IsSubscribed", mock.Anything, "chan", "sub").Return(false, nil).Once()
	subs.On("Create", mock.Anything, mock.AnythingOfType("*entity.Subscription")).Return(nil).Once()

	subscribed, err := svc.Toggle(context.Background(), "sub", "chan")
	require.NoError(t, err)
	assert.True(t, subscribed)

	subs.On("IsSubscribed", mock.Anything, "chan", "sub").Return(true, nil).Once()
	subs.On("Delete", mock.Anything, "sub", "chan").Return(nil).Once()

	subscribed, err = svc.Toggle(context.Background(), "sub", "chan")
	require.NoError(t, err)
	assert.False(t, subscribed)
	subs.AssertExpectations(t)
}

func TestSubscriptionToggle_SelfSubscriptionRejected(t *testing.T) {
	svc := NewSubscriptionService(&mockSubscriptionRepo{}, &mockUserRepo{})

	_, err := svc.Toggle(context.Background(), "me", "me")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSubscriptionToggle_UnknownChannelIsNotFound(t *testing.T) {
	subs := &mockSubscriptionRepo{}
	users := &mockUserRepo{}
	svc := NewSubscriptionService(subs, users)

	users.On("GetByID", mock.Anything, "ghost").Return(nil, repo.ErrNotFound)

	_, err := svc.Toggle(context.Background(), "sub", "ghost")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSubscriptionToggle_ConcurrentCreateRaceTreatedAsSubscribed(t *testing.T) {
	subs := &mockSubscriptionRepo{}
	users := &mockUserRepo{}
	svc := NewSubscriptionService(subs, users)

	users.On("GetByID", mock.Anything, "chan").Return(&entity.User{ID: "chan"}, nil)
	subs.On("IsSubscribed", mock.Anything, "chan", "sub").Return(false, nil)
	subs.On("Create", mock.Anything, mock.AnythingOfType("*entity.Subscription")).Return(repo.ErrDuplicate)

	subscribed, err := svc.Toggle(context.Background(), "sub", "chan")
	require.NoError(t, err)
	assert.True(t, subscribed)
}
