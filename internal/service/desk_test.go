package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shenikar/cpr_dispatch/internal/flow"
	"github.com/shenikar/cpr_dispatch/internal/models"
	"github.com/shenikar/cpr_dispatch/internal/repository"
	"github.com/shenikar/cpr_dispatch/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDeskService(t *testing.T) (DeskService, *mocks.MockLedgerService) {
	ctrl := gomock.NewController(t)
	ledgerMock := mocks.NewMockLedgerService(ctrl)
	return NewDeskService(repository.NewMemoryDeskStore(), ledgerMock, newTestLogger(), models.DefaultETAMinutes), ledgerMock
}

func TestDesk_DefaultsOnFirstAccess(t *testing.T) {
	service, _ := newTestDeskService(t)

	desk, err := service.GetDesk(context.Background(), "provider-1")

	require.NoError(t, err)
	assert.Equal(t, flow.Desk{ProviderID: "provider-1", ETAMinutes: 5}, desk)
}

func TestDesk_ConfirmWithoutSelectionIsNoop(t *testing.T) {
	// Подготовка
	service, ledgerMock := newTestDeskService(t)
	ctx := context.Background()

	// Ожидания: реестр не вызывается
	ledgerMock.EXPECT().AcceptRequest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	req, desk, err := service.ConfirmAcceptance(ctx, "provider-1", nil)

	// Проверки
	require.NoError(t, err)
	assert.Nil(t, req)
	assert.False(t, desk.HasSelection())
}

func TestDesk_SelectAdjustConfirm(t *testing.T) {
	// Подготовка
	service, ledgerMock := newTestDeskService(t)
	ctx := context.Background()
	responder := &models.Responder{Name: "Dr. Michael Chen", Rating: 4.8}
	accepted := &models.EmergencyRequest{ID: "1", AcceptedETAs: []string{"7 min"}}

	// Ожидания
	ledgerMock.EXPECT().SelectRequest(ctx, "1").Return(&models.EmergencyRequest{ID: "1"}, nil).Times(1)
	ledgerMock.EXPECT().AcceptRequest(ctx, "1", 7, responder).Return(accepted, nil).Times(1)

	// Действие
	desk, err := service.Select(ctx, "provider-1", "1")
	require.NoError(t, err)
	assert.Equal(t, "1", desk.SelectedRequestID)

	_, err = service.AdjustETA(ctx, "provider-1", 1)
	require.NoError(t, err)
	desk, err = service.AdjustETA(ctx, "provider-1", 1)
	require.NoError(t, err)
	assert.Equal(t, 7, desk.ETAMinutes)

	req, desk, err := service.ConfirmAcceptance(ctx, "provider-1", responder)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, accepted, req)
	assert.False(t, desk.HasSelection())
	assert.Equal(t, 7, desk.ETAMinutes)

	stored, err := service.GetDesk(ctx, "provider-1")
	require.NoError(t, err)
	assert.Equal(t, desk, stored)
}

func TestDesk_SelectUnknownRequest(t *testing.T) {
	service, ledgerMock := newTestDeskService(t)
	ctx := context.Background()

	ledgerMock.EXPECT().
		SelectRequest(ctx, "nonexistent").
		Return(nil, fmt.Errorf("service: could not get request: %w", models.ErrNotFound)).
		Times(1)

	_, err := service.Select(ctx, "provider-1", "nonexistent")
	require.ErrorIs(t, err, models.ErrNotFound)

	desk, err := service.GetDesk(ctx, "provider-1")
	require.NoError(t, err)
	assert.False(t, desk.HasSelection())
}

func TestDesk_ConfirmFailureKeepsSelection(t *testing.T) {
	service, ledgerMock := newTestDeskService(t)
	ctx := context.Background()

	ledgerMock.EXPECT().SelectRequest(ctx, "2").Return(&models.EmergencyRequest{ID: "2"}, nil).Times(1)
	ledgerMock.EXPECT().AcceptRequest(ctx, "2", 5, nil).Return(nil, errors.New("database is down")).Times(1)

	_, err := service.Select(ctx, "provider-1", "2")
	require.NoError(t, err)

	req, desk, err := service.ConfirmAcceptance(ctx, "provider-1", nil)

	require.Error(t, err)
	assert.Nil(t, req)
	assert.Equal(t, "2", desk.SelectedRequestID)
}

func TestDesk_SetETAOutOfRange(t *testing.T) {
	service, _ := newTestDeskService(t)
	ctx := context.Background()

	_, err := service.SetETA(ctx, "provider-1", 45)
	require.ErrorIs(t, err, models.ErrInvalidInput)

	desk, err := service.SetETA(ctx, "provider-1", 30)
	require.NoError(t, err)
	assert.Equal(t, 30, desk.ETAMinutes)

	desk, err = service.ClearSelection(ctx, "provider-1")
	require.NoError(t, err)
	assert.Equal(t, 30, desk.ETAMinutes)
}

func TestDesk_ConfirmSucceedsWhenClearingSelectionFails(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	ledgerMock := mocks.NewMockLedgerService(ctrl)
	storeMock := mocks.NewMockDeskStore(ctrl)
	service := NewDeskService(storeMock, ledgerMock, newTestLogger(), models.DefaultETAMinutes)
	ctx := context.Background()
	selected := &flow.Desk{ProviderID: "p1", SelectedRequestID: "1", ETAMinutes: 5}
	accepted := &models.EmergencyRequest{ID: "1", AcceptedETAs: []string{"5 min"}}

	// Ожидания: реестр вызывается ровно один раз, хотя сохранение рабочего места падает
	storeMock.EXPECT().Load(ctx, "p1").Return(selected, nil).Times(1)
	ledgerMock.EXPECT().AcceptRequest(ctx, "1", 5, nil).Return(accepted, nil).Times(1)
	storeMock.EXPECT().
		Save(ctx, flow.Desk{ProviderID: "p1", ETAMinutes: 5}).
		Return(errors.New("redis timeout")).
		Times(1)

	// Действие
	req, desk, err := service.ConfirmAcceptance(ctx, "p1", nil)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, accepted, req)
	assert.False(t, desk.HasSelection())
	assert.Equal(t, 5, desk.ETAMinutes)
}
