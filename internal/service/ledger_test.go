package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shenikar/cpr_dispatch/internal/events"
	"github.com/shenikar/cpr_dispatch/internal/models"
	"github.com/shenikar/cpr_dispatch/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

// newTestLedgerService собирает сервис реестра на моках репозитория и издателя
func newTestLedgerService(t *testing.T) (*ledgerService, *mocks.MockRequestRepository, *mocks.MockEventPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockRequestRepository(ctrl)
	publisherMock := mocks.NewMockEventPublisher(ctrl)

	service := NewLedgerService(repoMock, publisherMock, newTestLogger())
	return service.(*ledgerService), repoMock, publisherMock
}

func TestAcceptRequest_FirstAcceptance(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock := newTestLedgerService(t)
	ctx := context.Background()
	updated := &models.EmergencyRequest{
		ID:           "1",
		AcceptedETAs: []string{"2 min"},
		UpdatedAt:    time.Now(),
	}
	responder := &models.Responder{Name: "Dr. Michael Chen", Rating: 4.8}

	// Ожидания
	repoMock.EXPECT().Accept(ctx, "1", 2).Return(updated, nil).Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(_ context.Context, event events.Event) {
			assert.Equal(t, events.TypeRequestAccepted, event.Type)
			assert.Equal(t, "1", event.RequestID)
			assert.Equal(t, 1, event.AcceptedCount)
			assert.Equal(t, 2, event.ETAMinutes)
			assert.Equal(t, responder, event.Responder)
		}).Return(nil).Times(1)

	// Действие
	req, err := service.AcceptRequest(ctx, "1", 2, responder)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 1, req.AcceptedCount())
	assert.Equal(t, []string{"2 min"}, req.AcceptedETAs)
	assert.Equal(t, models.StatusAccepted, req.Status())
}

func TestAcceptRequest_InvalidETA(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock := newTestLedgerService(t)
	ctx := context.Background()

	// Ожидания: ни репозиторий, ни издатель не вызываются
	repoMock.EXPECT().Accept(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	for _, eta := range []int{0, 31, -5} {
		// Действие
		req, err := service.AcceptRequest(ctx, "1", eta, nil)

		// Проверки
		require.ErrorIs(t, err, models.ErrInvalidInput)
		assert.Nil(t, req)
	}
}

func TestAcceptRequest_InvalidResponder(t *testing.T) {
	service, repoMock, _ := newTestLedgerService(t)

	repoMock.EXPECT().Accept(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := service.AcceptRequest(context.Background(), "1", 5, &models.Responder{Rating: 7})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestAcceptRequest_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock := newTestLedgerService(t)
	ctx := context.Background()
	repoError := fmt.Errorf("request with id nonexistent not found for accept: %w", models.ErrNotFound)

	// Ожидания
	repoMock.EXPECT().Accept(ctx, "nonexistent", 5).Return(nil, repoError).Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	req, err := service.AcceptRequest(ctx, "nonexistent", 5, nil)

	// Проверки
	require.ErrorIs(t, err, models.ErrNotFound)
	assert.Nil(t, req)
	assert.ErrorContains(t, err, "could not accept request")
}

func TestAcceptRequest_PublishErrorDoesNotFailAcceptance(t *testing.T) {
	service, repoMock, publisherMock := newTestLedgerService(t)
	ctx := context.Background()
	updated := &models.EmergencyRequest{ID: "3", AcceptedETAs: []string{"5 min", "8 min", "10 min"}}

	repoMock.EXPECT().Accept(ctx, "3", 10).Return(updated, nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis down")).Times(1)

	req, err := service.AcceptRequest(ctx, "3", 10, nil)

	require.NoError(t, err)
	assert.Equal(t, 3, req.AcceptedCount())
	assert.Equal(t, []string{"5 min", "8 min", "10 min"}, req.AcceptedETAs)
}

func TestSelectRequest_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestLedgerService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, "nonexistent").
		Return(nil, fmt.Errorf("request with id nonexistent: %w", models.ErrNotFound)).
		Times(1)

	// Действие
	req, err := service.SelectRequest(ctx, "nonexistent")

	// Проверки
	require.ErrorIs(t, err, models.ErrNotFound)
	assert.Nil(t, req)
}

func TestSelectRequest_Success(t *testing.T) {
	service, repoMock, _ := newTestLedgerService(t)
	ctx := context.Background()
	expected := &models.EmergencyRequest{ID: "2", AcceptedETAs: []string{"3 min"}}

	repoMock.EXPECT().GetByID(ctx, "2").Return(expected, nil).Times(1)

	req, err := service.SelectRequest(ctx, "2")

	require.NoError(t, err)
	assert.Equal(t, expected, req)
}

func TestListRequests_RepositoryError(t *testing.T) {
	service, repoMock, _ := newTestLedgerService(t)
	ctx := context.Background()

	repoMock.EXPECT().List(ctx).Return(nil, errors.New("connection refused")).Times(1)

	reqs, err := service.ListRequests(ctx)

	require.Error(t, err)
	assert.Nil(t, reqs)
	assert.ErrorContains(t, err, "could not list requests")
}

func TestOpenRequest_Success(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock := newTestLedgerService(t)
	ctx := context.Background()
	req := &models.EmergencyRequest{
		Type:        models.EmergencyTypeChoking,
		Location:    "5th St & Mission",
		Coordinates: models.Coordinates{Lat: 37.7849, Lng: -122.4094},
	}

	// Ожидания
	repoMock.EXPECT().Create(ctx, req).Return(nil).Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(_ context.Context, event events.Event) {
			assert.Equal(t, events.TypeRequestOpened, event.Type)
			assert.Equal(t, req.ID, event.RequestID)
		}).Return(nil).Times(1)

	// Действие
	err := service.OpenRequest(ctx, req)

	// Проверки
	require.NoError(t, err)
	assert.NotEmpty(t, req.ID)
	assert.Equal(t, models.StatusUnaccepted, req.Status())
}

func TestOpenRequest_KeepsAssignedID(t *testing.T) {
	service, repoMock, publisherMock := newTestLedgerService(t)
	ctx := context.Background()
	req := &models.EmergencyRequest{ID: "assigned-1", Type: models.EmergencyTypeBreathing}

	repoMock.EXPECT().Create(ctx, req).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	require.NoError(t, service.OpenRequest(ctx, req))
	assert.Equal(t, "assigned-1", req.ID)
}

func TestOpenRequest_Validation(t *testing.T) {
	service, repoMock, _ := newTestLedgerService(t)
	ctx := context.Background()

	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	cases := map[string]*models.EmergencyRequest{
		"unknown type":          {Type: "stroke"},
		"other without details": {Type: models.EmergencyTypeOther, Description: "   "},
		"latitude out of range": {Type: models.EmergencyTypeBreathing, Coordinates: models.Coordinates{Lat: 91}},
	}
	for name, req := range cases {
		err := service.OpenRequest(ctx, req)
		assert.ErrorIs(t, err, models.ErrInvalidInput, name)
	}
}

func TestStats(t *testing.T) {
	service, repoMock, _ := newTestLedgerService(t)
	ctx := context.Background()

	repoMock.EXPECT().List(ctx).Return([]*models.EmergencyRequest{
		{ID: "1"},
		{ID: "2", AcceptedETAs: []string{"3 min"}},
		{ID: "3", AcceptedETAs: []string{"5 min", "8 min"}},
	}, nil).Times(1)

	stats, err := service.Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, &models.LedgerStats{Total: 3, Unaccepted: 1, Accepted: 2, Responders: 3}, stats)
}
