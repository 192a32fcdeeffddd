package nats

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/models"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/services/match/mocks"
)

func TestHandleDriverUpdated(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockMatchUC(ctrl)
	handler := NewMatchHandler(mockUC, nil, nil)

	event := models.DriverEvent{
		DriverID:   "driver-1",
		Type:       models.DriverEventSuspended,
		OccurredAt: time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC),
		Source:     "replica-b",
	}
	data, err := json.Marshal(event)
	require.NoError(t, err)

	mockUC.EXPECT().HandleDriverEvent(gomock.Any(), event).Return(nil)

	assert.NoError(t, handler.HandleDriverUpdated(context.Background(), data))
}

func TestHandleDriverUpdated_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := NewMatchHandler(mocks.NewMockMatchUC(ctrl), nil, nil)

	assert.Error(t, handler.HandleDriverUpdated(context.Background(), []byte("{not json")))
}

func TestHandleDriverUpdated_UsecaseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockMatchUC(ctrl)
	handler := NewMatchHandler(mockUC, nil, nil)
	ucErr := errors.New("redis down")

	mockUC.EXPECT().HandleDriverEvent(gomock.Any(), gomock.Any()).Return(ucErr)

	err := handler.HandleDriverUpdated(context.Background(), []byte(`{"driver_id":"driver-1","type":"DELETED"}`))
	assert.ErrorIs(t, err, ucErr)
}

func TestClose_NoConsumers(t *testing.T) {
	handler := NewMatchHandler(nil, nil, nil)
	assert.NotPanics(t, handler.Close)
}
