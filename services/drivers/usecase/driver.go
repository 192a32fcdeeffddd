package usecase

import (
	"context"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/logger"
	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/models"
)

// ApproveDriver makes a driver eligible for matching
func (uc *DriverUC) ApproveDriver(ctx context.Context, driverID string) error {
	return uc.mutate(ctx, driverID, models.DriverEventApproved, func(ctx context.Context) error {
		return uc.driverRepo.SetApproval(ctx, driverID, true)
	})
}

// RejectDriver withdraws a driver's approval
func (uc *DriverUC) RejectDriver(ctx context.Context, driverID string) error {
	return uc.mutate(ctx, driverID, models.DriverEventRejected, func(ctx context.Context) error {
		return uc.driverRepo.SetApproval(ctx, driverID, false)
	})
}

// SuspendDriver stops a driver from being matched until reactivated
func (uc *DriverUC) SuspendDriver(ctx context.Context, driverID string) error {
	return uc.mutate(ctx, driverID, models.DriverEventSuspended, func(ctx context.Context) error {
		return uc.driverRepo.SetSuspended(ctx, driverID, true)
	})
}

// ReactivateDriver lifts a suspension
func (uc *DriverUC) ReactivateDriver(ctx context.Context, driverID string) error {
	return uc.mutate(ctx, driverID, models.DriverEventReactivated, func(ctx context.Context) error {
		return uc.driverRepo.SetSuspended(ctx, driverID, false)
	})
}

// DeleteDriver soft-deletes a driver
func (uc *DriverUC) DeleteDriver(ctx context.Context, driverID string) error {
	return uc.mutate(ctx, driverID, models.DriverEventDeleted, func(ctx context.Context) error {
		return uc.driverRepo.SoftDelete(ctx, driverID)
	})
}

// UpdateCapabilities changes vehicle, preference, base or radius fields
func (uc *DriverUC) UpdateCapabilities(ctx context.Context, driverID string, caps models.DriverCapabilities) (*models.DriverProfile, error) {
	if err := caps.Validate(); err != nil {
		return nil, err
	}

	var updated *models.DriverProfile
	err := uc.mutate(ctx, driverID, models.DriverEventCapabilities, func(ctx context.Context) error {
		var err error
		updated, err = uc.driverRepo.UpdateCapabilities(ctx, driverID, caps)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// mutate commits change, then invalidates the driver's cached matches and
// publishes the event. Only a failed commit is returned; the follow-up steps
// run even if the caller goes away and their failures are logged.
func (uc *DriverUC) mutate(ctx context.Context, driverID string, eventType models.DriverEventType, change func(ctx context.Context) error) error {
	if driverID == "" {
		return models.ErrInvalidDriverID
	}

	if err := change(ctx); err != nil {
		return err
	}

	ctx = context.WithoutCancel(ctx)

	if err := uc.invalidator.InvalidateDriver(ctx, driverID); err != nil {
		logger.ErrorCtx(ctx, "Failed to invalidate match cache after driver change",
			logger.DriverID(driverID),
			logger.EventType(string(eventType)),
			logger.Err(err))
	}

	event := models.DriverEvent{
		DriverID:   driverID,
		Type:       eventType,
		OccurredAt: uc.now().UTC(),
		Source:     uc.cfg.App.InstanceID,
	}
	err := uc.retrier.Execute(ctx, "publish driver event", func(ctx context.Context) error {
		return uc.driverGW.PublishDriverUpdated(ctx, event)
	})
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to publish driver event",
			logger.DriverID(driverID),
			logger.EventType(string(eventType)),
			logger.Err(err))
	}

	logger.InfoCtx(ctx, "Driver updated",
		logger.DriverID(driverID),
		logger.EventType(string(eventType)))
	return nil
}
