package services

import (
	"context"

	"github.com/SscSPs/pos_shift_app/internal/core/domain"
	portssvc "github.com/SscSPs/pos_shift_app/internal/core/ports/services"
)

// observerSet fans a committed transition out to every registered observer.
type observerSet []portssvc.ShiftObserver

func (o observerSet) shiftOpened(ctx context.Context, shift domain.Shift) {
	for _, obs := range o {
		obs.ShiftOpened(ctx, shift)
	}
}

func (o observerSet) cashDropRecorded(ctx context.Context, shift domain.Shift, event domain.ShiftEvent) {
	for _, obs := range o {
		obs.CashDropRecorded(ctx, shift, event)
	}
}

func (o observerSet) shiftClosed(ctx context.Context, shift domain.Shift) {
	for _, obs := range o {
		obs.ShiftClosed(ctx, shift)
	}
}
