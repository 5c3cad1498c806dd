package services

import (
	portsrepo "github.com/SscSPs/pos_shift_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_shift_app/internal/core/ports/services"
	"github.com/SscSPs/pos_shift_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// Extra observers (metrics, for instance) receive every committed shift transition after
// the session registry.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, observers ...portssvc.ShiftObserver) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	sessions := NewSessionRegistry()
	container.Sessions = sessions
	allObservers := append([]portssvc.ShiftObserver{sessions}, observers...)

	// Shift and event writers share one lock table so drops and closes of an operator serialise
	locks := NewOperatorLocks()
	precision := cfg.Store.Precision

	container.Reconciler = NewReconciliationService(
		repos.ShiftRepo,
		repos.SaleRepo,
		repos.ExpenseRepo,
		repos.ShiftEventRepo,
		WithPaymentMethods(cfg.Store.MethodIDs()),
	)

	container.Shift = NewShiftService(
		repos.ShiftRepo,
		repos.OperatorRepo,
		container.Reconciler,
		WithShiftLocks(locks),
		WithShiftObservers(allObservers...),
		WithShiftAmountPrecision(precision),
	)
	container.Integrity = container.Shift.(portssvc.IntegritySvc)

	container.Events = NewShiftEventService(
		repos.ShiftRepo,
		repos.ShiftEventRepo,
		WithEventLocks(locks),
		WithEventObservers(allObservers...),
		WithEventAmountPrecision(precision),
	)

	container.Operators = NewOperatorService(repos.OperatorRepo)
	container.Auth = NewAuthService(repos.OperatorRepo, container.Shift, sessions, cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTExpiryDuration)

	return container
}
