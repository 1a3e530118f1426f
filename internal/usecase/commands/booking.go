package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/steven-the-qa/coach-wire/internal/domain/booking"
	"github.com/steven-the-qa/coach-wire/internal/infra"
	"github.com/steven-the-qa/coach-wire/internal/infra/db"
	"github.com/steven-the-qa/coach-wire/internal/pkg/errs"
	"github.com/steven-the-qa/coach-wire/internal/usecase/queries"
	"github.com/steven-the-qa/coach-wire/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingCommands interface {
	// BookClass runs the whole reserve-one-spot flow: advisory availability
	// check, payment authorization against the gateway, then the
	// authoritative transactional insert.
	BookClass(ctx context.Context, classID, clientID uuid.UUID) (*queries.BookingView, error)
}

type bookingUseCaseImpl struct {
	classReads   ClassReads
	bookingReads BookingReads
	bookingRepo  BookingRepository
	gateway      PaymentGateway
	intents      IntentStore
	alerts       ReversalAlerts
	bookingStore queries.BookingReadStore
	txm          shared.TxManager
	currency     string
}

func NewBookingUseCase(
	classReads ClassReads,
	bookingReads BookingReads,
	bookingRepo BookingRepository,
	gateway PaymentGateway,
	intents IntentStore,
	alerts ReversalAlerts,
	bookingStore queries.BookingReadStore,
	txm shared.TxManager,
	currency string,
) BookingCommands {
	return &bookingUseCaseImpl{
		classReads:   classReads,
		bookingReads: bookingReads,
		bookingRepo:  bookingRepo,
		gateway:      gateway,
		intents:      intents,
		alerts:       alerts,
		bookingStore: bookingStore,
		txm:          txm,
		currency:     currency,
	}
}

func (u *bookingUseCaseImpl) BookClass(ctx context.Context, classID, clientID uuid.UUID) (*queries.BookingView, error) {
	avail, err := u.classReads.Availability(ctx, classID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !avail.Available() {
		// No charge is ever attempted for a sold-out class.
		return nil, ErrSoldOut
	}

	// Refuse repeat callers before money moves. The recorder re-checks
	// this inside its transaction; this read only spares the client a
	// charge that would immediately need reversing.
	already, err := u.bookingReads.HasConfirmed(ctx, classID, clientID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if already {
		return nil, ErrDuplicateBooking
	}

	auth, err := u.authorizePayment(ctx, clientID, classID, avail.PriceCents)
	if err != nil {
		return nil, err
	}

	view, err := u.recordBooking(ctx, classID, clientID, auth)
	if err != nil {
		return nil, err
	}

	if clearErr := u.intents.Clear(ctx, clientID, classID); clearErr != nil {
		slog.Warn("failed to clear settled payment intent",
			"class_id", classID, "client_id", clientID, "error", clearErr.Error())
	}

	return view, nil
}

// authorizePayment is the Payment Intent Adapter: create-or-reuse an intent,
// then wait for the user-facing confirmation step to settle it. Exactly one
// intent exists per logical attempt; a retry after a fault during intent
// creation finds the stored one instead of authorizing the card again.
func (u *bookingUseCaseImpl) authorizePayment(ctx context.Context, clientID, classID uuid.UUID, amountCents int64) (*PaymentAuthorization, error) {
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}

	intent, err := u.intents.Pending(ctx, clientID, classID)
	if err != nil {
		slog.Warn("pending intent lookup failed, creating a fresh intent",
			"class_id", classID, "client_id", clientID, "error", err.Error())
		intent = nil
	}

	if intent == nil {
		intent, err = u.gateway.CreateIntent(ctx, amountCents, u.currency, map[string]string{
			"class_id":  classID.String(),
			"client_id": clientID.String(),
		})
		if err != nil {
			if infra.IsKind(err, infra.KindInvalidArgument) {
				return nil, ErrInvalidAmount
			}
			return nil, errs.Mark(err, ErrGatewayUnavailable)
		}

		if saveErr := u.intents.Save(ctx, clientID, classID, intent); saveErr != nil {
			// The attempt proceeds; the worst case is a second intent on a
			// later retry, which the gateway never captures unconfirmed.
			slog.Warn("failed to store pending payment intent",
				"intent_id", intent.ID, "error", saveErr.Error())
		}
	}

	disposition, err := u.gateway.AwaitConfirmation(ctx, intent.ID)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			// Caller abandoned the confirmation step; the intent stays
			// stored so a retry reuses it.
			return nil, errs.Mark(err, ErrPaymentCancelled)
		}
		return nil, errs.Mark(err, ErrGatewayUnavailable)
	}

	switch disposition {
	case DispositionAuthorized:
		return &PaymentAuthorization{
			IntentID:     intent.ID,
			ClientSecret: intent.ClientSecret,
			Status:       DispositionAuthorized,
		}, nil
	case DispositionDeclined:
		u.clearIntentQuietly(ctx, clientID, classID)
		return nil, ErrPaymentDeclined
	case DispositionCancelled:
		u.clearIntentQuietly(ctx, clientID, classID)
		return nil, ErrPaymentCancelled
	default:
		return nil, errs.Mark(errs.New("unexpected gateway disposition: "+string(disposition)), ErrGatewayUnavailable)
	}
}

// recordBooking persists the confirmed reservation. The money has already
// moved; any refusal here is converted into a loud reversal signal rather
// than a silent loss of the charge.
func (u *bookingUseCaseImpl) recordBooking(ctx context.Context, classID, clientID uuid.UUID, auth *PaymentAuthorization) (*queries.BookingView, error) {
	entity, err := booking.NewConfirmed(classID, clientID, auth.IntentID)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var bookingID uuid.UUID
	err = u.txm.WithinRetry(ctx, func(tx db.DBTX) error {
		id, txErr := u.bookingRepo.CreateConfirmed(ctx, tx, entity)
		if txErr != nil {
			return txErr
		}
		bookingID = id
		return nil
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindConflict):
			return nil, u.flagReversal(ctx, classID, clientID, auth, ErrCapacityExceeded)
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, u.flagReversal(ctx, classID, clientID, auth, ErrDuplicateBooking)
		default:
			return nil, u.flagReversal(ctx, classID, clientID, auth, errs.Mark(err, ErrDatabaseOperationFailed))
		}
	}

	// Read-after-write: hand back the full view from the read store.
	view, err := u.bookingStore.FindByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (u *bookingUseCaseImpl) flagReversal(ctx context.Context, classID, clientID uuid.UUID, auth *PaymentAuthorization, cause error) error {
	revErr := &ReversalError{
		PaymentRef: auth.IntentID,
		ClassID:    classID,
		ClientID:   clientID,
		Cause:      cause,
	}

	slog.Error("authorized charge has no matching booking, reversal required",
		"payment_ref", auth.IntentID,
		"class_id", classID,
		"client_id", clientID,
		"cause", cause.Error())

	alert := ReversalAlert{
		PaymentRef: auth.IntentID,
		ClassID:    classID,
		ClientID:   clientID,
		Reason:     cause.Error(),
	}
	if pubErr := u.alerts.PublishReversal(ctx, alert); pubErr != nil {
		// The caller still receives the reversal error; losing the alert
		// must never hide the condition itself.
		slog.Error("failed to publish reversal alert",
			"payment_ref", auth.IntentID, "error", pubErr.Error())
	}

	u.clearIntentQuietly(ctx, clientID, classID)

	return revErr
}

func (u *bookingUseCaseImpl) clearIntentQuietly(ctx context.Context, clientID, classID uuid.UUID) {
	if err := u.intents.Clear(ctx, clientID, classID); err != nil {
		slog.Warn("failed to clear payment intent",
			"class_id", classID, "client_id", clientID, "error", err.Error())
	}
}
