package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campusgig/platform-go/gateway"
	"github.com/campusgig/platform-go/metrics"
	"github.com/campusgig/platform-go/models"
	"github.com/campusgig/platform-go/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var hundred = decimal.NewFromInt(100)

// PaymentService drives a gig from in_progress to completed and
// records the transaction trail. The commission rate is injected at
// construction so deployments and tests can vary it.
type PaymentService struct {
	Repos    *repositories.Repos
	gw       gateway.Gateway
	rate     decimal.Decimal
	notifier *NotificationService
	audit    *AuditService
	log      *logrus.Entry
}

func NewPaymentService(repos *repositories.Repos, gw gateway.Gateway, rate decimal.Decimal, notifier *NotificationService, audit *AuditService) *PaymentService {
	return &PaymentService{
		Repos:    repos,
		gw:       gw,
		rate:     rate,
		notifier: notifier,
		audit:    audit,
		log:      logrus.WithField("component", "payments"),
	}
}

// Commission is the platform's cut of the gross amount. It is derived
// on demand; no record ever stores it.
func (s *PaymentService) Commission(gross decimal.Decimal) decimal.Decimal {
	return gross.Mul(s.rate)
}

// Net is what the student receives: gross minus commission.
func (s *PaymentService) Net(gross decimal.Decimal) decimal.Decimal {
	return gross.Mul(decimal.NewFromInt(1).Sub(s.rate))
}

// InitiatePayment opens a checkout with the gateway for the gig's
// gross budget in minor units. The gig must be in progress with a
// selected student and the caller must own it.
func (s *PaymentService) InitiatePayment(ctx context.Context, gigID, actingClientID uint) (models.PaymentIntent, gateway.Intent, error) {
	gig, err := s.Repos.Gig.GetByID(gigID)
	if err != nil {
		return models.PaymentIntent{}, gateway.Intent{}, ErrGigNotFound
	}
	if gig.ClientID != actingClientID {
		return models.PaymentIntent{}, gateway.Intent{}, ErrUnauthorized
	}
	if gig.Status != models.GigStatusInProgress || gig.SelectedStudentID == nil {
		return models.PaymentIntent{}, gateway.Intent{}, ErrInvalidState
	}

	amountMinor := gig.Budget.Mul(hundred).IntPart()
	intent := models.PaymentIntent{
		Reference:   uuid.New().String(),
		GigID:       gig.GID,
		ClientID:    gig.ClientID,
		StudentID:   *gig.SelectedStudentID,
		AmountMinor: amountMinor,
		Currency:    gig.Currency,
		Status:      models.PaymentIntentStatusCreated,
	}
	if err := s.Repos.Transaction.CreateIntent(&intent); err != nil {
		return models.PaymentIntent{}, gateway.Intent{}, err
	}

	md := gateway.Metadata{
		GigID:     gig.GID,
		ClientID:  gig.ClientID,
		StudentID: *gig.SelectedStudentID,
		Reference: intent.Reference,
	}
	gwIntent, err := s.gw.CreateIntent(ctx, amountMinor, gig.Currency,
		fmt.Sprintf("Gig #%d: %s", gig.GID, gig.Title), md)
	if err != nil {
		return models.PaymentIntent{}, gateway.Intent{}, &GatewayError{Code: "checkout_failed", Reason: err.Error()}
	}

	return intent, gwIntent, nil
}

// VerifyCallback checks that a gateway callback matches the intent it
// claims to confirm: the reference must be known and the echoed
// metadata must name the same gig/client/student triple.
func (s *PaymentService) VerifyCallback(md gateway.Metadata) (models.PaymentIntent, error) {
	intent, err := s.Repos.Transaction.GetIntentByReference(md.Reference)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.PaymentIntent{}, errors.New("unknown payment reference")
		}
		return models.PaymentIntent{}, err
	}
	if intent.GigID != md.GigID || intent.ClientID != md.ClientID || intent.StudentID != md.StudentID {
		return models.PaymentIntent{}, errors.New("callback metadata does not match the recorded intent")
	}
	return intent, nil
}

// OnPaymentConfirmed records the successful payment and completes the
// gig. It is idempotent on the external reference: a duplicate
// confirmation returns the existing transaction. A confirmation for a
// gig no longer in progress is a no-op that leaves an audit trail.
func (s *PaymentService) OnPaymentConfirmed(gigID, studentID uint, externalRef string) (models.Transaction, error) {
	gig, err := s.Repos.Gig.GetByID(gigID)
	if err != nil {
		return models.Transaction{}, ErrGigNotFound
	}

	txn := models.Transaction{
		GigID:                    gigID,
		ClientID:                 gig.ClientID,
		StudentID:                studentID,
		Amount:                   gig.Budget,
		Currency:                 gig.Currency,
		Status:                   models.TransactionStatusSucceeded,
		ExternalPaymentReference: externalRef,
		PaidAt:                   time.Now(),
	}

	err = s.Repos.Transaction.ConfirmPayment(&txn, models.GigStatusCompleted)
	switch {
	case err == nil:
		metrics.PaymentsConfirmed.Inc()
		go s.notifier.Dispatch(NotificationEvent{
			Kind:      NotificationPaymentConfirmed,
			GigID:     gig.GID,
			GigTitle:  gig.Title,
			ClientID:  gig.ClientID,
			StudentID: studentID,
		})
		return txn, nil

	case errors.Is(err, repositories.ErrDuplicateReference):
		// txn now holds the previously recorded transaction.
		metrics.PaymentNoops.Inc()
		s.log.WithFields(logrus.Fields{
			"gig_id":    gigID,
			"reference": externalRef,
		}).Info("duplicate payment confirmation ignored")
		return txn, nil

	case errors.Is(err, repositories.ErrGigNotPayable):
		metrics.PaymentNoops.Inc()
		s.audit.Record(models.SystemSenderID, "payment_confirmation_noop", "gig",
			fmt.Sprintf("%d", gigID), nil, nil,
			fmt.Sprintf("confirmation for reference %s arrived while gig was %s", externalRef, gig.Status))
		s.log.WithFields(logrus.Fields{
			"gig_id":    gigID,
			"reference": externalRef,
			"status":    gig.Status,
		}).Warn("payment confirmation for gig not in progress, ignored")
		return models.Transaction{}, nil

	default:
		return models.Transaction{}, err
	}
}

// OnPaymentFailed marks the intent failed and reports the provider's
// error. The gig stays in progress and no transaction is written.
func (s *PaymentService) OnPaymentFailed(gigID uint, externalRef, code, reason string) error {
	if externalRef != "" {
		if err := s.Repos.Transaction.UpdateIntentStatus(externalRef, models.PaymentIntentStatusFailed); err != nil {
			s.log.WithField("reference", externalRef).WithError(err).Warn("could not mark intent failed")
		}
	}
	s.log.WithFields(logrus.Fields{
		"gig_id": gigID,
		"code":   code,
	}).Info("payment failed, gig left in progress")
	return &GatewayError{Code: code, Reason: reason}
}

func (s *PaymentService) ListTransactions(gigID, actingUserID uint) ([]models.Transaction, error) {
	gig, err := s.Repos.Gig.GetByID(gigID)
	if err != nil {
		return nil, ErrGigNotFound
	}
	isClient := gig.ClientID == actingUserID
	isStudent := gig.SelectedStudentID != nil && *gig.SelectedStudentID == actingUserID
	if !isClient && !isStudent {
		return nil, ErrUnauthorized
	}
	return s.Repos.Transaction.ListByGigID(gigID)
}
