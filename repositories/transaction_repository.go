package repositories

import (
	"errors"

	"github.com/campusgig/platform-go/db"
	"github.com/campusgig/platform-go/models"
	"gorm.io/gorm"
)

type TransactionRepo interface {
	CreateIntent(intent *models.PaymentIntent) error
	GetIntentByReference(ref string) (models.PaymentIntent, error)
	UpdateIntentStatus(ref string, status models.PaymentIntentStatus) error

	GetByExternalReference(ref string) (models.Transaction, error)
	ListByGigID(gigID uint) ([]models.Transaction, error)

	// ConfirmPayment records the transaction and moves the gig out of
	// in_progress atomically. Duplicate references and gigs no longer
	// in_progress are signalled with the sentinel errors below.
	ConfirmPayment(txn *models.Transaction, gigTo models.GigStatus) error
}

var (
	ErrDuplicateReference = errors.New("payment reference already recorded")
	ErrGigNotPayable      = errors.New("gig is not awaiting payment")
)

type DBTransactionRepo struct{}

func (r *DBTransactionRepo) CreateIntent(intent *models.PaymentIntent) error {
	return db.DB.Create(intent).Error
}

func (r *DBTransactionRepo) GetIntentByReference(ref string) (models.PaymentIntent, error) {
	var intent models.PaymentIntent
	err := db.DB.Where("reference = ?", ref).First(&intent).Error
	return intent, err
}

func (r *DBTransactionRepo) UpdateIntentStatus(ref string, status models.PaymentIntentStatus) error {
	return db.DB.Model(&models.PaymentIntent{}).
		Where("reference = ?", ref).
		Update("status", status).Error
}

func (r *DBTransactionRepo) GetByExternalReference(ref string) (models.Transaction, error) {
	var txn models.Transaction
	err := db.DB.Where("external_payment_reference = ?", ref).First(&txn).Error
	return txn, err
}

func (r *DBTransactionRepo) ListByGigID(gigID uint) ([]models.Transaction, error) {
	var txns []models.Transaction
	err := db.DB.Where("gig_id = ?", gigID).Order("create_at ASC").Find(&txns).Error
	return txns, err
}

func (r *DBTransactionRepo) ConfirmPayment(txn *models.Transaction, gigTo models.GigStatus) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Transaction
		err := tx.Where("external_payment_reference = ?", txn.ExternalPaymentReference).
			First(&existing).Error
		if err == nil {
			*txn = existing
			return ErrDuplicateReference
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		res := tx.Model(&models.Gig{}).
			Where("g_id = ? AND status = ?", txn.GigID, models.GigStatusInProgress).
			Updates(map[string]interface{}{
				"status":  gigTo,
				"version": gorm.Expr("version + 1"),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrGigNotPayable
		}

		if err := tx.Create(txn).Error; err != nil {
			return err
		}

		return tx.Model(&models.PaymentIntent{}).
			Where("reference = ?", txn.ExternalPaymentReference).
			Update("status", models.PaymentIntentStatusConfirmed).Error
	})
}
