package repositories

import (
	"errors"

	"github.com/campusgig/platform-go/db"
	"github.com/campusgig/platform-go/models"
	"gorm.io/gorm"
)

// ErrStaleWrite is returned when a guarded update matched zero rows:
// another writer changed the gig (or the applicant row) first.
var ErrStaleWrite = errors.New("gig was modified concurrently")

type GigRepo interface {
	Create(gig *models.Gig) error
	GetByID(id uint) (models.Gig, error)
	GetWithApplicants(id uint) (models.Gig, error)
	UpdatePostingGuarded(id uint, fields map[string]interface{}, version uint) error
	UpdateStatusGuarded(id uint, from, to models.GigStatus, version uint) error
	ListOpen() ([]models.Gig, error)
	ListByClientID(clientID uint) ([]models.Gig, error)

	AppendApplicant(entry *models.Applicant) error
	GetApplicant(gigID, studentID uint) (models.Applicant, error)
	ListAppliedGigIDs(studentID uint) ([]uint, error)
	ListAppliedGigs(studentID uint) ([]models.Gig, error)
	DecideApplicant(gigID, studentID uint, decision models.ApplicantStatus, version uint) error

	CreateReport(report *models.ProgressReport) error
	ListReports(gigID uint) ([]models.ProgressReport, error)
}

type DBGigRepo struct{}

func (r *DBGigRepo) Create(gig *models.Gig) error {
	return db.DB.Create(gig).Error
}

func (r *DBGigRepo) GetByID(id uint) (models.Gig, error) {
	var gig models.Gig
	err := db.DB.First(&gig, id).Error
	return gig, err
}

func (r *DBGigRepo) GetWithApplicants(id uint) (models.Gig, error) {
	var gig models.Gig
	err := db.DB.Preload("Applicants", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("id ASC")
	}).First(&gig, id).Error
	return gig, err
}

// UpdatePostingGuarded edits posting fields only while the gig is still
// open at the expected version, so an edit can never clobber a
// concurrent acceptance or close.
func (r *DBGigRepo) UpdatePostingGuarded(id uint, fields map[string]interface{}, version uint) error {
	updates := map[string]interface{}{"version": gorm.Expr("version + 1")}
	for k, v := range fields {
		updates[k] = v
	}
	res := db.DB.Model(&models.Gig{}).
		Where("g_id = ? AND status = ? AND version = ?", id, models.GigStatusOpen, version).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStaleWrite
	}
	return nil
}

// UpdateStatusGuarded performs the status transition only if the gig is
// still in the expected state at the expected version.
func (r *DBGigRepo) UpdateStatusGuarded(id uint, from, to models.GigStatus, version uint) error {
	res := db.DB.Model(&models.Gig{}).
		Where("g_id = ? AND status = ? AND version = ?", id, from, version).
		Updates(map[string]interface{}{
			"status":  to,
			"version": gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStaleWrite
	}
	return nil
}

func (r *DBGigRepo) ListOpen() ([]models.Gig, error) {
	var gigs []models.Gig
	err := db.DB.Where("status = ?", models.GigStatusOpen).Find(&gigs).Error
	return gigs, err
}

func (r *DBGigRepo) ListByClientID(clientID uint) ([]models.Gig, error) {
	var gigs []models.Gig
	err := db.DB.Where("client_id = ?", clientID).Order("create_at DESC").Find(&gigs).Error
	return gigs, err
}

func (r *DBGigRepo) AppendApplicant(entry *models.Applicant) error {
	return db.DB.Create(entry).Error
}

func (r *DBGigRepo) GetApplicant(gigID, studentID uint) (models.Applicant, error) {
	var entry models.Applicant
	err := db.DB.Where("gig_id = ? AND student_id = ?", gigID, studentID).First(&entry).Error
	return entry, err
}

func (r *DBGigRepo) ListAppliedGigIDs(studentID uint) ([]uint, error) {
	var ids []uint
	err := db.DB.Model(&models.Applicant{}).
		Where("student_id = ?", studentID).
		Pluck("gig_id", &ids).Error
	return ids, err
}

func (r *DBGigRepo) ListAppliedGigs(studentID uint) ([]models.Gig, error) {
	var gigs []models.Gig
	err := db.DB.
		Joins("JOIN applicants ON applicants.gig_id = gigs.g_id").
		Where("applicants.student_id = ?", studentID).
		Order("gigs.create_at DESC").
		Find(&gigs).Error
	return gigs, err
}

// DecideApplicant applies an accept/reject decision inside one
// transaction. The applicant update is guarded on status=pending and
// the accept branch is guarded on the gig still being open with no
// selected student, so two racing accepts cannot both win.
func (r *DBGigRepo) DecideApplicant(gigID, studentID uint, decision models.ApplicantStatus, version uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Applicant{}).
			Where("gig_id = ? AND student_id = ? AND status = ?", gigID, studentID, models.ApplicantStatusPending).
			Update("status", decision)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStaleWrite
		}

		if decision != models.ApplicantStatusAccepted {
			return nil
		}

		res = tx.Model(&models.Gig{}).
			Where("g_id = ? AND status = ? AND selected_student_id IS NULL AND version = ?",
				gigID, models.GigStatusOpen, version).
			Updates(map[string]interface{}{
				"status":              models.GigStatusInProgress,
				"selected_student_id": studentID,
				"version":             gorm.Expr("version + 1"),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStaleWrite
		}
		return nil
	})
}

func (r *DBGigRepo) CreateReport(report *models.ProgressReport) error {
	return db.DB.Create(report).Error
}

func (r *DBGigRepo) ListReports(gigID uint) ([]models.ProgressReport, error) {
	var reports []models.ProgressReport
	err := db.DB.Where("gig_id = ?", gigID).Order("seq ASC").Find(&reports).Error
	return reports, err
}
