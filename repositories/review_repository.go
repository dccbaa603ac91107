package repositories

import (
	"time"

	"github.com/campusgig/platform-go/db"
	"github.com/campusgig/platform-go/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepo interface {
	GetByID(id uint) (models.Review, error)
	GetByTriple(gigID, clientID, studentID uint) (models.Review, error)
	ListByStudentID(studentID uint) ([]models.Review, error)

	// CreateAndAggregate inserts the review and folds its rating into
	// the student profile in one transaction, locking the profile row
	// so concurrent reviews of the same student compose.
	CreateAndAggregate(review *models.Review) (models.User, error)

	SetReply(id uint, text string, at time.Time) (models.Review, error)
}

type DBReviewRepo struct{}

func (r *DBReviewRepo) GetByID(id uint) (models.Review, error) {
	var review models.Review
	err := db.DB.First(&review, id).Error
	return review, err
}

func (r *DBReviewRepo) GetByTriple(gigID, clientID, studentID uint) (models.Review, error) {
	var review models.Review
	err := db.DB.Where("gig_id = ? AND client_id = ? AND student_id = ?", gigID, clientID, studentID).
		First(&review).Error
	return review, err
}

func (r *DBReviewRepo) ListByStudentID(studentID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := db.DB.Where("student_id = ?", studentID).Order("create_at DESC").Find(&reviews).Error
	return reviews, err
}

func (r *DBReviewRepo) CreateAndAggregate(review *models.Review) (models.User, error) {
	var student models.User
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return err
		}

		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&student, review.StudentID).Error; err != nil {
			return err
		}

		newCount := student.TotalRatings + 1
		newAvg := (student.AverageRating*float64(student.TotalRatings) + float64(review.Rating)) / float64(newCount)

		student.AverageRating = newAvg
		student.TotalRatings = newCount
		return tx.Model(&models.User{}).
			Where("u_id = ?", student.UID).
			Updates(map[string]interface{}{
				"average_rating": newAvg,
				"total_ratings":  newCount,
			}).Error
	})
	return student, err
}

func (r *DBReviewRepo) SetReply(id uint, text string, at time.Time) (models.Review, error) {
	var review models.Review
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&review, id).Error; err != nil {
			return err
		}
		review.StudentReply = &text
		review.RepliedAt = &at
		return tx.Save(&review).Error
	})
	return review, err
}
