package services

import (
	"errors"
	"time"

	"github.com/campusgig/platform-go/dto"
	"github.com/campusgig/platform-go/metrics"
	"github.com/campusgig/platform-go/models"
	"github.com/campusgig/platform-go/repositories"
	"gorm.io/gorm"
)

type ReviewService struct {
	Repos *repositories.Repos
}

func NewReviewService(repos *repositories.Repos) *ReviewService {
	return &ReviewService{Repos: repos}
}

// SubmitReview accepts the client's single rating for a completed gig
// and folds it into the student's running average. The insert and the
// aggregate update happen in one locking transaction.
func (s *ReviewService) SubmitReview(gigID, actingClientID uint, input dto.SubmitReviewDTO) (models.Review, models.User, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return models.Review{}, models.User{}, ErrInvalidRating
	}

	gig, err := s.Repos.Gig.GetByID(gigID)
	if err != nil {
		return models.Review{}, models.User{}, ErrGigNotFound
	}
	if gig.ClientID != actingClientID {
		return models.Review{}, models.User{}, ErrUnauthorized
	}
	if gig.Status != models.GigStatusCompleted || gig.SelectedStudentID == nil {
		return models.Review{}, models.User{}, ErrInvalidState
	}
	studentID := *gig.SelectedStudentID

	if _, err := s.Repos.Review.GetByTriple(gigID, actingClientID, studentID); err == nil {
		return models.Review{}, models.User{}, ErrAlreadyReviewed
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Review{}, models.User{}, err
	}

	review := models.Review{
		GigID:     gigID,
		ClientID:  actingClientID,
		StudentID: studentID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}
	student, err := s.Repos.Review.CreateAndAggregate(&review)
	if err != nil {
		// The composite unique index backstops the pre-check under
		// concurrent submissions.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Review{}, models.User{}, ErrAlreadyReviewed
		}
		return models.Review{}, models.User{}, err
	}

	metrics.ReviewsSubmitted.Inc()
	return review, student, nil
}

// ReplyToReview sets the student's reply. Unlike the rating, a reply
// may be overwritten by a later call.
func (s *ReviewService) ReplyToReview(reviewID, actingStudentID uint, text string) (models.Review, error) {
	review, err := s.Repos.Review.GetByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Review{}, ErrReviewNotFound
		}
		return models.Review{}, err
	}
	if review.StudentID != actingStudentID {
		return models.Review{}, ErrUnauthorized
	}

	return s.Repos.Review.SetReply(reviewID, text, time.Now())
}

func (s *ReviewService) ListByStudent(studentID uint) ([]models.Review, error) {
	return s.Repos.Review.ListByStudentID(studentID)
}
