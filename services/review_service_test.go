package services

import (
	"testing"
	"time"

	"github.com/campusgig/platform-go/dto"
	"github.com/campusgig/platform-go/models"
	"github.com/campusgig/platform-go/repositories"
	"github.com/campusgig/platform-go/repositories/mock_repositories"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupReviewServiceMocks(t *testing.T) (*ReviewService, *mock_repositories.MockGigRepo, *mock_repositories.MockReviewRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockGig := mock_repositories.NewMockGigRepo(ctrl)
	mockReview := mock_repositories.NewMockReviewRepo(ctrl)
	repos := &repositories.Repos{
		Gig:    mockGig,
		Review: mockReview,
	}
	svc := NewReviewService(repos)
	return svc, mockGig, mockReview
}

func completedGig() models.Gig {
	return models.Gig{GID: 1, ClientID: 3, Status: models.GigStatusCompleted, SelectedStudentID: ptrUint(7)}
}

// --------------------- SubmitReview ---------------------
func TestSubmitReview_Success(t *testing.T) {
	svc, mockGig, mockReview := setupReviewServiceMocks(t)

	mockGig.EXPECT().GetByID(uint(1)).Return(completedGig(), nil)
	mockReview.EXPECT().GetByTriple(uint(1), uint(3), uint(7)).Return(models.Review{}, gorm.ErrRecordNotFound)
	mockReview.EXPECT().CreateAndAggregate(gomock.Any()).
		DoAndReturn(func(review *models.Review) (models.User, error) {
			assert.Equal(t, 5, review.Rating)
			return models.User{UID: 7, AverageRating: 5, TotalRatings: 1}, nil
		})

	review, student, err := svc.SubmitReview(1, 3, dto.SubmitReviewDTO{Rating: 5, Comment: "great work"})
	assert.NoError(t, err)
	assert.Equal(t, uint(7), review.StudentID)
	assert.Equal(t, 1, student.TotalRatings)
	assert.Equal(t, float64(5), student.AverageRating)
}

func TestSubmitReview_RatingOutOfRange(t *testing.T) {
	svc, _, _ := setupReviewServiceMocks(t)

	for _, rating := range []int{0, -1, 6, 100} {
		_, _, err := svc.SubmitReview(1, 3, dto.SubmitReviewDTO{Rating: rating})
		assert.Equal(t, ErrInvalidRating, err, "rating %d", rating)
	}
}

func TestSubmitReview_GigNotCompleted(t *testing.T) {
	svc, mockGig, _ := setupReviewServiceMocks(t)

	gig := completedGig()
	gig.Status = models.GigStatusInProgress
	mockGig.EXPECT().GetByID(uint(1)).Return(gig, nil)

	_, _, err := svc.SubmitReview(1, 3, dto.SubmitReviewDTO{Rating: 4})
	assert.Equal(t, ErrInvalidState, err)
}

func TestSubmitReview_NotOwner(t *testing.T) {
	svc, mockGig, _ := setupReviewServiceMocks(t)

	mockGig.EXPECT().GetByID(uint(1)).Return(completedGig(), nil)

	_, _, err := svc.SubmitReview(1, 99, dto.SubmitReviewDTO{Rating: 4})
	assert.Equal(t, ErrUnauthorized, err)
}

func TestSubmitReview_SecondSubmissionRejected(t *testing.T) {
	svc, mockGig, mockReview := setupReviewServiceMocks(t)

	mockGig.EXPECT().GetByID(uint(1)).Return(completedGig(), nil)
	mockReview.EXPECT().GetByTriple(uint(1), uint(3), uint(7)).
		Return(models.Review{ID: 11, Rating: 5}, nil)

	_, _, err := svc.SubmitReview(1, 3, dto.SubmitReviewDTO{Rating: 2})
	assert.Equal(t, ErrAlreadyReviewed, err)
}

func TestSubmitReview_UniqueIndexBackstop(t *testing.T) {
	svc, mockGig, mockReview := setupReviewServiceMocks(t)

	mockGig.EXPECT().GetByID(uint(1)).Return(completedGig(), nil)
	mockReview.EXPECT().GetByTriple(uint(1), uint(3), uint(7)).Return(models.Review{}, gorm.ErrRecordNotFound)
	mockReview.EXPECT().CreateAndAggregate(gomock.Any()).Return(models.User{}, gorm.ErrDuplicatedKey)

	_, _, err := svc.SubmitReview(1, 3, dto.SubmitReviewDTO{Rating: 4})
	assert.Equal(t, ErrAlreadyReviewed, err)
}

// --------------------- ReplyToReview ---------------------
func TestReplyToReview_Success(t *testing.T) {
	svc, _, mockReview := setupReviewServiceMocks(t)

	mockReview.EXPECT().GetByID(uint(11)).Return(models.Review{ID: 11, StudentID: 7}, nil)
	mockReview.EXPECT().SetReply(uint(11), "thanks!", gomock.Any()).
		DoAndReturn(func(id uint, text string, at time.Time) (models.Review, error) {
			return models.Review{ID: 11, StudentID: 7, StudentReply: &text, RepliedAt: &at}, nil
		})

	review, err := svc.ReplyToReview(11, 7, "thanks!")
	assert.NoError(t, err)
	assert.Equal(t, "thanks!", *review.StudentReply)
}

func TestReplyToReview_OverwritesPrevious(t *testing.T) {
	svc, _, mockReview := setupReviewServiceMocks(t)

	prev := "first reply"
	existing := models.Review{ID: 11, StudentID: 7, StudentReply: &prev}

	mockReview.EXPECT().GetByID(uint(11)).Return(existing, nil)
	mockReview.EXPECT().SetReply(uint(11), "second reply", gomock.Any()).
		DoAndReturn(func(id uint, text string, at time.Time) (models.Review, error) {
			return models.Review{ID: 11, StudentID: 7, StudentReply: &text, RepliedAt: &at}, nil
		})

	review, err := svc.ReplyToReview(11, 7, "second reply")
	assert.NoError(t, err)
	assert.Equal(t, "second reply", *review.StudentReply)
}

func TestReplyToReview_OnlyReviewedStudent(t *testing.T) {
	svc, _, mockReview := setupReviewServiceMocks(t)

	mockReview.EXPECT().GetByID(uint(11)).Return(models.Review{ID: 11, StudentID: 7}, nil)

	_, err := svc.ReplyToReview(11, 8, "not mine")
	assert.Equal(t, ErrUnauthorized, err)
}

func TestReplyToReview_NotFound(t *testing.T) {
	svc, _, mockReview := setupReviewServiceMocks(t)

	mockReview.EXPECT().GetByID(uint(404)).Return(models.Review{}, gorm.ErrRecordNotFound)

	_, err := svc.ReplyToReview(404, 7, "hello")
	assert.Equal(t, ErrReviewNotFound, err)
}
