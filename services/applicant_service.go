package services

import (
	"errors"

	"github.com/campusgig/platform-go/metrics"
	"github.com/campusgig/platform-go/models"
	"github.com/campusgig/platform-go/repositories"
	"gorm.io/gorm"
)

type ApplicantService struct {
	Repos    *repositories.Repos
	notifier *NotificationService
}

func NewApplicantService(repos *repositories.Repos, notifier *NotificationService) *ApplicantService {
	return &ApplicantService{Repos: repos, notifier: notifier}
}

// Apply appends a pending entry to the gig's applicant list.
func (s *ApplicantService) Apply(gigID, studentID uint, message string) (models.Applicant, error) {
	gig, err := s.Repos.Gig.GetByID(gigID)
	if err != nil {
		return models.Applicant{}, ErrGigNotFound
	}
	if gig.Status != models.GigStatusOpen {
		return models.Applicant{}, ErrInvalidState
	}

	if _, err := s.Repos.Gig.GetApplicant(gigID, studentID); err == nil {
		return models.Applicant{}, ErrAlreadyApplied
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Applicant{}, err
	}

	student, err := s.Repos.User.GetByID(studentID)
	if err != nil {
		return models.Applicant{}, ErrUserNotFound
	}

	entry := models.Applicant{
		GigID:           gigID,
		StudentID:       studentID,
		StudentUsername: student.Username,
		Message:         message,
		Status:          models.ApplicantStatusPending,
	}
	if err := s.Repos.Gig.AppendApplicant(&entry); err != nil {
		return models.Applicant{}, err
	}
	return entry, nil
}

// Decide finalizes an applicant's status. Decisions are append-only:
// re-deciding an already decided entry fails rather than silently
// repeating side effects. The chat notification is dispatched only
// after the guarded write committed.
func (s *ApplicantService) Decide(gigID, studentID uint, decision models.ApplicantStatus, actingClientID uint) (models.Gig, error) {
	gig, err := s.Repos.Gig.GetByID(gigID)
	if err != nil {
		return models.Gig{}, ErrGigNotFound
	}
	if gig.ClientID != actingClientID {
		return models.Gig{}, ErrUnauthorized
	}

	entry, err := s.Repos.Gig.GetApplicant(gigID, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Gig{}, ErrApplicantNotFound
		}
		return models.Gig{}, err
	}
	if entry.Status != models.ApplicantStatusPending {
		return models.Gig{}, ErrAlreadyDecided
	}

	if decision == models.ApplicantStatusAccepted {
		if gig.Status != models.GigStatusOpen || gig.SelectedStudentID != nil {
			return models.Gig{}, ErrInvalidState
		}
		if !gig.Status.CanTransitionTo(models.GigStatusInProgress) {
			return models.Gig{}, ErrInvalidState
		}
	}

	if err := s.Repos.Gig.DecideApplicant(gigID, studentID, decision, gig.Version); err != nil {
		if errors.Is(err, repositories.ErrStaleWrite) {
			return models.Gig{}, ErrConflict
		}
		return models.Gig{}, err
	}

	metrics.ApplicantDecisions.WithLabelValues(string(decision)).Inc()

	updated, err := s.Repos.Gig.GetWithApplicants(gigID)
	if err != nil {
		return models.Gig{}, err
	}

	go s.notifier.Dispatch(NotificationEvent{
		Kind:      NotificationDecision,
		GigID:     gigID,
		GigTitle:  updated.Title,
		ClientID:  updated.ClientID,
		StudentID: studentID,
		Decision:  decision,
	})

	return updated, nil
}
