package services

import (
	"errors"
	"time"

	"github.com/campusgig/platform-go/config"
	"github.com/campusgig/platform-go/dto"
	"github.com/campusgig/platform-go/metrics"
	"github.com/campusgig/platform-go/models"
	"github.com/campusgig/platform-go/repositories"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type GigService struct {
	Repos *repositories.Repos
}

func NewGigService(repos *repositories.Repos) *GigService {
	return &GigService{Repos: repos}
}

func (s *GigService) CreateGig(clientID uint, input dto.CreateGigDTO) (models.Gig, error) {
	client, err := s.Repos.User.GetByID(clientID)
	if err != nil {
		return models.Gig{}, ErrUserNotFound
	}

	budget, err := decimal.NewFromString(input.Budget)
	if err != nil || budget.IsNegative() {
		return models.Gig{}, errors.New("invalid budget")
	}
	if !config.CurrencyAllowed(input.Currency) {
		return models.Gig{}, ErrInvalidCurrency
	}
	deadline, err := time.Parse(time.RFC3339, input.Deadline)
	if err != nil {
		return models.Gig{}, errors.New("invalid deadline")
	}

	gig := models.Gig{
		Title:           input.Title,
		Description:     input.Description,
		RequiredSkills:  datatypes.NewJSONSlice(input.RequiredSkills),
		Budget:          budget,
		Currency:        input.Currency,
		Deadline:        deadline,
		ClientID:        clientID,
		ClientUsername:  client.Username,
		Status:          models.GigStatusOpen,
		NumberOfReports: input.NumberOfReports,
	}

	if err := s.Repos.Gig.Create(&gig); err != nil {
		return models.Gig{}, err
	}
	metrics.GigsCreated.Inc()
	return gig, nil
}

func (s *GigService) GetGig(id uint) (models.Gig, error) {
	gig, err := s.Repos.Gig.GetWithApplicants(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Gig{}, ErrGigNotFound
		}
		return models.Gig{}, err
	}
	return gig, nil
}

// UpdateGig edits posting fields. Only the owner may edit, and only
// while the gig is still open.
func (s *GigService) UpdateGig(gigID, actingClientID uint, input dto.UpdateGigDTO) (models.Gig, error) {
	gig, err := s.Repos.Gig.GetByID(gigID)
	if err != nil {
		return models.Gig{}, ErrGigNotFound
	}
	if gig.ClientID != actingClientID {
		return models.Gig{}, ErrUnauthorized
	}
	if gig.Status != models.GigStatusOpen {
		return models.Gig{}, ErrInvalidState
	}

	fields := map[string]interface{}{}
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.RequiredSkills != nil {
		fields["required_skills"] = datatypes.NewJSONSlice(*input.RequiredSkills)
	}
	if input.Budget != nil {
		budget, err := decimal.NewFromString(*input.Budget)
		if err != nil || budget.IsNegative() {
			return models.Gig{}, errors.New("invalid budget")
		}
		fields["budget"] = budget
	}
	if input.Deadline != nil {
		deadline, err := time.Parse(time.RFC3339, *input.Deadline)
		if err != nil {
			return models.Gig{}, errors.New("invalid deadline")
		}
		fields["deadline"] = deadline
	}
	if input.NumberOfReports != nil {
		fields["number_of_reports"] = *input.NumberOfReports
	}
	if len(fields) == 0 {
		return gig, nil
	}

	if err := s.Repos.Gig.UpdatePostingGuarded(gig.GID, fields, gig.Version); err != nil {
		if errors.Is(err, repositories.ErrStaleWrite) {
			return models.Gig{}, ErrConflict
		}
		return models.Gig{}, err
	}
	return s.Repos.Gig.GetByID(gigID)
}

// CloseGig retires an open gig. Closing is a status, not a delete.
func (s *GigService) CloseGig(gigID, actingClientID uint) (models.Gig, error) {
	gig, err := s.Repos.Gig.GetByID(gigID)
	if err != nil {
		return models.Gig{}, ErrGigNotFound
	}
	if gig.ClientID != actingClientID {
		return models.Gig{}, ErrUnauthorized
	}
	if !gig.Status.CanTransitionTo(models.GigStatusClosed) {
		return models.Gig{}, ErrInvalidState
	}

	if err := s.Repos.Gig.UpdateStatusGuarded(gig.GID, gig.Status, models.GigStatusClosed, gig.Version); err != nil {
		if errors.Is(err, repositories.ErrStaleWrite) {
			return models.Gig{}, ErrConflict
		}
		return models.Gig{}, err
	}
	return s.Repos.Gig.GetByID(gigID)
}

func (s *GigService) ListByClient(clientID uint) ([]models.Gig, error) {
	return s.Repos.Gig.ListByClientID(clientID)
}

func (s *GigService) ListApplied(studentID uint) ([]models.Gig, error) {
	return s.Repos.Gig.ListAppliedGigs(studentID)
}

// SubmitReport records a progress checkpoint from the selected student.
func (s *GigService) SubmitReport(gigID, studentID uint, seq int, note, attachmentURL string) (models.ProgressReport, error) {
	gig, err := s.Repos.Gig.GetByID(gigID)
	if err != nil {
		return models.ProgressReport{}, ErrGigNotFound
	}
	if gig.SelectedStudentID == nil || *gig.SelectedStudentID != studentID {
		return models.ProgressReport{}, ErrUnauthorized
	}
	if gig.Status != models.GigStatusInProgress {
		return models.ProgressReport{}, ErrInvalidState
	}
	if gig.NumberOfReports > 0 && seq > gig.NumberOfReports {
		return models.ProgressReport{}, errors.New("report sequence exceeds the agreed checkpoint count")
	}

	report := models.ProgressReport{
		GigID:         gigID,
		StudentID:     studentID,
		Seq:           seq,
		Note:          note,
		AttachmentURL: attachmentURL,
	}
	if err := s.Repos.Gig.CreateReport(&report); err != nil {
		return models.ProgressReport{}, err
	}
	return report, nil
}

func (s *GigService) ListReports(gigID, actingUserID uint) ([]models.ProgressReport, error) {
	gig, err := s.Repos.Gig.GetByID(gigID)
	if err != nil {
		return nil, ErrGigNotFound
	}
	isClient := gig.ClientID == actingUserID
	isStudent := gig.SelectedStudentID != nil && *gig.SelectedStudentID == actingUserID
	if !isClient && !isStudent {
		return nil, ErrUnauthorized
	}
	return s.Repos.Gig.ListReports(gigID)
}
