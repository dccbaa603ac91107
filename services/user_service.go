package services

import (
	"errors"
	"time"

	"github.com/campusgig/platform-go/dto"
	"github.com/campusgig/platform-go/middleware"
	"github.com/campusgig/platform-go/models"
	"github.com/campusgig/platform-go/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UserService struct {
	Repos *repositories.Repos
}

func NewUserService(repos *repositories.Repos) *UserService {
	return &UserService{Repos: repos}
}

func (s *UserService) Register(input dto.CreateUserInput) (models.User, error) {
	_, err := s.Repos.User.GetByUsername(input.Username)
	if err == nil {
		return models.User{}, ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, ErrPasswordHashFailure
	}

	user := models.User{
		Username: input.Username,
		Password: string(hashed),
		Email:    input.Email,
		FullName: input.FullName,
		Role:     models.UserRoleStudent,
		Skills:   datatypes.NewJSONSlice(input.Skills),
	}
	if input.Role != nil {
		user.Role = models.UserRole(*input.Role)
	}

	if err := s.Repos.User.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) Login(username, password string) (models.User, string, error) {
	user, err := s.Repos.User.GetByUsername(username)
	if err != nil {
		return user, "", errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return user, "", errors.New("invalid credentials")
	}

	token, err := middleware.GenerateToken(user.UID, user.Username, string(user.Role), 24*time.Hour)
	if err != nil {
		return user, "", err
	}
	return user, token, nil
}

func (s *UserService) GetByID(id uint) (models.User, error) {
	user, err := s.Repos.User.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) Update(id uint, input dto.UpdateUserInput) (models.User, error) {
	user, err := s.Repos.User.GetByID(id)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}

	if input.Password != nil {
		if input.OldPassword == nil {
			return models.User{}, ErrMissingOldPassword
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(*input.OldPassword)); err != nil {
			return models.User{}, ErrIncorrectPassword
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, ErrPasswordHashFailure
		}
		user.Password = string(hashed)
	}
	if input.Email != nil {
		user.Email = input.Email
	}
	if input.FullName != nil {
		user.FullName = input.FullName
	}
	if input.Skills != nil {
		user.Skills = datatypes.NewJSONSlice(*input.Skills)
	}

	if err := s.Repos.User.Update(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// FollowClient adds the client to the student's followed list, which
// boosts that client's gigs in discovery.
func (s *UserService) FollowClient(studentID, clientID uint) error {
	user, err := s.Repos.User.GetByID(studentID)
	if err != nil {
		return ErrUserNotFound
	}
	for _, id := range user.FollowedClients {
		if id == clientID {
			return nil
		}
	}
	return s.Repos.User.SetFollowedClients(studentID, append([]uint(user.FollowedClients), clientID))
}

func (s *UserService) UnfollowClient(studentID, clientID uint) error {
	user, err := s.Repos.User.GetByID(studentID)
	if err != nil {
		return ErrUserNotFound
	}
	out := make([]uint, 0, len(user.FollowedClients))
	for _, id := range user.FollowedClients {
		if id != clientID {
			out = append(out, id)
		}
	}
	return s.Repos.User.SetFollowedClients(studentID, out)
}

func (s *UserService) BlockClient(studentID, clientID uint) error {
	user, err := s.Repos.User.GetByID(studentID)
	if err != nil {
		return ErrUserNotFound
	}
	for _, id := range user.BlockedClients {
		if id == clientID {
			return nil
		}
	}
	return s.Repos.User.SetBlockedClients(studentID, append([]uint(user.BlockedClients), clientID))
}

func (s *UserService) UnblockClient(studentID, clientID uint) error {
	user, err := s.Repos.User.GetByID(studentID)
	if err != nil {
		return ErrUserNotFound
	}
	out := make([]uint, 0, len(user.BlockedClients))
	for _, id := range user.BlockedClients {
		if id != clientID {
			out = append(out, id)
		}
	}
	return s.Repos.User.SetBlockedClients(studentID, out)
}
