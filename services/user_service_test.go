package services

import (
	"testing"
	"time"

	"github.com/campusgig/platform-go/dto"
	"github.com/campusgig/platform-go/middleware"
	"github.com/campusgig/platform-go/models"
	"github.com/campusgig/platform-go/repositories"
	"github.com/campusgig/platform-go/repositories/mock_repositories"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupUserServiceMocks(t *testing.T) (*UserService, *mock_repositories.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock_repositories.NewMockUserRepo(ctrl)
	repos := &repositories.Repos{
		User: mockUser,
	}
	svc := NewUserService(repos)
	return svc, mockUser
}

// --------------------- Register ---------------------
func TestRegister_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	input := dto.CreateUserInput{
		Username: "alice",
		Password: "123456",
		Email:    ptrString("alice@test.com"),
		Role:     ptrString("client"),
	}

	mockUser.EXPECT().GetByUsername("alice").Return(models.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().Create(gomock.Any()).Return(nil)

	user, err := svc.Register(input)
	assert.NoError(t, err)
	assert.Equal(t, models.UserRoleClient, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("123456")))
}

func TestRegister_DefaultsToStudent(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetByUsername("sam").Return(models.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().Create(gomock.Any()).Return(nil)

	user, err := svc.Register(dto.CreateUserInput{Username: "sam", Password: "123456", Skills: []string{"design"}})
	assert.NoError(t, err)
	assert.Equal(t, models.UserRoleStudent, user.Role)
	assert.Equal(t, []string{"design"}, []string(user.Skills))
}

func TestRegister_UsernameTaken(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetByUsername("admin").Return(models.User{UID: 1}, nil)

	_, err := svc.Register(dto.CreateUserInput{Username: "admin", Password: "123456"})
	assert.Equal(t, ErrUsernameTaken, err)
}

// --------------------- Login ---------------------
func TestLogin_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	user := models.User{UID: 1, Username: "bob", Password: string(hashed), Role: models.UserRoleStudent}

	mockUser.EXPECT().GetByUsername("bob").Return(user, nil)

	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(userID uint, username, role string, expireDuration time.Duration) (string, error) {
		return "token123", nil
	}
	defer func() { middleware.GenerateToken = oldGen }()

	u, token, err := svc.Login("bob", "123456")
	assert.NoError(t, err)
	assert.Equal(t, "bob", u.Username)
	assert.Equal(t, "token123", token)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	mockUser.EXPECT().GetByUsername("bob").Return(models.User{UID: 1, Password: string(hashed)}, nil)

	_, _, err := svc.Login("bob", "wrong")
	assert.Error(t, err)
}

// --------------------- Follow / Block ---------------------
func TestFollowClient_Appends(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetByID(uint(7)).Return(models.User{
		UID:             7,
		FollowedClients: datatypes.NewJSONSlice([]uint{3}),
	}, nil)
	mockUser.EXPECT().SetFollowedClients(uint(7), []uint{3, 4}).Return(nil)

	assert.NoError(t, svc.FollowClient(7, 4))
}

func TestFollowClient_Idempotent(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetByID(uint(7)).Return(models.User{
		UID:             7,
		FollowedClients: datatypes.NewJSONSlice([]uint{3}),
	}, nil)

	// No SetFollowedClients expected: following twice is a no-op.
	assert.NoError(t, svc.FollowClient(7, 3))
}

func TestUnfollowClient_Removes(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetByID(uint(7)).Return(models.User{
		UID:             7,
		FollowedClients: datatypes.NewJSONSlice([]uint{3, 4}),
	}, nil)
	mockUser.EXPECT().SetFollowedClients(uint(7), []uint{4}).Return(nil)

	assert.NoError(t, svc.UnfollowClient(7, 3))
}

func TestBlockClient_Appends(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetByID(uint(7)).Return(models.User{UID: 7}, nil)
	mockUser.EXPECT().SetBlockedClients(uint(7), []uint{5}).Return(nil)

	assert.NoError(t, svc.BlockClient(7, 5))
}

// --------------------- Update ---------------------
func TestUpdateUser_PasswordNeedsOldPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetByID(uint(7)).Return(models.User{UID: 7}, nil)

	_, err := svc.Update(7, dto.UpdateUserInput{Password: ptrString("newpass")})
	assert.Equal(t, ErrMissingOldPassword, err)
}

func TestUpdateUser_WrongOldPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.DefaultCost)
	mockUser.EXPECT().GetByID(uint(7)).Return(models.User{UID: 7, Password: string(hashed)}, nil)

	_, err := svc.Update(7, dto.UpdateUserInput{
		OldPassword: ptrString("wrong"),
		Password:    ptrString("newpass"),
	})
	assert.Equal(t, ErrIncorrectPassword, err)
}
