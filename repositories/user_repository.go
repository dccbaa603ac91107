package repositories

import (
	"github.com/campusgig/platform-go/db"
	"github.com/campusgig/platform-go/models"
	"gorm.io/datatypes"
)

type UserRepo interface {
	Create(user *models.User) error
	GetByID(id uint) (models.User, error)
	GetByUsername(username string) (models.User, error)
	Update(user *models.User) error
	SetFollowedClients(id uint, clients []uint) error
	SetBlockedClients(id uint, clients []uint) error
}

type DBUserRepo struct{}

func (r *DBUserRepo) Create(user *models.User) error {
	return db.DB.Create(user).Error
}

func (r *DBUserRepo) GetByID(id uint) (models.User, error) {
	var user models.User
	err := db.DB.First(&user, id).Error
	return user, err
}

func (r *DBUserRepo) GetByUsername(username string) (models.User, error) {
	var user models.User
	err := db.DB.Where("username = ?", username).First(&user).Error
	return user, err
}

func (r *DBUserRepo) Update(user *models.User) error {
	return db.DB.Save(user).Error
}

func (r *DBUserRepo) SetFollowedClients(id uint, clients []uint) error {
	return db.DB.Model(&models.User{}).
		Where("u_id = ?", id).
		Update("followed_clients", datatypes.NewJSONSlice(clients)).Error
}

func (r *DBUserRepo) SetBlockedClients(id uint, clients []uint) error {
	return db.DB.Model(&models.User{}).
		Where("u_id = ?", id).
		Update("blocked_clients", datatypes.NewJSONSlice(clients)).Error
}
