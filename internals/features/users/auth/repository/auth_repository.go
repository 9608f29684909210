package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "edubridge_backend/internals/features/users/user/model"
)

/* ====================== USER ====================== */

func FindUserByUsername(db *gorm.DB, username string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("user_name = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserByUsernameLight pulls only what login needs before the hash check.
func FindUserByUsernameLight(db *gorm.DB, username string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Select("id", "password").
		Where("user_name = ?", username).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, userID uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateUser(db *gorm.DB, user *userModel.UserModel) error {
	return db.Create(user).Error
}
