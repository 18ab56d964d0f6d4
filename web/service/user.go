package service

import (
	"userhub/database"
	"userhub/database/model"
	"userhub/logger"
	"userhub/util/crypto"

	"gorm.io/gorm"
)

// UserService is the credential store: all reads and writes of user
// records go through it.
type UserService struct{}

func (s *UserService) FindByID(id int) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("id = ?", id).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) FindByEmail(email string) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("email = ?", email).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// IsEmailTaken reports whether a user with the given email already exists.
func (s *UserService) IsEmailTaken(email string) bool {
	db := database.GetDB()

	var count int64
	err := db.Model(model.User{}).
		Where("email = ?", email).
		Count(&count).
		Error
	if err != nil {
		logger.Warning("check email err:", err)
		return false
	}
	return count > 0
}

// CheckUser returns the user matching email and password, or nil. Callers
// must not learn which of the two was wrong.
func (s *UserService) CheckUser(email string, password string) *model.User {
	user, err := s.FindByEmail(email)
	if err == gorm.ErrRecordNotFound {
		return nil
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil
	}

	if !crypto.CheckPasswordHash(user.Password, password) {
		return nil
	}

	return user
}

// CreateUser hashes the plaintext password and persists a new user record.
func (s *UserService) CreateUser(name, email, password, photo string) (*model.User, error) {
	hashedPassword, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: hashedPassword,
		Photo:    photo,
	}

	db := database.GetDB()
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfile sets name and email on the user and returns the fresh record.
func (s *UserService) UpdateProfile(id int, name, email string) (*model.User, error) {
	db := database.GetDB()
	err := db.Model(model.User{}).
		Where("id = ?", id).
		Updates(map[string]any{"name": name, "email": email}).
		Error
	if err != nil {
		return nil, err
	}
	return s.FindByID(id)
}

// UpdatePassword hashes the plaintext and persists it.
func (s *UserService) UpdatePassword(id int, password string) error {
	hashedPassword, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return err
	}

	db := database.GetDB()
	return db.Model(model.User{}).
		Where("id = ?", id).
		Update("password", hashedPassword).
		Error
}

// UpdatePhoto persists the new photo reference and returns the fresh record.
func (s *UserService) UpdatePhoto(id int, photo string) (*model.User, error) {
	db := database.GetDB()
	err := db.Model(model.User{}).
		Where("id = ?", id).
		Update("photo", photo).
		Error
	if err != nil {
		return nil, err
	}
	return s.FindByID(id)
}

// GetUsers returns one page of users in id order plus the total count.
func (s *UserService) GetUsers(page, perPage int) ([]model.User, int64, error) {
	db := database.GetDB()

	var total int64
	if err := db.Model(model.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	err := db.Model(model.User{}).
		Order("id").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&users).
		Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}
