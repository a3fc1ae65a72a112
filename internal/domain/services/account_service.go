package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hearttune-http-service/internal/domain/models"
	"hearttune-http-service/internal/infrastructure/config"
	"hearttune-http-service/utils"
)

// RegisterInput carries the fields of a registration request
type RegisterInput struct {
	FullName    string
	ChildName   string
	Email       string
	UserID      string
	Password    string
	Role        string
	EnteredCode string
}

// InterfaceAccountService defines the account service interface
type InterfaceAccountService interface {
	Register(in RegisterInput) (string, error)
	ChangePassword(userID, currentPassword, newPassword string) error
	UpdateProfile(email, fullName, childName string) error
	DeleteAccount(userID, email string) error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByUserID(userID string) (*models.User, error)
}

// AccountService provides account registration and settings operations
type AccountService struct {
	DB         *gorm.DB
	Config     *config.Config
	FamilyCode InterfaceFamilyCodeService
}

// NewAccountService creates a new account service
func NewAccountService(db *gorm.DB, cfg *config.Config, familyCode InterfaceFamilyCodeService) InterfaceAccountService {
	return &AccountService{
		DB:         db,
		Config:     cfg,
		FamilyCode: familyCode,
	}
}

// Register creates a new account. A primary registration forms a new
// family group and returns its freshly allocated code; a member
// registration joins an existing group through the entered code and
// returns an empty string, since the caller already knows the code.
func (s *AccountService) Register(in RegisterInput) (string, error) {
	var familyCode string

	switch in.Role {
	case models.RolePrimary:
		// One family per child name. Two concurrent registrations for
		// the same new child can both pass this count.
		var count int64
		if err := s.DB.Model(&models.User{}).Where("child_name = ?", in.ChildName).Count(&count).Error; err != nil {
			return "", err
		}
		if count > 0 {
			return "", ErrChildHasFamily
		}

		code, err := s.FamilyCode.Generate()
		if err != nil {
			return "", err
		}
		familyCode = code

	case models.RoleMember:
		if in.EnteredCode == "" {
			return "", ErrFamilyCodeRequired
		}

		var count int64
		if err := s.DB.Model(&models.User{}).
			Where("family_code = ? AND child_name = ? AND role = ?", in.EnteredCode, in.ChildName, models.RolePrimary).
			Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return "", ErrFamilyCodeMismatch
		}
		familyCode = in.EnteredCode

	default:
		return "", ErrInvalidRole
	}

	// Pre-checks for friendlier messages; the unique indexes on email
	// and userid remain the authority under concurrent registration.
	var count int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", in.Email).Count(&count).Error; err != nil {
		return "", err
	}
	if count > 0 {
		return "", ErrEmailInUse
	}
	if err := s.DB.Model(&models.User{}).Where("userid = ?", in.UserID).Count(&count).Error; err != nil {
		return "", err
	}
	if count > 0 {
		return "", ErrUserIDInUse
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %v", err)
	}

	user := models.User{
		FullName:      in.FullName,
		ChildName:     in.ChildName,
		Email:         in.Email,
		UserID:        in.UserID,
		Password:      hashed,
		Role:          in.Role,
		FamilyCode:    familyCode,
		Notifications: models.StringList{},
	}

	if err := s.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race against a concurrent registration.
			var n int64
			s.DB.Model(&models.User{}).Where("email = ?", in.Email).Count(&n)
			if n > 0 {
				return "", ErrEmailInUse
			}
			return "", ErrUserIDInUse
		}
		return "", err
	}

	if in.Role == models.RoleMember {
		s.notifyFamily(familyCode, user.UserID)
	}

	if in.Role == models.RolePrimary {
		return familyCode, nil
	}
	return "", nil
}

// notifyFamily appends a join notification to every existing account
// in the group. Best effort: the registration has already committed
// and is never rolled back on a fan-out failure.
func (s *AccountService) notifyFamily(familyCode, joinedUserID string) {
	var members []models.User
	if err := s.DB.Where("family_code = ? AND userid <> ?", familyCode, joinedUserID).Find(&members).Error; err != nil {
		config.Warning("failed to load family members for notification: %v", err)
		return
	}

	message := fmt.Sprintf("%s joined your family group!", joinedUserID)
	for i := range members {
		members[i].Notifications = append(members[i].Notifications, message)
		if err := s.DB.Model(&members[i]).Update("notifications", members[i].Notifications).Error; err != nil {
			config.Warning("failed to notify %s of family join: %v", members[i].UserID, err)
		}
	}
}

// ChangePassword replaces the stored hash after checking the current password
func (s *AccountService) ChangePassword(userID, currentPassword, newPassword string) error {
	user, err := s.GetUserByUserID(userID)
	if err != nil {
		return err
	}

	if !utils.CheckPasswordHash(currentPassword, user.Password) {
		return ErrPasswordIncorrect
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %v", err)
	}

	return s.DB.Model(user).Update("password", hashed).Error
}

// UpdateProfile overwrites the profile fields of the account with this
// email. The child-name uniqueness check applies only at registration,
// not here.
func (s *AccountService) UpdateProfile(email, fullName, childName string) error {
	user, err := s.GetUserByEmail(email)
	if err != nil {
		return err
	}

	return s.DB.Model(user).Updates(map[string]interface{}{
		"full_name":  fullName,
		"child_name": childName,
	}).Error
}

// DeleteAccount removes the account matching both userid and email,
// together with its playlist. The two deletes are not transactional.
func (s *AccountService) DeleteAccount(userID, email string) error {
	if userID == "" || email == "" {
		return ErrMissingFields
	}

	var user models.User
	if err := s.DB.Where("userid = ? AND email = ?", userID, email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAccountNotFound
		}
		return err
	}

	var playlist models.Playlist
	if err := s.DB.Where("userid = ?", userID).First(&playlist).Error; err == nil {
		if err := s.DB.Where("playlist_id = ?", playlist.ID).Delete(&models.Song{}).Error; err != nil {
			return err
		}
		if err := s.DB.Delete(&playlist).Error; err != nil {
			return err
		}
	}

	return s.DB.Delete(&user).Error
}

// GetUserByEmail looks an account up by email
func (s *AccountService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByUserID looks an account up by its handle
func (s *AccountService) GetUserByUserID(userID string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("userid = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &user, nil
}
