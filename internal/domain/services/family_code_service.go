package services

import (
	"regexp"

	"gorm.io/gorm"

	"hearttune-http-service/internal/domain/models"
	"hearttune-http-service/utils"
)

const (
	familyCodePrefix   = "FAM-"
	familyCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	familyCodeLength   = 5
)

var familyCodePattern = regexp.MustCompile(`^FAM-[A-Z0-9]{5}$`)

// InterfaceFamilyCodeService allocates and checks family group codes
type InterfaceFamilyCodeService interface {
	Generate() (string, error)
	IsWellFormed(code string) bool
}

// FamilyCodeService provides family code allocation
type FamilyCodeService struct {
	DB *gorm.DB
}

// NewFamilyCodeService creates a new family code service
func NewFamilyCodeService(db *gorm.DB) InterfaceFamilyCodeService {
	return &FamilyCodeService{DB: db}
}

// Generate produces a new code of the form FAM-XXXXX that no account
// currently holds. Collisions are resolved by resampling; at 36^5
// combinations the loop terminates almost immediately.
func (s *FamilyCodeService) Generate() (string, error) {
	for {
		code := familyCodePrefix + utils.RandomString(familyCodeLength, familyCodeAlphabet)

		var count int64
		if err := s.DB.Model(&models.User{}).Where("family_code = ?", code).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
	}
}

// IsWellFormed reports whether code has the FAM-XXXXX shape
func (s *FamilyCodeService) IsWellFormed(code string) bool {
	return familyCodePattern.MatchString(code)
}
