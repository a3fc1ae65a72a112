package services

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hearttune-http-service/internal/domain/models"
	"hearttune-http-service/utils"
)

func primaryInput(childName, email, userID string) RegisterInput {
	return RegisterInput{
		FullName:  "Jamie Doe",
		ChildName: childName,
		Email:     email,
		UserID:    userID,
		Password:  "Secret@123",
		Role:      models.RolePrimary,
	}
}

func TestRegister_PrimaryAllocatesFamilyCode(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAccountService(t, db)

	code, err := svc.Register(primaryInput("Alex", "jamie@example.com", "jamie01"))
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^FAM-[A-Z0-9]{5}$`), code)

	var user models.User
	require.NoError(t, db.Where("userid = ?", "jamie01").First(&user).Error)
	assert.Equal(t, code, user.FamilyCode)
	assert.Equal(t, models.RolePrimary, user.Role)

	// The password must only ever be stored as a hash.
	assert.NotEqual(t, "Secret@123", user.Password)
	assert.True(t, utils.CheckPasswordHash("Secret@123", user.Password))
}

func TestRegister_SecondPrimaryForSameChildConflicts(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAccountService(t, db)

	_, err := svc.Register(primaryInput("Alex", "jamie@example.com", "jamie01"))
	require.NoError(t, err)

	_, err = svc.Register(primaryInput("Alex", "sam@example.com", "sam01"))
	require.ErrorIs(t, err, ErrChildHasFamily)
	require.ErrorIs(t, err, ErrConflict)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestRegister_MemberRequiresCode(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAccountService(t, db)

	_, err := svc.Register(RegisterInput{
		FullName:  "Sam Doe",
		ChildName: "Alex",
		Email:     "sam@example.com",
		UserID:    "sam01",
		Password:  "pw",
		Role:      models.RoleMember,
	})
	require.ErrorIs(t, err, ErrFamilyCodeRequired)
	require.ErrorIs(t, err, ErrValidation)
}

func TestRegister_MemberWrongCodeDoesNotCreateAccount(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAccountService(t, db)

	_, err := svc.Register(primaryInput("Alex", "jamie@example.com", "jamie01"))
	require.NoError(t, err)

	_, err = svc.Register(RegisterInput{
		FullName:    "Sam Doe",
		ChildName:   "Alex",
		Email:       "sam@example.com",
		UserID:      "sam01",
		Password:    "pw",
		Role:        models.RoleMember,
		EnteredCode: "FAM-ZZZZZ",
	})
	require.ErrorIs(t, err, ErrFamilyCodeMismatch)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestRegister_MemberJoinAndChildMismatch(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAccountService(t, db)

	code, err := svc.Register(primaryInput("Alex", "jamie@example.com", "jamie01"))
	require.NoError(t, err)

	// Matching child name joins the group; the code is not echoed back.
	returned, err := svc.Register(RegisterInput{
		FullName:    "Sam Doe",
		ChildName:   "Alex",
		Email:       "sam@example.com",
		UserID:      "sam01",
		Password:    "pw",
		Role:        models.RoleMember,
		EnteredCode: code,
	})
	require.NoError(t, err)
	assert.Empty(t, returned)

	// Same code but a different child name is rejected.
	_, err = svc.Register(RegisterInput{
		FullName:    "Robin Doe",
		ChildName:   "Sam",
		Email:       "robin@example.com",
		UserID:      "robin01",
		Password:    "pw",
		Role:        models.RoleMember,
		EnteredCode: code,
	})
	require.ErrorIs(t, err, ErrFamilyCodeMismatch)
}

func TestRegister_MemberJoinNotifiesFamily(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAccountService(t, db)

	code, err := svc.Register(primaryInput("Alex", "jamie@example.com", "jamie01"))
	require.NoError(t, err)

	_, err = svc.Register(RegisterInput{
		FullName:    "Sam Doe",
		ChildName:   "Alex",
		Email:       "sam@example.com",
		UserID:      "sam01",
		Password:    "pw",
		Role:        models.RoleMember,
		EnteredCode: code,
	})
	require.NoError(t, err)

	var primary models.User
	require.NoError(t, db.Where("userid = ?", "jamie01").First(&primary).Error)
	require.Len(t, primary.Notifications, 1)
	assert.Equal(t, "sam01 joined your family group!", primary.Notifications[0])

	// The joining account gets no notification about itself.
	var member models.User
	require.NoError(t, db.Where("userid = ?", "sam01").First(&member).Error)
	assert.Empty(t, member.Notifications)
}

func TestRegister_DuplicateEmailAndUserID(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAccountService(t, db)

	_, err := svc.Register(primaryInput("Alex", "jamie@example.com", "jamie01"))
	require.NoError(t, err)

	_, err = svc.Register(primaryInput("Morgan", "jamie@example.com", "other01"))
	require.ErrorIs(t, err, ErrEmailInUse)

	_, err = svc.Register(primaryInput("Morgan", "other@example.com", "jamie01"))
	require.ErrorIs(t, err, ErrUserIDInUse)
}

func TestRegister_InvalidRole(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAccountService(t, db)

	in := primaryInput("Alex", "jamie@example.com", "jamie01")
	in.Role = "admin"
	_, err := svc.Register(in)
	require.ErrorIs(t, err, ErrInvalidRole)
}

func TestChangePassword(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAccountService(t, db)

	_, err := svc.Register(primaryInput("Alex", "jamie@example.com", "jamie01"))
	require.NoError(t, err)

	err = svc.ChangePassword("jamie01", "wrong", "NewSecret@123")
	require.ErrorIs(t, err, ErrPasswordIncorrect)

	err = svc.ChangePassword("nosuchuser", "Secret@123", "NewSecret@123")
	require.ErrorIs(t, err, ErrAccountNotFound)

	require.NoError(t, svc.ChangePassword("jamie01", "Secret@123", "NewSecret@123"))

	var user models.User
	require.NoError(t, db.Where("userid = ?", "jamie01").First(&user).Error)
	assert.True(t, utils.CheckPasswordHash("NewSecret@123", user.Password))
	assert.False(t, utils.CheckPasswordHash("Secret@123", user.Password))
}

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAccountService(t, db)

	_, err := svc.Register(primaryInput("Alex", "jamie@example.com", "jamie01"))
	require.NoError(t, err)

	err = svc.UpdateProfile("missing@example.com", "Name", "Child")
	require.ErrorIs(t, err, ErrAccountNotFound)

	require.NoError(t, svc.UpdateProfile("jamie@example.com", "Jamie D.", "Alexis"))

	var user models.User
	require.NoError(t, db.Where("email = ?", "jamie@example.com").First(&user).Error)
	assert.Equal(t, "Jamie D.", user.FullName)
	assert.Equal(t, "Alexis", user.ChildName)
}

func TestDeleteAccount(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAccountService(t, db)
	playlists := NewPlaylistService(db, newTestConfig())

	_, err := svc.Register(primaryInput("Alex", "jamie@example.com", "jamie01"))
	require.NoError(t, err)

	_, err = playlists.AddSong(AddSongInput{
		UserID: "jamie01", Title: "Song A", Artist: "Artist", FileURI: "file:///a.mp3",
	})
	require.NoError(t, err)

	err = svc.DeleteAccount("", "jamie@example.com")
	require.ErrorIs(t, err, ErrMissingFields)

	err = svc.DeleteAccount("jamie01", "wrong@example.com")
	require.ErrorIs(t, err, ErrAccountNotFound)

	require.NoError(t, svc.DeleteAccount("jamie01", "jamie@example.com"))

	_, err = svc.GetUserByUserID("jamie01")
	require.ErrorIs(t, err, ErrAccountNotFound)

	// The playlist goes with the account.
	_, err = playlists.GetPlaylist("jamie01")
	require.ErrorIs(t, err, ErrPlaylistNotFound)

	var songs int64
	db.Model(&models.Song{}).Count(&songs)
	assert.EqualValues(t, 0, songs)
}

func TestErrorCategories(t *testing.T) {
	// Controllers rely on category membership for status mapping.
	assert.True(t, errors.Is(ErrAccountNotFound, ErrNotFound))
	assert.True(t, errors.Is(ErrEmailInUse, ErrConflict))
	assert.True(t, errors.Is(ErrInvalidCredentials, ErrAuth))
	assert.True(t, errors.Is(ErrTitleUnchanged, ErrValidation))
	assert.False(t, errors.Is(ErrTitleUnchanged, ErrNotFound))
}
