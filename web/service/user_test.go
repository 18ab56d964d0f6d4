package service

import (
	"fmt"
	"os"
	"testing"

	"userhub/database"

	"github.com/stretchr/testify/assert"
)

func setup() {
	dbPath := "test.db"
	os.Remove(dbPath)
	database.InitDB(dbPath)
}

func teardown() {
	db, _ := database.GetDB().DB()
	db.Close()
	os.Remove("test.db")
}

func TestUserService(t *testing.T) {
	setup()
	defer teardown()

	svc := UserService{}

	user, err := svc.CreateUser("Ann", "ann@x.com", "secret1", "photo.jpg")
	assert.NoError(t, err)
	assert.NotZero(t, user.Id)
	// stored password is the hash, never the plaintext
	assert.NotEqual(t, "secret1", user.Password)

	found, err := svc.FindByID(user.Id)
	assert.NoError(t, err)
	assert.Equal(t, "ann@x.com", found.Email)

	found, err = svc.FindByEmail("ann@x.com")
	assert.NoError(t, err)
	assert.Equal(t, user.Id, found.Id)

	assert.True(t, svc.IsEmailTaken("ann@x.com"))
	assert.False(t, svc.IsEmailTaken("bob@x.com"))

	// duplicate email rejected by the unique index
	_, err = svc.CreateUser("Ann Again", "ann@x.com", "secret1", "photo.jpg")
	assert.Error(t, err)

	_, err = svc.FindByID(9999)
	assert.True(t, database.IsNotFound(err))
}

func TestCheckUser(t *testing.T) {
	setup()
	defer teardown()

	svc := UserService{}

	user, err := svc.CreateUser("Ann", "ann@x.com", "secret1", "photo.jpg")
	assert.NoError(t, err)

	checked := svc.CheckUser("ann@x.com", "secret1")
	assert.NotNil(t, checked)
	assert.Equal(t, user.Id, checked.Id)

	assert.Nil(t, svc.CheckUser("ann@x.com", "wrong"))
	assert.Nil(t, svc.CheckUser("nobody@x.com", "secret1"))
}

func TestUpdateFlows(t *testing.T) {
	setup()
	defer teardown()

	svc := UserService{}

	user, err := svc.CreateUser("Ann", "ann@x.com", "secret1", "photo.jpg")
	assert.NoError(t, err)

	updated, err := svc.UpdateProfile(user.Id, "Anna", "anna@x.com")
	assert.NoError(t, err)
	assert.Equal(t, "Anna", updated.Name)
	assert.Equal(t, "anna@x.com", updated.Email)

	err = svc.UpdatePassword(user.Id, "abcdef")
	assert.NoError(t, err)
	assert.Nil(t, svc.CheckUser("anna@x.com", "secret1"))
	assert.NotNil(t, svc.CheckUser("anna@x.com", "abcdef"))

	updated, err = svc.UpdatePhoto(user.Id, "123_new.jpg")
	assert.NoError(t, err)
	assert.Equal(t, "123_new.jpg", updated.Photo)
}

func TestGetUsersPagination(t *testing.T) {
	setup()
	defer teardown()

	svc := UserService{}

	for i := 1; i <= 5; i++ {
		_, err := svc.CreateUser(
			fmt.Sprintf("User %d", i),
			fmt.Sprintf("user%d@x.com", i),
			"secret1",
			"photo.jpg")
		assert.NoError(t, err)
	}

	users, total, err := svc.GetUsers(1, 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, users, 2)
	assert.Equal(t, "user1@x.com", users[0].Email)
	assert.Equal(t, "user2@x.com", users[1].Email)

	users, total, err = svc.GetUsers(3, 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, users, 1)
	assert.Equal(t, "user5@x.com", users[0].Email)
}
