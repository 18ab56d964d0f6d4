package controller

import (
	"net/http"
	"strconv"

	"userhub/database"
	"userhub/database/model"
	"userhub/logger"
	"userhub/web/entity"
	"userhub/web/service"
	"userhub/web/validation"

	"github.com/gin-gonic/gin"
)

// UpdateForm represents the profile update request structure.
type UpdateForm struct {
	Name  string `json:"name" form:"name"`
	Email string `json:"email" form:"email"`
}

// PasswordForm represents the password update request structure.
type PasswordForm struct {
	Password             string `json:"password" form:"password"`
	PasswordConfirmation string `json:"password_confirmation" form:"password_confirmation"`
}

// UserController orchestrates listing, viewing and updating user records.
type UserController struct {
	userService  service.UserService
	photoService *service.PhotoService
	pageSize     int
}

// NewUserController creates a UserController and registers its routes on
// the token-protected group.
func NewUserController(protected *gin.RouterGroup, photos *service.PhotoService, pageSize int) *UserController {
	a := &UserController{
		photoService: photos,
		pageSize:     pageSize,
	}
	a.initRouter(protected)
	return a
}

func (a *UserController) initRouter(g *gin.RouterGroup) {
	g.GET("/users", a.list)
	g.POST("/users", a.store)
	g.GET("/users/:id", a.show)
	g.PUT("/users/:id", a.update)
	g.PATCH("/users/:id", a.update)
	g.DELETE("/users/:id", a.destroy)
	g.PATCH("/users/:id/password", a.updatePassword)
	g.PATCH("/users/:id/photo", a.updatePhoto)
}

// list returns one page of users in id order.
func (a *UserController) list(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	perPage, err := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(a.pageSize)))
	if err != nil || perPage < 1 {
		perPage = a.pageSize
	}

	users, total, err := a.userService.GetUsers(page, perPage)
	if err != nil {
		logger.Error("list users err:", err)
		jsonInternal(c, err)
		return
	}

	jsonData(c, http.StatusOK, "Users data", entity.PageData{
		Users:   users,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	})
}

// show returns one user with a message carrying the user's name.
func (a *UserController) show(c *gin.Context) {
	user, ok := a.fetchUser(c)
	if !ok {
		return
	}
	jsonData(c, http.StatusOK, "User data "+user.Name, user)
}

// update changes name and email. Email uniqueness is not re-checked here;
// the unique index still rejects true duplicates at write time.
func (a *UserController) update(c *gin.Context) {
	user, ok := a.fetchUser(c)
	if !ok {
		return
	}

	var form UpdateForm
	_ = c.ShouldBind(&form)

	v := validation.New()
	v.Required("name", form.Name)
	v.MaxLen("name", form.Name, 255)
	v.Required("email", form.Email)
	v.Email("email", form.Email)
	v.MaxLen("email", form.Email, 255)
	if v.Fails() {
		jsonErrors(c, "invalid request", v.Errors())
		return
	}

	updated, err := a.userService.UpdateProfile(user.Id, form.Name, form.Email)
	if err != nil {
		logger.Error("update user err:", err)
		jsonInternal(c, err)
		return
	}

	jsonData(c, http.StatusOK, "Successfully Edit Profile", updated)
}

// updatePassword hashes and persists a new password.
func (a *UserController) updatePassword(c *gin.Context) {
	user, ok := a.fetchUser(c)
	if !ok {
		return
	}

	var form PasswordForm
	_ = c.ShouldBind(&form)

	v := validation.New()
	v.Required("password", form.Password)
	v.MinLen("password", form.Password, 6)
	v.Confirmed("password", form.Password, form.PasswordConfirmation)
	if v.Fails() {
		jsonErrors(c, "invalid request", v.Errors())
		return
	}

	if err := a.userService.UpdatePassword(user.Id, form.Password); err != nil {
		logger.Error("update password err:", err)
		jsonInternal(c, err)
		return
	}

	jsonMsg(c, http.StatusOK, "Successfully Edit Password")
}

// updatePhoto replaces the user's photo: the previous file is deleted
// first, then the upload is stored under a new time-prefixed name.
func (a *UserController) updatePhoto(c *gin.Context) {
	user, ok := a.fetchUser(c)
	if !ok {
		return
	}

	photo, _ := c.FormFile("photo")

	v := validation.New()
	v.File("photo", photo)
	v.FileMax("photo", photo, service.MaxPhotoKilobytes)
	if v.Fails() {
		jsonErrors(c, "invalid request", v.Errors())
		return
	}

	if err := a.photoService.Delete(user.Photo); err != nil {
		jsonInternal(c, err)
		return
	}

	photoName, err := a.photoService.Save(photo)
	if err != nil {
		logger.Error("store photo err:", err)
		jsonInternal(c, err)
		return
	}

	updated, err := a.userService.UpdatePhoto(user.Id, photoName)
	if err != nil {
		logger.Error("update photo err:", err)
		jsonInternal(c, err)
		return
	}

	jsonData(c, http.StatusOK, "Successfully Edit Photo Profile", updated)
}

// store is a deliberate no-op; creation goes through register.
func (a *UserController) store(c *gin.Context) {
	c.Status(http.StatusOK)
}

// destroy is a deliberate no-op; user deletion is out of scope.
func (a *UserController) destroy(c *gin.Context) {
	c.Status(http.StatusOK)
}

// fetchUser resolves the :id route parameter to a user record, writing the
// 404 envelope when it does not resolve.
func (a *UserController) fetchUser(c *gin.Context) (*model.User, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		jsonMsg(c, http.StatusNotFound, "user not found")
		return nil, false
	}

	user, err := a.userService.FindByID(id)
	if err != nil {
		if database.IsNotFound(err) {
			jsonMsg(c, http.StatusNotFound, "user not found")
		} else {
			logger.Error("find user err:", err)
			jsonInternal(c, err)
		}
		return nil, false
	}
	return user, true
}
