// Package controller provides the HTTP request handlers of the userhub API.
package controller

import (
	"net/http"

	"userhub/logger"
	"userhub/web/entity"
	"userhub/web/service"
	"userhub/web/validation"

	"github.com/gin-gonic/gin"
)

// LoginForm represents the login request structure.
type LoginForm struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// AuthController orchestrates login, registration, profile fetch, refresh
// and logout.
type AuthController struct {
	userService  service.UserService
	tokenService *service.TokenService
	photoService *service.PhotoService
}

// NewAuthController creates an AuthController and registers its routes:
// login and register on the public group, the rest behind the token
// middleware.
func NewAuthController(g *gin.RouterGroup, protected *gin.RouterGroup, tokens *service.TokenService, photos *service.PhotoService) *AuthController {
	a := &AuthController{
		tokenService: tokens,
		photoService: photos,
	}
	a.initRouter(g, protected)
	return a
}

func (a *AuthController) initRouter(g *gin.RouterGroup, protected *gin.RouterGroup) {
	g.POST("/login", a.login)
	g.POST("/register", a.register)

	protected.GET("/profile", a.profile)
	protected.POST("/refresh", a.refresh)
	protected.GET("/logout", a.logout)
}

// login authenticates email and password and mints a session token.
func (a *AuthController) login(c *gin.Context) {
	var form LoginForm
	_ = c.ShouldBind(&form)

	v := validation.New()
	v.Required("email", form.Email)
	v.Email("email", form.Email)
	v.Required("password", form.Password)
	if v.Fails() {
		jsonErrors(c, "invalid request", v.Errors())
		return
	}

	user := a.userService.CheckUser(form.Email, form.Password)
	if user == nil {
		logger.Warningf("failed login for \"%s\", IP: \"%s\"", form.Email, getRemoteIp(c))
		jsonMsg(c, http.StatusBadRequest, "invalid credential")
		return
	}

	token, err := a.tokenService.Issue(user)
	if err != nil {
		logger.Error("create token err:", err)
		jsonMsg(c, http.StatusInternalServerError, "could not create token")
		return
	}

	jsonData(c, http.StatusOK, "Successfully Logged", entity.TokenData{Token: token, User: user})
}

// register validates the multipart payload, stores the photo, creates the
// user with a hashed password and mints a session token.
func (a *AuthController) register(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	password := c.PostForm("password")
	passwordConfirmation := c.PostForm("password_confirmation")
	photo, _ := c.FormFile("photo")

	v := validation.New()
	v.Required("name", name)
	v.MaxLen("name", name, 255)
	v.Required("email", email)
	v.Email("email", email)
	v.MaxLen("email", email, 255)
	if email != "" && a.userService.IsEmailTaken(email) {
		v.Add("email", "The email has already been taken.")
	}
	v.File("photo", photo)
	v.FileMax("photo", photo, service.MaxPhotoKilobytes)
	v.Required("password", password)
	v.MinLen("password", password, 6)
	v.Confirmed("password", password, passwordConfirmation)
	if v.Fails() {
		jsonErrors(c, "invalid request", v.Errors())
		return
	}

	photoName, err := a.photoService.Save(photo)
	if err != nil {
		logger.Error("store photo err:", err)
		jsonInternal(c, err)
		return
	}

	user, err := a.userService.CreateUser(name, email, password, photoName)
	if err != nil {
		logger.Error("create user err:", err)
		jsonInternal(c, err)
		return
	}

	token, err := a.tokenService.Issue(user)
	if err != nil {
		logger.Error("create token err:", err)
		jsonMsg(c, http.StatusInternalServerError, "could not create token")
		return
	}

	jsonData(c, http.StatusCreated, "Successfully Registered", entity.TokenData{Token: token, User: user})
}

// profile returns the authenticated user.
func (a *AuthController) profile(c *gin.Context) {
	jsonData(c, http.StatusOK, "User data", currentUser(c))
}

// refresh mints a replacement token for the authenticated user. The old
// token stays valid until its own expiry.
func (a *AuthController) refresh(c *gin.Context) {
	user := currentUser(c)

	token, err := a.tokenService.Refresh(user)
	if err != nil {
		logger.Error("refresh token err:", err)
		jsonMsg(c, http.StatusInternalServerError, "could not create token")
		return
	}

	jsonData(c, http.StatusOK, "Successfully Refreshed", entity.TokenData{Token: token, User: user})
}

// logout acknowledges the client discarding its token. Tokens are stateless,
// so there is nothing to revoke server-side.
func (a *AuthController) logout(c *gin.Context) {
	jsonMsg(c, http.StatusOK, "Successfully logged out")
}
