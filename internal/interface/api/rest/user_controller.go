package rest

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"users-api/internal/application/ports"
	"users-api/internal/interface/api/rest/dto/user"
	"users-api/internal/interface/api/rest/middleware"
	"users-api/internal/interface/api/rest/validator"
)

type UserController struct {
	userService ports.UserService
	logger      *zap.Logger
	minimumAge  int
}

func NewUserController(
	r *gin.Engine,
	userService ports.UserService,
	logger *zap.Logger,
	minimumAge int,
) *UserController {
	uc := &UserController{
		userService: userService,
		logger:      logger,
		minimumAge:  minimumAge,
	}

	r.GET(RouteUsers, uc.GetUsersHandler)
	r.GET(RouteUserSearch, uc.SearchUsersHandler)
	r.GET(RouteUser, uc.GetUserHandler)
	r.POST(RouteUsers, uc.CreateUserHandler)
	r.PATCH(RouteUserPart, uc.PatchUserHandler)
	r.PUT(RouteUserFull, uc.PutUserHandler)
	r.DELETE(RouteUserDelete, uc.DeleteUserHandler)

	return uc
}

// CreateUserHandler registers a user. Syntactic validation runs first,
// then the minimum-age gate, only then the store is touched.
func (uc *UserController) CreateUserHandler(c *gin.Context) {
	var req user.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(fmt.Errorf("%w: %v", middleware.ErrBadRequest, err))
		return
	}
	if errs := validator.ValidateUser(req); errs != nil {
		_ = c.Error(errs)
		return
	}

	uDomain, err := user.ToDomainUser(req)
	if err != nil {
		_ = c.Error(fmt.Errorf("%w: %v", middleware.ErrBadRequest, err))
		return
	}

	minAgeToDate := time.Now().UTC().AddDate(-uc.minimumAge, 0, 0)
	if uDomain.BirthDate.After(minAgeToDate) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("User must be minimum %d years old.", uc.minimumAge),
		})
		return
	}

	created, err := uc.userService.CreateUser(c.Request.Context(), uDomain)
	if err != nil {
		uc.logger.Error("CreateUser() error", zap.Error(err))
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, user.ToResponseUser(*created))
}

// SearchUsersHandler returns every user whose birth date falls inside the
// inclusive [from, to] range. Equal bounds form a valid single-day range.
func (uc *UserController) SearchUsersHandler(c *gin.Context) {
	fromDate, err := validator.ParseDate(c.Query("from"))
	if err != nil {
		_ = c.Error(fmt.Errorf("%w: invalid 'from' date: %v", middleware.ErrBadRequest, err))
		return
	}
	toDate, err := validator.ParseDate(c.Query("to"))
	if err != nil {
		_ = c.Error(fmt.Errorf("%w: invalid 'to' date: %v", middleware.ErrBadRequest, err))
		return
	}

	if fromDate.After(toDate) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "'From' date must be before 'To' date.",
		})
		return
	}

	users, err := uc.userService.FindUsersByBirthDateRange(c.Request.Context(), fromDate, toDate)
	if err != nil {
		uc.logger.Error("FindUsersByBirthDateRange() error", zap.Error(err))
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUsers(users))
}

func (uc *UserController) GetUsersHandler(c *gin.Context) {
	page, err := validator.ValidatePage(c.Query("page"))
	if err != nil {
		_ = c.Error(fmt.Errorf("%w: %v", middleware.ErrBadRequest, err))
		return
	}

	users, err := uc.userService.FindUsers(c.Request.Context(), page)
	if err != nil {
		uc.logger.Error("FindUsers() error", zap.Error(err))
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, user.ResponseData{
		Data: user.ToResponseUsers(users),
	})
}

func (uc *UserController) GetUserHandler(c *gin.Context) {
	ok, id := validator.IsUserID(c.Param("user_id"))
	if !ok {
		_ = c.Error(fmt.Errorf("%w: user_id must be an integer", middleware.ErrBadRequest))
		return
	}

	u, err := uc.userService.FindUserByID(c.Request.Context(), id)
	if err != nil {
		uc.logger.Error("FindUserByID() error", zap.Error(err))
		_ = c.Error(err)
		return
	}

	if u == nil {
		c.Status(http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

// PatchUserHandler merges present fields into the stored user. Absent
// fields keep their stored value and nothing is re-validated here.
func (uc *UserController) PatchUserHandler(c *gin.Context) {
	ok, id := validator.IsUserID(c.Param("user_id"))
	if !ok {
		_ = c.Error(fmt.Errorf("%w: user_id must be an integer", middleware.ErrBadRequest))
		return
	}

	var req user.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(fmt.Errorf("%w: %v", middleware.ErrBadRequest, err))
		return
	}

	u, err := uc.userService.FindUserByID(c.Request.Context(), id)
	if err != nil {
		uc.logger.Error("FindUserByID() error", zap.Error(err))
		_ = c.Error(err)
		return
	}
	if u == nil {
		c.Status(http.StatusNotFound)
		return
	}

	if err = user.ApplyPartial(u, req); err != nil {
		_ = c.Error(fmt.Errorf("%w: %v", middleware.ErrBadRequest, err))
		return
	}

	updated, err := uc.userService.UpdateUser(c.Request.Context(), *u)
	if err != nil {
		uc.logger.Error("UpdateUser() error", zap.Error(err))
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*updated))
}

// PutUserHandler replaces every field except the identifier, absent fields
// clear the stored value. Syntactic validation re-runs as on create; the
// minimum-age gate deliberately does not.
func (uc *UserController) PutUserHandler(c *gin.Context) {
	ok, id := validator.IsUserID(c.Param("user_id"))
	if !ok {
		_ = c.Error(fmt.Errorf("%w: user_id must be an integer", middleware.ErrBadRequest))
		return
	}

	var req user.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(fmt.Errorf("%w: %v", middleware.ErrBadRequest, err))
		return
	}
	if errs := validator.ValidateUser(req); errs != nil {
		_ = c.Error(errs)
		return
	}

	incoming, err := user.ToDomainUser(req)
	if err != nil {
		_ = c.Error(fmt.Errorf("%w: %v", middleware.ErrBadRequest, err))
		return
	}

	u, err := uc.userService.FindUserByID(c.Request.Context(), id)
	if err != nil {
		uc.logger.Error("FindUserByID() error", zap.Error(err))
		_ = c.Error(err)
		return
	}
	if u == nil {
		c.Status(http.StatusNotFound)
		return
	}

	user.ApplyFull(u, incoming)

	updated, err := uc.userService.UpdateUser(c.Request.Context(), *u)
	if err != nil {
		uc.logger.Error("UpdateUser() error", zap.Error(err))
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*updated))
}

// DeleteUserHandler checks existence first so a missing id answers 404
// without ever reaching the delete operation.
func (uc *UserController) DeleteUserHandler(c *gin.Context) {
	ok, id := validator.IsUserID(c.Param("user_id"))
	if !ok {
		_ = c.Error(fmt.Errorf("%w: user_id must be an integer", middleware.ErrBadRequest))
		return
	}

	u, err := uc.userService.FindUserByID(c.Request.Context(), id)
	if err != nil {
		uc.logger.Error("FindUserByID() error", zap.Error(err))
		_ = c.Error(err)
		return
	}
	if u == nil {
		c.Status(http.StatusNotFound)
		return
	}

	if err = uc.userService.DeleteUser(c.Request.Context(), id); err != nil {
		uc.logger.Error("DeleteUser() error", zap.Error(err))
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusOK)
}
