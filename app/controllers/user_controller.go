package controllers

import (
	"errors"
	"net/http"

	"github.com/singitronic/storefront/app/models"
	"github.com/singitronic/storefront/app/repositories"
	"github.com/singitronic/storefront/pkg/auth"
	"github.com/singitronic/storefront/pkg/bind"
	"github.com/singitronic/storefront/pkg/logger"
	"github.com/singitronic/storefront/pkg/response"
	"github.com/singitronic/storefront/pkg/router"
	"gorm.io/gorm"
)

// UserController serves the /api/users endpoints.
type UserController struct {
	users *repositories.UserRepository
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{users: repositories.NewUserRepository(db)}
}

type createUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"nullable,in=admin,user"`
}

type updateUserRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// List returns every user.
func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	users, err := c.users.All()
	if err != nil {
		logger.WithCtx(r.Context()).Error("list users", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error fetching users")
		return
	}
	response.OK(w, users)
}

// Get returns one user by id.
func (c *UserController) Get(w http.ResponseWriter, r *http.Request) {
	user, err := c.users.FindByID(router.Param(r, "id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(w, http.StatusNotFound, "User not found")
			return
		}
		logger.WithCtx(r.Context()).Error("get user", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error fetching user")
		return
	}
	response.OK(w, user)
}

// GetByEmail returns one user by their unique email address.
func (c *UserController) GetByEmail(w http.ResponseWriter, r *http.Request) {
	user, err := c.users.FindByEmail(router.Param(r, "email"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(w, http.StatusNotFound, "User not found")
			return
		}
		logger.WithCtx(r.Context()).Error("get user by email", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error fetching user")
		return
	}
	response.OK(w, user)
}

// Create registers a user. The password is stored as a bcrypt hash.
func (c *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var body createUserRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	hash, err := auth.HashPassword(body.Password)
	if err != nil {
		logger.WithCtx(r.Context()).Error("hash password", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error creating user")
		return
	}

	role := body.Role
	if role == "" {
		role = "user"
	}

	user := models.User{Email: body.Email, Password: hash, Role: role}
	if err := c.users.Create(&user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			response.Error(w, http.StatusConflict, "User already exists")
			return
		}
		logger.WithCtx(r.Context()).Error("create user", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error creating user")
		return
	}
	response.Created(w, user)
}

// Update applies a partial-field merge. A supplied password is re-hashed.
func (c *UserController) Update(w http.ResponseWriter, r *http.Request) {
	id := router.Param(r, "id")

	var body updateUserRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if _, err := c.users.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(w, http.StatusNotFound, "User not found")
			return
		}
		logger.WithCtx(r.Context()).Error("update user", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error updating user")
		return
	}

	fields := map[string]interface{}{}
	if body.Email != nil {
		fields["email"] = *body.Email
	}
	if body.Password != nil {
		hash, err := auth.HashPassword(*body.Password)
		if err != nil {
			logger.WithCtx(r.Context()).Error("hash password", "error", err)
			response.Error(w, http.StatusInternalServerError, "Error updating user")
			return
		}
		fields["password"] = hash
	}
	if body.Role != nil {
		fields["role"] = *body.Role
	}

	if len(fields) > 0 {
		if err := c.users.Update(id, fields); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				response.Error(w, http.StatusConflict, "User already exists")
				return
			}
			logger.WithCtx(r.Context()).Error("update user", "error", err)
			response.Error(w, http.StatusInternalServerError, "Error updating user")
			return
		}
	}

	user, err := c.users.FindByID(id)
	if err != nil {
		logger.WithCtx(r.Context()).Error("update user", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error updating user")
		return
	}
	response.OK(w, user)
}

// Delete removes a user by id.
func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	id := router.Param(r, "id")

	if _, err := c.users.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(w, http.StatusNotFound, "User not found")
			return
		}
		logger.WithCtx(r.Context()).Error("delete user", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error deleting user")
		return
	}

	if err := c.users.Delete(id); err != nil {
		logger.WithCtx(r.Context()).Error("delete user", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error deleting user")
		return
	}
	response.NoContent(w)
}

// Login checks credentials and returns a signed JWT.
func (c *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.users.FindByEmail(body.Email)
	if err != nil || !auth.CheckPassword(user.Password, body.Password) {
		response.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		logger.WithCtx(r.Context()).Error("generate token", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error logging in")
		return
	}
	response.OK(w, map[string]string{"token": token})
}
