package auth

import (
	"revu/internal/application/user/usecases"
)

type SignupRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *SignupRequest) ToCommand() usecases.RegisterCommand {
	return usecases.RegisterCommand{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToCommand() usecases.LoginCommand {
	return usecases.LoginCommand{
		Username: r.Username,
		Password: r.Password,
	}
}

type LoginResponse struct {
	UserID      uint   `json:"user_id"`
	Username    string `json:"username"`
	AccessToken string `json:"access_token"`
}
