package converter

import (
	"wheel_backend/internal/api/dto/auth"
	"wheel_backend/internal/model"
)

func RegisterRequestToUserModel(req *auth.RegisterRequest) *model.User {
	name := req.Name
	if name == "" {
		name = req.Login
	}

	return &model.User{
		Name:     name,
		Login:    req.Login,
		Password: req.Password,
	}
}

func ToUserResponse(user model.User) auth.UserResponse {
	return auth.UserResponse{
		ID:      user.ID,
		Name:    user.Name,
		Login:   user.Login,
		Balance: user.Balance,
	}
}
