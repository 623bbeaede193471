package auth

type RegisterRequest struct {
	Name     string `json:"name"`     // Отображаемое имя (необязательно)
	Login    string `json:"login"`    // Логин, 2-20 символов
	Password string `json:"password"` // Пароль
}

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Login   string `json:"login"`
	Balance int64  `json:"balance"` // Монеты
}

type RegisterResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"access_token"`
}
