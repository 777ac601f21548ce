package login

// LoginRequest пара email/пароль; паролем служит номер бронирования
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse токен открытой сессии
type LoginResponse struct {
	Token string `json:"token"`
}
