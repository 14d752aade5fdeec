package userservice

// User модель пользователя из UserService
type User struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Staff    bool   `json:"staff"`
	Group    string `json:"group,omitempty"` // группа персонала, если staff = true
}

// ErrorResponse модель ошибки от UserService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
