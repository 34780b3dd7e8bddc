package handler

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// userData is the public projection of a user returned by login and
// /get-user. Claim and field names stay wire-compatible with the panel UI.
type userData struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type registerResponse struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
}

type loginResponse struct {
	Success      bool     `json:"success"`
	Token        string   `json:"token"`
	RefreshToken string   `json:"refreshToken"`
	Data         userData `json:"data"`
	Msg          string   `json:"msg"`
}

type refreshResponse struct {
	AccessToken string `json:"accessToken"`
}

type currentUserResponse struct {
	Success bool     `json:"success"`
	Data    userData `json:"data"`
}
