package auth

type LoginRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	LoginType string `json:"loginType"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type LoginRole struct {
	Name string `json:"name"`
}

type LoginUser struct {
	ID       int64     `json:"id"`
	FullName string    `json:"fullName"`
	Username string    `json:"username"`
	RoleID   int64     `json:"roleId"`
	Role     LoginRole `json:"role"`
}

// LoginData adalah isi data pada envelope login yang sukses.
type LoginData struct {
	User         LoginUser `json:"user"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
}
