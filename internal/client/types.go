package client

// Wire types milik client: sengaja terpisah dari entity server supaya
// dashboard hanya bergantung pada kontrak JSON, bukan pada internal API.

type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type EmployeeUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
}

type Employee struct {
	ID            int64         `json:"id"`
	FirstName     string        `json:"firstName"`
	LastName      string        `json:"lastName"`
	UserID        int64         `json:"userId"`
	DepartmentID  int64         `json:"departmentId"`
	PhotoURL      *string       `json:"photoUrl"`
	Gender        int           `json:"gender"`
	DOB           *string       `json:"dob"`
	MaritalStatus int           `json:"maritalStatus"`
	IDPhotoURL    *string       `json:"idPhotoUrl"`
	PersonalPhone *string       `json:"personalPhone"`
	WorkPhone     *string       `json:"workPhone"`
	PersonalEmail *string       `json:"personalEmail"`
	WorkEmail     *string       `json:"workEmail"`
	Address       string        `json:"address"`
	Status        int           `json:"status"`
	IsDeleted     bool          `json:"isDeleted"`
	CreatedAt     string        `json:"createdAt"`
	UpdatedAt     string        `json:"updatedAt"`
	Department    *Department   `json:"department,omitempty"`
	User          *EmployeeUser `json:"user,omitempty"`
}

// ListResult adalah hasil flat setelah envelope list di-unwrap.
type ListResult struct {
	Records []Employee `json:"data"`
	Total   int64      `json:"total"`
	Page    int        `json:"page"`
	Limit   int        `json:"limit"`
}

// CreateEmployeePayload adalah body POST /api/employees.
// Field optional yang kosong dikirim null, tidak pernah "".
type CreateEmployeePayload struct {
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	UserID        int64   `json:"userId"`
	DepartmentID  int64   `json:"departmentId"`
	Address       string  `json:"address"`
	PhotoURL      *string `json:"photoUrl"`
	Gender        int     `json:"gender"`
	DOB           *string `json:"dob"`
	MaritalStatus int     `json:"maritalStatus"`
	IDPhotoURL    *string `json:"idPhotoUrl"`
	PersonalPhone *string `json:"personalPhone"`
	WorkPhone     *string `json:"workPhone"`
	PersonalEmail *string `json:"personalEmail"`
	WorkEmail     *string `json:"workEmail"`
	Status        int     `json:"status"`
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

type LoginData struct {
	User         LoginUser `json:"user"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
}

// listEnvelope adalah response penuh GET /api/employees.
type listEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *struct {
		Data  []Employee `json:"data"`
		Total int64      `json:"total"`
		Page  int        `json:"page"`
		Limit int        `json:"limit"`
	} `json:"data"`
}

type entityEnvelope struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Data    *Employee `json:"data"`
}

type loginEnvelope struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Data    *LoginData `json:"data"`
}
