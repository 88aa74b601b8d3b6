package employee

import (
	"time"
)

type CreateEmployeeRequest struct {
	FirstName     string  `json:"firstName" binding:"required"`
	LastName      string  `json:"lastName" binding:"required"`
	UserID        int64   `json:"userId" binding:"required,gt=0"`
	DepartmentID  int64   `json:"departmentId" binding:"required,gt=0"`
	Address       string  `json:"address" binding:"required"`
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

type UpdateEmployeeRequest struct {
	FirstName     string  `json:"firstName" binding:"required"`
	LastName      string  `json:"lastName" binding:"required"`
	DepartmentID  int64   `json:"departmentId" binding:"required,gt=0"`
	Address       string  `json:"address" binding:"required"`
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

type EmployeeDepartmentResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type EmployeeUserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
}

type EmployeeResponse struct {
	ID            int64                       `json:"id"`
	FirstName     string                      `json:"firstName"`
	LastName      string                      `json:"lastName"`
	UserID        int64                       `json:"userId"`
	DepartmentID  int64                       `json:"departmentId"`
	PhotoURL      *string                     `json:"photoUrl"`
	Gender        int                         `json:"gender"`
	DOB           *string                     `json:"dob"`
	MaritalStatus int                         `json:"maritalStatus"`
	IDPhotoURL    *string                     `json:"idPhotoUrl"`
	PersonalPhone *string                     `json:"personalPhone"`
	WorkPhone     *string                     `json:"workPhone"`
	PersonalEmail *string                     `json:"personalEmail"`
	WorkEmail     *string                     `json:"workEmail"`
	Address       string                      `json:"address"`
	Status        int                         `json:"status"`
	IsDeleted     bool                        `json:"isDeleted"`
	CreatedAt     string                      `json:"createdAt"`
	UpdatedAt     string                      `json:"updatedAt"`
	Department    *EmployeeDepartmentResponse `json:"department,omitempty"`
	User          *EmployeeUserResponse       `json:"user,omitempty"`
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:            empl.ID,
		FirstName:     empl.FirstName,
		LastName:      empl.LastName,
		UserID:        empl.UserID,
		DepartmentID:  empl.DepartmentID,
		PhotoURL:      empl.PhotoURL,
		Gender:        empl.Gender,
		DOB:           formatDate(empl.DOB),
		MaritalStatus: empl.MaritalStatus,
		IDPhotoURL:    empl.IDPhotoURL,
		PersonalPhone: empl.PersonalPhone,
		WorkPhone:     empl.WorkPhone,
		PersonalEmail: empl.PersonalEmail,
		WorkEmail:     empl.WorkEmail,
		Address:       empl.Address,
		Status:        empl.Status,
		IsDeleted:     empl.IsDeleted,
		CreatedAt:     empl.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     empl.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if empl.Department != nil {
		resp.Department = &EmployeeDepartmentResponse{
			ID:   empl.Department.ID,
			Name: empl.Department.Name,
		}
	}
	if empl.User != nil {
		resp.User = &EmployeeUserResponse{
			ID:       empl.User.ID,
			Username: empl.User.Username,
			FullName: empl.User.FullName,
		}
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format("2006-01-02")
	return &s
}

// OptionResponse adalah projection ringan untuk dropdown/selects.
type OptionResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
}
