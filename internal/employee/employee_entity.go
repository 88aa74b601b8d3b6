package employee

import (
	"time"
)

type Employee struct {
	ID            int64      `gorm:"column:id;primaryKey;autoIncrement"`
	FirstName     string     `gorm:"column:first_name;type:varchar(255);not null"`
	LastName      string     `gorm:"column:last_name;type:varchar(255);not null"`
	UserID        int64      `gorm:"column:user_id;not null;index"`
	DepartmentID  int64      `gorm:"column:department_id;not null;index"`
	PhotoURL      *string    `gorm:"column:photo_url;type:text"`
	Gender        int        `gorm:"column:gender;default:1"`
	DOB           *time.Time `gorm:"column:dob"`
	MaritalStatus int        `gorm:"column:marital_status;default:1"`
	IDPhotoURL    *string    `gorm:"column:id_photo_url;type:text"`
	PersonalPhone *string    `gorm:"column:personal_phone;type:varchar(50)"`
	WorkPhone     *string    `gorm:"column:work_phone;type:varchar(50)"`
	PersonalEmail *string    `gorm:"column:personal_email;type:varchar(255)"`
	WorkEmail     *string    `gorm:"column:work_email;type:varchar(255);uniqueIndex:uq_employee_work_email"`
	Address       string     `gorm:"column:address;type:text;not null"`
	Status        int        `gorm:"column:status;default:1"`
	IsDeleted     bool       `gorm:"column:is_deleted;default:false;index"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime"`

	// Relasi untuk projection list/detail
	Department *EmployeeDepartment `gorm:"foreignKey:DepartmentID;references:ID"`
	User       *EmployeeUser       `gorm:"foreignKey:UserID;references:ID"`
}

func (Employee) TableName() string {
	return "employees"
}

// EmployeeDepartment adalah sub-struct untuk join data minimal dari department
type EmployeeDepartment struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name"`
}

func (EmployeeDepartment) TableName() string {
	return "departments"
}

// EmployeeUser adalah sub-struct untuk join data minimal dari user
type EmployeeUser struct {
	ID       int64  `gorm:"column:id;primaryKey"`
	Username string `gorm:"column:username"`
	FullName string `gorm:"column:full_name"`
}

func (EmployeeUser) TableName() string {
	return "users"
}
