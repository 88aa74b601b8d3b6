package client

import (
	"strconv"
	"strings"
)

const (
	defaultGender        = 1
	defaultMaritalStatus = 1
	defaultStatus        = 1
	defaultDepartmentID  = 1
)

// CreateEmployeeDraft adalah input mentah dari form create, semua field
// masih string. Validasi dan normalisasi dilakukan sebelum dikirim.
type CreateEmployeeDraft struct {
	FirstName     string
	LastName      string
	Address       string
	DOB           string
	Gender        string
	MaritalStatus string
	Status        string
	DepartmentID  string
	PhotoURL      string
	IDPhotoURL    string
	PersonalPhone string
	WorkPhone     string
	PersonalEmail string
	WorkEmail     string
}

// ValidateDraft mengumpulkan SEMUA pelanggaran sekaligus, tidak berhenti
// di error pertama, supaya form bisa menandai semua field bermasalah
// dalam satu render.
func ValidateDraft(draft CreateEmployeeDraft) map[string]string {
	violations := map[string]string{}

	if strings.TrimSpace(draft.FirstName) == "" {
		violations["firstName"] = "First name is required"
	}
	if strings.TrimSpace(draft.LastName) == "" {
		violations["lastName"] = "Last name is required"
	}
	if strings.TrimSpace(draft.Address) == "" {
		violations["address"] = "Address is required"
	}

	return violations
}

// ValidateActingUser memastikan user id dari sesi ada dan positif sebelum
// draft diproses. Gagal di sini berbeda dari field violation: ini error
// sesi, bukan error form.
func ValidateActingUser(userID int64) error {
	if userID <= 0 {
		return ErrUnauthorized
	}
	return nil
}

// NormalizeDraft mengubah draft string menjadi payload wire: field
// opsional yang kosong menjadi nil, enum kosong mendapat default.
func NormalizeDraft(draft CreateEmployeeDraft, actingUserID int64) CreateEmployeePayload {
	return CreateEmployeePayload{
		FirstName:     strings.TrimSpace(draft.FirstName),
		LastName:      strings.TrimSpace(draft.LastName),
		Address:       strings.TrimSpace(draft.Address),
		DOB:           optionalString(draft.DOB),
		Gender:        enumOrDefault(draft.Gender, defaultGender),
		MaritalStatus: enumOrDefault(draft.MaritalStatus, defaultMaritalStatus),
		Status:        enumOrDefault(draft.Status, defaultStatus),
		UserID:        actingUserID,
		DepartmentID:  positiveIntOrDefault(draft.DepartmentID, defaultDepartmentID),
		PhotoURL:      optionalString(draft.PhotoURL),
		IDPhotoURL:    optionalString(draft.IDPhotoURL),
		PersonalPhone: optionalString(draft.PersonalPhone),
		WorkPhone:     optionalString(draft.WorkPhone),
		PersonalEmail: optionalString(draft.PersonalEmail),
		WorkEmail:     optionalString(draft.WorkEmail),
	}
}

func optionalString(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func enumOrDefault(raw string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func positiveIntOrDefault(raw string, fallback int64) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
