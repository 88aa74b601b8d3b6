package department

type DepartmentResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func mapToResponse(d Department) DepartmentResponse {
	return DepartmentResponse{
		ID:   d.ID,
		Name: d.Name,
	}
}

func mapToListResponse(depts []Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d)
	}
	return res
}
