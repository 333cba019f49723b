package dto

type AbsenceRequest struct {
	EmployeeName string `json:"employeeName"`
	EmployeeID   string `json:"employeeId"`
	Location     string `json:"location"`
	Description  string `json:"description"`
}

// AbsenceReviewRequest is the admin-only status/comment transition.
type AbsenceReviewRequest struct {
	Status  *string `json:"status"`
	Comment *string `json:"comment"`
}
