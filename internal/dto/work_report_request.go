package dto

type WorkReportRequest struct {
	Date     string `json:"date"`
	Project  string `json:"project"`
	Tasks    string `json:"tasks"`
	Location string `json:"location"`
	Status   string `json:"status"`
	Hours    string `json:"hours"`
}

type WorkReportUpdateRequest struct {
	Date     *string `json:"date"`
	Project  *string `json:"project"`
	Tasks    *string `json:"tasks"`
	Location *string `json:"location"`
	Status   *string `json:"status"`
	Hours    *string `json:"hours"`
}
