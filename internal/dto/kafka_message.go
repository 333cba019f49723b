package dto

type KafkaMessage struct {
	EventType string      `json:"event_type"`
	Data      interface{} `json:"data"`
}

type AbsenceEvent struct {
	RequestID    string `json:"request_id"`
	EmployeeName string `json:"employee_name"`
	Location     string `json:"location"`
	Status       string `json:"status"`
	Verified     bool   `json:"verified"`
}
