package submit_wizard_step

// SubmitRequest данные текущего шага мастера
// Сам шаг передается в URL; заполняются только поля соответствующего шага
type SubmitRequest struct {
	Date      string `json:"date,omitempty"` // YYYY-MM-DD
	Time      string `json:"time,omitempty"` // HH:MM
	UserName  string `json:"userName,omitempty"`
	UserEmail string `json:"userEmail,omitempty"`
}
