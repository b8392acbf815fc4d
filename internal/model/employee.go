package model

import "strings"

// Employee сотрудник из справочника (менторы, тренеры, обучаемые)
type Employee struct {
	UserID      string `json:"user_id"`
	FirstName   string `json:"first_name"`
	MiddleName  string `json:"middle_name"`
	LastName    string `json:"last_name"`
	Role        string `json:"role"`
	Status      string `json:"status"`
	Email       string `json:"email"`
	PicturePath string `json:"picture_path"`
}

// DisplayName собирает полное имя из непустых частей
func (e *Employee) DisplayName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{e.FirstName, e.MiddleName, e.LastName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
