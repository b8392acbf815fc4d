package model

import "time"

type BatchStatus string

const (
	BatchStatusPlanned   BatchStatus = "planned"
	BatchStatusOngoing   BatchStatus = "ongoing"
	BatchStatusCompleted BatchStatus = "completed"
)

// Batch группа обучаемых, проходящая один или несколько учебных планов
type Batch struct {
	ID                string      `json:"id"`
	Title             string      `json:"title"`
	Status            BatchStatus `json:"status"`
	Region            string      `json:"region"`
	StartDate         time.Time   `json:"start_date"`
	EndDate           time.Time   `json:"end_date"`
	Mentors           []string    `json:"mentors"`
	Reviewers         []string    `json:"reviewers"`
	Trainers          []string    `json:"trainers"`
	Trainees          []string    `json:"trainees"`
	CourseDescription string      `json:"course_description"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}
