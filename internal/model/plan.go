package model

import "time"

type DurationUnit string

const (
	DurationDays   DurationUnit = "days"
	DurationWeeks  DurationUnit = "weeks"
	DurationMonths DurationUnit = "months"
)

// TopicResource метаданные прикреплённого файла темы
type TopicResource struct {
	ResourceID   string `json:"resource_id"`
	ResourceName string `json:"resource_name"`
	ResourceSize int64  `json:"resource_size"`
	ResourceType string `json:"resource_type"`
}

// Topic тема плана с длительностью в днях/неделях/месяцах
type Topic struct {
	TopicID       string          `json:"topic_id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	DurationValue int             `json:"duration_value"`
	DurationUnit  DurationUnit    `json:"duration_unit"`
	Resources     []TopicResource `json:"resources,omitempty"`
}

// TrainingPlan учебный план: упорядоченный список тем с датой старта.
// Темы разворачиваются в события строго по порядку, после создания плана
// события живут независимо от тем.
type TrainingPlan struct {
	PlanID            string     `json:"plan_id"`
	Title             string     `json:"title"`
	StartDate         time.Time  `json:"start_date"` // только дата, без времени
	Topics            []Topic    `json:"topics"`
	Color             EventColor `json:"color"`
	ResponsibleUserID string     `json:"responsible_user_id"`
	StartTime         string     `json:"start_time"` // "09:30"
	EndTime           string     `json:"end_time"`   // "18:30"
	BatchID           string     `json:"batch_id"`
	TotalDurationDays int        `json:"total_duration_days"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
