package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/trainops/batch_planner/internal/model"
)

func validInput() CreatePlanInput {
	return CreatePlanInput{
		Title:     "Go onboarding",
		StartDate: time.Date(2024, 6, 3, 0, 0, 0, 0, time.Local),
		Topics: []model.Topic{
			{Title: "Basics", DurationValue: 5, DurationUnit: model.DurationDays},
		},
		ResponsibleUserID: "U001",
		BatchID:           "batch-1",
	}
}

func TestValidatePlanInput(t *testing.T) {
	assert.NoError(t, ValidatePlanInput(validInput()))
}

func TestValidatePlanInputRejectsEmptyTopics(t *testing.T) {
	in := validInput()
	in.Topics = nil
	assert.ErrorIs(t, ValidatePlanInput(in), ErrPlanWithoutTopics)
}

func TestValidatePlanInputRejectsShortTitle(t *testing.T) {
	in := validInput()
	in.Title = "x"
	assert.ErrorIs(t, ValidatePlanInput(in), ErrPlanTitleTooShort)
}

func TestValidatePlanInputRejectsNonPositiveDuration(t *testing.T) {
	for _, value := range []int{0, -1, 366} {
		in := validInput()
		in.Topics[0].DurationValue = value
		assert.ErrorIs(t, ValidatePlanInput(in), ErrTopicInvalidDuration, "value %d", value)
	}
}

func TestValidatePlanInputRejectsUnknownUnit(t *testing.T) {
	in := validInput()
	in.Topics[0].DurationUnit = "quarters"
	assert.ErrorIs(t, ValidatePlanInput(in), ErrTopicInvalidUnit)
}

func TestValidatePlanInputRejectsShortTopicTitle(t *testing.T) {
	in := validInput()
	in.Topics[0].Title = "a"
	assert.ErrorIs(t, ValidatePlanInput(in), ErrTopicTitleTooShort)
}
