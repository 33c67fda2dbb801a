package utils

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/worklifedesks/model"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()
	RegisterCustomValidators(Validate)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterCustomValidators(v)
	}
}

func RegisterCustomValidators(v *validator.Validate) {
	v.RegisterValidation("priority", ValidatePriorityRule)
	v.RegisterValidation("taskstatus", ValidateTaskStatusRule)
	v.RegisterValidation("goalstatus", ValidateGoalStatusRule)
}

func ValidatePriorityRule(fl validator.FieldLevel) bool {
	return model.ValidPriority(model.Priority(fl.Field().String()))
}

func ValidateTaskStatusRule(fl validator.FieldLevel) bool {
	return model.ValidTaskStatus(model.TaskStatus(fl.Field().String()))
}

func ValidateGoalStatusRule(fl validator.FieldLevel) bool {
	switch model.GoalStatus(fl.Field().String()) {
	case model.GoalStatusInProgress, model.GoalStatusOnTrack, model.GoalStatusAtRisk:
		return true
	}
	return false
}
