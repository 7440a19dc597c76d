package validator

import (
	"github.com/go-playground/validator/v10"
	api "github.com/interviewsim/interview-server/api/v1alpha1"
)

func interviewStatusValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(api.InterviewStatus)
	if !ok {
		return false
	}

	switch val {
	case api.InterviewStatusInProgress, api.InterviewStatusCompleted, api.InterviewStatusCancelled:
		return true
	}
	return false
}

func messageTypeValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(api.MessageType)
	if !ok {
		return false
	}

	switch val {
	case api.MessageTypeQuestion, api.MessageTypeAnswer:
		return true
	}
	return false
}
