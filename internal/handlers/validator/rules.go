package validator

import "github.com/go-playground/validator/v10"

func registerFn(tag string, fn func(fl validator.FieldLevel) bool) func(v *validator.Validate) {
	return func(v *validator.Validate) {
		_ = v.RegisterValidation(tag, fn)
	}
}

func NewInterviewValidationRules() []ValidationRule {
	return []ValidationRule{
		{
			Rule: registerFn("interview_status", interviewStatusValidator),
		},
	}
}

func NewConversationValidationRules() []ValidationRule {
	return []ValidationRule{
		{
			Rule: registerFn("message_type", messageTypeValidator),
		},
	}
}
