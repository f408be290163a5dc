package handlers

import (
	"github.com/go-playground/validator/v10"
)

var payloadValidator = validator.New()

type forgotPasswordPayload struct {
	Email string `json:"email" validate:"required,email,max=50"`
}

type resetPasswordPayload struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8,max=64"`
}

type attributePayload struct {
	Type      string `json:"type" validate:"required,lowercase,max=40"`
	Code      string `json:"code" validate:"required,lowercase,max=40"`
	Label     string `json:"label" validate:"required,max=80"`
	SortOrder int    `json:"order" validate:"gte=0,lte=1000"`
}
