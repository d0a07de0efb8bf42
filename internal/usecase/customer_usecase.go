package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// RegisterInput carries the sign-up form.
type RegisterInput struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

// RegisterOutput carries the created customer without credential material.
type RegisterOutput struct {
	Customer *entity.RedactedCustomer `json:"customer"`
}

// CustomerUsecase manages customer accounts.
type CustomerUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
}
