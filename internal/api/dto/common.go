package dto

import "github.com/letybo/ordering/internal/validator"

func validate(r interface{}) error {
	return validator.ValidateRequest(r)
}
