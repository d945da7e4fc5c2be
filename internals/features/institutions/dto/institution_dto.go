package dto

import (
	"strings"

	"cyberwarrior_backend/internals/features/institutions/model"
)

type CreateInstitutionRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=255"`
	City     string `json:"city" validate:"omitempty,max=100"`
	District string `json:"district" validate:"omitempty,max=100"`
}

func (r *CreateInstitutionRequest) ToModel() *model.InstitutionModel {
	return &model.InstitutionModel{
		InstitutionName:     strings.TrimSpace(r.Name),
		InstitutionCity:     strings.TrimSpace(r.City),
		InstitutionDistrict: strings.TrimSpace(r.District),
	}
}
