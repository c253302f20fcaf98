package dto

type CreateDepartmentDTO struct {
	Name             string `json:"name" validate:"required,min=2,max=100"`
	Location         string `json:"location" validate:"required,max=200"`
	ResponsibleName  string `json:"responsible_name" validate:"required,max=100"`
	ResponsibleEmail string `json:"responsible_email" validate:"required,email"`
}

type UpdateDepartmentDTO struct {
	Name             *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Location         *string `json:"location,omitempty" validate:"omitempty,max=200"`
	ResponsibleName  *string `json:"responsible_name,omitempty" validate:"omitempty,max=100"`
	ResponsibleEmail *string `json:"responsible_email,omitempty" validate:"omitempty,email"`
}
