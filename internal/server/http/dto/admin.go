package dto

import "github.com/nedcgroup/backoffice/internal/domain/model"

// AdminForm is the create and edit form of an admin account.
type AdminForm struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Company  string `form:"company"`
	Role     string `form:"role"`
	Password string `form:"password"`
}

// AdminFormFrom prefills the form; the password is never shown.
func AdminFormFrom(a model.Admin) AdminForm {
	return AdminForm{Name: a.Name, Email: a.Email, Company: a.Company, Role: string(a.Role)}
}

// Model converts the form into an admin with the given id.
func (f AdminForm) Model(id string) model.Admin {
	return model.Admin{
		ID:       id,
		Name:     f.Name,
		Email:    f.Email,
		Company:  f.Company,
		Role:     model.AdminRole(f.Role),
		Password: f.Password,
	}
}
