package users

import "github.com/iwaklele45/siperuk-admin/internal/pkg/validator"

type UserForm struct {
	FullName string `form:"full_name" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"omitempty,min=6"`
	Role     string `form:"role" validate:"required,oneof=admin staff user"`
}

func (f UserForm) validateCreate() string {
	if f.Password == "" {
		return "Kata sandi wajib diisi untuk pengguna baru"
	}
	return f.validateCommon()
}

func (f UserForm) validateUpdate() string {
	return f.validateCommon()
}

func (f UserForm) validateCommon() string {
	fields := validator.Validate(f)
	switch {
	case validator.Failed(fields, "FullName", "required"):
		return "Nama lengkap wajib diisi"
	case validator.Failed(fields, "Email", "required"):
		return "Email wajib diisi"
	case validator.Failed(fields, "Email", "email"):
		return "Format email tidak valid"
	case validator.Failed(fields, "Password", "min"):
		return "Kata sandi minimal 6 karakter"
	case validator.Failed(fields, "Role", "required"), validator.Failed(fields, "Role", "oneof"):
		return "Role harus admin, staff, atau user"
	}
	return ""
}
