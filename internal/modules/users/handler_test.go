package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iwaklele45/siperuk-admin/internal/session"
	"github.com/iwaklele45/siperuk-admin/internal/siperuk"
)

func TestVisible(t *testing.T) {
	list := []siperuk.User{
		{ID: "1", FullName: "Root", Role: session.RoleAdmin},
		{ID: "2", FullName: "Sari", Role: session.RoleStaff},
		{ID: "3", FullName: "Budi", Role: session.RoleUser},
	}

	adminView := Visible(list, session.RoleAdmin)
	require.Len(t, adminView, 2)
	assert.Equal(t, "Sari", adminView[0].FullName)
	assert.Equal(t, "Budi", adminView[1].FullName)

	// Staff only manage plain users; peers and admins stay hidden.
	staffView := Visible(list, session.RoleStaff)
	require.Len(t, staffView, 1)
	assert.Equal(t, "Budi", staffView[0].FullName)
}

func TestUserFormValidation(t *testing.T) {
	valid := UserForm{FullName: "Budi Santoso", Email: "budi@kampus.ac.id", Password: "rahasia1", Role: "user"}

	assert.Empty(t, valid.validateCreate())

	noPassword := valid
	noPassword.Password = ""
	assert.Equal(t, "Kata sandi wajib diisi untuk pengguna baru", noPassword.validateCreate())
	// An update with an empty password keeps the current one.
	assert.Empty(t, noPassword.validateUpdate())

	shortPassword := valid
	shortPassword.Password = "abc"
	assert.Equal(t, "Kata sandi minimal 6 karakter", shortPassword.validateCreate())

	badEmail := valid
	badEmail.Email = "bukan-email"
	assert.Equal(t, "Format email tidak valid", badEmail.validateCreate())

	badRole := valid
	badRole.Role = "superadmin"
	assert.Equal(t, "Role harus admin, staff, atau user", badRole.validateCreate())

	noName := valid
	noName.FullName = ""
	assert.Equal(t, "Nama lengkap wajib diisi", noName.validateCreate())
}
