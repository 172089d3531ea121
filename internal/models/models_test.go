package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/homevista/realtor-api/internal/models"
)

func TestParseUserRole(t *testing.T) {
	cases := map[string]models.UserRole{
		"buyer":    models.RoleBuyer,
		"BUYER":    models.RoleBuyer,
		" Realtor": models.RoleRealtor,
		"admin":    models.RoleAdmin,
	}
	for in, want := range cases {
		got, ok := models.ParseUserRole(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got)
	}

	_, ok := models.ParseUserRole("landlord")
	assert.False(t, ok)
	_, ok = models.ParseUserRole("")
	assert.False(t, ok)
}

func TestRequiresProductKey(t *testing.T) {
	assert.False(t, models.RoleBuyer.RequiresProductKey())
	assert.True(t, models.RoleRealtor.RequiresProductKey())
	assert.True(t, models.RoleAdmin.RequiresProductKey())
}

func TestParsePropertyType(t *testing.T) {
	got, ok := models.ParsePropertyType("residential")
	assert.True(t, ok)
	assert.Equal(t, models.PropertyResidential, got)

	got, ok = models.ParsePropertyType("CONDO")
	assert.True(t, ok)
	assert.Equal(t, models.PropertyCondo, got)

	_, ok = models.ParsePropertyType("castle")
	assert.False(t, ok)
}
