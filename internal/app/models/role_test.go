package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input   string
		want    Role
		wantErr bool
	}{
		{input: "student", want: RoleStudent},
		{input: "lecturer", want: RoleLecturer},
		{input: "prl", want: RolePRL},
		{input: "pl", want: RolePL},
		{input: "admin", want: RoleAdmin},
		{input: "", wantErr: true},
		{input: "Student", wantErr: true},
		{input: "superuser", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRole(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsFacultyScoped(t *testing.T) {
	assert.True(t, RolePRL.IsFacultyScoped())
	assert.True(t, RolePL.IsFacultyScoped())
	assert.False(t, RoleStudent.IsFacultyScoped())
	assert.False(t, RoleLecturer.IsFacultyScoped())
	assert.False(t, RoleAdmin.IsFacultyScoped())
}

func TestValidRaterRole(t *testing.T) {
	assert.True(t, ValidRaterRole("student"))
	assert.True(t, ValidRaterRole("lecturer"))
	assert.True(t, ValidRaterRole("prl"))
	assert.True(t, ValidRaterRole("pl"))
	assert.False(t, ValidRaterRole("admin"))
	assert.False(t, ValidRaterRole(""))
	assert.False(t, ValidRaterRole("teacher"))
}
