package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Role
		wantErr bool
	}{
		{name: "exact match", input: "STUDENT", want: RoleStudent},
		{name: "lower case", input: "teacher", want: RoleTeacher},
		{name: "mixed case", input: "CoOrDiNaToR", want: RoleCoordinator},
		{name: "surrounding whitespace", input: "  principal ", want: RolePrincipal},
		{name: "guardian", input: "guardian", want: RoleGuardian},
		{name: "unknown role", input: "wizard", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
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

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleStudent.Valid())
	assert.True(t, RoleTeacher.Valid())
	assert.False(t, Role("ADMIN").Valid())
	assert.False(t, Role("student").Valid())
}

func TestDefaultRole(t *testing.T) {
	assert.Equal(t, RoleStudent, DefaultRole)
	assert.True(t, DefaultRole.Valid())
}
