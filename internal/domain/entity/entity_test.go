package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okasc/intranet-api/internal/domain/entity"
)

func TestAvatarURL_PliegaDiacriticos(t *testing.T) {
	cases := map[string]string{
		"Piotr Brzyski":    "https://ui-avatars.com/api/?name=Piotr+Brzyski&background=d52b1e&color=fff&bold=true",
		"Jacek Strzadała":  "https://ui-avatars.com/api/?name=Jacek+Strzadala&background=d52b1e&color=fff&bold=true",
		"Adrian Strządała": "https://ui-avatars.com/api/?name=Adrian+Strzadala&background=d52b1e&color=fff&bold=true",
		"Michał Danel":     "https://ui-avatars.com/api/?name=Michal+Danel&background=d52b1e&color=fff&bold=true",
	}
	for name, want := range cases {
		assert.Equal(t, want, entity.AvatarURL(name), name)
	}
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, entity.RoleEmployee.Valid())
	assert.False(t, entity.Role("Szef").Valid())
}

func TestProductionStatus_ToggleIdaYVuelta(t *testing.T) {
	s := entity.ProductionToDo
	assert.Equal(t, entity.ProductionDone, s.Toggled())
	assert.Equal(t, s, s.Toggled().Toggled())
}

func TestPage_Label(t *testing.T) {
	assert.Equal(t, "Wyjścia/Wejścia", entity.PageTimeOff.Label())
	assert.False(t, entity.Page("kadry").Known())
}
