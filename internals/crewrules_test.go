package internals

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"airline-ops-server/model"
)

func pilot(email string) model.CrewMember {
	return model.CrewMember{Email: email, Name: "Pilot " + email, IsPilot: true}
}

func cabin(email string) model.CrewMember {
	return model.CrewMember{Email: email, Name: "Cabin " + email, IsPilot: false}
}

func TestValidateCrewComposition(t *testing.T) {
	err := ValidateCrewComposition(pilot("pilot@x"), pilot("copilot@x"), []model.CrewMember{cabin("cabin1@x")})
	assert.NoError(t, err)
}

func TestValidateCrewComposition_SamePilotAndCoPilot(t *testing.T) {
	err := ValidateCrewComposition(pilot("pilot@x"), pilot("pilot@x"), []model.CrewMember{cabin("cabin1@x")})
	assert.Error(t, err)
	assert.IsType(t, &model.ValidationError{}, err)
}

func TestValidateCrewComposition_PilotWithoutCapability(t *testing.T) {
	err := ValidateCrewComposition(cabin("pilot@x"), pilot("copilot@x"), []model.CrewMember{cabin("cabin1@x")})
	assert.Error(t, err)
	assert.IsType(t, &model.ValidationError{}, err)

	err = ValidateCrewComposition(pilot("pilot@x"), cabin("copilot@x"), []model.CrewMember{cabin("cabin1@x")})
	assert.Error(t, err)
}

func TestValidateCrewComposition_EmptyCabinCrew(t *testing.T) {
	err := ValidateCrewComposition(pilot("pilot@x"), pilot("copilot@x"), nil)
	assert.Error(t, err)
	assert.IsType(t, &model.ValidationError{}, err)
}

func TestValidateCrewComposition_PilotInCabinCrew(t *testing.T) {
	err := ValidateCrewComposition(pilot("pilot@x"), pilot("copilot@x"), []model.CrewMember{pilot("third@x")})
	assert.Error(t, err)
	assert.IsType(t, &model.ValidationError{}, err)
}

func TestValidateCrewComposition_DuplicateAcrossGroups(t *testing.T) {
	err := ValidateCrewComposition(pilot("pilot@x"), pilot("copilot@x"), []model.CrewMember{cabin("cabin1@x"), cabin("cabin1@x")})
	assert.Error(t, err)
	assert.IsType(t, &model.ValidationError{}, err)
}
