package internals

import (
	"fmt"

	"airline-ops-server/model"
)

// ValidateCrewComposition checks the role rules for a flight roster:
// exactly one pilot and one distinct co-pilot, both with the pilot
// capability, at least one cabin crew member without it, and no email
// appearing twice across the whole roster. The members are already resolved
// from the crew registry, so only composition is checked here.
func ValidateCrewComposition(pilot, coPilot model.CrewMember, cabinCrew []model.CrewMember) error {
	if pilot.Email == coPilot.Email {
		return model.NewValidationError("pilot and co-pilot must be different crew members")
	}
	if !pilot.IsPilot {
		return model.NewValidationError(fmt.Sprintf("crew member %s is not a pilot", pilot.Email))
	}
	if !coPilot.IsPilot {
		return model.NewValidationError(fmt.Sprintf("crew member %s is not a pilot", coPilot.Email))
	}
	if len(cabinCrew) == 0 {
		return model.NewValidationError("at least one cabin crew member is required")
	}

	seen := map[string]bool{
		pilot.Email:   true,
		coPilot.Email: true,
	}
	for _, member := range cabinCrew {
		if member.IsPilot {
			return model.NewValidationError(fmt.Sprintf("crew member %s is a pilot and cannot serve as cabin crew", member.Email))
		}
		if seen[member.Email] {
			return model.NewValidationError(fmt.Sprintf("crew member %s appears more than once", member.Email))
		}
		seen[member.Email] = true
	}

	return nil
}
