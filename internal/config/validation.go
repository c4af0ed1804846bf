package config

import (
	"fmt"

	fluenterrors "github.com/alexisbeaulieu97/fluent/pkg/errors"
)

// Validate performs schema and cross-field validation on the gallery.
func Validate(g *Gallery) error {
	if g == nil {
		return fluenterrors.NewValidationError("gallery", "gallery is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(g); err != nil {
		return convertValidationError(err)
	}

	sliderIDs := make(map[string]struct{}, len(g.Sliders))
	for i, s := range g.Sliders {
		if _, exists := sliderIDs[s.ID]; exists {
			return fluenterrors.NewValidationError(fieldFor("sliders", i, "id"), fmt.Sprintf("duplicate slider id %q", s.ID), nil)
		}
		sliderIDs[s.ID] = struct{}{}

		if s.Value < s.Start || s.Value > s.End {
			return fluenterrors.NewValidationError(
				fieldFor("sliders", i, "value"),
				fmt.Sprintf("value %g is outside [%g, %g]", s.Value, s.Start, s.End),
				nil,
			)
		}
	}

	commandIDs := make(map[string]struct{}, len(g.Overflow.Items))
	for i, item := range g.Overflow.Items {
		if item.ID == overflowKey {
			return fluenterrors.NewValidationError(fieldFor("overflow.items", i, "id"), fmt.Sprintf("id %q is reserved", item.ID), nil)
		}
		if _, exists := commandIDs[item.ID]; exists {
			return fluenterrors.NewValidationError(fieldFor("overflow.items", i, "id"), fmt.Sprintf("duplicate command id %q", item.ID), nil)
		}
		commandIDs[item.ID] = struct{}{}
	}

	return nil
}

// overflowKey is the key the command bar gives its overflow button.
const overflowKey = "overflow"
