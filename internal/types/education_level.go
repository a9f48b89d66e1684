package types

import (
	"encoding/json"
	"fmt"
)

// EducationLevel is a closed enumeration of degree levels. The zero value means
// no level was specified or detected.
type EducationLevel int

const (
	EducationUnknown EducationLevel = iota
	EducationHighSchool
	EducationAssociate
	EducationBachelor
	EducationMaster
	EducationPhD
	EducationProfessional
)

// educationLevelNames maps each level to its wire representation.
var educationLevelNames = map[EducationLevel]string{
	EducationUnknown:      "",
	EducationHighSchool:   "high_school",
	EducationAssociate:    "associate",
	EducationBachelor:     "bachelor",
	EducationMaster:       "master",
	EducationPhD:          "phd",
	EducationProfessional: "professional",
}

// String returns the wire name of the level.
func (l EducationLevel) String() string {
	return educationLevelNames[l]
}

// ParseEducationLevel resolves a wire name to its level. The second return
// value reports whether the name is known.
func ParseEducationLevel(name string) (EducationLevel, bool) {
	for level, n := range educationLevelNames {
		if n == name && name != "" {
			return level, true
		}
	}
	return EducationUnknown, false
}

// MarshalJSON encodes the level as its wire name.
func (l EducationLevel) MarshalJSON() ([]byte, error) {
	name, ok := educationLevelNames[l]
	if !ok {
		return nil, fmt.Errorf("unknown education level %d", int(l))
	}
	return json.Marshal(name)
}

// UnmarshalJSON decodes a wire name into a level, rejecting unknown names.
func (l *EducationLevel) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	if name == "" {
		*l = EducationUnknown
		return nil
	}
	level, ok := ParseEducationLevel(name)
	if !ok {
		return fmt.Errorf("unknown education level %q", name)
	}
	*l = level
	return nil
}
