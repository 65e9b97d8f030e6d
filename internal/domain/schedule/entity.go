package schedule

import (
	"encoding/json"
	"strings"
)

// Role is one of the fixed builtin shift roles.
type Role string

const (
	RoleOpen   Role = "OPEN"
	RoleMiddle Role = "MIDDLE"
	RoleClose  Role = "CLOSE"
	RoleOff    Role = "OFF"
	RoleLeave  Role = "LEAVE"
)

// dualPrefix marks a work role whose staffing credit applies to the
// counterpart cinema rather than the staff member's home cinema.
const dualPrefix = "DUAL_"

// ShiftKind is a tagged variant: a builtin role, a dual-duty wrapper around an
// open/middle/close role, or an opaque custom kind referencing catalog
// metadata by id.
type ShiftKind struct {
	Role     Role
	Dual     bool
	CustomID string
}

func Kind(role Role) ShiftKind {
	return ShiftKind{Role: role}
}

func DualKind(role Role) ShiftKind {
	return ShiftKind{Role: role, Dual: true}
}

func CustomKind(id string) ShiftKind {
	return ShiftKind{CustomID: id}
}

var (
	Open   = Kind(RoleOpen)
	Middle = Kind(RoleMiddle)
	Close  = Kind(RoleClose)
	Off    = Kind(RoleOff)
	Leave  = Kind(RoleLeave)

	DualOpen   = DualKind(RoleOpen)
	DualMiddle = DualKind(RoleMiddle)
	DualClose  = DualKind(RoleClose)
)

// ParseShiftKind resolves a catalog id to a kind. Ids that are neither a
// builtin role nor a dual variant are treated as custom kinds.
func ParseShiftKind(code string) ShiftKind {
	if strings.HasPrefix(code, dualPrefix) {
		role, ok := parseRole(strings.TrimPrefix(code, dualPrefix))
		if ok && (role == RoleOpen || role == RoleMiddle || role == RoleClose) {
			return DualKind(role)
		}
		return CustomKind(code)
	}
	if role, ok := parseRole(code); ok {
		return Kind(role)
	}
	return CustomKind(code)
}

func parseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleOpen, RoleMiddle, RoleClose, RoleOff, RoleLeave:
		return Role(s), true
	}
	return "", false
}

// Code returns the catalog id for the kind.
func (k ShiftKind) Code() string {
	if k.CustomID != "" {
		return k.CustomID
	}
	if k.Dual {
		return dualPrefix + string(k.Role)
	}
	return string(k.Role)
}

func (k ShiftKind) IsCustom() bool {
	return k.CustomID != ""
}

// IsWork reports whether the kind is an open/middle/close role, dual or not.
func (k ShiftKind) IsWork() bool {
	if k.IsCustom() {
		return false
	}
	return k.Role == RoleOpen || k.Role == RoleMiddle || k.Role == RoleClose
}

// IsRest reports whether the kind is a day off.
func (k ShiftKind) IsRest() bool {
	return !k.IsCustom() && k.Role == RoleOff
}

func (k ShiftKind) IsLeave() bool {
	return !k.IsCustom() && k.Role == RoleLeave
}

func (k ShiftKind) String() string {
	return k.Code()
}

func (k ShiftKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.Code())
}

func (k *ShiftKind) UnmarshalJSON(data []byte) error {
	var code string
	if err := json.Unmarshal(data, &code); err != nil {
		return err
	}
	*k = ParseShiftKind(code)
	return nil
}

// Assignment is one schedule-table cell: a shift kind plus whether a human
// entered it. Manual assignments are immovable constraints for the engine.
type Assignment struct {
	Kind   ShiftKind `json:"kind"`
	Manual bool      `json:"manual"`
}
