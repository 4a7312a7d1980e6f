package domain

// Unit is one systemd unit as reported by the most recent listing.
// Units do not persist across refreshes; identity is the Name string.
// Load/Active/Sub are kept as opaque text because systemd's vocabulary
// is not closed (new sub-states appear between versions).
type Unit struct {
	Name        string
	LoadState   string
	ActiveState string
	SubState    string
	Description string
}

// IsActive reports whether the unit is currently running according to
// the last listing. Used to decide between start and stop for the
// lifecycle toggle.
func (u Unit) IsActive() bool {
	return u.ActiveState == "active"
}

// Action is a systemctl lifecycle verb.
type Action string

const (
	ActionStart   Action = "start"
	ActionStop    Action = "stop"
	ActionEnable  Action = "enable"
	ActionDisable Action = "disable"
)
