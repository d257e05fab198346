package graph

type (
	Bool struct {
		BoolData
	}

	BoolData interface {
		Value() bool
		Enabled() bool
		setValue(bool)
	}

	ShowMinorGrid Model
	DarkMode      Model
)

func (v Bool) Toggle() {
	v.Set(!v.Value())
}

func (v Bool) Set(value bool) {
	if v.Enabled() && v.Value() != value {
		v.setValue(value)
	}
}

// Model methods

func (m *Model) ShowMinorGrid() *ShowMinorGrid { return (*ShowMinorGrid)(m) }
func (m *Model) DarkMode() *DarkMode           { return (*DarkMode)(m) }

// ShowMinorGrid methods

func (v *ShowMinorGrid) Bool() Bool        { return Bool{v} }
func (v *ShowMinorGrid) Value() bool       { return v.showMinorGrid }
func (v *ShowMinorGrid) setValue(val bool) { v.showMinorGrid = val }
func (v *ShowMinorGrid) Enabled() bool     { return true }

// DarkMode methods

func (v *DarkMode) Bool() Bool        { return Bool{v} }
func (v *DarkMode) Value() bool       { return v.darkMode }
func (v *DarkMode) setValue(val bool) { v.darkMode = val }
func (v *DarkMode) Enabled() bool     { return true }
