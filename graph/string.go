package graph

type (
	String struct {
		value StringValue
	}

	StringValue interface {
		Value() string
		SetValue(string) bool
	}
)

func MakeString(value StringValue) String {
	return String{value: value}
}

func (v String) SetValue(value string) bool {
	if v.value == nil || v.value.Value() == value {
		return false
	}
	return v.value.SetValue(value)
}

func (v String) Value() string {
	if v.value == nil {
		return ""
	}
	return v.value.Value()
}

// ExpressionString
type expression Model

// Expression is the source text of the plotted function. SetValue goes
// through the compile-and-validate path, so an invalid string is rejected
// and the accessor keeps its previous value.
func (m *Model) Expression() String { return MakeString((*expression)(m)) }

func (v *expression) Value() string { return v.state.Expr }
func (v *expression) SetValue(value string) bool {
	return (*Model)(v).SetExpression(value) == nil
}
