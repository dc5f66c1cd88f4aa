package core

// DisplayAttributes are the glyph and color a view layer renders for a
// closed enum variant. Keeping the mapping here, switched exhaustively,
// replaces stringly-keyed lookup tables in consumers.
type DisplayAttributes struct {
	Icon  string
	Color string
}

// Display returns the rendering attributes for an account type. Unknown
// variants fall back to the cash presentation.
func (t AccountType) Display() DisplayAttributes {
	switch t {
	case Checking:
		return DisplayAttributes{Icon: "🏦", Color: "#3b82f6"}
	case Savings:
		return DisplayAttributes{Icon: "🐷", Color: "#10b981"}
	case Credit:
		return DisplayAttributes{Icon: "💳", Color: "#ef4444"}
	case Investment:
		return DisplayAttributes{Icon: "📈", Color: "#8b5cf6"}
	default:
		return DisplayAttributes{Icon: "💵", Color: "#f59e0b"}
	}
}

// Display returns the rendering attributes for a goal type.
func (t GoalType) Display() DisplayAttributes {
	switch t {
	case SavingsGoal:
		return DisplayAttributes{Icon: "🐷", Color: "#10b981"}
	case DebtGoal:
		return DisplayAttributes{Icon: "💳", Color: "#ef4444"}
	case PurchaseGoal:
		return DisplayAttributes{Icon: "🛍️", Color: "#f59e0b"}
	default:
		return DisplayAttributes{Icon: "🚨", Color: "#8b5cf6"}
	}
}
