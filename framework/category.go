package framework

// Category tags a test case with the area of the backend it exercises. Checks inherit the
// category of the case that runs them, and the report aggregates failures by category.
type Category int

const (
	CategoryNone Category = iota
	CategoryHealth
	CategoryAuth
	CategoryAccess
	CategoryTokenAuth
	CategoryProfile
	CategoryMessaging
	CategoryBooking
	CategoryInfra
)

// criticalCategories is the order in which critical findings are reported.
var criticalCategories = []Category{CategoryHealth, CategoryAuth, CategoryProfile}

func (c Category) String() string {
	switch c {
	case CategoryHealth:
		return "health"
	case CategoryAuth:
		return "auth"
	case CategoryAccess:
		return "access"
	case CategoryTokenAuth:
		return "token-auth"
	case CategoryProfile:
		return "profile"
	case CategoryMessaging:
		return "messaging"
	case CategoryBooking:
		return "booking"
	case CategoryInfra:
		return "infra"
	default:
		return "none"
	}
}

// CriticalFinding returns the summary reported when any check in this category fails, or
// an empty string if failures in this category are not considered critical.
func (c Category) CriticalFinding() string {
	switch c {
	case CategoryHealth:
		return "Backend server not responding"
	case CategoryAuth:
		return "Authentication system has issues"
	case CategoryProfile:
		return "Profile management has issues"
	default:
		return ""
	}
}
