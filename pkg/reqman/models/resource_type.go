package models

// ResourceTypes is the fixed set of resource-type tags a workflow can
// apply to and a request can ask for.
var ResourceTypes = []string{
	"Compute Resources",
	"Storage Resources",
	"Database Resources",
	"API Access",
	"Network Resources",
	"Security Access",
	"Other",
}

func IsResourceType(t string) bool {
	for _, rt := range ResourceTypes {
		if rt == t {
			return true
		}
	}
	return false
}

// RequestKind is the tab a user request is filed under.
type RequestKind string

const (
	KindBudget        RequestKind = "budget"
	KindNonBudget     RequestKind = "non-budget"
	KindSaleableStock RequestKind = "saleable-stock"
)

// Role is the authenticated dashboard role.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleFinance Role = "finance"
	RoleUser    Role = "user"
)

var validRoles = map[Role]bool{
	RoleAdmin:   true,
	RoleFinance: true,
	RoleUser:    true,
}

func (r Role) IsValid() bool { return validRoles[r] }
