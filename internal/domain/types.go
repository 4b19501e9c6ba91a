package domain

// Platform roles. The role string from the JWT selects which routes a caller
// may reach; handlers never trust a role taken from the request body.
const (
	RoleTourist    = "tourist"
	RoleAdvertiser = "advertiser"
	RoleSeller     = "seller"
	RoleTourGuide  = "tour_guide"
	RoleGovernor   = "governor"
	RoleAdmin      = "admin"
)

// Payment types accepted by the checkout flow.
const (
	PaymentCreditCard = "CreditCard"
	PaymentDebitCard  = "DebitCard"
	PaymentWallet     = "Wallet"
)

// AuthContext carries the authenticated caller, passed explicitly into
// services instead of being read from ambient request state.
type AuthContext struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
}

// KnownRole reports whether role is one of the platform roles.
func KnownRole(role string) bool {
	switch role {
	case RoleTourist, RoleAdvertiser, RoleSeller, RoleTourGuide, RoleGovernor, RoleAdmin:
		return true
	}
	return false
}

// KnownPaymentType reports whether t is an accepted payment type.
func KnownPaymentType(t string) bool {
	switch t {
	case PaymentCreditCard, PaymentDebitCard, PaymentWallet:
		return true
	}
	return false
}
