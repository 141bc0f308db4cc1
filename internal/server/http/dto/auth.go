package dto

// RegisterRequest describes the account registration payload. Staff accounts
// additionally carry their sub-role and restaurant reference.
type RegisterRequest struct {
	Login         string `json:"login"`
	Password      string `json:"password"`
	Role          string `json:"role"`
	StaffRole     string `json:"staff_role,omitempty"`
	RestaurantRef *int64 `json:"restaurant_ref,omitempty"`
}

// LoginRequest describes login/password payload.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}
