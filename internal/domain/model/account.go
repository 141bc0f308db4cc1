package model

import "time"

// Role describes the top-level account role.
type Role string

const (
	RoleCustomer        Role = "CUSTOMER"
	RoleRestaurantOwner Role = "RESTAURANT_OWNER"
	RoleStaff           Role = "STAFF"
)

// StaffRole describes the operational specialization of a staff account.
type StaffRole string

const (
	StaffRoleManager  StaffRole = "MANAGER"
	StaffRoleChef     StaffRole = "CHEF"
	StaffRoleDelivery StaffRole = "DELIVERY"
)

// Account represents an authenticated platform user.
//
// RestaurantRef is only meaningful for staff accounts. Historically it was
// written inconsistently and may hold either a restaurant id or the id of the
// owning account; scope resolution checks both interpretations.
type Account struct {
	ID            int64
	Login         string
	PasswordHash  string
	Role          Role
	StaffRole     StaffRole
	RestaurantRef *int64
	CreatedAt     time.Time
}
