package usecase

import "github.com/plateup/orderflow/internal/domain/model"

// Decision is the authorizer's verdict on a requested transition.
type Decision int

const (
	// DecisionDeny refuses the transition outright.
	DecisionDeny Decision = iota
	// DecisionDirect lets the actor apply the transition immediately.
	DecisionDirect
	// DecisionRequest routes the actor to the request/approval workflow.
	DecisionRequest
)

func (d Decision) String() string {
	switch d {
	case DecisionDirect:
		return "direct"
	case DecisionRequest:
		return "request"
	default:
		return "deny"
	}
}

var (
	chefStatuses = map[model.OrderStatus]struct{}{
		model.OrderStatusPreparing: {},
		model.OrderStatusReady:     {},
	}
	deliveryStatuses = map[model.OrderStatus]struct{}{
		model.OrderStatusOutForDelivery: {},
		model.OrderStatusDelivered:      {},
	}
)

// AuthorizeTransition decides whether the actor may apply target to the order
// directly, must go through the request queue, or is refused. scope is the
// actor's resolved restaurant scope (0 when none).
//
// CANCELLED is never a valid target here; cancellation is a separate
// customer-only operation.
func AuthorizeTransition(actor *model.Account, scope int64, order *model.Order, target model.OrderStatus) Decision {
	if scope == 0 || scope != order.RestaurantID {
		return DecisionDeny
	}
	if target == model.OrderStatusCancelled {
		return DecisionDeny
	}

	switch actor.Role {
	case model.RoleRestaurantOwner:
		return DecisionDirect
	case model.RoleStaff:
		return authorizeStaff(actor.StaffRole, target)
	}
	return DecisionDeny
}

// authorizeStaff maps each staff specialization to its directly-authorized
// status set. The switch is exhaustive over known sub-roles; anything else
// has no direct authority and may only propose.
func authorizeStaff(role model.StaffRole, target model.OrderStatus) Decision {
	switch role {
	case model.StaffRoleManager:
		return DecisionDirect
	case model.StaffRoleChef:
		if _, ok := chefStatuses[target]; ok {
			return DecisionDirect
		}
		return DecisionRequest
	case model.StaffRoleDelivery:
		if _, ok := deliveryStatuses[target]; ok {
			return DecisionDirect
		}
		return DecisionRequest
	default:
		return DecisionRequest
	}
}
