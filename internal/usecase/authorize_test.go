package usecase

import (
	"testing"

	"github.com/plateup/orderflow/internal/domain/model"
)

func TestAuthorizeTransition(t *testing.T) {
	order := &model.Order{ID: 1, RestaurantID: 7, Status: model.OrderStatusConfirmed}

	cases := []struct {
		name   string
		actor  *model.Account
		scope  int64
		target model.OrderStatus
		want   Decision
	}{
		{
			name:   "owner any status",
			actor:  &model.Account{Role: model.RoleRestaurantOwner},
			scope:  7,
			target: model.OrderStatusDelivered,
			want:   DecisionDirect,
		},
		{
			name:   "manager any status",
			actor:  &model.Account{Role: model.RoleStaff, StaffRole: model.StaffRoleManager},
			scope:  7,
			target: model.OrderStatusOutForDelivery,
			want:   DecisionDirect,
		},
		{
			name:   "chef preparing",
			actor:  &model.Account{Role: model.RoleStaff, StaffRole: model.StaffRoleChef},
			scope:  7,
			target: model.OrderStatusPreparing,
			want:   DecisionDirect,
		},
		{
			name:   "chef ready",
			actor:  &model.Account{Role: model.RoleStaff, StaffRole: model.StaffRoleChef},
			scope:  7,
			target: model.OrderStatusReady,
			want:   DecisionDirect,
		},
		{
			name:   "chef outside authority",
			actor:  &model.Account{Role: model.RoleStaff, StaffRole: model.StaffRoleChef},
			scope:  7,
			target: model.OrderStatusDelivered,
			want:   DecisionRequest,
		},
		{
			name:   "delivery out for delivery",
			actor:  &model.Account{Role: model.RoleStaff, StaffRole: model.StaffRoleDelivery},
			scope:  7,
			target: model.OrderStatusOutForDelivery,
			want:   DecisionDirect,
		},
		{
			name:   "delivery delivered",
			actor:  &model.Account{Role: model.RoleStaff, StaffRole: model.StaffRoleDelivery},
			scope:  7,
			target: model.OrderStatusDelivered,
			want:   DecisionDirect,
		},
		{
			name:   "delivery outside authority",
			actor:  &model.Account{Role: model.RoleStaff, StaffRole: model.StaffRoleDelivery},
			scope:  7,
			target: model.OrderStatusPreparing,
			want:   DecisionRequest,
		},
		{
			name:   "unknown staff role may only propose",
			actor:  &model.Account{Role: model.RoleStaff, StaffRole: model.StaffRole("HOST")},
			scope:  7,
			target: model.OrderStatusConfirmed,
			want:   DecisionRequest,
		},
		{
			name:   "no scope",
			actor:  &model.Account{Role: model.RoleStaff, StaffRole: model.StaffRoleManager},
			scope:  0,
			target: model.OrderStatusPreparing,
			want:   DecisionDeny,
		},
		{
			name:   "foreign restaurant scope",
			actor:  &model.Account{Role: model.RoleRestaurantOwner},
			scope:  8,
			target: model.OrderStatusPreparing,
			want:   DecisionDeny,
		},
		{
			name:   "cancelled never a target",
			actor:  &model.Account{Role: model.RoleRestaurantOwner},
			scope:  7,
			target: model.OrderStatusCancelled,
			want:   DecisionDeny,
		},
		{
			name:   "customer denied even when scoped",
			actor:  &model.Account{Role: model.RoleCustomer},
			scope:  7,
			target: model.OrderStatusConfirmed,
			want:   DecisionDeny,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AuthorizeTransition(tc.actor, tc.scope, order, tc.target); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestDecisionString(t *testing.T) {
	if DecisionDirect.String() != "direct" || DecisionRequest.String() != "request" || DecisionDeny.String() != "deny" {
		t.Fatal("unexpected decision names")
	}
}
