package service

import (
	"context"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/logger"
	"rentdesk-backend/internal/repository"
)

// actionPermissions maps each gated action to the permission flag that
// grants it to non-admin roles.
var actionPermissions = map[domain.Action]domain.Permission{
	domain.ActionCreateBooking:     domain.PermissionManageBookings,
	domain.ActionConfirmBooking:    domain.PermissionManageBookings,
	domain.ActionStartBooking:      domain.PermissionManageBookings,
	domain.ActionCompleteBooking:   domain.PermissionManageBookings,
	domain.ActionCancelBooking:     domain.PermissionManageBookings,
	domain.ActionRecordPayment:     domain.PermissionManagePayments,
	domain.ActionReconcilePayments: domain.PermissionManageReconciliation,
}

type authorizationGate struct {
	profileRepo repository.ProfileRepository
}

func NewAuthorizationGate(profileRepo repository.ProfileRepository) AuthorizationGate {
	return &authorizationGate{profileRepo: profileRepo}
}

// Check resolves the actor's profile and decides the action. Admins are
// allowed everything; everyone else needs the mapped permission flag. A
// missing profile or a lookup failure denies: the gate fails closed.
func (g *authorizationGate) Check(ctx context.Context, actorID int64, action domain.Action) Decision {
	profile, err := g.profileRepo.GetByID(ctx, actorID)
	if err != nil {
		logger.Warn("Authorization lookup failed", "actor_id", actorID, "action", action, "error", err)
		return Deny("profile lookup failed")
	}

	if profile.Role == domain.RoleAdmin {
		return Allow()
	}

	perm, ok := actionPermissions[action]
	if !ok {
		return Deny("unknown action")
	}
	if !profile.Can(perm) {
		return Deny("missing permission")
	}
	return Allow()
}
