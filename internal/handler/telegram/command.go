package telegram

import (
	"strings"

	"github.com/google/uuid"
)

// AdminAction is the closed set of moderation verbs accepted from callback
// buttons. Anything outside this set is rejected at the boundary instead of
// being string-matched deeper in.
type AdminAction string

const (
	AdminApproveBusiness AdminAction = "approve_business"
	AdminRejectBusiness  AdminAction = "reject_business"
	AdminApproveOffer    AdminAction = "approve_offer"
	AdminDeclineOffer    AdminAction = "decline_offer"
)

var adminActions = map[string]AdminAction{
	string(AdminApproveBusiness): AdminApproveBusiness,
	string(AdminRejectBusiness):  AdminRejectBusiness,
	string(AdminApproveOffer):    AdminApproveOffer,
	string(AdminDeclineOffer):    AdminDeclineOffer,
}

type AdminCommand struct {
	Action   AdminAction
	TargetID uuid.UUID
}

// ParseAdminCommand parses callback data of the form "mod:<action>:<uuid>".
func ParseAdminCommand(data string) (AdminCommand, bool) {
	parts := strings.SplitN(data, ":", 3)
	if len(parts) != 3 || parts[0] != "mod" {
		return AdminCommand{}, false
	}
	action, ok := adminActions[parts[1]]
	if !ok {
		return AdminCommand{}, false
	}
	id, err := uuid.Parse(parts[2])
	if err != nil {
		return AdminCommand{}, false
	}
	return AdminCommand{Action: action, TargetID: id}, true
}
