package domain

// Action enumerates the privileged operations gated by role.
type Action string

const (
	ActionViewCases     Action = "view_cases"
	ActionManageCases   Action = "manage_cases"
	ActionViewUsers     Action = "view_users"
	ActionApproveUsers  Action = "approve_users"
	ActionDeleteUser    Action = "delete_user"
	ActionDeleteAnyCase Action = "delete_any_case"
)

// policy is the single source of truth for role permissions. Absent
// entries deny. Self-access to a user's own profile and deletion of a
// case by its owner are identity checks, not policy entries; see
// CanViewUser and CanDeleteCase.
var policy = map[Role]map[Action]bool{
	RoleGuest: {
		ActionViewCases: true,
	},
	RoleDetective: {
		ActionViewCases:   true,
		ActionManageCases: true,
		ActionViewUsers:   true,
	},
	RoleBoss: {
		ActionViewCases:     true,
		ActionManageCases:   true,
		ActionViewUsers:     true,
		ActionApproveUsers:  true,
		ActionDeleteUser:    true,
		ActionDeleteAnyCase: true,
	},
}

// Can reports whether the role is allowed to perform the action.
func (r Role) Can(action Action) bool {
	return policy[r][action]
}

// Template-facing permission helpers. Templates cannot convert a string
// literal to an Action, so the common checks get named methods.

func (u *User) CanViewUsers() bool    { return u.Role.Can(ActionViewUsers) }
func (u *User) CanManageCases() bool  { return u.Role.Can(ActionManageCases) }
func (u *User) CanApproveUsers() bool { return u.Role.Can(ActionApproveUsers) }
func (u *User) CanDeleteUsers() bool  { return u.Role.Can(ActionDeleteUser) }

// CanViewUser reports whether actor may view the profile of the user with
// targetID. Detectives and bosses see every profile; anyone sees their own.
func CanViewUser(actor *User, targetID int64) bool {
	if actor == nil {
		return false
	}
	return actor.Role.Can(ActionViewUsers) || actor.ID == targetID
}

// CanDeleteCase reports whether actor may delete c: bosses delete any
// case, owners delete their own.
func CanDeleteCase(actor *User, c *Case) bool {
	if actor == nil || c == nil {
		return false
	}
	return actor.Role.Can(ActionDeleteAnyCase) || actor.ID == c.OwnerID
}
