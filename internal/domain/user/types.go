package user

type Role string

const (
	RoleCoach  Role = "coach"
	RoleClient Role = "client"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCoach, RoleClient:
		return true
	default:
		return false
	}
}
