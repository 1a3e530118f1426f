// Package user models the authenticated caller identity. Identity is minted
// by an external provider; this service only carries it, never mutates it.
package user

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidRole = errors.New("invalid role")

// Identity is the caller as asserted by the identity provider's token.
type Identity struct {
	id   uuid.UUID
	role Role
}

func NewIdentity(id uuid.UUID, role Role) (Identity, error) {
	if !role.IsValid() {
		return Identity{}, ErrInvalidRole
	}
	return Identity{id: id, role: role}, nil
}

func (i Identity) ID() uuid.UUID { return i.id }
func (i Identity) Role() Role    { return i.role }

func (i Identity) IsCoach() bool  { return i.role == RoleCoach }
func (i Identity) IsClient() bool { return i.role == RoleClient }
