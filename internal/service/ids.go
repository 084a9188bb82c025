package service

import (
	"fmt"

	"github.com/google/uuid"
)

// ID prefixes per entity, kept short so IDs stay readable in logs.
const (
	PrefixOrder        = "ord"
	PrefixNegotiation  = "neg"
	PrefixFixture      = "fix"
	PrefixContract     = "cp"
	PrefixRecap        = "rcp"
	PrefixAddendum     = "add"
	PrefixApproval     = "apr"
	PrefixSignature    = "sig"
	PrefixCompany      = "com"
	PrefixVessel       = "ves"
	PrefixPort         = "prt"
	PrefixCargoType    = "cgo"
	PrefixOrganization = "org"
	PrefixUser         = "usr"
	PrefixInvitation   = "inv"
	PrefixResetToken   = "rst"
)

// NewID returns a prefixed, time-ordered identifier. UUIDv7 keeps inserts
// roughly append-ordered in the primary key index.
func NewID(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return fmt.Sprintf("%s-%s", prefix, id.String())
}
