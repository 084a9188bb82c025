// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ActivityLog is the predicate function for activitylog builders.
type ActivityLog func(*sql.Selector)

// Addendum is the predicate function for addendum builders.
type Addendum func(*sql.Selector)

// Approval is the predicate function for approval builders.
type Approval func(*sql.Selector)

// CargoType is the predicate function for cargotype builders.
type CargoType func(*sql.Selector)

// Company is the predicate function for company builders.
type Company func(*sql.Selector)

// Contract is the predicate function for contract builders.
type Contract func(*sql.Selector)

// FieldChange is the predicate function for fieldchange builders.
type FieldChange func(*sql.Selector)

// Fixture is the predicate function for fixture builders.
type Fixture func(*sql.Selector)

// Invitation is the predicate function for invitation builders.
type Invitation func(*sql.Selector)

// Negotiation is the predicate function for negotiation builders.
type Negotiation func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// Order is the predicate function for order builders.
type Order func(*sql.Selector)

// Organization is the predicate function for organization builders.
type Organization func(*sql.Selector)

// PasswordResetToken is the predicate function for passwordresettoken builders.
type PasswordResetToken func(*sql.Selector)

// Port is the predicate function for port builders.
type Port func(*sql.Selector)

// RecapManager is the predicate function for recapmanager builders.
type RecapManager func(*sql.Selector)

// Signature is the predicate function for signature builders.
type Signature func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// Vessel is the predicate function for vessel builders.
type Vessel func(*sql.Selector)
