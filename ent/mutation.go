// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"charterdesk.io/charterdesk/ent/activitylog"
	"charterdesk.io/charterdesk/ent/addendum"
	"charterdesk.io/charterdesk/ent/approval"
	"charterdesk.io/charterdesk/ent/cargotype"
	"charterdesk.io/charterdesk/ent/company"
	"charterdesk.io/charterdesk/ent/contract"
	"charterdesk.io/charterdesk/ent/fieldchange"
	"charterdesk.io/charterdesk/ent/fixture"
	"charterdesk.io/charterdesk/ent/invitation"
	"charterdesk.io/charterdesk/ent/negotiation"
	"charterdesk.io/charterdesk/ent/notification"
	"charterdesk.io/charterdesk/ent/order"
	"charterdesk.io/charterdesk/ent/organization"
	"charterdesk.io/charterdesk/ent/passwordresettoken"
	"charterdesk.io/charterdesk/ent/port"
	"charterdesk.io/charterdesk/ent/predicate"
	"charterdesk.io/charterdesk/ent/recapmanager"
	"charterdesk.io/charterdesk/ent/signature"
	"charterdesk.io/charterdesk/ent/user"
	"charterdesk.io/charterdesk/ent/vessel"
	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeActivityLog        = "ActivityLog"
	TypeAddendum           = "Addendum"
	TypeApproval           = "Approval"
	TypeCargoType          = "CargoType"
	TypeCompany            = "Company"
	TypeContract           = "Contract"
	TypeFieldChange        = "FieldChange"
	TypeFixture            = "Fixture"
	TypeInvitation         = "Invitation"
	TypeNegotiation        = "Negotiation"
	TypeNotification       = "Notification"
	TypeOrder              = "Order"
	TypeOrganization       = "Organization"
	TypePasswordResetToken = "PasswordResetToken"
	TypePort               = "Port"
	TypeRecapManager       = "RecapManager"
	TypeSignature          = "Signature"
	TypeUser               = "User"
	TypeVessel             = "Vessel"
)

// ActivityLogMutation represents an operation that mutates the ActivityLog nodes in the graph.
type ActivityLogMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	entity_type   *string
	entity_id     *string
	action        *string
	description   *string
	status        *string
	metadata      *map[string]interface{}
	snapshot      *map[string]interface{}
	user_id       *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ActivityLog, error)
	predicates    []predicate.ActivityLog
}

var _ ent.Mutation = (*ActivityLogMutation)(nil)

// activitylogOption allows management of the mutation configuration using functional options.
type activitylogOption func(*ActivityLogMutation)

// newActivityLogMutation creates new mutation for the ActivityLog entity.
func newActivityLogMutation(c config, op Op, opts ...activitylogOption) *ActivityLogMutation {
	m := &ActivityLogMutation{
		config:        c,
		op:            op,
		typ:           TypeActivityLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withActivityLogID sets the ID field of the mutation.
func withActivityLogID(id string) activitylogOption {
	return func(m *ActivityLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ActivityLog
		)
		m.oldValue = func(ctx context.Context) (*ActivityLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ActivityLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withActivityLog sets the old ActivityLog of the mutation.
func withActivityLog(node *ActivityLog) activitylogOption {
	return func(m *ActivityLogMutation) {
		m.oldValue = func(context.Context) (*ActivityLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ActivityLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ActivityLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ActivityLog entities.
func (m *ActivityLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ActivityLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ActivityLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ActivityLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ActivityLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ActivityLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ActivityLog entity.
// If the ActivityLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ActivityLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetEntityType sets the "entity_type" field.
func (m *ActivityLogMutation) SetEntityType(s string) {
	m.entity_type = &s
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *ActivityLogMutation) EntityType() (r string, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the ActivityLog entity.
// If the ActivityLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityLogMutation) OldEntityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *ActivityLogMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetEntityID sets the "entity_id" field.
func (m *ActivityLogMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *ActivityLogMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the ActivityLog entity.
// If the ActivityLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityLogMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *ActivityLogMutation) ResetEntityID() {
	m.entity_id = nil
}

// SetAction sets the "action" field.
func (m *ActivityLogMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *ActivityLogMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the ActivityLog entity.
// If the ActivityLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityLogMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *ActivityLogMutation) ResetAction() {
	m.action = nil
}

// SetDescription sets the "description" field.
func (m *ActivityLogMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ActivityLogMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ActivityLog entity.
// If the ActivityLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityLogMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *ActivityLogMutation) ResetDescription() {
	m.description = nil
}

// SetStatus sets the "status" field.
func (m *ActivityLogMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ActivityLogMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ActivityLog entity.
// If the ActivityLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityLogMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *ActivityLogMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[activitylog.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *ActivityLogMutation) StatusCleared() bool {
	_, ok := m.clearedFields[activitylog.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *ActivityLogMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, activitylog.FieldStatus)
}

// SetMetadata sets the "metadata" field.
func (m *ActivityLogMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ActivityLogMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the ActivityLog entity.
// If the ActivityLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityLogMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ActivityLogMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[activitylog.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ActivityLogMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[activitylog.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ActivityLogMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, activitylog.FieldMetadata)
}

// SetSnapshot sets the "snapshot" field.
func (m *ActivityLogMutation) SetSnapshot(value map[string]interface{}) {
	m.snapshot = &value
}

// Snapshot returns the value of the "snapshot" field in the mutation.
func (m *ActivityLogMutation) Snapshot() (r map[string]interface{}, exists bool) {
	v := m.snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldSnapshot returns the old "snapshot" field's value of the ActivityLog entity.
// If the ActivityLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityLogMutation) OldSnapshot(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSnapshot: %w", err)
	}
	return oldValue.Snapshot, nil
}

// ClearSnapshot clears the value of the "snapshot" field.
func (m *ActivityLogMutation) ClearSnapshot() {
	m.snapshot = nil
	m.clearedFields[activitylog.FieldSnapshot] = struct{}{}
}

// SnapshotCleared returns if the "snapshot" field was cleared in this mutation.
func (m *ActivityLogMutation) SnapshotCleared() bool {
	_, ok := m.clearedFields[activitylog.FieldSnapshot]
	return ok
}

// ResetSnapshot resets all changes to the "snapshot" field.
func (m *ActivityLogMutation) ResetSnapshot() {
	m.snapshot = nil
	delete(m.clearedFields, activitylog.FieldSnapshot)
}

// SetUserID sets the "user_id" field.
func (m *ActivityLogMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ActivityLogMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ActivityLog entity.
// If the ActivityLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityLogMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *ActivityLogMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[activitylog.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *ActivityLogMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[activitylog.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ActivityLogMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, activitylog.FieldUserID)
}

// Where appends a list predicates to the ActivityLogMutation builder.
func (m *ActivityLogMutation) Where(ps ...predicate.ActivityLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ActivityLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ActivityLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ActivityLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ActivityLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ActivityLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ActivityLog).
func (m *ActivityLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ActivityLogMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, activitylog.FieldCreatedAt)
	}
	if m.entity_type != nil {
		fields = append(fields, activitylog.FieldEntityType)
	}
	if m.entity_id != nil {
		fields = append(fields, activitylog.FieldEntityID)
	}
	if m.action != nil {
		fields = append(fields, activitylog.FieldAction)
	}
	if m.description != nil {
		fields = append(fields, activitylog.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, activitylog.FieldStatus)
	}
	if m.metadata != nil {
		fields = append(fields, activitylog.FieldMetadata)
	}
	if m.snapshot != nil {
		fields = append(fields, activitylog.FieldSnapshot)
	}
	if m.user_id != nil {
		fields = append(fields, activitylog.FieldUserID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ActivityLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case activitylog.FieldCreatedAt:
		return m.CreatedAt()
	case activitylog.FieldEntityType:
		return m.EntityType()
	case activitylog.FieldEntityID:
		return m.EntityID()
	case activitylog.FieldAction:
		return m.Action()
	case activitylog.FieldDescription:
		return m.Description()
	case activitylog.FieldStatus:
		return m.Status()
	case activitylog.FieldMetadata:
		return m.Metadata()
	case activitylog.FieldSnapshot:
		return m.Snapshot()
	case activitylog.FieldUserID:
		return m.UserID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ActivityLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case activitylog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case activitylog.FieldEntityType:
		return m.OldEntityType(ctx)
	case activitylog.FieldEntityID:
		return m.OldEntityID(ctx)
	case activitylog.FieldAction:
		return m.OldAction(ctx)
	case activitylog.FieldDescription:
		return m.OldDescription(ctx)
	case activitylog.FieldStatus:
		return m.OldStatus(ctx)
	case activitylog.FieldMetadata:
		return m.OldMetadata(ctx)
	case activitylog.FieldSnapshot:
		return m.OldSnapshot(ctx)
	case activitylog.FieldUserID:
		return m.OldUserID(ctx)
	}
	return nil, fmt.Errorf("unknown ActivityLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivityLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case activitylog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case activitylog.FieldEntityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case activitylog.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case activitylog.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case activitylog.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case activitylog.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case activitylog.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case activitylog.FieldSnapshot:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSnapshot(v)
		return nil
	case activitylog.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	}
	return fmt.Errorf("unknown ActivityLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ActivityLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ActivityLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivityLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ActivityLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ActivityLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(activitylog.FieldStatus) {
		fields = append(fields, activitylog.FieldStatus)
	}
	if m.FieldCleared(activitylog.FieldMetadata) {
		fields = append(fields, activitylog.FieldMetadata)
	}
	if m.FieldCleared(activitylog.FieldSnapshot) {
		fields = append(fields, activitylog.FieldSnapshot)
	}
	if m.FieldCleared(activitylog.FieldUserID) {
		fields = append(fields, activitylog.FieldUserID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ActivityLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ActivityLogMutation) ClearField(name string) error {
	switch name {
	case activitylog.FieldStatus:
		m.ClearStatus()
		return nil
	case activitylog.FieldMetadata:
		m.ClearMetadata()
		return nil
	case activitylog.FieldSnapshot:
		m.ClearSnapshot()
		return nil
	case activitylog.FieldUserID:
		m.ClearUserID()
		return nil
	}
	return fmt.Errorf("unknown ActivityLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ActivityLogMutation) ResetField(name string) error {
	switch name {
	case activitylog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case activitylog.FieldEntityType:
		m.ResetEntityType()
		return nil
	case activitylog.FieldEntityID:
		m.ResetEntityID()
		return nil
	case activitylog.FieldAction:
		m.ResetAction()
		return nil
	case activitylog.FieldDescription:
		m.ResetDescription()
		return nil
	case activitylog.FieldStatus:
		m.ResetStatus()
		return nil
	case activitylog.FieldMetadata:
		m.ResetMetadata()
		return nil
	case activitylog.FieldSnapshot:
		m.ResetSnapshot()
		return nil
	case activitylog.FieldUserID:
		m.ResetUserID()
		return nil
	}
	return fmt.Errorf("unknown ActivityLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ActivityLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ActivityLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ActivityLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ActivityLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ActivityLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ActivityLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ActivityLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ActivityLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ActivityLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ActivityLog edge %s", name)
}

// AddendumMutation represents an operation that mutates the Addendum nodes in the graph.
type AddendumMutation struct {
	config
	op              Op
	typ             string
	id              *string
	created_at      *time.Time
	updated_at      *time.Time
	addendum_number *string
	contract_id     *string
	recap_id        *string
	description     *string
	status          *addendum.Status
	created_by      *string
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Addendum, error)
	predicates      []predicate.Addendum
}

var _ ent.Mutation = (*AddendumMutation)(nil)

// addendumOption allows management of the mutation configuration using functional options.
type addendumOption func(*AddendumMutation)

// newAddendumMutation creates new mutation for the Addendum entity.
func newAddendumMutation(c config, op Op, opts ...addendumOption) *AddendumMutation {
	m := &AddendumMutation{
		config:        c,
		op:            op,
		typ:           TypeAddendum,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAddendumID sets the ID field of the mutation.
func withAddendumID(id string) addendumOption {
	return func(m *AddendumMutation) {
		var (
			err   error
			once  sync.Once
			value *Addendum
		)
		m.oldValue = func(ctx context.Context) (*Addendum, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Addendum.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAddendum sets the old Addendum of the mutation.
func withAddendum(node *Addendum) addendumOption {
	return func(m *AddendumMutation) {
		m.oldValue = func(context.Context) (*Addendum, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AddendumMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AddendumMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Addendum entities.
func (m *AddendumMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AddendumMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AddendumMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Addendum.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AddendumMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AddendumMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Addendum entity.
// If the Addendum object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AddendumMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AddendumMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AddendumMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AddendumMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Addendum entity.
// If the Addendum object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AddendumMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AddendumMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetAddendumNumber sets the "addendum_number" field.
func (m *AddendumMutation) SetAddendumNumber(s string) {
	m.addendum_number = &s
}

// AddendumNumber returns the value of the "addendum_number" field in the mutation.
func (m *AddendumMutation) AddendumNumber() (r string, exists bool) {
	v := m.addendum_number
	if v == nil {
		return
	}
	return *v, true
}

// OldAddendumNumber returns the old "addendum_number" field's value of the Addendum entity.
// If the Addendum object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AddendumMutation) OldAddendumNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddendumNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddendumNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddendumNumber: %w", err)
	}
	return oldValue.AddendumNumber, nil
}

// ResetAddendumNumber resets all changes to the "addendum_number" field.
func (m *AddendumMutation) ResetAddendumNumber() {
	m.addendum_number = nil
}

// SetContractID sets the "contract_id" field.
func (m *AddendumMutation) SetContractID(s string) {
	m.contract_id = &s
}

// ContractID returns the value of the "contract_id" field in the mutation.
func (m *AddendumMutation) ContractID() (r string, exists bool) {
	v := m.contract_id
	if v == nil {
		return
	}
	return *v, true
}

// OldContractID returns the old "contract_id" field's value of the Addendum entity.
// If the Addendum object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AddendumMutation) OldContractID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractID: %w", err)
	}
	return oldValue.ContractID, nil
}

// ClearContractID clears the value of the "contract_id" field.
func (m *AddendumMutation) ClearContractID() {
	m.contract_id = nil
	m.clearedFields[addendum.FieldContractID] = struct{}{}
}

// ContractIDCleared returns if the "contract_id" field was cleared in this mutation.
func (m *AddendumMutation) ContractIDCleared() bool {
	_, ok := m.clearedFields[addendum.FieldContractID]
	return ok
}

// ResetContractID resets all changes to the "contract_id" field.
func (m *AddendumMutation) ResetContractID() {
	m.contract_id = nil
	delete(m.clearedFields, addendum.FieldContractID)
}

// SetRecapID sets the "recap_id" field.
func (m *AddendumMutation) SetRecapID(s string) {
	m.recap_id = &s
}

// RecapID returns the value of the "recap_id" field in the mutation.
func (m *AddendumMutation) RecapID() (r string, exists bool) {
	v := m.recap_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRecapID returns the old "recap_id" field's value of the Addendum entity.
// If the Addendum object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AddendumMutation) OldRecapID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecapID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecapID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecapID: %w", err)
	}
	return oldValue.RecapID, nil
}

// ClearRecapID clears the value of the "recap_id" field.
func (m *AddendumMutation) ClearRecapID() {
	m.recap_id = nil
	m.clearedFields[addendum.FieldRecapID] = struct{}{}
}

// RecapIDCleared returns if the "recap_id" field was cleared in this mutation.
func (m *AddendumMutation) RecapIDCleared() bool {
	_, ok := m.clearedFields[addendum.FieldRecapID]
	return ok
}

// ResetRecapID resets all changes to the "recap_id" field.
func (m *AddendumMutation) ResetRecapID() {
	m.recap_id = nil
	delete(m.clearedFields, addendum.FieldRecapID)
}

// SetDescription sets the "description" field.
func (m *AddendumMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *AddendumMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Addendum entity.
// If the Addendum object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AddendumMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *AddendumMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[addendum.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *AddendumMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[addendum.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *AddendumMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, addendum.FieldDescription)
}

// SetStatus sets the "status" field.
func (m *AddendumMutation) SetStatus(a addendum.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AddendumMutation) Status() (r addendum.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Addendum entity.
// If the Addendum object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AddendumMutation) OldStatus(ctx context.Context) (v addendum.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AddendumMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *AddendumMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *AddendumMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Addendum entity.
// If the Addendum object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AddendumMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *AddendumMutation) ResetCreatedBy() {
	m.created_by = nil
}

// Where appends a list predicates to the AddendumMutation builder.
func (m *AddendumMutation) Where(ps ...predicate.Addendum) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AddendumMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AddendumMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Addendum, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AddendumMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AddendumMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Addendum).
func (m *AddendumMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AddendumMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, addendum.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, addendum.FieldUpdatedAt)
	}
	if m.addendum_number != nil {
		fields = append(fields, addendum.FieldAddendumNumber)
	}
	if m.contract_id != nil {
		fields = append(fields, addendum.FieldContractID)
	}
	if m.recap_id != nil {
		fields = append(fields, addendum.FieldRecapID)
	}
	if m.description != nil {
		fields = append(fields, addendum.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, addendum.FieldStatus)
	}
	if m.created_by != nil {
		fields = append(fields, addendum.FieldCreatedBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AddendumMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case addendum.FieldCreatedAt:
		return m.CreatedAt()
	case addendum.FieldUpdatedAt:
		return m.UpdatedAt()
	case addendum.FieldAddendumNumber:
		return m.AddendumNumber()
	case addendum.FieldContractID:
		return m.ContractID()
	case addendum.FieldRecapID:
		return m.RecapID()
	case addendum.FieldDescription:
		return m.Description()
	case addendum.FieldStatus:
		return m.Status()
	case addendum.FieldCreatedBy:
		return m.CreatedBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AddendumMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case addendum.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case addendum.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case addendum.FieldAddendumNumber:
		return m.OldAddendumNumber(ctx)
	case addendum.FieldContractID:
		return m.OldContractID(ctx)
	case addendum.FieldRecapID:
		return m.OldRecapID(ctx)
	case addendum.FieldDescription:
		return m.OldDescription(ctx)
	case addendum.FieldStatus:
		return m.OldStatus(ctx)
	case addendum.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	}
	return nil, fmt.Errorf("unknown Addendum field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AddendumMutation) SetField(name string, value ent.Value) error {
	switch name {
	case addendum.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case addendum.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case addendum.FieldAddendumNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddendumNumber(v)
		return nil
	case addendum.FieldContractID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractID(v)
		return nil
	case addendum.FieldRecapID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecapID(v)
		return nil
	case addendum.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case addendum.FieldStatus:
		v, ok := value.(addendum.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case addendum.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	}
	return fmt.Errorf("unknown Addendum field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AddendumMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AddendumMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AddendumMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Addendum numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AddendumMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(addendum.FieldContractID) {
		fields = append(fields, addendum.FieldContractID)
	}
	if m.FieldCleared(addendum.FieldRecapID) {
		fields = append(fields, addendum.FieldRecapID)
	}
	if m.FieldCleared(addendum.FieldDescription) {
		fields = append(fields, addendum.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AddendumMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AddendumMutation) ClearField(name string) error {
	switch name {
	case addendum.FieldContractID:
		m.ClearContractID()
		return nil
	case addendum.FieldRecapID:
		m.ClearRecapID()
		return nil
	case addendum.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Addendum nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AddendumMutation) ResetField(name string) error {
	switch name {
	case addendum.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case addendum.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case addendum.FieldAddendumNumber:
		m.ResetAddendumNumber()
		return nil
	case addendum.FieldContractID:
		m.ResetContractID()
		return nil
	case addendum.FieldRecapID:
		m.ResetRecapID()
		return nil
	case addendum.FieldDescription:
		m.ResetDescription()
		return nil
	case addendum.FieldStatus:
		m.ResetStatus()
		return nil
	case addendum.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown Addendum field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AddendumMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AddendumMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AddendumMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AddendumMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AddendumMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AddendumMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AddendumMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Addendum unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AddendumMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Addendum edge %s", name)
}

// ApprovalMutation represents an operation that mutates the Approval nodes in the graph.
type ApprovalMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	updated_at    *time.Time
	entity_type   *approval.EntityType
	entity_id     *string
	status        *approval.Status
	requested_by  *string
	decided_by    *string
	note          *string
	decided_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Approval, error)
	predicates    []predicate.Approval
}

var _ ent.Mutation = (*ApprovalMutation)(nil)

// approvalOption allows management of the mutation configuration using functional options.
type approvalOption func(*ApprovalMutation)

// newApprovalMutation creates new mutation for the Approval entity.
func newApprovalMutation(c config, op Op, opts ...approvalOption) *ApprovalMutation {
	m := &ApprovalMutation{
		config:        c,
		op:            op,
		typ:           TypeApproval,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApprovalID sets the ID field of the mutation.
func withApprovalID(id string) approvalOption {
	return func(m *ApprovalMutation) {
		var (
			err   error
			once  sync.Once
			value *Approval
		)
		m.oldValue = func(ctx context.Context) (*Approval, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Approval.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApproval sets the old Approval of the mutation.
func withApproval(node *Approval) approvalOption {
	return func(m *ApprovalMutation) {
		m.oldValue = func(context.Context) (*Approval, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApprovalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApprovalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Approval entities.
func (m *ApprovalMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApprovalMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApprovalMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Approval.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ApprovalMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ApprovalMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ApprovalMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ApprovalMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ApprovalMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ApprovalMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetEntityType sets the "entity_type" field.
func (m *ApprovalMutation) SetEntityType(at approval.EntityType) {
	m.entity_type = &at
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *ApprovalMutation) EntityType() (r approval.EntityType, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldEntityType(ctx context.Context) (v approval.EntityType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *ApprovalMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetEntityID sets the "entity_id" field.
func (m *ApprovalMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *ApprovalMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *ApprovalMutation) ResetEntityID() {
	m.entity_id = nil
}

// SetStatus sets the "status" field.
func (m *ApprovalMutation) SetStatus(a approval.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *ApprovalMutation) Status() (r approval.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldStatus(ctx context.Context) (v approval.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ApprovalMutation) ResetStatus() {
	m.status = nil
}

// SetRequestedBy sets the "requested_by" field.
func (m *ApprovalMutation) SetRequestedBy(s string) {
	m.requested_by = &s
}

// RequestedBy returns the value of the "requested_by" field in the mutation.
func (m *ApprovalMutation) RequestedBy() (r string, exists bool) {
	v := m.requested_by
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedBy returns the old "requested_by" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldRequestedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedBy: %w", err)
	}
	return oldValue.RequestedBy, nil
}

// ResetRequestedBy resets all changes to the "requested_by" field.
func (m *ApprovalMutation) ResetRequestedBy() {
	m.requested_by = nil
}

// SetDecidedBy sets the "decided_by" field.
func (m *ApprovalMutation) SetDecidedBy(s string) {
	m.decided_by = &s
}

// DecidedBy returns the value of the "decided_by" field in the mutation.
func (m *ApprovalMutation) DecidedBy() (r string, exists bool) {
	v := m.decided_by
	if v == nil {
		return
	}
	return *v, true
}

// OldDecidedBy returns the old "decided_by" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldDecidedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecidedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecidedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecidedBy: %w", err)
	}
	return oldValue.DecidedBy, nil
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (m *ApprovalMutation) ClearDecidedBy() {
	m.decided_by = nil
	m.clearedFields[approval.FieldDecidedBy] = struct{}{}
}

// DecidedByCleared returns if the "decided_by" field was cleared in this mutation.
func (m *ApprovalMutation) DecidedByCleared() bool {
	_, ok := m.clearedFields[approval.FieldDecidedBy]
	return ok
}

// ResetDecidedBy resets all changes to the "decided_by" field.
func (m *ApprovalMutation) ResetDecidedBy() {
	m.decided_by = nil
	delete(m.clearedFields, approval.FieldDecidedBy)
}

// SetNote sets the "note" field.
func (m *ApprovalMutation) SetNote(s string) {
	m.note = &s
}

// Note returns the value of the "note" field in the mutation.
func (m *ApprovalMutation) Note() (r string, exists bool) {
	v := m.note
	if v == nil {
		return
	}
	return *v, true
}

// OldNote returns the old "note" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldNote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNote: %w", err)
	}
	return oldValue.Note, nil
}

// ClearNote clears the value of the "note" field.
func (m *ApprovalMutation) ClearNote() {
	m.note = nil
	m.clearedFields[approval.FieldNote] = struct{}{}
}

// NoteCleared returns if the "note" field was cleared in this mutation.
func (m *ApprovalMutation) NoteCleared() bool {
	_, ok := m.clearedFields[approval.FieldNote]
	return ok
}

// ResetNote resets all changes to the "note" field.
func (m *ApprovalMutation) ResetNote() {
	m.note = nil
	delete(m.clearedFields, approval.FieldNote)
}

// SetDecidedAt sets the "decided_at" field.
func (m *ApprovalMutation) SetDecidedAt(t time.Time) {
	m.decided_at = &t
}

// DecidedAt returns the value of the "decided_at" field in the mutation.
func (m *ApprovalMutation) DecidedAt() (r time.Time, exists bool) {
	v := m.decided_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDecidedAt returns the old "decided_at" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldDecidedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecidedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecidedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecidedAt: %w", err)
	}
	return oldValue.DecidedAt, nil
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (m *ApprovalMutation) ClearDecidedAt() {
	m.decided_at = nil
	m.clearedFields[approval.FieldDecidedAt] = struct{}{}
}

// DecidedAtCleared returns if the "decided_at" field was cleared in this mutation.
func (m *ApprovalMutation) DecidedAtCleared() bool {
	_, ok := m.clearedFields[approval.FieldDecidedAt]
	return ok
}

// ResetDecidedAt resets all changes to the "decided_at" field.
func (m *ApprovalMutation) ResetDecidedAt() {
	m.decided_at = nil
	delete(m.clearedFields, approval.FieldDecidedAt)
}

// Where appends a list predicates to the ApprovalMutation builder.
func (m *ApprovalMutation) Where(ps ...predicate.Approval) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApprovalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApprovalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Approval, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApprovalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApprovalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Approval).
func (m *ApprovalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApprovalMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, approval.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, approval.FieldUpdatedAt)
	}
	if m.entity_type != nil {
		fields = append(fields, approval.FieldEntityType)
	}
	if m.entity_id != nil {
		fields = append(fields, approval.FieldEntityID)
	}
	if m.status != nil {
		fields = append(fields, approval.FieldStatus)
	}
	if m.requested_by != nil {
		fields = append(fields, approval.FieldRequestedBy)
	}
	if m.decided_by != nil {
		fields = append(fields, approval.FieldDecidedBy)
	}
	if m.note != nil {
		fields = append(fields, approval.FieldNote)
	}
	if m.decided_at != nil {
		fields = append(fields, approval.FieldDecidedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApprovalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case approval.FieldCreatedAt:
		return m.CreatedAt()
	case approval.FieldUpdatedAt:
		return m.UpdatedAt()
	case approval.FieldEntityType:
		return m.EntityType()
	case approval.FieldEntityID:
		return m.EntityID()
	case approval.FieldStatus:
		return m.Status()
	case approval.FieldRequestedBy:
		return m.RequestedBy()
	case approval.FieldDecidedBy:
		return m.DecidedBy()
	case approval.FieldNote:
		return m.Note()
	case approval.FieldDecidedAt:
		return m.DecidedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApprovalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case approval.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case approval.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case approval.FieldEntityType:
		return m.OldEntityType(ctx)
	case approval.FieldEntityID:
		return m.OldEntityID(ctx)
	case approval.FieldStatus:
		return m.OldStatus(ctx)
	case approval.FieldRequestedBy:
		return m.OldRequestedBy(ctx)
	case approval.FieldDecidedBy:
		return m.OldDecidedBy(ctx)
	case approval.FieldNote:
		return m.OldNote(ctx)
	case approval.FieldDecidedAt:
		return m.OldDecidedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Approval field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case approval.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case approval.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case approval.FieldEntityType:
		v, ok := value.(approval.EntityType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case approval.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case approval.FieldStatus:
		v, ok := value.(approval.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case approval.FieldRequestedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedBy(v)
		return nil
	case approval.FieldDecidedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecidedBy(v)
		return nil
	case approval.FieldNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNote(v)
		return nil
	case approval.FieldDecidedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecidedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Approval field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApprovalMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApprovalMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Approval numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApprovalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(approval.FieldDecidedBy) {
		fields = append(fields, approval.FieldDecidedBy)
	}
	if m.FieldCleared(approval.FieldNote) {
		fields = append(fields, approval.FieldNote)
	}
	if m.FieldCleared(approval.FieldDecidedAt) {
		fields = append(fields, approval.FieldDecidedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApprovalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApprovalMutation) ClearField(name string) error {
	switch name {
	case approval.FieldDecidedBy:
		m.ClearDecidedBy()
		return nil
	case approval.FieldNote:
		m.ClearNote()
		return nil
	case approval.FieldDecidedAt:
		m.ClearDecidedAt()
		return nil
	}
	return fmt.Errorf("unknown Approval nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApprovalMutation) ResetField(name string) error {
	switch name {
	case approval.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case approval.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case approval.FieldEntityType:
		m.ResetEntityType()
		return nil
	case approval.FieldEntityID:
		m.ResetEntityID()
		return nil
	case approval.FieldStatus:
		m.ResetStatus()
		return nil
	case approval.FieldRequestedBy:
		m.ResetRequestedBy()
		return nil
	case approval.FieldDecidedBy:
		m.ResetDecidedBy()
		return nil
	case approval.FieldNote:
		m.ResetNote()
		return nil
	case approval.FieldDecidedAt:
		m.ResetDecidedAt()
		return nil
	}
	return fmt.Errorf("unknown Approval field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApprovalMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApprovalMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApprovalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApprovalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApprovalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApprovalMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApprovalMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Approval unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApprovalMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Approval edge %s", name)
}

// CargoTypeMutation represents an operation that mutates the CargoType nodes in the graph.
type CargoTypeMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	updated_at    *time.Time
	name          *string
	category      *string
	active        *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*CargoType, error)
	predicates    []predicate.CargoType
}

var _ ent.Mutation = (*CargoTypeMutation)(nil)

// cargotypeOption allows management of the mutation configuration using functional options.
type cargotypeOption func(*CargoTypeMutation)

// newCargoTypeMutation creates new mutation for the CargoType entity.
func newCargoTypeMutation(c config, op Op, opts ...cargotypeOption) *CargoTypeMutation {
	m := &CargoTypeMutation{
		config:        c,
		op:            op,
		typ:           TypeCargoType,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCargoTypeID sets the ID field of the mutation.
func withCargoTypeID(id string) cargotypeOption {
	return func(m *CargoTypeMutation) {
		var (
			err   error
			once  sync.Once
			value *CargoType
		)
		m.oldValue = func(ctx context.Context) (*CargoType, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CargoType.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCargoType sets the old CargoType of the mutation.
func withCargoType(node *CargoType) cargotypeOption {
	return func(m *CargoTypeMutation) {
		m.oldValue = func(context.Context) (*CargoType, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CargoTypeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CargoTypeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CargoType entities.
func (m *CargoTypeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CargoTypeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CargoTypeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CargoType.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *CargoTypeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CargoTypeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CargoType entity.
// If the CargoType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CargoTypeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CargoTypeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CargoTypeMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CargoTypeMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CargoType entity.
// If the CargoType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CargoTypeMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CargoTypeMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *CargoTypeMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CargoTypeMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the CargoType entity.
// If the CargoType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CargoTypeMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CargoTypeMutation) ResetName() {
	m.name = nil
}

// SetCategory sets the "category" field.
func (m *CargoTypeMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *CargoTypeMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the CargoType entity.
// If the CargoType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CargoTypeMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *CargoTypeMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[cargotype.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *CargoTypeMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[cargotype.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *CargoTypeMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, cargotype.FieldCategory)
}

// SetActive sets the "active" field.
func (m *CargoTypeMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *CargoTypeMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the CargoType entity.
// If the CargoType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CargoTypeMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *CargoTypeMutation) ResetActive() {
	m.active = nil
}

// Where appends a list predicates to the CargoTypeMutation builder.
func (m *CargoTypeMutation) Where(ps ...predicate.CargoType) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CargoTypeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CargoTypeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CargoType, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CargoTypeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CargoTypeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CargoType).
func (m *CargoTypeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CargoTypeMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, cargotype.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, cargotype.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, cargotype.FieldName)
	}
	if m.category != nil {
		fields = append(fields, cargotype.FieldCategory)
	}
	if m.active != nil {
		fields = append(fields, cargotype.FieldActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CargoTypeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cargotype.FieldCreatedAt:
		return m.CreatedAt()
	case cargotype.FieldUpdatedAt:
		return m.UpdatedAt()
	case cargotype.FieldName:
		return m.Name()
	case cargotype.FieldCategory:
		return m.Category()
	case cargotype.FieldActive:
		return m.Active()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CargoTypeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cargotype.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case cargotype.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case cargotype.FieldName:
		return m.OldName(ctx)
	case cargotype.FieldCategory:
		return m.OldCategory(ctx)
	case cargotype.FieldActive:
		return m.OldActive(ctx)
	}
	return nil, fmt.Errorf("unknown CargoType field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CargoTypeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cargotype.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case cargotype.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case cargotype.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case cargotype.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case cargotype.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	}
	return fmt.Errorf("unknown CargoType field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CargoTypeMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CargoTypeMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CargoTypeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CargoType numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CargoTypeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(cargotype.FieldCategory) {
		fields = append(fields, cargotype.FieldCategory)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CargoTypeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CargoTypeMutation) ClearField(name string) error {
	switch name {
	case cargotype.FieldCategory:
		m.ClearCategory()
		return nil
	}
	return fmt.Errorf("unknown CargoType nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CargoTypeMutation) ResetField(name string) error {
	switch name {
	case cargotype.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case cargotype.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case cargotype.FieldName:
		m.ResetName()
		return nil
	case cargotype.FieldCategory:
		m.ResetCategory()
		return nil
	case cargotype.FieldActive:
		m.ResetActive()
		return nil
	}
	return fmt.Errorf("unknown CargoType field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CargoTypeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CargoTypeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CargoTypeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CargoTypeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CargoTypeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CargoTypeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CargoTypeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CargoType unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CargoTypeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CargoType edge %s", name)
}

// CompanyMutation represents an operation that mutates the Company nodes in the graph.
type CompanyMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	updated_at    *time.Time
	name          *string
	_type         *company.Type
	country       *string
	verified      *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Company, error)
	predicates    []predicate.Company
}

var _ ent.Mutation = (*CompanyMutation)(nil)

// companyOption allows management of the mutation configuration using functional options.
type companyOption func(*CompanyMutation)

// newCompanyMutation creates new mutation for the Company entity.
func newCompanyMutation(c config, op Op, opts ...companyOption) *CompanyMutation {
	m := &CompanyMutation{
		config:        c,
		op:            op,
		typ:           TypeCompany,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompanyID sets the ID field of the mutation.
func withCompanyID(id string) companyOption {
	return func(m *CompanyMutation) {
		var (
			err   error
			once  sync.Once
			value *Company
		)
		m.oldValue = func(ctx context.Context) (*Company, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Company.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompany sets the old Company of the mutation.
func withCompany(node *Company) companyOption {
	return func(m *CompanyMutation) {
		m.oldValue = func(context.Context) (*Company, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompanyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompanyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Company entities.
func (m *CompanyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompanyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompanyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Company.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *CompanyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CompanyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CompanyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CompanyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CompanyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CompanyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *CompanyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CompanyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CompanyMutation) ResetName() {
	m.name = nil
}

// SetType sets the "type" field.
func (m *CompanyMutation) SetType(c company.Type) {
	m._type = &c
}

// GetType returns the value of the "type" field in the mutation.
func (m *CompanyMutation) GetType() (r company.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldType(ctx context.Context) (v company.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *CompanyMutation) ResetType() {
	m._type = nil
}

// SetCountry sets the "country" field.
func (m *CompanyMutation) SetCountry(s string) {
	m.country = &s
}

// Country returns the value of the "country" field in the mutation.
func (m *CompanyMutation) Country() (r string, exists bool) {
	v := m.country
	if v == nil {
		return
	}
	return *v, true
}

// OldCountry returns the old "country" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldCountry(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCountry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCountry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCountry: %w", err)
	}
	return oldValue.Country, nil
}

// ClearCountry clears the value of the "country" field.
func (m *CompanyMutation) ClearCountry() {
	m.country = nil
	m.clearedFields[company.FieldCountry] = struct{}{}
}

// CountryCleared returns if the "country" field was cleared in this mutation.
func (m *CompanyMutation) CountryCleared() bool {
	_, ok := m.clearedFields[company.FieldCountry]
	return ok
}

// ResetCountry resets all changes to the "country" field.
func (m *CompanyMutation) ResetCountry() {
	m.country = nil
	delete(m.clearedFields, company.FieldCountry)
}

// SetVerified sets the "verified" field.
func (m *CompanyMutation) SetVerified(b bool) {
	m.verified = &b
}

// Verified returns the value of the "verified" field in the mutation.
func (m *CompanyMutation) Verified() (r bool, exists bool) {
	v := m.verified
	if v == nil {
		return
	}
	return *v, true
}

// OldVerified returns the old "verified" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerified: %w", err)
	}
	return oldValue.Verified, nil
}

// ResetVerified resets all changes to the "verified" field.
func (m *CompanyMutation) ResetVerified() {
	m.verified = nil
}

// Where appends a list predicates to the CompanyMutation builder.
func (m *CompanyMutation) Where(ps ...predicate.Company) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompanyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompanyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Company, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompanyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompanyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Company).
func (m *CompanyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompanyMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, company.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, company.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, company.FieldName)
	}
	if m._type != nil {
		fields = append(fields, company.FieldType)
	}
	if m.country != nil {
		fields = append(fields, company.FieldCountry)
	}
	if m.verified != nil {
		fields = append(fields, company.FieldVerified)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompanyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case company.FieldCreatedAt:
		return m.CreatedAt()
	case company.FieldUpdatedAt:
		return m.UpdatedAt()
	case company.FieldName:
		return m.Name()
	case company.FieldType:
		return m.GetType()
	case company.FieldCountry:
		return m.Country()
	case company.FieldVerified:
		return m.Verified()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompanyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case company.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case company.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case company.FieldName:
		return m.OldName(ctx)
	case company.FieldType:
		return m.OldType(ctx)
	case company.FieldCountry:
		return m.OldCountry(ctx)
	case company.FieldVerified:
		return m.OldVerified(ctx)
	}
	return nil, fmt.Errorf("unknown Company field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case company.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case company.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case company.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case company.FieldType:
		v, ok := value.(company.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case company.FieldCountry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCountry(v)
		return nil
	case company.FieldVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerified(v)
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompanyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompanyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Company numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompanyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(company.FieldCountry) {
		fields = append(fields, company.FieldCountry)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompanyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompanyMutation) ClearField(name string) error {
	switch name {
	case company.FieldCountry:
		m.ClearCountry()
		return nil
	}
	return fmt.Errorf("unknown Company nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompanyMutation) ResetField(name string) error {
	switch name {
	case company.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case company.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case company.FieldName:
		m.ResetName()
		return nil
	case company.FieldType:
		m.ResetType()
		return nil
	case company.FieldCountry:
		m.ResetCountry()
		return nil
	case company.FieldVerified:
		m.ResetVerified()
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompanyMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompanyMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompanyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompanyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompanyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompanyMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompanyMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Company unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompanyMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Company edge %s", name)
}

// ContractMutation represents an operation that mutates the Contract nodes in the graph.
type ContractMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	created_at         *time.Time
	updated_at         *time.Time
	cp_number          *string
	order_id           *string
	negotiation_id     *string
	parent_contract_id *string
	contract_type      *string
	delivery_type      *string
	vessel_id          *string
	company_id         *string
	load_port_id       *string
	discharge_port_id  *string
	cargo_type_id      *string
	freight_rate       *float64
	addfreight_rate    *float64
	laycan_start       *time.Time
	laycan_end         *time.Time
	quantity           *float64
	addquantity        *float64
	demurrage_rate     *float64
	adddemurrage_rate  *float64
	status             *contract.Status
	created_by         *string
	clearedFields      map[string]struct{}
	fixture            *string
	clearedfixture     bool
	done               bool
	oldValue           func(context.Context) (*Contract, error)
	predicates         []predicate.Contract
}

var _ ent.Mutation = (*ContractMutation)(nil)

// contractOption allows management of the mutation configuration using functional options.
type contractOption func(*ContractMutation)

// newContractMutation creates new mutation for the Contract entity.
func newContractMutation(c config, op Op, opts ...contractOption) *ContractMutation {
	m := &ContractMutation{
		config:        c,
		op:            op,
		typ:           TypeContract,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContractID sets the ID field of the mutation.
func withContractID(id string) contractOption {
	return func(m *ContractMutation) {
		var (
			err   error
			once  sync.Once
			value *Contract
		)
		m.oldValue = func(ctx context.Context) (*Contract, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Contract.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContract sets the old Contract of the mutation.
func withContract(node *Contract) contractOption {
	return func(m *ContractMutation) {
		m.oldValue = func(context.Context) (*Contract, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContractMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContractMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Contract entities.
func (m *ContractMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContractMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContractMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Contract.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ContractMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContractMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContractMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ContractMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ContractMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ContractMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCpNumber sets the "cp_number" field.
func (m *ContractMutation) SetCpNumber(s string) {
	m.cp_number = &s
}

// CpNumber returns the value of the "cp_number" field in the mutation.
func (m *ContractMutation) CpNumber() (r string, exists bool) {
	v := m.cp_number
	if v == nil {
		return
	}
	return *v, true
}

// OldCpNumber returns the old "cp_number" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldCpNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCpNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCpNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCpNumber: %w", err)
	}
	return oldValue.CpNumber, nil
}

// ResetCpNumber resets all changes to the "cp_number" field.
func (m *ContractMutation) ResetCpNumber() {
	m.cp_number = nil
}

// SetOrderID sets the "order_id" field.
func (m *ContractMutation) SetOrderID(s string) {
	m.order_id = &s
}

// OrderID returns the value of the "order_id" field in the mutation.
func (m *ContractMutation) OrderID() (r string, exists bool) {
	v := m.order_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderID returns the old "order_id" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldOrderID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderID: %w", err)
	}
	return oldValue.OrderID, nil
}

// ClearOrderID clears the value of the "order_id" field.
func (m *ContractMutation) ClearOrderID() {
	m.order_id = nil
	m.clearedFields[contract.FieldOrderID] = struct{}{}
}

// OrderIDCleared returns if the "order_id" field was cleared in this mutation.
func (m *ContractMutation) OrderIDCleared() bool {
	_, ok := m.clearedFields[contract.FieldOrderID]
	return ok
}

// ResetOrderID resets all changes to the "order_id" field.
func (m *ContractMutation) ResetOrderID() {
	m.order_id = nil
	delete(m.clearedFields, contract.FieldOrderID)
}

// SetNegotiationID sets the "negotiation_id" field.
func (m *ContractMutation) SetNegotiationID(s string) {
	m.negotiation_id = &s
}

// NegotiationID returns the value of the "negotiation_id" field in the mutation.
func (m *ContractMutation) NegotiationID() (r string, exists bool) {
	v := m.negotiation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNegotiationID returns the old "negotiation_id" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldNegotiationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNegotiationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNegotiationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNegotiationID: %w", err)
	}
	return oldValue.NegotiationID, nil
}

// ClearNegotiationID clears the value of the "negotiation_id" field.
func (m *ContractMutation) ClearNegotiationID() {
	m.negotiation_id = nil
	m.clearedFields[contract.FieldNegotiationID] = struct{}{}
}

// NegotiationIDCleared returns if the "negotiation_id" field was cleared in this mutation.
func (m *ContractMutation) NegotiationIDCleared() bool {
	_, ok := m.clearedFields[contract.FieldNegotiationID]
	return ok
}

// ResetNegotiationID resets all changes to the "negotiation_id" field.
func (m *ContractMutation) ResetNegotiationID() {
	m.negotiation_id = nil
	delete(m.clearedFields, contract.FieldNegotiationID)
}

// SetParentContractID sets the "parent_contract_id" field.
func (m *ContractMutation) SetParentContractID(s string) {
	m.parent_contract_id = &s
}

// ParentContractID returns the value of the "parent_contract_id" field in the mutation.
func (m *ContractMutation) ParentContractID() (r string, exists bool) {
	v := m.parent_contract_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentContractID returns the old "parent_contract_id" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldParentContractID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentContractID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentContractID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentContractID: %w", err)
	}
	return oldValue.ParentContractID, nil
}

// ClearParentContractID clears the value of the "parent_contract_id" field.
func (m *ContractMutation) ClearParentContractID() {
	m.parent_contract_id = nil
	m.clearedFields[contract.FieldParentContractID] = struct{}{}
}

// ParentContractIDCleared returns if the "parent_contract_id" field was cleared in this mutation.
func (m *ContractMutation) ParentContractIDCleared() bool {
	_, ok := m.clearedFields[contract.FieldParentContractID]
	return ok
}

// ResetParentContractID resets all changes to the "parent_contract_id" field.
func (m *ContractMutation) ResetParentContractID() {
	m.parent_contract_id = nil
	delete(m.clearedFields, contract.FieldParentContractID)
}

// SetContractType sets the "contract_type" field.
func (m *ContractMutation) SetContractType(s string) {
	m.contract_type = &s
}

// ContractType returns the value of the "contract_type" field in the mutation.
func (m *ContractMutation) ContractType() (r string, exists bool) {
	v := m.contract_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContractType returns the old "contract_type" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldContractType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractType: %w", err)
	}
	return oldValue.ContractType, nil
}

// ClearContractType clears the value of the "contract_type" field.
func (m *ContractMutation) ClearContractType() {
	m.contract_type = nil
	m.clearedFields[contract.FieldContractType] = struct{}{}
}

// ContractTypeCleared returns if the "contract_type" field was cleared in this mutation.
func (m *ContractMutation) ContractTypeCleared() bool {
	_, ok := m.clearedFields[contract.FieldContractType]
	return ok
}

// ResetContractType resets all changes to the "contract_type" field.
func (m *ContractMutation) ResetContractType() {
	m.contract_type = nil
	delete(m.clearedFields, contract.FieldContractType)
}

// SetDeliveryType sets the "delivery_type" field.
func (m *ContractMutation) SetDeliveryType(s string) {
	m.delivery_type = &s
}

// DeliveryType returns the value of the "delivery_type" field in the mutation.
func (m *ContractMutation) DeliveryType() (r string, exists bool) {
	v := m.delivery_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveryType returns the old "delivery_type" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldDeliveryType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveryType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveryType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveryType: %w", err)
	}
	return oldValue.DeliveryType, nil
}

// ClearDeliveryType clears the value of the "delivery_type" field.
func (m *ContractMutation) ClearDeliveryType() {
	m.delivery_type = nil
	m.clearedFields[contract.FieldDeliveryType] = struct{}{}
}

// DeliveryTypeCleared returns if the "delivery_type" field was cleared in this mutation.
func (m *ContractMutation) DeliveryTypeCleared() bool {
	_, ok := m.clearedFields[contract.FieldDeliveryType]
	return ok
}

// ResetDeliveryType resets all changes to the "delivery_type" field.
func (m *ContractMutation) ResetDeliveryType() {
	m.delivery_type = nil
	delete(m.clearedFields, contract.FieldDeliveryType)
}

// SetVesselID sets the "vessel_id" field.
func (m *ContractMutation) SetVesselID(s string) {
	m.vessel_id = &s
}

// VesselID returns the value of the "vessel_id" field in the mutation.
func (m *ContractMutation) VesselID() (r string, exists bool) {
	v := m.vessel_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVesselID returns the old "vessel_id" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldVesselID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVesselID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVesselID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVesselID: %w", err)
	}
	return oldValue.VesselID, nil
}

// ClearVesselID clears the value of the "vessel_id" field.
func (m *ContractMutation) ClearVesselID() {
	m.vessel_id = nil
	m.clearedFields[contract.FieldVesselID] = struct{}{}
}

// VesselIDCleared returns if the "vessel_id" field was cleared in this mutation.
func (m *ContractMutation) VesselIDCleared() bool {
	_, ok := m.clearedFields[contract.FieldVesselID]
	return ok
}

// ResetVesselID resets all changes to the "vessel_id" field.
func (m *ContractMutation) ResetVesselID() {
	m.vessel_id = nil
	delete(m.clearedFields, contract.FieldVesselID)
}

// SetCompanyID sets the "company_id" field.
func (m *ContractMutation) SetCompanyID(s string) {
	m.company_id = &s
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *ContractMutation) CompanyID() (r string, exists bool) {
	v := m.company_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldCompanyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ClearCompanyID clears the value of the "company_id" field.
func (m *ContractMutation) ClearCompanyID() {
	m.company_id = nil
	m.clearedFields[contract.FieldCompanyID] = struct{}{}
}

// CompanyIDCleared returns if the "company_id" field was cleared in this mutation.
func (m *ContractMutation) CompanyIDCleared() bool {
	_, ok := m.clearedFields[contract.FieldCompanyID]
	return ok
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *ContractMutation) ResetCompanyID() {
	m.company_id = nil
	delete(m.clearedFields, contract.FieldCompanyID)
}

// SetLoadPortID sets the "load_port_id" field.
func (m *ContractMutation) SetLoadPortID(s string) {
	m.load_port_id = &s
}

// LoadPortID returns the value of the "load_port_id" field in the mutation.
func (m *ContractMutation) LoadPortID() (r string, exists bool) {
	v := m.load_port_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLoadPortID returns the old "load_port_id" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldLoadPortID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoadPortID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoadPortID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoadPortID: %w", err)
	}
	return oldValue.LoadPortID, nil
}

// ClearLoadPortID clears the value of the "load_port_id" field.
func (m *ContractMutation) ClearLoadPortID() {
	m.load_port_id = nil
	m.clearedFields[contract.FieldLoadPortID] = struct{}{}
}

// LoadPortIDCleared returns if the "load_port_id" field was cleared in this mutation.
func (m *ContractMutation) LoadPortIDCleared() bool {
	_, ok := m.clearedFields[contract.FieldLoadPortID]
	return ok
}

// ResetLoadPortID resets all changes to the "load_port_id" field.
func (m *ContractMutation) ResetLoadPortID() {
	m.load_port_id = nil
	delete(m.clearedFields, contract.FieldLoadPortID)
}

// SetDischargePortID sets the "discharge_port_id" field.
func (m *ContractMutation) SetDischargePortID(s string) {
	m.discharge_port_id = &s
}

// DischargePortID returns the value of the "discharge_port_id" field in the mutation.
func (m *ContractMutation) DischargePortID() (r string, exists bool) {
	v := m.discharge_port_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDischargePortID returns the old "discharge_port_id" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldDischargePortID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDischargePortID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDischargePortID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDischargePortID: %w", err)
	}
	return oldValue.DischargePortID, nil
}

// ClearDischargePortID clears the value of the "discharge_port_id" field.
func (m *ContractMutation) ClearDischargePortID() {
	m.discharge_port_id = nil
	m.clearedFields[contract.FieldDischargePortID] = struct{}{}
}

// DischargePortIDCleared returns if the "discharge_port_id" field was cleared in this mutation.
func (m *ContractMutation) DischargePortIDCleared() bool {
	_, ok := m.clearedFields[contract.FieldDischargePortID]
	return ok
}

// ResetDischargePortID resets all changes to the "discharge_port_id" field.
func (m *ContractMutation) ResetDischargePortID() {
	m.discharge_port_id = nil
	delete(m.clearedFields, contract.FieldDischargePortID)
}

// SetCargoTypeID sets the "cargo_type_id" field.
func (m *ContractMutation) SetCargoTypeID(s string) {
	m.cargo_type_id = &s
}

// CargoTypeID returns the value of the "cargo_type_id" field in the mutation.
func (m *ContractMutation) CargoTypeID() (r string, exists bool) {
	v := m.cargo_type_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCargoTypeID returns the old "cargo_type_id" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldCargoTypeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCargoTypeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCargoTypeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCargoTypeID: %w", err)
	}
	return oldValue.CargoTypeID, nil
}

// ClearCargoTypeID clears the value of the "cargo_type_id" field.
func (m *ContractMutation) ClearCargoTypeID() {
	m.cargo_type_id = nil
	m.clearedFields[contract.FieldCargoTypeID] = struct{}{}
}

// CargoTypeIDCleared returns if the "cargo_type_id" field was cleared in this mutation.
func (m *ContractMutation) CargoTypeIDCleared() bool {
	_, ok := m.clearedFields[contract.FieldCargoTypeID]
	return ok
}

// ResetCargoTypeID resets all changes to the "cargo_type_id" field.
func (m *ContractMutation) ResetCargoTypeID() {
	m.cargo_type_id = nil
	delete(m.clearedFields, contract.FieldCargoTypeID)
}

// SetFreightRate sets the "freight_rate" field.
func (m *ContractMutation) SetFreightRate(f float64) {
	m.freight_rate = &f
	m.addfreight_rate = nil
}

// FreightRate returns the value of the "freight_rate" field in the mutation.
func (m *ContractMutation) FreightRate() (r float64, exists bool) {
	v := m.freight_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldFreightRate returns the old "freight_rate" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldFreightRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFreightRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFreightRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFreightRate: %w", err)
	}
	return oldValue.FreightRate, nil
}

// AddFreightRate adds f to the "freight_rate" field.
func (m *ContractMutation) AddFreightRate(f float64) {
	if m.addfreight_rate != nil {
		*m.addfreight_rate += f
	} else {
		m.addfreight_rate = &f
	}
}

// AddedFreightRate returns the value that was added to the "freight_rate" field in this mutation.
func (m *ContractMutation) AddedFreightRate() (r float64, exists bool) {
	v := m.addfreight_rate
	if v == nil {
		return
	}
	return *v, true
}

// ClearFreightRate clears the value of the "freight_rate" field.
func (m *ContractMutation) ClearFreightRate() {
	m.freight_rate = nil
	m.addfreight_rate = nil
	m.clearedFields[contract.FieldFreightRate] = struct{}{}
}

// FreightRateCleared returns if the "freight_rate" field was cleared in this mutation.
func (m *ContractMutation) FreightRateCleared() bool {
	_, ok := m.clearedFields[contract.FieldFreightRate]
	return ok
}

// ResetFreightRate resets all changes to the "freight_rate" field.
func (m *ContractMutation) ResetFreightRate() {
	m.freight_rate = nil
	m.addfreight_rate = nil
	delete(m.clearedFields, contract.FieldFreightRate)
}

// SetLaycanStart sets the "laycan_start" field.
func (m *ContractMutation) SetLaycanStart(t time.Time) {
	m.laycan_start = &t
}

// LaycanStart returns the value of the "laycan_start" field in the mutation.
func (m *ContractMutation) LaycanStart() (r time.Time, exists bool) {
	v := m.laycan_start
	if v == nil {
		return
	}
	return *v, true
}

// OldLaycanStart returns the old "laycan_start" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldLaycanStart(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLaycanStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLaycanStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLaycanStart: %w", err)
	}
	return oldValue.LaycanStart, nil
}

// ClearLaycanStart clears the value of the "laycan_start" field.
func (m *ContractMutation) ClearLaycanStart() {
	m.laycan_start = nil
	m.clearedFields[contract.FieldLaycanStart] = struct{}{}
}

// LaycanStartCleared returns if the "laycan_start" field was cleared in this mutation.
func (m *ContractMutation) LaycanStartCleared() bool {
	_, ok := m.clearedFields[contract.FieldLaycanStart]
	return ok
}

// ResetLaycanStart resets all changes to the "laycan_start" field.
func (m *ContractMutation) ResetLaycanStart() {
	m.laycan_start = nil
	delete(m.clearedFields, contract.FieldLaycanStart)
}

// SetLaycanEnd sets the "laycan_end" field.
func (m *ContractMutation) SetLaycanEnd(t time.Time) {
	m.laycan_end = &t
}

// LaycanEnd returns the value of the "laycan_end" field in the mutation.
func (m *ContractMutation) LaycanEnd() (r time.Time, exists bool) {
	v := m.laycan_end
	if v == nil {
		return
	}
	return *v, true
}

// OldLaycanEnd returns the old "laycan_end" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldLaycanEnd(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLaycanEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLaycanEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLaycanEnd: %w", err)
	}
	return oldValue.LaycanEnd, nil
}

// ClearLaycanEnd clears the value of the "laycan_end" field.
func (m *ContractMutation) ClearLaycanEnd() {
	m.laycan_end = nil
	m.clearedFields[contract.FieldLaycanEnd] = struct{}{}
}

// LaycanEndCleared returns if the "laycan_end" field was cleared in this mutation.
func (m *ContractMutation) LaycanEndCleared() bool {
	_, ok := m.clearedFields[contract.FieldLaycanEnd]
	return ok
}

// ResetLaycanEnd resets all changes to the "laycan_end" field.
func (m *ContractMutation) ResetLaycanEnd() {
	m.laycan_end = nil
	delete(m.clearedFields, contract.FieldLaycanEnd)
}

// SetQuantity sets the "quantity" field.
func (m *ContractMutation) SetQuantity(f float64) {
	m.quantity = &f
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *ContractMutation) Quantity() (r float64, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldQuantity(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds f to the "quantity" field.
func (m *ContractMutation) AddQuantity(f float64) {
	if m.addquantity != nil {
		*m.addquantity += f
	} else {
		m.addquantity = &f
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *ContractMutation) AddedQuantity() (r float64, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ClearQuantity clears the value of the "quantity" field.
func (m *ContractMutation) ClearQuantity() {
	m.quantity = nil
	m.addquantity = nil
	m.clearedFields[contract.FieldQuantity] = struct{}{}
}

// QuantityCleared returns if the "quantity" field was cleared in this mutation.
func (m *ContractMutation) QuantityCleared() bool {
	_, ok := m.clearedFields[contract.FieldQuantity]
	return ok
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *ContractMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
	delete(m.clearedFields, contract.FieldQuantity)
}

// SetDemurrageRate sets the "demurrage_rate" field.
func (m *ContractMutation) SetDemurrageRate(f float64) {
	m.demurrage_rate = &f
	m.adddemurrage_rate = nil
}

// DemurrageRate returns the value of the "demurrage_rate" field in the mutation.
func (m *ContractMutation) DemurrageRate() (r float64, exists bool) {
	v := m.demurrage_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldDemurrageRate returns the old "demurrage_rate" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldDemurrageRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDemurrageRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDemurrageRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDemurrageRate: %w", err)
	}
	return oldValue.DemurrageRate, nil
}

// AddDemurrageRate adds f to the "demurrage_rate" field.
func (m *ContractMutation) AddDemurrageRate(f float64) {
	if m.adddemurrage_rate != nil {
		*m.adddemurrage_rate += f
	} else {
		m.adddemurrage_rate = &f
	}
}

// AddedDemurrageRate returns the value that was added to the "demurrage_rate" field in this mutation.
func (m *ContractMutation) AddedDemurrageRate() (r float64, exists bool) {
	v := m.adddemurrage_rate
	if v == nil {
		return
	}
	return *v, true
}

// ClearDemurrageRate clears the value of the "demurrage_rate" field.
func (m *ContractMutation) ClearDemurrageRate() {
	m.demurrage_rate = nil
	m.adddemurrage_rate = nil
	m.clearedFields[contract.FieldDemurrageRate] = struct{}{}
}

// DemurrageRateCleared returns if the "demurrage_rate" field was cleared in this mutation.
func (m *ContractMutation) DemurrageRateCleared() bool {
	_, ok := m.clearedFields[contract.FieldDemurrageRate]
	return ok
}

// ResetDemurrageRate resets all changes to the "demurrage_rate" field.
func (m *ContractMutation) ResetDemurrageRate() {
	m.demurrage_rate = nil
	m.adddemurrage_rate = nil
	delete(m.clearedFields, contract.FieldDemurrageRate)
}

// SetStatus sets the "status" field.
func (m *ContractMutation) SetStatus(c contract.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *ContractMutation) Status() (r contract.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldStatus(ctx context.Context) (v contract.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ContractMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *ContractMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *ContractMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *ContractMutation) ResetCreatedBy() {
	m.created_by = nil
}

// SetFixtureID sets the "fixture" edge to the Fixture entity by id.
func (m *ContractMutation) SetFixtureID(id string) {
	m.fixture = &id
}

// ClearFixture clears the "fixture" edge to the Fixture entity.
func (m *ContractMutation) ClearFixture() {
	m.clearedfixture = true
}

// FixtureCleared reports if the "fixture" edge to the Fixture entity was cleared.
func (m *ContractMutation) FixtureCleared() bool {
	return m.clearedfixture
}

// FixtureID returns the "fixture" edge ID in the mutation.
func (m *ContractMutation) FixtureID() (id string, exists bool) {
	if m.fixture != nil {
		return *m.fixture, true
	}
	return
}

// FixtureIDs returns the "fixture" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FixtureID instead. It exists only for internal usage by the builders.
func (m *ContractMutation) FixtureIDs() (ids []string) {
	if id := m.fixture; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFixture resets all changes to the "fixture" edge.
func (m *ContractMutation) ResetFixture() {
	m.fixture = nil
	m.clearedfixture = false
}

// Where appends a list predicates to the ContractMutation builder.
func (m *ContractMutation) Where(ps ...predicate.Contract) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContractMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContractMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Contract, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContractMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContractMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Contract).
func (m *ContractMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContractMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.created_at != nil {
		fields = append(fields, contract.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, contract.FieldUpdatedAt)
	}
	if m.cp_number != nil {
		fields = append(fields, contract.FieldCpNumber)
	}
	if m.order_id != nil {
		fields = append(fields, contract.FieldOrderID)
	}
	if m.negotiation_id != nil {
		fields = append(fields, contract.FieldNegotiationID)
	}
	if m.parent_contract_id != nil {
		fields = append(fields, contract.FieldParentContractID)
	}
	if m.contract_type != nil {
		fields = append(fields, contract.FieldContractType)
	}
	if m.delivery_type != nil {
		fields = append(fields, contract.FieldDeliveryType)
	}
	if m.vessel_id != nil {
		fields = append(fields, contract.FieldVesselID)
	}
	if m.company_id != nil {
		fields = append(fields, contract.FieldCompanyID)
	}
	if m.load_port_id != nil {
		fields = append(fields, contract.FieldLoadPortID)
	}
	if m.discharge_port_id != nil {
		fields = append(fields, contract.FieldDischargePortID)
	}
	if m.cargo_type_id != nil {
		fields = append(fields, contract.FieldCargoTypeID)
	}
	if m.freight_rate != nil {
		fields = append(fields, contract.FieldFreightRate)
	}
	if m.laycan_start != nil {
		fields = append(fields, contract.FieldLaycanStart)
	}
	if m.laycan_end != nil {
		fields = append(fields, contract.FieldLaycanEnd)
	}
	if m.quantity != nil {
		fields = append(fields, contract.FieldQuantity)
	}
	if m.demurrage_rate != nil {
		fields = append(fields, contract.FieldDemurrageRate)
	}
	if m.status != nil {
		fields = append(fields, contract.FieldStatus)
	}
	if m.created_by != nil {
		fields = append(fields, contract.FieldCreatedBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContractMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contract.FieldCreatedAt:
		return m.CreatedAt()
	case contract.FieldUpdatedAt:
		return m.UpdatedAt()
	case contract.FieldCpNumber:
		return m.CpNumber()
	case contract.FieldOrderID:
		return m.OrderID()
	case contract.FieldNegotiationID:
		return m.NegotiationID()
	case contract.FieldParentContractID:
		return m.ParentContractID()
	case contract.FieldContractType:
		return m.ContractType()
	case contract.FieldDeliveryType:
		return m.DeliveryType()
	case contract.FieldVesselID:
		return m.VesselID()
	case contract.FieldCompanyID:
		return m.CompanyID()
	case contract.FieldLoadPortID:
		return m.LoadPortID()
	case contract.FieldDischargePortID:
		return m.DischargePortID()
	case contract.FieldCargoTypeID:
		return m.CargoTypeID()
	case contract.FieldFreightRate:
		return m.FreightRate()
	case contract.FieldLaycanStart:
		return m.LaycanStart()
	case contract.FieldLaycanEnd:
		return m.LaycanEnd()
	case contract.FieldQuantity:
		return m.Quantity()
	case contract.FieldDemurrageRate:
		return m.DemurrageRate()
	case contract.FieldStatus:
		return m.Status()
	case contract.FieldCreatedBy:
		return m.CreatedBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContractMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contract.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case contract.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case contract.FieldCpNumber:
		return m.OldCpNumber(ctx)
	case contract.FieldOrderID:
		return m.OldOrderID(ctx)
	case contract.FieldNegotiationID:
		return m.OldNegotiationID(ctx)
	case contract.FieldParentContractID:
		return m.OldParentContractID(ctx)
	case contract.FieldContractType:
		return m.OldContractType(ctx)
	case contract.FieldDeliveryType:
		return m.OldDeliveryType(ctx)
	case contract.FieldVesselID:
		return m.OldVesselID(ctx)
	case contract.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case contract.FieldLoadPortID:
		return m.OldLoadPortID(ctx)
	case contract.FieldDischargePortID:
		return m.OldDischargePortID(ctx)
	case contract.FieldCargoTypeID:
		return m.OldCargoTypeID(ctx)
	case contract.FieldFreightRate:
		return m.OldFreightRate(ctx)
	case contract.FieldLaycanStart:
		return m.OldLaycanStart(ctx)
	case contract.FieldLaycanEnd:
		return m.OldLaycanEnd(ctx)
	case contract.FieldQuantity:
		return m.OldQuantity(ctx)
	case contract.FieldDemurrageRate:
		return m.OldDemurrageRate(ctx)
	case contract.FieldStatus:
		return m.OldStatus(ctx)
	case contract.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	}
	return nil, fmt.Errorf("unknown Contract field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContractMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contract.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case contract.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case contract.FieldCpNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCpNumber(v)
		return nil
	case contract.FieldOrderID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderID(v)
		return nil
	case contract.FieldNegotiationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNegotiationID(v)
		return nil
	case contract.FieldParentContractID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentContractID(v)
		return nil
	case contract.FieldContractType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractType(v)
		return nil
	case contract.FieldDeliveryType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveryType(v)
		return nil
	case contract.FieldVesselID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVesselID(v)
		return nil
	case contract.FieldCompanyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case contract.FieldLoadPortID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoadPortID(v)
		return nil
	case contract.FieldDischargePortID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDischargePortID(v)
		return nil
	case contract.FieldCargoTypeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCargoTypeID(v)
		return nil
	case contract.FieldFreightRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFreightRate(v)
		return nil
	case contract.FieldLaycanStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLaycanStart(v)
		return nil
	case contract.FieldLaycanEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLaycanEnd(v)
		return nil
	case contract.FieldQuantity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case contract.FieldDemurrageRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDemurrageRate(v)
		return nil
	case contract.FieldStatus:
		v, ok := value.(contract.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case contract.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	}
	return fmt.Errorf("unknown Contract field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContractMutation) AddedFields() []string {
	var fields []string
	if m.addfreight_rate != nil {
		fields = append(fields, contract.FieldFreightRate)
	}
	if m.addquantity != nil {
		fields = append(fields, contract.FieldQuantity)
	}
	if m.adddemurrage_rate != nil {
		fields = append(fields, contract.FieldDemurrageRate)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContractMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case contract.FieldFreightRate:
		return m.AddedFreightRate()
	case contract.FieldQuantity:
		return m.AddedQuantity()
	case contract.FieldDemurrageRate:
		return m.AddedDemurrageRate()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContractMutation) AddField(name string, value ent.Value) error {
	switch name {
	case contract.FieldFreightRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFreightRate(v)
		return nil
	case contract.FieldQuantity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	case contract.FieldDemurrageRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDemurrageRate(v)
		return nil
	}
	return fmt.Errorf("unknown Contract numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContractMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contract.FieldOrderID) {
		fields = append(fields, contract.FieldOrderID)
	}
	if m.FieldCleared(contract.FieldNegotiationID) {
		fields = append(fields, contract.FieldNegotiationID)
	}
	if m.FieldCleared(contract.FieldParentContractID) {
		fields = append(fields, contract.FieldParentContractID)
	}
	if m.FieldCleared(contract.FieldContractType) {
		fields = append(fields, contract.FieldContractType)
	}
	if m.FieldCleared(contract.FieldDeliveryType) {
		fields = append(fields, contract.FieldDeliveryType)
	}
	if m.FieldCleared(contract.FieldVesselID) {
		fields = append(fields, contract.FieldVesselID)
	}
	if m.FieldCleared(contract.FieldCompanyID) {
		fields = append(fields, contract.FieldCompanyID)
	}
	if m.FieldCleared(contract.FieldLoadPortID) {
		fields = append(fields, contract.FieldLoadPortID)
	}
	if m.FieldCleared(contract.FieldDischargePortID) {
		fields = append(fields, contract.FieldDischargePortID)
	}
	if m.FieldCleared(contract.FieldCargoTypeID) {
		fields = append(fields, contract.FieldCargoTypeID)
	}
	if m.FieldCleared(contract.FieldFreightRate) {
		fields = append(fields, contract.FieldFreightRate)
	}
	if m.FieldCleared(contract.FieldLaycanStart) {
		fields = append(fields, contract.FieldLaycanStart)
	}
	if m.FieldCleared(contract.FieldLaycanEnd) {
		fields = append(fields, contract.FieldLaycanEnd)
	}
	if m.FieldCleared(contract.FieldQuantity) {
		fields = append(fields, contract.FieldQuantity)
	}
	if m.FieldCleared(contract.FieldDemurrageRate) {
		fields = append(fields, contract.FieldDemurrageRate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContractMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContractMutation) ClearField(name string) error {
	switch name {
	case contract.FieldOrderID:
		m.ClearOrderID()
		return nil
	case contract.FieldNegotiationID:
		m.ClearNegotiationID()
		return nil
	case contract.FieldParentContractID:
		m.ClearParentContractID()
		return nil
	case contract.FieldContractType:
		m.ClearContractType()
		return nil
	case contract.FieldDeliveryType:
		m.ClearDeliveryType()
		return nil
	case contract.FieldVesselID:
		m.ClearVesselID()
		return nil
	case contract.FieldCompanyID:
		m.ClearCompanyID()
		return nil
	case contract.FieldLoadPortID:
		m.ClearLoadPortID()
		return nil
	case contract.FieldDischargePortID:
		m.ClearDischargePortID()
		return nil
	case contract.FieldCargoTypeID:
		m.ClearCargoTypeID()
		return nil
	case contract.FieldFreightRate:
		m.ClearFreightRate()
		return nil
	case contract.FieldLaycanStart:
		m.ClearLaycanStart()
		return nil
	case contract.FieldLaycanEnd:
		m.ClearLaycanEnd()
		return nil
	case contract.FieldQuantity:
		m.ClearQuantity()
		return nil
	case contract.FieldDemurrageRate:
		m.ClearDemurrageRate()
		return nil
	}
	return fmt.Errorf("unknown Contract nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContractMutation) ResetField(name string) error {
	switch name {
	case contract.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case contract.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case contract.FieldCpNumber:
		m.ResetCpNumber()
		return nil
	case contract.FieldOrderID:
		m.ResetOrderID()
		return nil
	case contract.FieldNegotiationID:
		m.ResetNegotiationID()
		return nil
	case contract.FieldParentContractID:
		m.ResetParentContractID()
		return nil
	case contract.FieldContractType:
		m.ResetContractType()
		return nil
	case contract.FieldDeliveryType:
		m.ResetDeliveryType()
		return nil
	case contract.FieldVesselID:
		m.ResetVesselID()
		return nil
	case contract.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case contract.FieldLoadPortID:
		m.ResetLoadPortID()
		return nil
	case contract.FieldDischargePortID:
		m.ResetDischargePortID()
		return nil
	case contract.FieldCargoTypeID:
		m.ResetCargoTypeID()
		return nil
	case contract.FieldFreightRate:
		m.ResetFreightRate()
		return nil
	case contract.FieldLaycanStart:
		m.ResetLaycanStart()
		return nil
	case contract.FieldLaycanEnd:
		m.ResetLaycanEnd()
		return nil
	case contract.FieldQuantity:
		m.ResetQuantity()
		return nil
	case contract.FieldDemurrageRate:
		m.ResetDemurrageRate()
		return nil
	case contract.FieldStatus:
		m.ResetStatus()
		return nil
	case contract.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown Contract field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContractMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.fixture != nil {
		edges = append(edges, contract.EdgeFixture)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContractMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case contract.EdgeFixture:
		if id := m.fixture; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContractMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContractMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContractMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedfixture {
		edges = append(edges, contract.EdgeFixture)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContractMutation) EdgeCleared(name string) bool {
	switch name {
	case contract.EdgeFixture:
		return m.clearedfixture
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContractMutation) ClearEdge(name string) error {
	switch name {
	case contract.EdgeFixture:
		m.ClearFixture()
		return nil
	}
	return fmt.Errorf("unknown Contract unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContractMutation) ResetEdge(name string) error {
	switch name {
	case contract.EdgeFixture:
		m.ResetFixture()
		return nil
	}
	return fmt.Errorf("unknown Contract edge %s", name)
}

// FieldChangeMutation represents an operation that mutates the FieldChange nodes in the graph.
type FieldChangeMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	entity_type   *string
	entity_id     *string
	field_name    *string
	old_value     *string
	new_value     *string
	user_id       *string
	reason        *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*FieldChange, error)
	predicates    []predicate.FieldChange
}

var _ ent.Mutation = (*FieldChangeMutation)(nil)

// fieldchangeOption allows management of the mutation configuration using functional options.
type fieldchangeOption func(*FieldChangeMutation)

// newFieldChangeMutation creates new mutation for the FieldChange entity.
func newFieldChangeMutation(c config, op Op, opts ...fieldchangeOption) *FieldChangeMutation {
	m := &FieldChangeMutation{
		config:        c,
		op:            op,
		typ:           TypeFieldChange,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFieldChangeID sets the ID field of the mutation.
func withFieldChangeID(id string) fieldchangeOption {
	return func(m *FieldChangeMutation) {
		var (
			err   error
			once  sync.Once
			value *FieldChange
		)
		m.oldValue = func(ctx context.Context) (*FieldChange, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FieldChange.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFieldChange sets the old FieldChange of the mutation.
func withFieldChange(node *FieldChange) fieldchangeOption {
	return func(m *FieldChangeMutation) {
		m.oldValue = func(context.Context) (*FieldChange, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FieldChangeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FieldChangeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FieldChange entities.
func (m *FieldChangeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FieldChangeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FieldChangeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FieldChange.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *FieldChangeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FieldChangeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FieldChange entity.
// If the FieldChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldChangeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FieldChangeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetEntityType sets the "entity_type" field.
func (m *FieldChangeMutation) SetEntityType(s string) {
	m.entity_type = &s
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *FieldChangeMutation) EntityType() (r string, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the FieldChange entity.
// If the FieldChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldChangeMutation) OldEntityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *FieldChangeMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetEntityID sets the "entity_id" field.
func (m *FieldChangeMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *FieldChangeMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the FieldChange entity.
// If the FieldChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldChangeMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *FieldChangeMutation) ResetEntityID() {
	m.entity_id = nil
}

// SetFieldName sets the "field_name" field.
func (m *FieldChangeMutation) SetFieldName(s string) {
	m.field_name = &s
}

// FieldName returns the value of the "field_name" field in the mutation.
func (m *FieldChangeMutation) FieldName() (r string, exists bool) {
	v := m.field_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldName returns the old "field_name" field's value of the FieldChange entity.
// If the FieldChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldChangeMutation) OldFieldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldName: %w", err)
	}
	return oldValue.FieldName, nil
}

// ResetFieldName resets all changes to the "field_name" field.
func (m *FieldChangeMutation) ResetFieldName() {
	m.field_name = nil
}

// SetOldValue sets the "old_value" field.
func (m *FieldChangeMutation) SetOldValue(s string) {
	m.old_value = &s
}

// OldValue returns the value of the "old_value" field in the mutation.
func (m *FieldChangeMutation) OldValue() (r string, exists bool) {
	v := m.old_value
	if v == nil {
		return
	}
	return *v, true
}

// OldOldValue returns the old "old_value" field's value of the FieldChange entity.
// If the FieldChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldChangeMutation) OldOldValue(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOldValue: %w", err)
	}
	return oldValue.OldValue, nil
}

// ClearOldValue clears the value of the "old_value" field.
func (m *FieldChangeMutation) ClearOldValue() {
	m.old_value = nil
	m.clearedFields[fieldchange.FieldOldValue] = struct{}{}
}

// OldValueCleared returns if the "old_value" field was cleared in this mutation.
func (m *FieldChangeMutation) OldValueCleared() bool {
	_, ok := m.clearedFields[fieldchange.FieldOldValue]
	return ok
}

// ResetOldValue resets all changes to the "old_value" field.
func (m *FieldChangeMutation) ResetOldValue() {
	m.old_value = nil
	delete(m.clearedFields, fieldchange.FieldOldValue)
}

// SetNewValue sets the "new_value" field.
func (m *FieldChangeMutation) SetNewValue(s string) {
	m.new_value = &s
}

// NewValue returns the value of the "new_value" field in the mutation.
func (m *FieldChangeMutation) NewValue() (r string, exists bool) {
	v := m.new_value
	if v == nil {
		return
	}
	return *v, true
}

// OldNewValue returns the old "new_value" field's value of the FieldChange entity.
// If the FieldChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldChangeMutation) OldNewValue(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewValue: %w", err)
	}
	return oldValue.NewValue, nil
}

// ClearNewValue clears the value of the "new_value" field.
func (m *FieldChangeMutation) ClearNewValue() {
	m.new_value = nil
	m.clearedFields[fieldchange.FieldNewValue] = struct{}{}
}

// NewValueCleared returns if the "new_value" field was cleared in this mutation.
func (m *FieldChangeMutation) NewValueCleared() bool {
	_, ok := m.clearedFields[fieldchange.FieldNewValue]
	return ok
}

// ResetNewValue resets all changes to the "new_value" field.
func (m *FieldChangeMutation) ResetNewValue() {
	m.new_value = nil
	delete(m.clearedFields, fieldchange.FieldNewValue)
}

// SetUserID sets the "user_id" field.
func (m *FieldChangeMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *FieldChangeMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the FieldChange entity.
// If the FieldChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldChangeMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *FieldChangeMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[fieldchange.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *FieldChangeMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[fieldchange.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *FieldChangeMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, fieldchange.FieldUserID)
}

// SetReason sets the "reason" field.
func (m *FieldChangeMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *FieldChangeMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the FieldChange entity.
// If the FieldChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldChangeMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *FieldChangeMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[fieldchange.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *FieldChangeMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[fieldchange.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *FieldChangeMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, fieldchange.FieldReason)
}

// Where appends a list predicates to the FieldChangeMutation builder.
func (m *FieldChangeMutation) Where(ps ...predicate.FieldChange) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FieldChangeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FieldChangeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FieldChange, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FieldChangeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FieldChangeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FieldChange).
func (m *FieldChangeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FieldChangeMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, fieldchange.FieldCreatedAt)
	}
	if m.entity_type != nil {
		fields = append(fields, fieldchange.FieldEntityType)
	}
	if m.entity_id != nil {
		fields = append(fields, fieldchange.FieldEntityID)
	}
	if m.field_name != nil {
		fields = append(fields, fieldchange.FieldFieldName)
	}
	if m.old_value != nil {
		fields = append(fields, fieldchange.FieldOldValue)
	}
	if m.new_value != nil {
		fields = append(fields, fieldchange.FieldNewValue)
	}
	if m.user_id != nil {
		fields = append(fields, fieldchange.FieldUserID)
	}
	if m.reason != nil {
		fields = append(fields, fieldchange.FieldReason)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FieldChangeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case fieldchange.FieldCreatedAt:
		return m.CreatedAt()
	case fieldchange.FieldEntityType:
		return m.EntityType()
	case fieldchange.FieldEntityID:
		return m.EntityID()
	case fieldchange.FieldFieldName:
		return m.FieldName()
	case fieldchange.FieldOldValue:
		return m.OldValue()
	case fieldchange.FieldNewValue:
		return m.NewValue()
	case fieldchange.FieldUserID:
		return m.UserID()
	case fieldchange.FieldReason:
		return m.Reason()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FieldChangeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case fieldchange.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case fieldchange.FieldEntityType:
		return m.OldEntityType(ctx)
	case fieldchange.FieldEntityID:
		return m.OldEntityID(ctx)
	case fieldchange.FieldFieldName:
		return m.OldFieldName(ctx)
	case fieldchange.FieldOldValue:
		return m.OldOldValue(ctx)
	case fieldchange.FieldNewValue:
		return m.OldNewValue(ctx)
	case fieldchange.FieldUserID:
		return m.OldUserID(ctx)
	case fieldchange.FieldReason:
		return m.OldReason(ctx)
	}
	return nil, fmt.Errorf("unknown FieldChange field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FieldChangeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case fieldchange.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case fieldchange.FieldEntityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case fieldchange.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case fieldchange.FieldFieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldName(v)
		return nil
	case fieldchange.FieldOldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOldValue(v)
		return nil
	case fieldchange.FieldNewValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewValue(v)
		return nil
	case fieldchange.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case fieldchange.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	}
	return fmt.Errorf("unknown FieldChange field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FieldChangeMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FieldChangeMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FieldChangeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FieldChange numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FieldChangeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(fieldchange.FieldOldValue) {
		fields = append(fields, fieldchange.FieldOldValue)
	}
	if m.FieldCleared(fieldchange.FieldNewValue) {
		fields = append(fields, fieldchange.FieldNewValue)
	}
	if m.FieldCleared(fieldchange.FieldUserID) {
		fields = append(fields, fieldchange.FieldUserID)
	}
	if m.FieldCleared(fieldchange.FieldReason) {
		fields = append(fields, fieldchange.FieldReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FieldChangeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FieldChangeMutation) ClearField(name string) error {
	switch name {
	case fieldchange.FieldOldValue:
		m.ClearOldValue()
		return nil
	case fieldchange.FieldNewValue:
		m.ClearNewValue()
		return nil
	case fieldchange.FieldUserID:
		m.ClearUserID()
		return nil
	case fieldchange.FieldReason:
		m.ClearReason()
		return nil
	}
	return fmt.Errorf("unknown FieldChange nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FieldChangeMutation) ResetField(name string) error {
	switch name {
	case fieldchange.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case fieldchange.FieldEntityType:
		m.ResetEntityType()
		return nil
	case fieldchange.FieldEntityID:
		m.ResetEntityID()
		return nil
	case fieldchange.FieldFieldName:
		m.ResetFieldName()
		return nil
	case fieldchange.FieldOldValue:
		m.ResetOldValue()
		return nil
	case fieldchange.FieldNewValue:
		m.ResetNewValue()
		return nil
	case fieldchange.FieldUserID:
		m.ResetUserID()
		return nil
	case fieldchange.FieldReason:
		m.ResetReason()
		return nil
	}
	return fmt.Errorf("unknown FieldChange field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FieldChangeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FieldChangeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FieldChangeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FieldChangeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FieldChangeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FieldChangeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FieldChangeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FieldChange unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FieldChangeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FieldChange edge %s", name)
}

// FixtureMutation represents an operation that mutates the Fixture nodes in the graph.
type FixtureMutation struct {
	config
	op               Op
	typ              string
	id               *string
	created_at       *time.Time
	updated_at       *time.Time
	fixture_number   *string
	status           *fixture.Status
	last_updated     *time.Time
	search_text      *string
	clearedFields    map[string]struct{}
	_order           *string
	cleared_order    bool
	contracts        map[string]struct{}
	removedcontracts map[string]struct{}
	clearedcontracts bool
	recaps           map[string]struct{}
	removedrecaps    map[string]struct{}
	clearedrecaps    bool
	done             bool
	oldValue         func(context.Context) (*Fixture, error)
	predicates       []predicate.Fixture
}

var _ ent.Mutation = (*FixtureMutation)(nil)

// fixtureOption allows management of the mutation configuration using functional options.
type fixtureOption func(*FixtureMutation)

// newFixtureMutation creates new mutation for the Fixture entity.
func newFixtureMutation(c config, op Op, opts ...fixtureOption) *FixtureMutation {
	m := &FixtureMutation{
		config:        c,
		op:            op,
		typ:           TypeFixture,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFixtureID sets the ID field of the mutation.
func withFixtureID(id string) fixtureOption {
	return func(m *FixtureMutation) {
		var (
			err   error
			once  sync.Once
			value *Fixture
		)
		m.oldValue = func(ctx context.Context) (*Fixture, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Fixture.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFixture sets the old Fixture of the mutation.
func withFixture(node *Fixture) fixtureOption {
	return func(m *FixtureMutation) {
		m.oldValue = func(context.Context) (*Fixture, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FixtureMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FixtureMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Fixture entities.
func (m *FixtureMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FixtureMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FixtureMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Fixture.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *FixtureMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FixtureMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Fixture entity.
// If the Fixture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FixtureMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FixtureMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FixtureMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FixtureMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Fixture entity.
// If the Fixture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FixtureMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FixtureMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetFixtureNumber sets the "fixture_number" field.
func (m *FixtureMutation) SetFixtureNumber(s string) {
	m.fixture_number = &s
}

// FixtureNumber returns the value of the "fixture_number" field in the mutation.
func (m *FixtureMutation) FixtureNumber() (r string, exists bool) {
	v := m.fixture_number
	if v == nil {
		return
	}
	return *v, true
}

// OldFixtureNumber returns the old "fixture_number" field's value of the Fixture entity.
// If the Fixture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FixtureMutation) OldFixtureNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFixtureNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFixtureNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFixtureNumber: %w", err)
	}
	return oldValue.FixtureNumber, nil
}

// ResetFixtureNumber resets all changes to the "fixture_number" field.
func (m *FixtureMutation) ResetFixtureNumber() {
	m.fixture_number = nil
}

// SetStatus sets the "status" field.
func (m *FixtureMutation) SetStatus(f fixture.Status) {
	m.status = &f
}

// Status returns the value of the "status" field in the mutation.
func (m *FixtureMutation) Status() (r fixture.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Fixture entity.
// If the Fixture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FixtureMutation) OldStatus(ctx context.Context) (v fixture.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *FixtureMutation) ResetStatus() {
	m.status = nil
}

// SetLastUpdated sets the "last_updated" field.
func (m *FixtureMutation) SetLastUpdated(t time.Time) {
	m.last_updated = &t
}

// LastUpdated returns the value of the "last_updated" field in the mutation.
func (m *FixtureMutation) LastUpdated() (r time.Time, exists bool) {
	v := m.last_updated
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUpdated returns the old "last_updated" field's value of the Fixture entity.
// If the Fixture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FixtureMutation) OldLastUpdated(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUpdated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUpdated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUpdated: %w", err)
	}
	return oldValue.LastUpdated, nil
}

// ClearLastUpdated clears the value of the "last_updated" field.
func (m *FixtureMutation) ClearLastUpdated() {
	m.last_updated = nil
	m.clearedFields[fixture.FieldLastUpdated] = struct{}{}
}

// LastUpdatedCleared returns if the "last_updated" field was cleared in this mutation.
func (m *FixtureMutation) LastUpdatedCleared() bool {
	_, ok := m.clearedFields[fixture.FieldLastUpdated]
	return ok
}

// ResetLastUpdated resets all changes to the "last_updated" field.
func (m *FixtureMutation) ResetLastUpdated() {
	m.last_updated = nil
	delete(m.clearedFields, fixture.FieldLastUpdated)
}

// SetSearchText sets the "search_text" field.
func (m *FixtureMutation) SetSearchText(s string) {
	m.search_text = &s
}

// SearchText returns the value of the "search_text" field in the mutation.
func (m *FixtureMutation) SearchText() (r string, exists bool) {
	v := m.search_text
	if v == nil {
		return
	}
	return *v, true
}

// OldSearchText returns the old "search_text" field's value of the Fixture entity.
// If the Fixture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FixtureMutation) OldSearchText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSearchText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSearchText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSearchText: %w", err)
	}
	return oldValue.SearchText, nil
}

// ClearSearchText clears the value of the "search_text" field.
func (m *FixtureMutation) ClearSearchText() {
	m.search_text = nil
	m.clearedFields[fixture.FieldSearchText] = struct{}{}
}

// SearchTextCleared returns if the "search_text" field was cleared in this mutation.
func (m *FixtureMutation) SearchTextCleared() bool {
	_, ok := m.clearedFields[fixture.FieldSearchText]
	return ok
}

// ResetSearchText resets all changes to the "search_text" field.
func (m *FixtureMutation) ResetSearchText() {
	m.search_text = nil
	delete(m.clearedFields, fixture.FieldSearchText)
}

// SetOrderID sets the "order" edge to the Order entity by id.
func (m *FixtureMutation) SetOrderID(id string) {
	m._order = &id
}

// ClearOrder clears the "order" edge to the Order entity.
func (m *FixtureMutation) ClearOrder() {
	m.cleared_order = true
}

// OrderCleared reports if the "order" edge to the Order entity was cleared.
func (m *FixtureMutation) OrderCleared() bool {
	return m.cleared_order
}

// OrderID returns the "order" edge ID in the mutation.
func (m *FixtureMutation) OrderID() (id string, exists bool) {
	if m._order != nil {
		return *m._order, true
	}
	return
}

// OrderIDs returns the "order" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OrderID instead. It exists only for internal usage by the builders.
func (m *FixtureMutation) OrderIDs() (ids []string) {
	if id := m._order; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOrder resets all changes to the "order" edge.
func (m *FixtureMutation) ResetOrder() {
	m._order = nil
	m.cleared_order = false
}

// AddContractIDs adds the "contracts" edge to the Contract entity by ids.
func (m *FixtureMutation) AddContractIDs(ids ...string) {
	if m.contracts == nil {
		m.contracts = make(map[string]struct{})
	}
	for i := range ids {
		m.contracts[ids[i]] = struct{}{}
	}
}

// ClearContracts clears the "contracts" edge to the Contract entity.
func (m *FixtureMutation) ClearContracts() {
	m.clearedcontracts = true
}

// ContractsCleared reports if the "contracts" edge to the Contract entity was cleared.
func (m *FixtureMutation) ContractsCleared() bool {
	return m.clearedcontracts
}

// RemoveContractIDs removes the "contracts" edge to the Contract entity by IDs.
func (m *FixtureMutation) RemoveContractIDs(ids ...string) {
	if m.removedcontracts == nil {
		m.removedcontracts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.contracts, ids[i])
		m.removedcontracts[ids[i]] = struct{}{}
	}
}

// RemovedContracts returns the removed IDs of the "contracts" edge to the Contract entity.
func (m *FixtureMutation) RemovedContractsIDs() (ids []string) {
	for id := range m.removedcontracts {
		ids = append(ids, id)
	}
	return
}

// ContractsIDs returns the "contracts" edge IDs in the mutation.
func (m *FixtureMutation) ContractsIDs() (ids []string) {
	for id := range m.contracts {
		ids = append(ids, id)
	}
	return
}

// ResetContracts resets all changes to the "contracts" edge.
func (m *FixtureMutation) ResetContracts() {
	m.contracts = nil
	m.clearedcontracts = false
	m.removedcontracts = nil
}

// AddRecapIDs adds the "recaps" edge to the RecapManager entity by ids.
func (m *FixtureMutation) AddRecapIDs(ids ...string) {
	if m.recaps == nil {
		m.recaps = make(map[string]struct{})
	}
	for i := range ids {
		m.recaps[ids[i]] = struct{}{}
	}
}

// ClearRecaps clears the "recaps" edge to the RecapManager entity.
func (m *FixtureMutation) ClearRecaps() {
	m.clearedrecaps = true
}

// RecapsCleared reports if the "recaps" edge to the RecapManager entity was cleared.
func (m *FixtureMutation) RecapsCleared() bool {
	return m.clearedrecaps
}

// RemoveRecapIDs removes the "recaps" edge to the RecapManager entity by IDs.
func (m *FixtureMutation) RemoveRecapIDs(ids ...string) {
	if m.removedrecaps == nil {
		m.removedrecaps = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.recaps, ids[i])
		m.removedrecaps[ids[i]] = struct{}{}
	}
}

// RemovedRecaps returns the removed IDs of the "recaps" edge to the RecapManager entity.
func (m *FixtureMutation) RemovedRecapsIDs() (ids []string) {
	for id := range m.removedrecaps {
		ids = append(ids, id)
	}
	return
}

// RecapsIDs returns the "recaps" edge IDs in the mutation.
func (m *FixtureMutation) RecapsIDs() (ids []string) {
	for id := range m.recaps {
		ids = append(ids, id)
	}
	return
}

// ResetRecaps resets all changes to the "recaps" edge.
func (m *FixtureMutation) ResetRecaps() {
	m.recaps = nil
	m.clearedrecaps = false
	m.removedrecaps = nil
}

// Where appends a list predicates to the FixtureMutation builder.
func (m *FixtureMutation) Where(ps ...predicate.Fixture) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FixtureMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FixtureMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Fixture, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FixtureMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FixtureMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Fixture).
func (m *FixtureMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FixtureMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, fixture.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, fixture.FieldUpdatedAt)
	}
	if m.fixture_number != nil {
		fields = append(fields, fixture.FieldFixtureNumber)
	}
	if m.status != nil {
		fields = append(fields, fixture.FieldStatus)
	}
	if m.last_updated != nil {
		fields = append(fields, fixture.FieldLastUpdated)
	}
	if m.search_text != nil {
		fields = append(fields, fixture.FieldSearchText)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FixtureMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case fixture.FieldCreatedAt:
		return m.CreatedAt()
	case fixture.FieldUpdatedAt:
		return m.UpdatedAt()
	case fixture.FieldFixtureNumber:
		return m.FixtureNumber()
	case fixture.FieldStatus:
		return m.Status()
	case fixture.FieldLastUpdated:
		return m.LastUpdated()
	case fixture.FieldSearchText:
		return m.SearchText()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FixtureMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case fixture.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case fixture.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case fixture.FieldFixtureNumber:
		return m.OldFixtureNumber(ctx)
	case fixture.FieldStatus:
		return m.OldStatus(ctx)
	case fixture.FieldLastUpdated:
		return m.OldLastUpdated(ctx)
	case fixture.FieldSearchText:
		return m.OldSearchText(ctx)
	}
	return nil, fmt.Errorf("unknown Fixture field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FixtureMutation) SetField(name string, value ent.Value) error {
	switch name {
	case fixture.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case fixture.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case fixture.FieldFixtureNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFixtureNumber(v)
		return nil
	case fixture.FieldStatus:
		v, ok := value.(fixture.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case fixture.FieldLastUpdated:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUpdated(v)
		return nil
	case fixture.FieldSearchText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSearchText(v)
		return nil
	}
	return fmt.Errorf("unknown Fixture field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FixtureMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FixtureMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FixtureMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Fixture numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FixtureMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(fixture.FieldLastUpdated) {
		fields = append(fields, fixture.FieldLastUpdated)
	}
	if m.FieldCleared(fixture.FieldSearchText) {
		fields = append(fields, fixture.FieldSearchText)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FixtureMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FixtureMutation) ClearField(name string) error {
	switch name {
	case fixture.FieldLastUpdated:
		m.ClearLastUpdated()
		return nil
	case fixture.FieldSearchText:
		m.ClearSearchText()
		return nil
	}
	return fmt.Errorf("unknown Fixture nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FixtureMutation) ResetField(name string) error {
	switch name {
	case fixture.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case fixture.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case fixture.FieldFixtureNumber:
		m.ResetFixtureNumber()
		return nil
	case fixture.FieldStatus:
		m.ResetStatus()
		return nil
	case fixture.FieldLastUpdated:
		m.ResetLastUpdated()
		return nil
	case fixture.FieldSearchText:
		m.ResetSearchText()
		return nil
	}
	return fmt.Errorf("unknown Fixture field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FixtureMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m._order != nil {
		edges = append(edges, fixture.EdgeOrder)
	}
	if m.contracts != nil {
		edges = append(edges, fixture.EdgeContracts)
	}
	if m.recaps != nil {
		edges = append(edges, fixture.EdgeRecaps)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FixtureMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case fixture.EdgeOrder:
		if id := m._order; id != nil {
			return []ent.Value{*id}
		}
	case fixture.EdgeContracts:
		ids := make([]ent.Value, 0, len(m.contracts))
		for id := range m.contracts {
			ids = append(ids, id)
		}
		return ids
	case fixture.EdgeRecaps:
		ids := make([]ent.Value, 0, len(m.recaps))
		for id := range m.recaps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FixtureMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedcontracts != nil {
		edges = append(edges, fixture.EdgeContracts)
	}
	if m.removedrecaps != nil {
		edges = append(edges, fixture.EdgeRecaps)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FixtureMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case fixture.EdgeContracts:
		ids := make([]ent.Value, 0, len(m.removedcontracts))
		for id := range m.removedcontracts {
			ids = append(ids, id)
		}
		return ids
	case fixture.EdgeRecaps:
		ids := make([]ent.Value, 0, len(m.removedrecaps))
		for id := range m.removedrecaps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FixtureMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.cleared_order {
		edges = append(edges, fixture.EdgeOrder)
	}
	if m.clearedcontracts {
		edges = append(edges, fixture.EdgeContracts)
	}
	if m.clearedrecaps {
		edges = append(edges, fixture.EdgeRecaps)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FixtureMutation) EdgeCleared(name string) bool {
	switch name {
	case fixture.EdgeOrder:
		return m.cleared_order
	case fixture.EdgeContracts:
		return m.clearedcontracts
	case fixture.EdgeRecaps:
		return m.clearedrecaps
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FixtureMutation) ClearEdge(name string) error {
	switch name {
	case fixture.EdgeOrder:
		m.ClearOrder()
		return nil
	}
	return fmt.Errorf("unknown Fixture unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FixtureMutation) ResetEdge(name string) error {
	switch name {
	case fixture.EdgeOrder:
		m.ResetOrder()
		return nil
	case fixture.EdgeContracts:
		m.ResetContracts()
		return nil
	case fixture.EdgeRecaps:
		m.ResetRecaps()
		return nil
	}
	return fmt.Errorf("unknown Fixture edge %s", name)
}

// InvitationMutation represents an operation that mutates the Invitation nodes in the graph.
type InvitationMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	created_at          *time.Time
	updated_at          *time.Time
	email               *string
	role                *invitation.Role
	status              *invitation.Status
	token               *string
	expires_at          *time.Time
	invited_by          *string
	accepted_at         *time.Time
	clearedFields       map[string]struct{}
	organization        *string
	clearedorganization bool
	done                bool
	oldValue            func(context.Context) (*Invitation, error)
	predicates          []predicate.Invitation
}

var _ ent.Mutation = (*InvitationMutation)(nil)

// invitationOption allows management of the mutation configuration using functional options.
type invitationOption func(*InvitationMutation)

// newInvitationMutation creates new mutation for the Invitation entity.
func newInvitationMutation(c config, op Op, opts ...invitationOption) *InvitationMutation {
	m := &InvitationMutation{
		config:        c,
		op:            op,
		typ:           TypeInvitation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInvitationID sets the ID field of the mutation.
func withInvitationID(id string) invitationOption {
	return func(m *InvitationMutation) {
		var (
			err   error
			once  sync.Once
			value *Invitation
		)
		m.oldValue = func(ctx context.Context) (*Invitation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Invitation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInvitation sets the old Invitation of the mutation.
func withInvitation(node *Invitation) invitationOption {
	return func(m *InvitationMutation) {
		m.oldValue = func(context.Context) (*Invitation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InvitationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InvitationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Invitation entities.
func (m *InvitationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InvitationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InvitationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Invitation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *InvitationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InvitationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Invitation entity.
// If the Invitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvitationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InvitationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InvitationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InvitationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Invitation entity.
// If the Invitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvitationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InvitationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetEmail sets the "email" field.
func (m *InvitationMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *InvitationMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Invitation entity.
// If the Invitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvitationMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *InvitationMutation) ResetEmail() {
	m.email = nil
}

// SetRole sets the "role" field.
func (m *InvitationMutation) SetRole(i invitation.Role) {
	m.role = &i
}

// Role returns the value of the "role" field in the mutation.
func (m *InvitationMutation) Role() (r invitation.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Invitation entity.
// If the Invitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvitationMutation) OldRole(ctx context.Context) (v invitation.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *InvitationMutation) ResetRole() {
	m.role = nil
}

// SetStatus sets the "status" field.
func (m *InvitationMutation) SetStatus(i invitation.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *InvitationMutation) Status() (r invitation.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Invitation entity.
// If the Invitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvitationMutation) OldStatus(ctx context.Context) (v invitation.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *InvitationMutation) ResetStatus() {
	m.status = nil
}

// SetToken sets the "token" field.
func (m *InvitationMutation) SetToken(s string) {
	m.token = &s
}

// Token returns the value of the "token" field in the mutation.
func (m *InvitationMutation) Token() (r string, exists bool) {
	v := m.token
	if v == nil {
		return
	}
	return *v, true
}

// OldToken returns the old "token" field's value of the Invitation entity.
// If the Invitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvitationMutation) OldToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToken: %w", err)
	}
	return oldValue.Token, nil
}

// ResetToken resets all changes to the "token" field.
func (m *InvitationMutation) ResetToken() {
	m.token = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *InvitationMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *InvitationMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the Invitation entity.
// If the Invitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvitationMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *InvitationMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetInvitedBy sets the "invited_by" field.
func (m *InvitationMutation) SetInvitedBy(s string) {
	m.invited_by = &s
}

// InvitedBy returns the value of the "invited_by" field in the mutation.
func (m *InvitationMutation) InvitedBy() (r string, exists bool) {
	v := m.invited_by
	if v == nil {
		return
	}
	return *v, true
}

// OldInvitedBy returns the old "invited_by" field's value of the Invitation entity.
// If the Invitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvitationMutation) OldInvitedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvitedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvitedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvitedBy: %w", err)
	}
	return oldValue.InvitedBy, nil
}

// ResetInvitedBy resets all changes to the "invited_by" field.
func (m *InvitationMutation) ResetInvitedBy() {
	m.invited_by = nil
}

// SetAcceptedAt sets the "accepted_at" field.
func (m *InvitationMutation) SetAcceptedAt(t time.Time) {
	m.accepted_at = &t
}

// AcceptedAt returns the value of the "accepted_at" field in the mutation.
func (m *InvitationMutation) AcceptedAt() (r time.Time, exists bool) {
	v := m.accepted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAcceptedAt returns the old "accepted_at" field's value of the Invitation entity.
// If the Invitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvitationMutation) OldAcceptedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcceptedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcceptedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcceptedAt: %w", err)
	}
	return oldValue.AcceptedAt, nil
}

// ClearAcceptedAt clears the value of the "accepted_at" field.
func (m *InvitationMutation) ClearAcceptedAt() {
	m.accepted_at = nil
	m.clearedFields[invitation.FieldAcceptedAt] = struct{}{}
}

// AcceptedAtCleared returns if the "accepted_at" field was cleared in this mutation.
func (m *InvitationMutation) AcceptedAtCleared() bool {
	_, ok := m.clearedFields[invitation.FieldAcceptedAt]
	return ok
}

// ResetAcceptedAt resets all changes to the "accepted_at" field.
func (m *InvitationMutation) ResetAcceptedAt() {
	m.accepted_at = nil
	delete(m.clearedFields, invitation.FieldAcceptedAt)
}

// SetOrganizationID sets the "organization" edge to the Organization entity by id.
func (m *InvitationMutation) SetOrganizationID(id string) {
	m.organization = &id
}

// ClearOrganization clears the "organization" edge to the Organization entity.
func (m *InvitationMutation) ClearOrganization() {
	m.clearedorganization = true
}

// OrganizationCleared reports if the "organization" edge to the Organization entity was cleared.
func (m *InvitationMutation) OrganizationCleared() bool {
	return m.clearedorganization
}

// OrganizationID returns the "organization" edge ID in the mutation.
func (m *InvitationMutation) OrganizationID() (id string, exists bool) {
	if m.organization != nil {
		return *m.organization, true
	}
	return
}

// OrganizationIDs returns the "organization" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OrganizationID instead. It exists only for internal usage by the builders.
func (m *InvitationMutation) OrganizationIDs() (ids []string) {
	if id := m.organization; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOrganization resets all changes to the "organization" edge.
func (m *InvitationMutation) ResetOrganization() {
	m.organization = nil
	m.clearedorganization = false
}

// Where appends a list predicates to the InvitationMutation builder.
func (m *InvitationMutation) Where(ps ...predicate.Invitation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InvitationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InvitationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Invitation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InvitationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InvitationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Invitation).
func (m *InvitationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InvitationMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, invitation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, invitation.FieldUpdatedAt)
	}
	if m.email != nil {
		fields = append(fields, invitation.FieldEmail)
	}
	if m.role != nil {
		fields = append(fields, invitation.FieldRole)
	}
	if m.status != nil {
		fields = append(fields, invitation.FieldStatus)
	}
	if m.token != nil {
		fields = append(fields, invitation.FieldToken)
	}
	if m.expires_at != nil {
		fields = append(fields, invitation.FieldExpiresAt)
	}
	if m.invited_by != nil {
		fields = append(fields, invitation.FieldInvitedBy)
	}
	if m.accepted_at != nil {
		fields = append(fields, invitation.FieldAcceptedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InvitationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case invitation.FieldCreatedAt:
		return m.CreatedAt()
	case invitation.FieldUpdatedAt:
		return m.UpdatedAt()
	case invitation.FieldEmail:
		return m.Email()
	case invitation.FieldRole:
		return m.Role()
	case invitation.FieldStatus:
		return m.Status()
	case invitation.FieldToken:
		return m.Token()
	case invitation.FieldExpiresAt:
		return m.ExpiresAt()
	case invitation.FieldInvitedBy:
		return m.InvitedBy()
	case invitation.FieldAcceptedAt:
		return m.AcceptedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InvitationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case invitation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case invitation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case invitation.FieldEmail:
		return m.OldEmail(ctx)
	case invitation.FieldRole:
		return m.OldRole(ctx)
	case invitation.FieldStatus:
		return m.OldStatus(ctx)
	case invitation.FieldToken:
		return m.OldToken(ctx)
	case invitation.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case invitation.FieldInvitedBy:
		return m.OldInvitedBy(ctx)
	case invitation.FieldAcceptedAt:
		return m.OldAcceptedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Invitation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvitationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case invitation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case invitation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case invitation.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case invitation.FieldRole:
		v, ok := value.(invitation.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case invitation.FieldStatus:
		v, ok := value.(invitation.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case invitation.FieldToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToken(v)
		return nil
	case invitation.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case invitation.FieldInvitedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvitedBy(v)
		return nil
	case invitation.FieldAcceptedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcceptedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Invitation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InvitationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InvitationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvitationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Invitation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InvitationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(invitation.FieldAcceptedAt) {
		fields = append(fields, invitation.FieldAcceptedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InvitationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InvitationMutation) ClearField(name string) error {
	switch name {
	case invitation.FieldAcceptedAt:
		m.ClearAcceptedAt()
		return nil
	}
	return fmt.Errorf("unknown Invitation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InvitationMutation) ResetField(name string) error {
	switch name {
	case invitation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case invitation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case invitation.FieldEmail:
		m.ResetEmail()
		return nil
	case invitation.FieldRole:
		m.ResetRole()
		return nil
	case invitation.FieldStatus:
		m.ResetStatus()
		return nil
	case invitation.FieldToken:
		m.ResetToken()
		return nil
	case invitation.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case invitation.FieldInvitedBy:
		m.ResetInvitedBy()
		return nil
	case invitation.FieldAcceptedAt:
		m.ResetAcceptedAt()
		return nil
	}
	return fmt.Errorf("unknown Invitation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InvitationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.organization != nil {
		edges = append(edges, invitation.EdgeOrganization)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InvitationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case invitation.EdgeOrganization:
		if id := m.organization; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InvitationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InvitationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InvitationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedorganization {
		edges = append(edges, invitation.EdgeOrganization)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InvitationMutation) EdgeCleared(name string) bool {
	switch name {
	case invitation.EdgeOrganization:
		return m.clearedorganization
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InvitationMutation) ClearEdge(name string) error {
	switch name {
	case invitation.EdgeOrganization:
		m.ClearOrganization()
		return nil
	}
	return fmt.Errorf("unknown Invitation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InvitationMutation) ResetEdge(name string) error {
	switch name {
	case invitation.EdgeOrganization:
		m.ResetOrganization()
		return nil
	}
	return fmt.Errorf("unknown Invitation edge %s", name)
}

// NegotiationMutation represents an operation that mutates the Negotiation nodes in the graph.
type NegotiationMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	created_at            *time.Time
	updated_at            *time.Time
	negotiation_number    *string
	company_id            *string
	vessel_id             *string
	status                *negotiation.Status
	freight_rate          *float64
	addfreight_rate       *float64
	first_indication      *float64
	addfirst_indication   *float64
	highest_indication    *float64
	addhighest_indication *float64
	lowest_indication     *float64
	addlowest_indication  *float64
	market_index          *string
	delivery_type         *string
	created_by            *string
	clearedFields         map[string]struct{}
	_order                *string
	cleared_order         bool
	done                  bool
	oldValue              func(context.Context) (*Negotiation, error)
	predicates            []predicate.Negotiation
}

var _ ent.Mutation = (*NegotiationMutation)(nil)

// negotiationOption allows management of the mutation configuration using functional options.
type negotiationOption func(*NegotiationMutation)

// newNegotiationMutation creates new mutation for the Negotiation entity.
func newNegotiationMutation(c config, op Op, opts ...negotiationOption) *NegotiationMutation {
	m := &NegotiationMutation{
		config:        c,
		op:            op,
		typ:           TypeNegotiation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNegotiationID sets the ID field of the mutation.
func withNegotiationID(id string) negotiationOption {
	return func(m *NegotiationMutation) {
		var (
			err   error
			once  sync.Once
			value *Negotiation
		)
		m.oldValue = func(ctx context.Context) (*Negotiation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Negotiation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNegotiation sets the old Negotiation of the mutation.
func withNegotiation(node *Negotiation) negotiationOption {
	return func(m *NegotiationMutation) {
		m.oldValue = func(context.Context) (*Negotiation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NegotiationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NegotiationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Negotiation entities.
func (m *NegotiationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NegotiationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NegotiationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Negotiation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *NegotiationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NegotiationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Negotiation entity.
// If the Negotiation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NegotiationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NegotiationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *NegotiationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *NegotiationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Negotiation entity.
// If the Negotiation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NegotiationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *NegotiationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetNegotiationNumber sets the "negotiation_number" field.
func (m *NegotiationMutation) SetNegotiationNumber(s string) {
	m.negotiation_number = &s
}

// NegotiationNumber returns the value of the "negotiation_number" field in the mutation.
func (m *NegotiationMutation) NegotiationNumber() (r string, exists bool) {
	v := m.negotiation_number
	if v == nil {
		return
	}
	return *v, true
}

// OldNegotiationNumber returns the old "negotiation_number" field's value of the Negotiation entity.
// If the Negotiation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NegotiationMutation) OldNegotiationNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNegotiationNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNegotiationNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNegotiationNumber: %w", err)
	}
	return oldValue.NegotiationNumber, nil
}

// ResetNegotiationNumber resets all changes to the "negotiation_number" field.
func (m *NegotiationMutation) ResetNegotiationNumber() {
	m.negotiation_number = nil
}

// SetCompanyID sets the "company_id" field.
func (m *NegotiationMutation) SetCompanyID(s string) {
	m.company_id = &s
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *NegotiationMutation) CompanyID() (r string, exists bool) {
	v := m.company_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the Negotiation entity.
// If the Negotiation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NegotiationMutation) OldCompanyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ClearCompanyID clears the value of the "company_id" field.
func (m *NegotiationMutation) ClearCompanyID() {
	m.company_id = nil
	m.clearedFields[negotiation.FieldCompanyID] = struct{}{}
}

// CompanyIDCleared returns if the "company_id" field was cleared in this mutation.
func (m *NegotiationMutation) CompanyIDCleared() bool {
	_, ok := m.clearedFields[negotiation.FieldCompanyID]
	return ok
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *NegotiationMutation) ResetCompanyID() {
	m.company_id = nil
	delete(m.clearedFields, negotiation.FieldCompanyID)
}

// SetVesselID sets the "vessel_id" field.
func (m *NegotiationMutation) SetVesselID(s string) {
	m.vessel_id = &s
}

// VesselID returns the value of the "vessel_id" field in the mutation.
func (m *NegotiationMutation) VesselID() (r string, exists bool) {
	v := m.vessel_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVesselID returns the old "vessel_id" field's value of the Negotiation entity.
// If the Negotiation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NegotiationMutation) OldVesselID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVesselID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVesselID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVesselID: %w", err)
	}
	return oldValue.VesselID, nil
}

// ClearVesselID clears the value of the "vessel_id" field.
func (m *NegotiationMutation) ClearVesselID() {
	m.vessel_id = nil
	m.clearedFields[negotiation.FieldVesselID] = struct{}{}
}

// VesselIDCleared returns if the "vessel_id" field was cleared in this mutation.
func (m *NegotiationMutation) VesselIDCleared() bool {
	_, ok := m.clearedFields[negotiation.FieldVesselID]
	return ok
}

// ResetVesselID resets all changes to the "vessel_id" field.
func (m *NegotiationMutation) ResetVesselID() {
	m.vessel_id = nil
	delete(m.clearedFields, negotiation.FieldVesselID)
}

// SetStatus sets the "status" field.
func (m *NegotiationMutation) SetStatus(n negotiation.Status) {
	m.status = &n
}

// Status returns the value of the "status" field in the mutation.
func (m *NegotiationMutation) Status() (r negotiation.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Negotiation entity.
// If the Negotiation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NegotiationMutation) OldStatus(ctx context.Context) (v negotiation.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *NegotiationMutation) ResetStatus() {
	m.status = nil
}

// SetFreightRate sets the "freight_rate" field.
func (m *NegotiationMutation) SetFreightRate(f float64) {
	m.freight_rate = &f
	m.addfreight_rate = nil
}

// FreightRate returns the value of the "freight_rate" field in the mutation.
func (m *NegotiationMutation) FreightRate() (r float64, exists bool) {
	v := m.freight_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldFreightRate returns the old "freight_rate" field's value of the Negotiation entity.
// If the Negotiation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NegotiationMutation) OldFreightRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFreightRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFreightRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFreightRate: %w", err)
	}
	return oldValue.FreightRate, nil
}

// AddFreightRate adds f to the "freight_rate" field.
func (m *NegotiationMutation) AddFreightRate(f float64) {
	if m.addfreight_rate != nil {
		*m.addfreight_rate += f
	} else {
		m.addfreight_rate = &f
	}
}

// AddedFreightRate returns the value that was added to the "freight_rate" field in this mutation.
func (m *NegotiationMutation) AddedFreightRate() (r float64, exists bool) {
	v := m.addfreight_rate
	if v == nil {
		return
	}
	return *v, true
}

// ClearFreightRate clears the value of the "freight_rate" field.
func (m *NegotiationMutation) ClearFreightRate() {
	m.freight_rate = nil
	m.addfreight_rate = nil
	m.clearedFields[negotiation.FieldFreightRate] = struct{}{}
}

// FreightRateCleared returns if the "freight_rate" field was cleared in this mutation.
func (m *NegotiationMutation) FreightRateCleared() bool {
	_, ok := m.clearedFields[negotiation.FieldFreightRate]
	return ok
}

// ResetFreightRate resets all changes to the "freight_rate" field.
func (m *NegotiationMutation) ResetFreightRate() {
	m.freight_rate = nil
	m.addfreight_rate = nil
	delete(m.clearedFields, negotiation.FieldFreightRate)
}

// SetFirstIndication sets the "first_indication" field.
func (m *NegotiationMutation) SetFirstIndication(f float64) {
	m.first_indication = &f
	m.addfirst_indication = nil
}

// FirstIndication returns the value of the "first_indication" field in the mutation.
func (m *NegotiationMutation) FirstIndication() (r float64, exists bool) {
	v := m.first_indication
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstIndication returns the old "first_indication" field's value of the Negotiation entity.
// If the Negotiation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NegotiationMutation) OldFirstIndication(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstIndication is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstIndication requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstIndication: %w", err)
	}
	return oldValue.FirstIndication, nil
}

// AddFirstIndication adds f to the "first_indication" field.
func (m *NegotiationMutation) AddFirstIndication(f float64) {
	if m.addfirst_indication != nil {
		*m.addfirst_indication += f
	} else {
		m.addfirst_indication = &f
	}
}

// AddedFirstIndication returns the value that was added to the "first_indication" field in this mutation.
func (m *NegotiationMutation) AddedFirstIndication() (r float64, exists bool) {
	v := m.addfirst_indication
	if v == nil {
		return
	}
	return *v, true
}

// ClearFirstIndication clears the value of the "first_indication" field.
func (m *NegotiationMutation) ClearFirstIndication() {
	m.first_indication = nil
	m.addfirst_indication = nil
	m.clearedFields[negotiation.FieldFirstIndication] = struct{}{}
}

// FirstIndicationCleared returns if the "first_indication" field was cleared in this mutation.
func (m *NegotiationMutation) FirstIndicationCleared() bool {
	_, ok := m.clearedFields[negotiation.FieldFirstIndication]
	return ok
}

// ResetFirstIndication resets all changes to the "first_indication" field.
func (m *NegotiationMutation) ResetFirstIndication() {
	m.first_indication = nil
	m.addfirst_indication = nil
	delete(m.clearedFields, negotiation.FieldFirstIndication)
}

// SetHighestIndication sets the "highest_indication" field.
func (m *NegotiationMutation) SetHighestIndication(f float64) {
	m.highest_indication = &f
	m.addhighest_indication = nil
}

// HighestIndication returns the value of the "highest_indication" field in the mutation.
func (m *NegotiationMutation) HighestIndication() (r float64, exists bool) {
	v := m.highest_indication
	if v == nil {
		return
	}
	return *v, true
}

// OldHighestIndication returns the old "highest_indication" field's value of the Negotiation entity.
// If the Negotiation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NegotiationMutation) OldHighestIndication(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHighestIndication is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHighestIndication requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHighestIndication: %w", err)
	}
	return oldValue.HighestIndication, nil
}

// AddHighestIndication adds f to the "highest_indication" field.
func (m *NegotiationMutation) AddHighestIndication(f float64) {
	if m.addhighest_indication != nil {
		*m.addhighest_indication += f
	} else {
		m.addhighest_indication = &f
	}
}

// AddedHighestIndication returns the value that was added to the "highest_indication" field in this mutation.
func (m *NegotiationMutation) AddedHighestIndication() (r float64, exists bool) {
	v := m.addhighest_indication
	if v == nil {
		return
	}
	return *v, true
}

// ClearHighestIndication clears the value of the "highest_indication" field.
func (m *NegotiationMutation) ClearHighestIndication() {
	m.highest_indication = nil
	m.addhighest_indication = nil
	m.clearedFields[negotiation.FieldHighestIndication] = struct{}{}
}

// HighestIndicationCleared returns if the "highest_indication" field was cleared in this mutation.
func (m *NegotiationMutation) HighestIndicationCleared() bool {
	_, ok := m.clearedFields[negotiation.FieldHighestIndication]
	return ok
}

// ResetHighestIndication resets all changes to the "highest_indication" field.
func (m *NegotiationMutation) ResetHighestIndication() {
	m.highest_indication = nil
	m.addhighest_indication = nil
	delete(m.clearedFields, negotiation.FieldHighestIndication)
}

// SetLowestIndication sets the "lowest_indication" field.
func (m *NegotiationMutation) SetLowestIndication(f float64) {
	m.lowest_indication = &f
	m.addlowest_indication = nil
}

// LowestIndication returns the value of the "lowest_indication" field in the mutation.
func (m *NegotiationMutation) LowestIndication() (r float64, exists bool) {
	v := m.lowest_indication
	if v == nil {
		return
	}
	return *v, true
}

// OldLowestIndication returns the old "lowest_indication" field's value of the Negotiation entity.
// If the Negotiation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NegotiationMutation) OldLowestIndication(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLowestIndication is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLowestIndication requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLowestIndication: %w", err)
	}
	return oldValue.LowestIndication, nil
}

// AddLowestIndication adds f to the "lowest_indication" field.
func (m *NegotiationMutation) AddLowestIndication(f float64) {
	if m.addlowest_indication != nil {
		*m.addlowest_indication += f
	} else {
		m.addlowest_indication = &f
	}
}

// AddedLowestIndication returns the value that was added to the "lowest_indication" field in this mutation.
func (m *NegotiationMutation) AddedLowestIndication() (r float64, exists bool) {
	v := m.addlowest_indication
	if v == nil {
		return
	}
	return *v, true
}

// ClearLowestIndication clears the value of the "lowest_indication" field.
func (m *NegotiationMutation) ClearLowestIndication() {
	m.lowest_indication = nil
	m.addlowest_indication = nil
	m.clearedFields[negotiation.FieldLowestIndication] = struct{}{}
}

// LowestIndicationCleared returns if the "lowest_indication" field was cleared in this mutation.
func (m *NegotiationMutation) LowestIndicationCleared() bool {
	_, ok := m.clearedFields[negotiation.FieldLowestIndication]
	return ok
}

// ResetLowestIndication resets all changes to the "lowest_indication" field.
func (m *NegotiationMutation) ResetLowestIndication() {
	m.lowest_indication = nil
	m.addlowest_indication = nil
	delete(m.clearedFields, negotiation.FieldLowestIndication)
}

// SetMarketIndex sets the "market_index" field.
func (m *NegotiationMutation) SetMarketIndex(s string) {
	m.market_index = &s
}

// MarketIndex returns the value of the "market_index" field in the mutation.
func (m *NegotiationMutation) MarketIndex() (r string, exists bool) {
	v := m.market_index
	if v == nil {
		return
	}
	return *v, true
}

// OldMarketIndex returns the old "market_index" field's value of the Negotiation entity.
// If the Negotiation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NegotiationMutation) OldMarketIndex(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarketIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarketIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarketIndex: %w", err)
	}
	return oldValue.MarketIndex, nil
}

// ClearMarketIndex clears the value of the "market_index" field.
func (m *NegotiationMutation) ClearMarketIndex() {
	m.market_index = nil
	m.clearedFields[negotiation.FieldMarketIndex] = struct{}{}
}

// MarketIndexCleared returns if the "market_index" field was cleared in this mutation.
func (m *NegotiationMutation) MarketIndexCleared() bool {
	_, ok := m.clearedFields[negotiation.FieldMarketIndex]
	return ok
}

// ResetMarketIndex resets all changes to the "market_index" field.
func (m *NegotiationMutation) ResetMarketIndex() {
	m.market_index = nil
	delete(m.clearedFields, negotiation.FieldMarketIndex)
}

// SetDeliveryType sets the "delivery_type" field.
func (m *NegotiationMutation) SetDeliveryType(s string) {
	m.delivery_type = &s
}

// DeliveryType returns the value of the "delivery_type" field in the mutation.
func (m *NegotiationMutation) DeliveryType() (r string, exists bool) {
	v := m.delivery_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveryType returns the old "delivery_type" field's value of the Negotiation entity.
// If the Negotiation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NegotiationMutation) OldDeliveryType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveryType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveryType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveryType: %w", err)
	}
	return oldValue.DeliveryType, nil
}

// ClearDeliveryType clears the value of the "delivery_type" field.
func (m *NegotiationMutation) ClearDeliveryType() {
	m.delivery_type = nil
	m.clearedFields[negotiation.FieldDeliveryType] = struct{}{}
}

// DeliveryTypeCleared returns if the "delivery_type" field was cleared in this mutation.
func (m *NegotiationMutation) DeliveryTypeCleared() bool {
	_, ok := m.clearedFields[negotiation.FieldDeliveryType]
	return ok
}

// ResetDeliveryType resets all changes to the "delivery_type" field.
func (m *NegotiationMutation) ResetDeliveryType() {
	m.delivery_type = nil
	delete(m.clearedFields, negotiation.FieldDeliveryType)
}

// SetCreatedBy sets the "created_by" field.
func (m *NegotiationMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *NegotiationMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Negotiation entity.
// If the Negotiation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NegotiationMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *NegotiationMutation) ResetCreatedBy() {
	m.created_by = nil
}

// SetOrderID sets the "order" edge to the Order entity by id.
func (m *NegotiationMutation) SetOrderID(id string) {
	m._order = &id
}

// ClearOrder clears the "order" edge to the Order entity.
func (m *NegotiationMutation) ClearOrder() {
	m.cleared_order = true
}

// OrderCleared reports if the "order" edge to the Order entity was cleared.
func (m *NegotiationMutation) OrderCleared() bool {
	return m.cleared_order
}

// OrderID returns the "order" edge ID in the mutation.
func (m *NegotiationMutation) OrderID() (id string, exists bool) {
	if m._order != nil {
		return *m._order, true
	}
	return
}

// OrderIDs returns the "order" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OrderID instead. It exists only for internal usage by the builders.
func (m *NegotiationMutation) OrderIDs() (ids []string) {
	if id := m._order; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOrder resets all changes to the "order" edge.
func (m *NegotiationMutation) ResetOrder() {
	m._order = nil
	m.cleared_order = false
}

// Where appends a list predicates to the NegotiationMutation builder.
func (m *NegotiationMutation) Where(ps ...predicate.Negotiation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NegotiationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NegotiationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Negotiation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NegotiationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NegotiationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Negotiation).
func (m *NegotiationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NegotiationMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.created_at != nil {
		fields = append(fields, negotiation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, negotiation.FieldUpdatedAt)
	}
	if m.negotiation_number != nil {
		fields = append(fields, negotiation.FieldNegotiationNumber)
	}
	if m.company_id != nil {
		fields = append(fields, negotiation.FieldCompanyID)
	}
	if m.vessel_id != nil {
		fields = append(fields, negotiation.FieldVesselID)
	}
	if m.status != nil {
		fields = append(fields, negotiation.FieldStatus)
	}
	if m.freight_rate != nil {
		fields = append(fields, negotiation.FieldFreightRate)
	}
	if m.first_indication != nil {
		fields = append(fields, negotiation.FieldFirstIndication)
	}
	if m.highest_indication != nil {
		fields = append(fields, negotiation.FieldHighestIndication)
	}
	if m.lowest_indication != nil {
		fields = append(fields, negotiation.FieldLowestIndication)
	}
	if m.market_index != nil {
		fields = append(fields, negotiation.FieldMarketIndex)
	}
	if m.delivery_type != nil {
		fields = append(fields, negotiation.FieldDeliveryType)
	}
	if m.created_by != nil {
		fields = append(fields, negotiation.FieldCreatedBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NegotiationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case negotiation.FieldCreatedAt:
		return m.CreatedAt()
	case negotiation.FieldUpdatedAt:
		return m.UpdatedAt()
	case negotiation.FieldNegotiationNumber:
		return m.NegotiationNumber()
	case negotiation.FieldCompanyID:
		return m.CompanyID()
	case negotiation.FieldVesselID:
		return m.VesselID()
	case negotiation.FieldStatus:
		return m.Status()
	case negotiation.FieldFreightRate:
		return m.FreightRate()
	case negotiation.FieldFirstIndication:
		return m.FirstIndication()
	case negotiation.FieldHighestIndication:
		return m.HighestIndication()
	case negotiation.FieldLowestIndication:
		return m.LowestIndication()
	case negotiation.FieldMarketIndex:
		return m.MarketIndex()
	case negotiation.FieldDeliveryType:
		return m.DeliveryType()
	case negotiation.FieldCreatedBy:
		return m.CreatedBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NegotiationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case negotiation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case negotiation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case negotiation.FieldNegotiationNumber:
		return m.OldNegotiationNumber(ctx)
	case negotiation.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case negotiation.FieldVesselID:
		return m.OldVesselID(ctx)
	case negotiation.FieldStatus:
		return m.OldStatus(ctx)
	case negotiation.FieldFreightRate:
		return m.OldFreightRate(ctx)
	case negotiation.FieldFirstIndication:
		return m.OldFirstIndication(ctx)
	case negotiation.FieldHighestIndication:
		return m.OldHighestIndication(ctx)
	case negotiation.FieldLowestIndication:
		return m.OldLowestIndication(ctx)
	case negotiation.FieldMarketIndex:
		return m.OldMarketIndex(ctx)
	case negotiation.FieldDeliveryType:
		return m.OldDeliveryType(ctx)
	case negotiation.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	}
	return nil, fmt.Errorf("unknown Negotiation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NegotiationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case negotiation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case negotiation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case negotiation.FieldNegotiationNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNegotiationNumber(v)
		return nil
	case negotiation.FieldCompanyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case negotiation.FieldVesselID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVesselID(v)
		return nil
	case negotiation.FieldStatus:
		v, ok := value.(negotiation.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case negotiation.FieldFreightRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFreightRate(v)
		return nil
	case negotiation.FieldFirstIndication:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstIndication(v)
		return nil
	case negotiation.FieldHighestIndication:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHighestIndication(v)
		return nil
	case negotiation.FieldLowestIndication:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLowestIndication(v)
		return nil
	case negotiation.FieldMarketIndex:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarketIndex(v)
		return nil
	case negotiation.FieldDeliveryType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveryType(v)
		return nil
	case negotiation.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	}
	return fmt.Errorf("unknown Negotiation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NegotiationMutation) AddedFields() []string {
	var fields []string
	if m.addfreight_rate != nil {
		fields = append(fields, negotiation.FieldFreightRate)
	}
	if m.addfirst_indication != nil {
		fields = append(fields, negotiation.FieldFirstIndication)
	}
	if m.addhighest_indication != nil {
		fields = append(fields, negotiation.FieldHighestIndication)
	}
	if m.addlowest_indication != nil {
		fields = append(fields, negotiation.FieldLowestIndication)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NegotiationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case negotiation.FieldFreightRate:
		return m.AddedFreightRate()
	case negotiation.FieldFirstIndication:
		return m.AddedFirstIndication()
	case negotiation.FieldHighestIndication:
		return m.AddedHighestIndication()
	case negotiation.FieldLowestIndication:
		return m.AddedLowestIndication()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NegotiationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case negotiation.FieldFreightRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFreightRate(v)
		return nil
	case negotiation.FieldFirstIndication:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFirstIndication(v)
		return nil
	case negotiation.FieldHighestIndication:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHighestIndication(v)
		return nil
	case negotiation.FieldLowestIndication:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLowestIndication(v)
		return nil
	}
	return fmt.Errorf("unknown Negotiation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NegotiationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(negotiation.FieldCompanyID) {
		fields = append(fields, negotiation.FieldCompanyID)
	}
	if m.FieldCleared(negotiation.FieldVesselID) {
		fields = append(fields, negotiation.FieldVesselID)
	}
	if m.FieldCleared(negotiation.FieldFreightRate) {
		fields = append(fields, negotiation.FieldFreightRate)
	}
	if m.FieldCleared(negotiation.FieldFirstIndication) {
		fields = append(fields, negotiation.FieldFirstIndication)
	}
	if m.FieldCleared(negotiation.FieldHighestIndication) {
		fields = append(fields, negotiation.FieldHighestIndication)
	}
	if m.FieldCleared(negotiation.FieldLowestIndication) {
		fields = append(fields, negotiation.FieldLowestIndication)
	}
	if m.FieldCleared(negotiation.FieldMarketIndex) {
		fields = append(fields, negotiation.FieldMarketIndex)
	}
	if m.FieldCleared(negotiation.FieldDeliveryType) {
		fields = append(fields, negotiation.FieldDeliveryType)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NegotiationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NegotiationMutation) ClearField(name string) error {
	switch name {
	case negotiation.FieldCompanyID:
		m.ClearCompanyID()
		return nil
	case negotiation.FieldVesselID:
		m.ClearVesselID()
		return nil
	case negotiation.FieldFreightRate:
		m.ClearFreightRate()
		return nil
	case negotiation.FieldFirstIndication:
		m.ClearFirstIndication()
		return nil
	case negotiation.FieldHighestIndication:
		m.ClearHighestIndication()
		return nil
	case negotiation.FieldLowestIndication:
		m.ClearLowestIndication()
		return nil
	case negotiation.FieldMarketIndex:
		m.ClearMarketIndex()
		return nil
	case negotiation.FieldDeliveryType:
		m.ClearDeliveryType()
		return nil
	}
	return fmt.Errorf("unknown Negotiation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NegotiationMutation) ResetField(name string) error {
	switch name {
	case negotiation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case negotiation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case negotiation.FieldNegotiationNumber:
		m.ResetNegotiationNumber()
		return nil
	case negotiation.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case negotiation.FieldVesselID:
		m.ResetVesselID()
		return nil
	case negotiation.FieldStatus:
		m.ResetStatus()
		return nil
	case negotiation.FieldFreightRate:
		m.ResetFreightRate()
		return nil
	case negotiation.FieldFirstIndication:
		m.ResetFirstIndication()
		return nil
	case negotiation.FieldHighestIndication:
		m.ResetHighestIndication()
		return nil
	case negotiation.FieldLowestIndication:
		m.ResetLowestIndication()
		return nil
	case negotiation.FieldMarketIndex:
		m.ResetMarketIndex()
		return nil
	case negotiation.FieldDeliveryType:
		m.ResetDeliveryType()
		return nil
	case negotiation.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown Negotiation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NegotiationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m._order != nil {
		edges = append(edges, negotiation.EdgeOrder)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NegotiationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case negotiation.EdgeOrder:
		if id := m._order; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NegotiationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NegotiationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NegotiationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleared_order {
		edges = append(edges, negotiation.EdgeOrder)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NegotiationMutation) EdgeCleared(name string) bool {
	switch name {
	case negotiation.EdgeOrder:
		return m.cleared_order
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NegotiationMutation) ClearEdge(name string) error {
	switch name {
	case negotiation.EdgeOrder:
		m.ClearOrder()
		return nil
	}
	return fmt.Errorf("unknown Negotiation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NegotiationMutation) ResetEdge(name string) error {
	switch name {
	case negotiation.EdgeOrder:
		m.ResetOrder()
		return nil
	}
	return fmt.Errorf("unknown Negotiation edge %s", name)
}

// NotificationMutation represents an operation that mutates the Notification nodes in the graph.
type NotificationMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	_type         *notification.Type
	title         *string
	message       *string
	resource_type *string
	resource_id   *string
	read          *bool
	read_at       *time.Time
	clearedFields map[string]struct{}
	user          *string
	cleareduser   bool
	done          bool
	oldValue      func(context.Context) (*Notification, error)
	predicates    []predicate.Notification
}

var _ ent.Mutation = (*NotificationMutation)(nil)

// notificationOption allows management of the mutation configuration using functional options.
type notificationOption func(*NotificationMutation)

// newNotificationMutation creates new mutation for the Notification entity.
func newNotificationMutation(c config, op Op, opts ...notificationOption) *NotificationMutation {
	m := &NotificationMutation{
		config:        c,
		op:            op,
		typ:           TypeNotification,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationID sets the ID field of the mutation.
func withNotificationID(id string) notificationOption {
	return func(m *NotificationMutation) {
		var (
			err   error
			once  sync.Once
			value *Notification
		)
		m.oldValue = func(ctx context.Context) (*Notification, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Notification.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotification sets the old Notification of the mutation.
func withNotification(node *Notification) notificationOption {
	return func(m *NotificationMutation) {
		m.oldValue = func(context.Context) (*Notification, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Notification entities.
func (m *NotificationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Notification.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *NotificationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NotificationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NotificationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetType sets the "type" field.
func (m *NotificationMutation) SetType(n notification.Type) {
	m._type = &n
}

// GetType returns the value of the "type" field in the mutation.
func (m *NotificationMutation) GetType() (r notification.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldType(ctx context.Context) (v notification.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *NotificationMutation) ResetType() {
	m._type = nil
}

// SetTitle sets the "title" field.
func (m *NotificationMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *NotificationMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *NotificationMutation) ResetTitle() {
	m.title = nil
}

// SetMessage sets the "message" field.
func (m *NotificationMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *NotificationMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *NotificationMutation) ResetMessage() {
	m.message = nil
}

// SetResourceType sets the "resource_type" field.
func (m *NotificationMutation) SetResourceType(s string) {
	m.resource_type = &s
}

// ResourceType returns the value of the "resource_type" field in the mutation.
func (m *NotificationMutation) ResourceType() (r string, exists bool) {
	v := m.resource_type
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceType returns the old "resource_type" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldResourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceType: %w", err)
	}
	return oldValue.ResourceType, nil
}

// ClearResourceType clears the value of the "resource_type" field.
func (m *NotificationMutation) ClearResourceType() {
	m.resource_type = nil
	m.clearedFields[notification.FieldResourceType] = struct{}{}
}

// ResourceTypeCleared returns if the "resource_type" field was cleared in this mutation.
func (m *NotificationMutation) ResourceTypeCleared() bool {
	_, ok := m.clearedFields[notification.FieldResourceType]
	return ok
}

// ResetResourceType resets all changes to the "resource_type" field.
func (m *NotificationMutation) ResetResourceType() {
	m.resource_type = nil
	delete(m.clearedFields, notification.FieldResourceType)
}

// SetResourceID sets the "resource_id" field.
func (m *NotificationMutation) SetResourceID(s string) {
	m.resource_id = &s
}

// ResourceID returns the value of the "resource_id" field in the mutation.
func (m *NotificationMutation) ResourceID() (r string, exists bool) {
	v := m.resource_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceID returns the old "resource_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldResourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceID: %w", err)
	}
	return oldValue.ResourceID, nil
}

// ClearResourceID clears the value of the "resource_id" field.
func (m *NotificationMutation) ClearResourceID() {
	m.resource_id = nil
	m.clearedFields[notification.FieldResourceID] = struct{}{}
}

// ResourceIDCleared returns if the "resource_id" field was cleared in this mutation.
func (m *NotificationMutation) ResourceIDCleared() bool {
	_, ok := m.clearedFields[notification.FieldResourceID]
	return ok
}

// ResetResourceID resets all changes to the "resource_id" field.
func (m *NotificationMutation) ResetResourceID() {
	m.resource_id = nil
	delete(m.clearedFields, notification.FieldResourceID)
}

// SetRead sets the "read" field.
func (m *NotificationMutation) SetRead(b bool) {
	m.read = &b
}

// Read returns the value of the "read" field in the mutation.
func (m *NotificationMutation) Read() (r bool, exists bool) {
	v := m.read
	if v == nil {
		return
	}
	return *v, true
}

// OldRead returns the old "read" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldRead(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRead is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRead requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRead: %w", err)
	}
	return oldValue.Read, nil
}

// ResetRead resets all changes to the "read" field.
func (m *NotificationMutation) ResetRead() {
	m.read = nil
}

// SetReadAt sets the "read_at" field.
func (m *NotificationMutation) SetReadAt(t time.Time) {
	m.read_at = &t
}

// ReadAt returns the value of the "read_at" field in the mutation.
func (m *NotificationMutation) ReadAt() (r time.Time, exists bool) {
	v := m.read_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReadAt returns the old "read_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldReadAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReadAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReadAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReadAt: %w", err)
	}
	return oldValue.ReadAt, nil
}

// ClearReadAt clears the value of the "read_at" field.
func (m *NotificationMutation) ClearReadAt() {
	m.read_at = nil
	m.clearedFields[notification.FieldReadAt] = struct{}{}
}

// ReadAtCleared returns if the "read_at" field was cleared in this mutation.
func (m *NotificationMutation) ReadAtCleared() bool {
	_, ok := m.clearedFields[notification.FieldReadAt]
	return ok
}

// ResetReadAt resets all changes to the "read_at" field.
func (m *NotificationMutation) ResetReadAt() {
	m.read_at = nil
	delete(m.clearedFields, notification.FieldReadAt)
}

// SetUserID sets the "user" edge to the User entity by id.
func (m *NotificationMutation) SetUserID(id string) {
	m.user = &id
}

// ClearUser clears the "user" edge to the User entity.
func (m *NotificationMutation) ClearUser() {
	m.cleareduser = true
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *NotificationMutation) UserCleared() bool {
	return m.cleareduser
}

// UserID returns the "user" edge ID in the mutation.
func (m *NotificationMutation) UserID() (id string, exists bool) {
	if m.user != nil {
		return *m.user, true
	}
	return
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *NotificationMutation) UserIDs() (ids []string) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *NotificationMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the NotificationMutation builder.
func (m *NotificationMutation) Where(ps ...predicate.Notification) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Notification, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Notification).
func (m *NotificationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, notification.FieldCreatedAt)
	}
	if m._type != nil {
		fields = append(fields, notification.FieldType)
	}
	if m.title != nil {
		fields = append(fields, notification.FieldTitle)
	}
	if m.message != nil {
		fields = append(fields, notification.FieldMessage)
	}
	if m.resource_type != nil {
		fields = append(fields, notification.FieldResourceType)
	}
	if m.resource_id != nil {
		fields = append(fields, notification.FieldResourceID)
	}
	if m.read != nil {
		fields = append(fields, notification.FieldRead)
	}
	if m.read_at != nil {
		fields = append(fields, notification.FieldReadAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notification.FieldCreatedAt:
		return m.CreatedAt()
	case notification.FieldType:
		return m.GetType()
	case notification.FieldTitle:
		return m.Title()
	case notification.FieldMessage:
		return m.Message()
	case notification.FieldResourceType:
		return m.ResourceType()
	case notification.FieldResourceID:
		return m.ResourceID()
	case notification.FieldRead:
		return m.Read()
	case notification.FieldReadAt:
		return m.ReadAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notification.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case notification.FieldType:
		return m.OldType(ctx)
	case notification.FieldTitle:
		return m.OldTitle(ctx)
	case notification.FieldMessage:
		return m.OldMessage(ctx)
	case notification.FieldResourceType:
		return m.OldResourceType(ctx)
	case notification.FieldResourceID:
		return m.OldResourceID(ctx)
	case notification.FieldRead:
		return m.OldRead(ctx)
	case notification.FieldReadAt:
		return m.OldReadAt(ctx)
	}
	return nil, fmt.Errorf("unknown Notification field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notification.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case notification.FieldType:
		v, ok := value.(notification.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case notification.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case notification.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case notification.FieldResourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceType(v)
		return nil
	case notification.FieldResourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceID(v)
		return nil
	case notification.FieldRead:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRead(v)
		return nil
	case notification.FieldReadAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReadAt(v)
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Notification numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(notification.FieldResourceType) {
		fields = append(fields, notification.FieldResourceType)
	}
	if m.FieldCleared(notification.FieldResourceID) {
		fields = append(fields, notification.FieldResourceID)
	}
	if m.FieldCleared(notification.FieldReadAt) {
		fields = append(fields, notification.FieldReadAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationMutation) ClearField(name string) error {
	switch name {
	case notification.FieldResourceType:
		m.ClearResourceType()
		return nil
	case notification.FieldResourceID:
		m.ClearResourceID()
		return nil
	case notification.FieldReadAt:
		m.ClearReadAt()
		return nil
	}
	return fmt.Errorf("unknown Notification nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationMutation) ResetField(name string) error {
	switch name {
	case notification.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case notification.FieldType:
		m.ResetType()
		return nil
	case notification.FieldTitle:
		m.ResetTitle()
		return nil
	case notification.FieldMessage:
		m.ResetMessage()
		return nil
	case notification.FieldResourceType:
		m.ResetResourceType()
		return nil
	case notification.FieldResourceID:
		m.ResetResourceID()
		return nil
	case notification.FieldRead:
		m.ResetRead()
		return nil
	case notification.FieldReadAt:
		m.ResetReadAt()
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, notification.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case notification.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, notification.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationMutation) EdgeCleared(name string) bool {
	switch name {
	case notification.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationMutation) ClearEdge(name string) error {
	switch name {
	case notification.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Notification unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationMutation) ResetEdge(name string) error {
	switch name {
	case notification.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown Notification edge %s", name)
}

// OrderMutation represents an operation that mutates the Order nodes in the graph.
type OrderMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	created_at          *time.Time
	updated_at          *time.Time
	order_number        *string
	organization_id     *string
	market              *order.Market
	status              *order.Status
	cargo_type_id       *string
	load_port_id        *string
	discharge_port_id   *string
	laycan_start        *time.Time
	laycan_end          *time.Time
	quantity            *float64
	addquantity         *float64
	notes               *string
	created_by          *string
	clearedFields       map[string]struct{}
	negotiations        map[string]struct{}
	removednegotiations map[string]struct{}
	clearednegotiations bool
	fixtures            map[string]struct{}
	removedfixtures     map[string]struct{}
	clearedfixtures     bool
	done                bool
	oldValue            func(context.Context) (*Order, error)
	predicates          []predicate.Order
}

var _ ent.Mutation = (*OrderMutation)(nil)

// orderOption allows management of the mutation configuration using functional options.
type orderOption func(*OrderMutation)

// newOrderMutation creates new mutation for the Order entity.
func newOrderMutation(c config, op Op, opts ...orderOption) *OrderMutation {
	m := &OrderMutation{
		config:        c,
		op:            op,
		typ:           TypeOrder,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrderID sets the ID field of the mutation.
func withOrderID(id string) orderOption {
	return func(m *OrderMutation) {
		var (
			err   error
			once  sync.Once
			value *Order
		)
		m.oldValue = func(ctx context.Context) (*Order, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Order.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrder sets the old Order of the mutation.
func withOrder(node *Order) orderOption {
	return func(m *OrderMutation) {
		m.oldValue = func(context.Context) (*Order, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrderMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrderMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Order entities.
func (m *OrderMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrderMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrderMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Order.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *OrderMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OrderMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OrderMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *OrderMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *OrderMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *OrderMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetOrderNumber sets the "order_number" field.
func (m *OrderMutation) SetOrderNumber(s string) {
	m.order_number = &s
}

// OrderNumber returns the value of the "order_number" field in the mutation.
func (m *OrderMutation) OrderNumber() (r string, exists bool) {
	v := m.order_number
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderNumber returns the old "order_number" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldOrderNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderNumber: %w", err)
	}
	return oldValue.OrderNumber, nil
}

// ResetOrderNumber resets all changes to the "order_number" field.
func (m *OrderMutation) ResetOrderNumber() {
	m.order_number = nil
}

// SetOrganizationID sets the "organization_id" field.
func (m *OrderMutation) SetOrganizationID(s string) {
	m.organization_id = &s
}

// OrganizationID returns the value of the "organization_id" field in the mutation.
func (m *OrderMutation) OrganizationID() (r string, exists bool) {
	v := m.organization_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganizationID returns the old "organization_id" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldOrganizationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganizationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganizationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganizationID: %w", err)
	}
	return oldValue.OrganizationID, nil
}

// ClearOrganizationID clears the value of the "organization_id" field.
func (m *OrderMutation) ClearOrganizationID() {
	m.organization_id = nil
	m.clearedFields[order.FieldOrganizationID] = struct{}{}
}

// OrganizationIDCleared returns if the "organization_id" field was cleared in this mutation.
func (m *OrderMutation) OrganizationIDCleared() bool {
	_, ok := m.clearedFields[order.FieldOrganizationID]
	return ok
}

// ResetOrganizationID resets all changes to the "organization_id" field.
func (m *OrderMutation) ResetOrganizationID() {
	m.organization_id = nil
	delete(m.clearedFields, order.FieldOrganizationID)
}

// SetMarket sets the "market" field.
func (m *OrderMutation) SetMarket(o order.Market) {
	m.market = &o
}

// Market returns the value of the "market" field in the mutation.
func (m *OrderMutation) Market() (r order.Market, exists bool) {
	v := m.market
	if v == nil {
		return
	}
	return *v, true
}

// OldMarket returns the old "market" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldMarket(ctx context.Context) (v order.Market, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarket is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarket requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarket: %w", err)
	}
	return oldValue.Market, nil
}

// ResetMarket resets all changes to the "market" field.
func (m *OrderMutation) ResetMarket() {
	m.market = nil
}

// SetStatus sets the "status" field.
func (m *OrderMutation) SetStatus(o order.Status) {
	m.status = &o
}

// Status returns the value of the "status" field in the mutation.
func (m *OrderMutation) Status() (r order.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldStatus(ctx context.Context) (v order.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *OrderMutation) ResetStatus() {
	m.status = nil
}

// SetCargoTypeID sets the "cargo_type_id" field.
func (m *OrderMutation) SetCargoTypeID(s string) {
	m.cargo_type_id = &s
}

// CargoTypeID returns the value of the "cargo_type_id" field in the mutation.
func (m *OrderMutation) CargoTypeID() (r string, exists bool) {
	v := m.cargo_type_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCargoTypeID returns the old "cargo_type_id" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldCargoTypeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCargoTypeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCargoTypeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCargoTypeID: %w", err)
	}
	return oldValue.CargoTypeID, nil
}

// ClearCargoTypeID clears the value of the "cargo_type_id" field.
func (m *OrderMutation) ClearCargoTypeID() {
	m.cargo_type_id = nil
	m.clearedFields[order.FieldCargoTypeID] = struct{}{}
}

// CargoTypeIDCleared returns if the "cargo_type_id" field was cleared in this mutation.
func (m *OrderMutation) CargoTypeIDCleared() bool {
	_, ok := m.clearedFields[order.FieldCargoTypeID]
	return ok
}

// ResetCargoTypeID resets all changes to the "cargo_type_id" field.
func (m *OrderMutation) ResetCargoTypeID() {
	m.cargo_type_id = nil
	delete(m.clearedFields, order.FieldCargoTypeID)
}

// SetLoadPortID sets the "load_port_id" field.
func (m *OrderMutation) SetLoadPortID(s string) {
	m.load_port_id = &s
}

// LoadPortID returns the value of the "load_port_id" field in the mutation.
func (m *OrderMutation) LoadPortID() (r string, exists bool) {
	v := m.load_port_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLoadPortID returns the old "load_port_id" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldLoadPortID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoadPortID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoadPortID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoadPortID: %w", err)
	}
	return oldValue.LoadPortID, nil
}

// ClearLoadPortID clears the value of the "load_port_id" field.
func (m *OrderMutation) ClearLoadPortID() {
	m.load_port_id = nil
	m.clearedFields[order.FieldLoadPortID] = struct{}{}
}

// LoadPortIDCleared returns if the "load_port_id" field was cleared in this mutation.
func (m *OrderMutation) LoadPortIDCleared() bool {
	_, ok := m.clearedFields[order.FieldLoadPortID]
	return ok
}

// ResetLoadPortID resets all changes to the "load_port_id" field.
func (m *OrderMutation) ResetLoadPortID() {
	m.load_port_id = nil
	delete(m.clearedFields, order.FieldLoadPortID)
}

// SetDischargePortID sets the "discharge_port_id" field.
func (m *OrderMutation) SetDischargePortID(s string) {
	m.discharge_port_id = &s
}

// DischargePortID returns the value of the "discharge_port_id" field in the mutation.
func (m *OrderMutation) DischargePortID() (r string, exists bool) {
	v := m.discharge_port_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDischargePortID returns the old "discharge_port_id" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldDischargePortID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDischargePortID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDischargePortID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDischargePortID: %w", err)
	}
	return oldValue.DischargePortID, nil
}

// ClearDischargePortID clears the value of the "discharge_port_id" field.
func (m *OrderMutation) ClearDischargePortID() {
	m.discharge_port_id = nil
	m.clearedFields[order.FieldDischargePortID] = struct{}{}
}

// DischargePortIDCleared returns if the "discharge_port_id" field was cleared in this mutation.
func (m *OrderMutation) DischargePortIDCleared() bool {
	_, ok := m.clearedFields[order.FieldDischargePortID]
	return ok
}

// ResetDischargePortID resets all changes to the "discharge_port_id" field.
func (m *OrderMutation) ResetDischargePortID() {
	m.discharge_port_id = nil
	delete(m.clearedFields, order.FieldDischargePortID)
}

// SetLaycanStart sets the "laycan_start" field.
func (m *OrderMutation) SetLaycanStart(t time.Time) {
	m.laycan_start = &t
}

// LaycanStart returns the value of the "laycan_start" field in the mutation.
func (m *OrderMutation) LaycanStart() (r time.Time, exists bool) {
	v := m.laycan_start
	if v == nil {
		return
	}
	return *v, true
}

// OldLaycanStart returns the old "laycan_start" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldLaycanStart(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLaycanStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLaycanStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLaycanStart: %w", err)
	}
	return oldValue.LaycanStart, nil
}

// ClearLaycanStart clears the value of the "laycan_start" field.
func (m *OrderMutation) ClearLaycanStart() {
	m.laycan_start = nil
	m.clearedFields[order.FieldLaycanStart] = struct{}{}
}

// LaycanStartCleared returns if the "laycan_start" field was cleared in this mutation.
func (m *OrderMutation) LaycanStartCleared() bool {
	_, ok := m.clearedFields[order.FieldLaycanStart]
	return ok
}

// ResetLaycanStart resets all changes to the "laycan_start" field.
func (m *OrderMutation) ResetLaycanStart() {
	m.laycan_start = nil
	delete(m.clearedFields, order.FieldLaycanStart)
}

// SetLaycanEnd sets the "laycan_end" field.
func (m *OrderMutation) SetLaycanEnd(t time.Time) {
	m.laycan_end = &t
}

// LaycanEnd returns the value of the "laycan_end" field in the mutation.
func (m *OrderMutation) LaycanEnd() (r time.Time, exists bool) {
	v := m.laycan_end
	if v == nil {
		return
	}
	return *v, true
}

// OldLaycanEnd returns the old "laycan_end" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldLaycanEnd(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLaycanEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLaycanEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLaycanEnd: %w", err)
	}
	return oldValue.LaycanEnd, nil
}

// ClearLaycanEnd clears the value of the "laycan_end" field.
func (m *OrderMutation) ClearLaycanEnd() {
	m.laycan_end = nil
	m.clearedFields[order.FieldLaycanEnd] = struct{}{}
}

// LaycanEndCleared returns if the "laycan_end" field was cleared in this mutation.
func (m *OrderMutation) LaycanEndCleared() bool {
	_, ok := m.clearedFields[order.FieldLaycanEnd]
	return ok
}

// ResetLaycanEnd resets all changes to the "laycan_end" field.
func (m *OrderMutation) ResetLaycanEnd() {
	m.laycan_end = nil
	delete(m.clearedFields, order.FieldLaycanEnd)
}

// SetQuantity sets the "quantity" field.
func (m *OrderMutation) SetQuantity(f float64) {
	m.quantity = &f
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *OrderMutation) Quantity() (r float64, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldQuantity(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds f to the "quantity" field.
func (m *OrderMutation) AddQuantity(f float64) {
	if m.addquantity != nil {
		*m.addquantity += f
	} else {
		m.addquantity = &f
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *OrderMutation) AddedQuantity() (r float64, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ClearQuantity clears the value of the "quantity" field.
func (m *OrderMutation) ClearQuantity() {
	m.quantity = nil
	m.addquantity = nil
	m.clearedFields[order.FieldQuantity] = struct{}{}
}

// QuantityCleared returns if the "quantity" field was cleared in this mutation.
func (m *OrderMutation) QuantityCleared() bool {
	_, ok := m.clearedFields[order.FieldQuantity]
	return ok
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *OrderMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
	delete(m.clearedFields, order.FieldQuantity)
}

// SetNotes sets the "notes" field.
func (m *OrderMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *OrderMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *OrderMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[order.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *OrderMutation) NotesCleared() bool {
	_, ok := m.clearedFields[order.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *OrderMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, order.FieldNotes)
}

// SetCreatedBy sets the "created_by" field.
func (m *OrderMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *OrderMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *OrderMutation) ResetCreatedBy() {
	m.created_by = nil
}

// AddNegotiationIDs adds the "negotiations" edge to the Negotiation entity by ids.
func (m *OrderMutation) AddNegotiationIDs(ids ...string) {
	if m.negotiations == nil {
		m.negotiations = make(map[string]struct{})
	}
	for i := range ids {
		m.negotiations[ids[i]] = struct{}{}
	}
}

// ClearNegotiations clears the "negotiations" edge to the Negotiation entity.
func (m *OrderMutation) ClearNegotiations() {
	m.clearednegotiations = true
}

// NegotiationsCleared reports if the "negotiations" edge to the Negotiation entity was cleared.
func (m *OrderMutation) NegotiationsCleared() bool {
	return m.clearednegotiations
}

// RemoveNegotiationIDs removes the "negotiations" edge to the Negotiation entity by IDs.
func (m *OrderMutation) RemoveNegotiationIDs(ids ...string) {
	if m.removednegotiations == nil {
		m.removednegotiations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.negotiations, ids[i])
		m.removednegotiations[ids[i]] = struct{}{}
	}
}

// RemovedNegotiations returns the removed IDs of the "negotiations" edge to the Negotiation entity.
func (m *OrderMutation) RemovedNegotiationsIDs() (ids []string) {
	for id := range m.removednegotiations {
		ids = append(ids, id)
	}
	return
}

// NegotiationsIDs returns the "negotiations" edge IDs in the mutation.
func (m *OrderMutation) NegotiationsIDs() (ids []string) {
	for id := range m.negotiations {
		ids = append(ids, id)
	}
	return
}

// ResetNegotiations resets all changes to the "negotiations" edge.
func (m *OrderMutation) ResetNegotiations() {
	m.negotiations = nil
	m.clearednegotiations = false
	m.removednegotiations = nil
}

// AddFixtureIDs adds the "fixtures" edge to the Fixture entity by ids.
func (m *OrderMutation) AddFixtureIDs(ids ...string) {
	if m.fixtures == nil {
		m.fixtures = make(map[string]struct{})
	}
	for i := range ids {
		m.fixtures[ids[i]] = struct{}{}
	}
}

// ClearFixtures clears the "fixtures" edge to the Fixture entity.
func (m *OrderMutation) ClearFixtures() {
	m.clearedfixtures = true
}

// FixturesCleared reports if the "fixtures" edge to the Fixture entity was cleared.
func (m *OrderMutation) FixturesCleared() bool {
	return m.clearedfixtures
}

// RemoveFixtureIDs removes the "fixtures" edge to the Fixture entity by IDs.
func (m *OrderMutation) RemoveFixtureIDs(ids ...string) {
	if m.removedfixtures == nil {
		m.removedfixtures = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.fixtures, ids[i])
		m.removedfixtures[ids[i]] = struct{}{}
	}
}

// RemovedFixtures returns the removed IDs of the "fixtures" edge to the Fixture entity.
func (m *OrderMutation) RemovedFixturesIDs() (ids []string) {
	for id := range m.removedfixtures {
		ids = append(ids, id)
	}
	return
}

// FixturesIDs returns the "fixtures" edge IDs in the mutation.
func (m *OrderMutation) FixturesIDs() (ids []string) {
	for id := range m.fixtures {
		ids = append(ids, id)
	}
	return
}

// ResetFixtures resets all changes to the "fixtures" edge.
func (m *OrderMutation) ResetFixtures() {
	m.fixtures = nil
	m.clearedfixtures = false
	m.removedfixtures = nil
}

// Where appends a list predicates to the OrderMutation builder.
func (m *OrderMutation) Where(ps ...predicate.Order) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrderMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrderMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Order, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrderMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrderMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Order).
func (m *OrderMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrderMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.created_at != nil {
		fields = append(fields, order.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, order.FieldUpdatedAt)
	}
	if m.order_number != nil {
		fields = append(fields, order.FieldOrderNumber)
	}
	if m.organization_id != nil {
		fields = append(fields, order.FieldOrganizationID)
	}
	if m.market != nil {
		fields = append(fields, order.FieldMarket)
	}
	if m.status != nil {
		fields = append(fields, order.FieldStatus)
	}
	if m.cargo_type_id != nil {
		fields = append(fields, order.FieldCargoTypeID)
	}
	if m.load_port_id != nil {
		fields = append(fields, order.FieldLoadPortID)
	}
	if m.discharge_port_id != nil {
		fields = append(fields, order.FieldDischargePortID)
	}
	if m.laycan_start != nil {
		fields = append(fields, order.FieldLaycanStart)
	}
	if m.laycan_end != nil {
		fields = append(fields, order.FieldLaycanEnd)
	}
	if m.quantity != nil {
		fields = append(fields, order.FieldQuantity)
	}
	if m.notes != nil {
		fields = append(fields, order.FieldNotes)
	}
	if m.created_by != nil {
		fields = append(fields, order.FieldCreatedBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrderMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case order.FieldCreatedAt:
		return m.CreatedAt()
	case order.FieldUpdatedAt:
		return m.UpdatedAt()
	case order.FieldOrderNumber:
		return m.OrderNumber()
	case order.FieldOrganizationID:
		return m.OrganizationID()
	case order.FieldMarket:
		return m.Market()
	case order.FieldStatus:
		return m.Status()
	case order.FieldCargoTypeID:
		return m.CargoTypeID()
	case order.FieldLoadPortID:
		return m.LoadPortID()
	case order.FieldDischargePortID:
		return m.DischargePortID()
	case order.FieldLaycanStart:
		return m.LaycanStart()
	case order.FieldLaycanEnd:
		return m.LaycanEnd()
	case order.FieldQuantity:
		return m.Quantity()
	case order.FieldNotes:
		return m.Notes()
	case order.FieldCreatedBy:
		return m.CreatedBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrderMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case order.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case order.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case order.FieldOrderNumber:
		return m.OldOrderNumber(ctx)
	case order.FieldOrganizationID:
		return m.OldOrganizationID(ctx)
	case order.FieldMarket:
		return m.OldMarket(ctx)
	case order.FieldStatus:
		return m.OldStatus(ctx)
	case order.FieldCargoTypeID:
		return m.OldCargoTypeID(ctx)
	case order.FieldLoadPortID:
		return m.OldLoadPortID(ctx)
	case order.FieldDischargePortID:
		return m.OldDischargePortID(ctx)
	case order.FieldLaycanStart:
		return m.OldLaycanStart(ctx)
	case order.FieldLaycanEnd:
		return m.OldLaycanEnd(ctx)
	case order.FieldQuantity:
		return m.OldQuantity(ctx)
	case order.FieldNotes:
		return m.OldNotes(ctx)
	case order.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	}
	return nil, fmt.Errorf("unknown Order field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderMutation) SetField(name string, value ent.Value) error {
	switch name {
	case order.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case order.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case order.FieldOrderNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderNumber(v)
		return nil
	case order.FieldOrganizationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganizationID(v)
		return nil
	case order.FieldMarket:
		v, ok := value.(order.Market)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarket(v)
		return nil
	case order.FieldStatus:
		v, ok := value.(order.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case order.FieldCargoTypeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCargoTypeID(v)
		return nil
	case order.FieldLoadPortID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoadPortID(v)
		return nil
	case order.FieldDischargePortID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDischargePortID(v)
		return nil
	case order.FieldLaycanStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLaycanStart(v)
		return nil
	case order.FieldLaycanEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLaycanEnd(v)
		return nil
	case order.FieldQuantity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case order.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case order.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	}
	return fmt.Errorf("unknown Order field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrderMutation) AddedFields() []string {
	var fields []string
	if m.addquantity != nil {
		fields = append(fields, order.FieldQuantity)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrderMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case order.FieldQuantity:
		return m.AddedQuantity()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderMutation) AddField(name string, value ent.Value) error {
	switch name {
	case order.FieldQuantity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	}
	return fmt.Errorf("unknown Order numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrderMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(order.FieldOrganizationID) {
		fields = append(fields, order.FieldOrganizationID)
	}
	if m.FieldCleared(order.FieldCargoTypeID) {
		fields = append(fields, order.FieldCargoTypeID)
	}
	if m.FieldCleared(order.FieldLoadPortID) {
		fields = append(fields, order.FieldLoadPortID)
	}
	if m.FieldCleared(order.FieldDischargePortID) {
		fields = append(fields, order.FieldDischargePortID)
	}
	if m.FieldCleared(order.FieldLaycanStart) {
		fields = append(fields, order.FieldLaycanStart)
	}
	if m.FieldCleared(order.FieldLaycanEnd) {
		fields = append(fields, order.FieldLaycanEnd)
	}
	if m.FieldCleared(order.FieldQuantity) {
		fields = append(fields, order.FieldQuantity)
	}
	if m.FieldCleared(order.FieldNotes) {
		fields = append(fields, order.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrderMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrderMutation) ClearField(name string) error {
	switch name {
	case order.FieldOrganizationID:
		m.ClearOrganizationID()
		return nil
	case order.FieldCargoTypeID:
		m.ClearCargoTypeID()
		return nil
	case order.FieldLoadPortID:
		m.ClearLoadPortID()
		return nil
	case order.FieldDischargePortID:
		m.ClearDischargePortID()
		return nil
	case order.FieldLaycanStart:
		m.ClearLaycanStart()
		return nil
	case order.FieldLaycanEnd:
		m.ClearLaycanEnd()
		return nil
	case order.FieldQuantity:
		m.ClearQuantity()
		return nil
	case order.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown Order nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrderMutation) ResetField(name string) error {
	switch name {
	case order.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case order.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case order.FieldOrderNumber:
		m.ResetOrderNumber()
		return nil
	case order.FieldOrganizationID:
		m.ResetOrganizationID()
		return nil
	case order.FieldMarket:
		m.ResetMarket()
		return nil
	case order.FieldStatus:
		m.ResetStatus()
		return nil
	case order.FieldCargoTypeID:
		m.ResetCargoTypeID()
		return nil
	case order.FieldLoadPortID:
		m.ResetLoadPortID()
		return nil
	case order.FieldDischargePortID:
		m.ResetDischargePortID()
		return nil
	case order.FieldLaycanStart:
		m.ResetLaycanStart()
		return nil
	case order.FieldLaycanEnd:
		m.ResetLaycanEnd()
		return nil
	case order.FieldQuantity:
		m.ResetQuantity()
		return nil
	case order.FieldNotes:
		m.ResetNotes()
		return nil
	case order.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown Order field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrderMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.negotiations != nil {
		edges = append(edges, order.EdgeNegotiations)
	}
	if m.fixtures != nil {
		edges = append(edges, order.EdgeFixtures)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrderMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case order.EdgeNegotiations:
		ids := make([]ent.Value, 0, len(m.negotiations))
		for id := range m.negotiations {
			ids = append(ids, id)
		}
		return ids
	case order.EdgeFixtures:
		ids := make([]ent.Value, 0, len(m.fixtures))
		for id := range m.fixtures {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrderMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removednegotiations != nil {
		edges = append(edges, order.EdgeNegotiations)
	}
	if m.removedfixtures != nil {
		edges = append(edges, order.EdgeFixtures)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrderMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case order.EdgeNegotiations:
		ids := make([]ent.Value, 0, len(m.removednegotiations))
		for id := range m.removednegotiations {
			ids = append(ids, id)
		}
		return ids
	case order.EdgeFixtures:
		ids := make([]ent.Value, 0, len(m.removedfixtures))
		for id := range m.removedfixtures {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrderMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearednegotiations {
		edges = append(edges, order.EdgeNegotiations)
	}
	if m.clearedfixtures {
		edges = append(edges, order.EdgeFixtures)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrderMutation) EdgeCleared(name string) bool {
	switch name {
	case order.EdgeNegotiations:
		return m.clearednegotiations
	case order.EdgeFixtures:
		return m.clearedfixtures
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrderMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Order unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrderMutation) ResetEdge(name string) error {
	switch name {
	case order.EdgeNegotiations:
		m.ResetNegotiations()
		return nil
	case order.EdgeFixtures:
		m.ResetFixtures()
		return nil
	}
	return fmt.Errorf("unknown Order edge %s", name)
}

// OrganizationMutation represents an operation that mutates the Organization nodes in the graph.
type OrganizationMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	created_at         *time.Time
	updated_at         *time.Time
	name               *string
	active             *bool
	clearedFields      map[string]struct{}
	users              map[string]struct{}
	removedusers       map[string]struct{}
	clearedusers       bool
	invitations        map[string]struct{}
	removedinvitations map[string]struct{}
	clearedinvitations bool
	done               bool
	oldValue           func(context.Context) (*Organization, error)
	predicates         []predicate.Organization
}

var _ ent.Mutation = (*OrganizationMutation)(nil)

// organizationOption allows management of the mutation configuration using functional options.
type organizationOption func(*OrganizationMutation)

// newOrganizationMutation creates new mutation for the Organization entity.
func newOrganizationMutation(c config, op Op, opts ...organizationOption) *OrganizationMutation {
	m := &OrganizationMutation{
		config:        c,
		op:            op,
		typ:           TypeOrganization,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrganizationID sets the ID field of the mutation.
func withOrganizationID(id string) organizationOption {
	return func(m *OrganizationMutation) {
		var (
			err   error
			once  sync.Once
			value *Organization
		)
		m.oldValue = func(ctx context.Context) (*Organization, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Organization.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrganization sets the old Organization of the mutation.
func withOrganization(node *Organization) organizationOption {
	return func(m *OrganizationMutation) {
		m.oldValue = func(context.Context) (*Organization, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrganizationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrganizationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Organization entities.
func (m *OrganizationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrganizationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrganizationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Organization.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *OrganizationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OrganizationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Organization entity.
// If the Organization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganizationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OrganizationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *OrganizationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *OrganizationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Organization entity.
// If the Organization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganizationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *OrganizationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *OrganizationMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *OrganizationMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Organization entity.
// If the Organization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganizationMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *OrganizationMutation) ResetName() {
	m.name = nil
}

// SetActive sets the "active" field.
func (m *OrganizationMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *OrganizationMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Organization entity.
// If the Organization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganizationMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *OrganizationMutation) ResetActive() {
	m.active = nil
}

// AddUserIDs adds the "users" edge to the User entity by ids.
func (m *OrganizationMutation) AddUserIDs(ids ...string) {
	if m.users == nil {
		m.users = make(map[string]struct{})
	}
	for i := range ids {
		m.users[ids[i]] = struct{}{}
	}
}

// ClearUsers clears the "users" edge to the User entity.
func (m *OrganizationMutation) ClearUsers() {
	m.clearedusers = true
}

// UsersCleared reports if the "users" edge to the User entity was cleared.
func (m *OrganizationMutation) UsersCleared() bool {
	return m.clearedusers
}

// RemoveUserIDs removes the "users" edge to the User entity by IDs.
func (m *OrganizationMutation) RemoveUserIDs(ids ...string) {
	if m.removedusers == nil {
		m.removedusers = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.users, ids[i])
		m.removedusers[ids[i]] = struct{}{}
	}
}

// RemovedUsers returns the removed IDs of the "users" edge to the User entity.
func (m *OrganizationMutation) RemovedUsersIDs() (ids []string) {
	for id := range m.removedusers {
		ids = append(ids, id)
	}
	return
}

// UsersIDs returns the "users" edge IDs in the mutation.
func (m *OrganizationMutation) UsersIDs() (ids []string) {
	for id := range m.users {
		ids = append(ids, id)
	}
	return
}

// ResetUsers resets all changes to the "users" edge.
func (m *OrganizationMutation) ResetUsers() {
	m.users = nil
	m.clearedusers = false
	m.removedusers = nil
}

// AddInvitationIDs adds the "invitations" edge to the Invitation entity by ids.
func (m *OrganizationMutation) AddInvitationIDs(ids ...string) {
	if m.invitations == nil {
		m.invitations = make(map[string]struct{})
	}
	for i := range ids {
		m.invitations[ids[i]] = struct{}{}
	}
}

// ClearInvitations clears the "invitations" edge to the Invitation entity.
func (m *OrganizationMutation) ClearInvitations() {
	m.clearedinvitations = true
}

// InvitationsCleared reports if the "invitations" edge to the Invitation entity was cleared.
func (m *OrganizationMutation) InvitationsCleared() bool {
	return m.clearedinvitations
}

// RemoveInvitationIDs removes the "invitations" edge to the Invitation entity by IDs.
func (m *OrganizationMutation) RemoveInvitationIDs(ids ...string) {
	if m.removedinvitations == nil {
		m.removedinvitations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.invitations, ids[i])
		m.removedinvitations[ids[i]] = struct{}{}
	}
}

// RemovedInvitations returns the removed IDs of the "invitations" edge to the Invitation entity.
func (m *OrganizationMutation) RemovedInvitationsIDs() (ids []string) {
	for id := range m.removedinvitations {
		ids = append(ids, id)
	}
	return
}

// InvitationsIDs returns the "invitations" edge IDs in the mutation.
func (m *OrganizationMutation) InvitationsIDs() (ids []string) {
	for id := range m.invitations {
		ids = append(ids, id)
	}
	return
}

// ResetInvitations resets all changes to the "invitations" edge.
func (m *OrganizationMutation) ResetInvitations() {
	m.invitations = nil
	m.clearedinvitations = false
	m.removedinvitations = nil
}

// Where appends a list predicates to the OrganizationMutation builder.
func (m *OrganizationMutation) Where(ps ...predicate.Organization) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrganizationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrganizationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Organization, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrganizationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrganizationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Organization).
func (m *OrganizationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrganizationMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, organization.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, organization.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, organization.FieldName)
	}
	if m.active != nil {
		fields = append(fields, organization.FieldActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrganizationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case organization.FieldCreatedAt:
		return m.CreatedAt()
	case organization.FieldUpdatedAt:
		return m.UpdatedAt()
	case organization.FieldName:
		return m.Name()
	case organization.FieldActive:
		return m.Active()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrganizationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case organization.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case organization.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case organization.FieldName:
		return m.OldName(ctx)
	case organization.FieldActive:
		return m.OldActive(ctx)
	}
	return nil, fmt.Errorf("unknown Organization field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrganizationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case organization.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case organization.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case organization.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case organization.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	}
	return fmt.Errorf("unknown Organization field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrganizationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrganizationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrganizationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Organization numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrganizationMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrganizationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrganizationMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Organization nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrganizationMutation) ResetField(name string) error {
	switch name {
	case organization.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case organization.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case organization.FieldName:
		m.ResetName()
		return nil
	case organization.FieldActive:
		m.ResetActive()
		return nil
	}
	return fmt.Errorf("unknown Organization field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrganizationMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.users != nil {
		edges = append(edges, organization.EdgeUsers)
	}
	if m.invitations != nil {
		edges = append(edges, organization.EdgeInvitations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrganizationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case organization.EdgeUsers:
		ids := make([]ent.Value, 0, len(m.users))
		for id := range m.users {
			ids = append(ids, id)
		}
		return ids
	case organization.EdgeInvitations:
		ids := make([]ent.Value, 0, len(m.invitations))
		for id := range m.invitations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrganizationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedusers != nil {
		edges = append(edges, organization.EdgeUsers)
	}
	if m.removedinvitations != nil {
		edges = append(edges, organization.EdgeInvitations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrganizationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case organization.EdgeUsers:
		ids := make([]ent.Value, 0, len(m.removedusers))
		for id := range m.removedusers {
			ids = append(ids, id)
		}
		return ids
	case organization.EdgeInvitations:
		ids := make([]ent.Value, 0, len(m.removedinvitations))
		for id := range m.removedinvitations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrganizationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedusers {
		edges = append(edges, organization.EdgeUsers)
	}
	if m.clearedinvitations {
		edges = append(edges, organization.EdgeInvitations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrganizationMutation) EdgeCleared(name string) bool {
	switch name {
	case organization.EdgeUsers:
		return m.clearedusers
	case organization.EdgeInvitations:
		return m.clearedinvitations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrganizationMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Organization unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrganizationMutation) ResetEdge(name string) error {
	switch name {
	case organization.EdgeUsers:
		m.ResetUsers()
		return nil
	case organization.EdgeInvitations:
		m.ResetInvitations()
		return nil
	}
	return fmt.Errorf("unknown Organization edge %s", name)
}

// PasswordResetTokenMutation represents an operation that mutates the PasswordResetToken nodes in the graph.
type PasswordResetTokenMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	updated_at    *time.Time
	token         *string
	expires_at    *time.Time
	used          *bool
	used_at       *time.Time
	clearedFields map[string]struct{}
	user          *string
	cleareduser   bool
	done          bool
	oldValue      func(context.Context) (*PasswordResetToken, error)
	predicates    []predicate.PasswordResetToken
}

var _ ent.Mutation = (*PasswordResetTokenMutation)(nil)

// passwordresettokenOption allows management of the mutation configuration using functional options.
type passwordresettokenOption func(*PasswordResetTokenMutation)

// newPasswordResetTokenMutation creates new mutation for the PasswordResetToken entity.
func newPasswordResetTokenMutation(c config, op Op, opts ...passwordresettokenOption) *PasswordResetTokenMutation {
	m := &PasswordResetTokenMutation{
		config:        c,
		op:            op,
		typ:           TypePasswordResetToken,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPasswordResetTokenID sets the ID field of the mutation.
func withPasswordResetTokenID(id string) passwordresettokenOption {
	return func(m *PasswordResetTokenMutation) {
		var (
			err   error
			once  sync.Once
			value *PasswordResetToken
		)
		m.oldValue = func(ctx context.Context) (*PasswordResetToken, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PasswordResetToken.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPasswordResetToken sets the old PasswordResetToken of the mutation.
func withPasswordResetToken(node *PasswordResetToken) passwordresettokenOption {
	return func(m *PasswordResetTokenMutation) {
		m.oldValue = func(context.Context) (*PasswordResetToken, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PasswordResetTokenMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PasswordResetTokenMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PasswordResetToken entities.
func (m *PasswordResetTokenMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PasswordResetTokenMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PasswordResetTokenMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PasswordResetToken.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PasswordResetTokenMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PasswordResetTokenMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PasswordResetToken entity.
// If the PasswordResetToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PasswordResetTokenMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PasswordResetTokenMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PasswordResetTokenMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PasswordResetTokenMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PasswordResetToken entity.
// If the PasswordResetToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PasswordResetTokenMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PasswordResetTokenMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetToken sets the "token" field.
func (m *PasswordResetTokenMutation) SetToken(s string) {
	m.token = &s
}

// Token returns the value of the "token" field in the mutation.
func (m *PasswordResetTokenMutation) Token() (r string, exists bool) {
	v := m.token
	if v == nil {
		return
	}
	return *v, true
}

// OldToken returns the old "token" field's value of the PasswordResetToken entity.
// If the PasswordResetToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PasswordResetTokenMutation) OldToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToken: %w", err)
	}
	return oldValue.Token, nil
}

// ResetToken resets all changes to the "token" field.
func (m *PasswordResetTokenMutation) ResetToken() {
	m.token = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *PasswordResetTokenMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *PasswordResetTokenMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the PasswordResetToken entity.
// If the PasswordResetToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PasswordResetTokenMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *PasswordResetTokenMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetUsed sets the "used" field.
func (m *PasswordResetTokenMutation) SetUsed(b bool) {
	m.used = &b
}

// Used returns the value of the "used" field in the mutation.
func (m *PasswordResetTokenMutation) Used() (r bool, exists bool) {
	v := m.used
	if v == nil {
		return
	}
	return *v, true
}

// OldUsed returns the old "used" field's value of the PasswordResetToken entity.
// If the PasswordResetToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PasswordResetTokenMutation) OldUsed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsed: %w", err)
	}
	return oldValue.Used, nil
}

// ResetUsed resets all changes to the "used" field.
func (m *PasswordResetTokenMutation) ResetUsed() {
	m.used = nil
}

// SetUsedAt sets the "used_at" field.
func (m *PasswordResetTokenMutation) SetUsedAt(t time.Time) {
	m.used_at = &t
}

// UsedAt returns the value of the "used_at" field in the mutation.
func (m *PasswordResetTokenMutation) UsedAt() (r time.Time, exists bool) {
	v := m.used_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUsedAt returns the old "used_at" field's value of the PasswordResetToken entity.
// If the PasswordResetToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PasswordResetTokenMutation) OldUsedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsedAt: %w", err)
	}
	return oldValue.UsedAt, nil
}

// ClearUsedAt clears the value of the "used_at" field.
func (m *PasswordResetTokenMutation) ClearUsedAt() {
	m.used_at = nil
	m.clearedFields[passwordresettoken.FieldUsedAt] = struct{}{}
}

// UsedAtCleared returns if the "used_at" field was cleared in this mutation.
func (m *PasswordResetTokenMutation) UsedAtCleared() bool {
	_, ok := m.clearedFields[passwordresettoken.FieldUsedAt]
	return ok
}

// ResetUsedAt resets all changes to the "used_at" field.
func (m *PasswordResetTokenMutation) ResetUsedAt() {
	m.used_at = nil
	delete(m.clearedFields, passwordresettoken.FieldUsedAt)
}

// SetUserID sets the "user" edge to the User entity by id.
func (m *PasswordResetTokenMutation) SetUserID(id string) {
	m.user = &id
}

// ClearUser clears the "user" edge to the User entity.
func (m *PasswordResetTokenMutation) ClearUser() {
	m.cleareduser = true
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *PasswordResetTokenMutation) UserCleared() bool {
	return m.cleareduser
}

// UserID returns the "user" edge ID in the mutation.
func (m *PasswordResetTokenMutation) UserID() (id string, exists bool) {
	if m.user != nil {
		return *m.user, true
	}
	return
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *PasswordResetTokenMutation) UserIDs() (ids []string) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *PasswordResetTokenMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the PasswordResetTokenMutation builder.
func (m *PasswordResetTokenMutation) Where(ps ...predicate.PasswordResetToken) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PasswordResetTokenMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PasswordResetTokenMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PasswordResetToken, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PasswordResetTokenMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PasswordResetTokenMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PasswordResetToken).
func (m *PasswordResetTokenMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PasswordResetTokenMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, passwordresettoken.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, passwordresettoken.FieldUpdatedAt)
	}
	if m.token != nil {
		fields = append(fields, passwordresettoken.FieldToken)
	}
	if m.expires_at != nil {
		fields = append(fields, passwordresettoken.FieldExpiresAt)
	}
	if m.used != nil {
		fields = append(fields, passwordresettoken.FieldUsed)
	}
	if m.used_at != nil {
		fields = append(fields, passwordresettoken.FieldUsedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PasswordResetTokenMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case passwordresettoken.FieldCreatedAt:
		return m.CreatedAt()
	case passwordresettoken.FieldUpdatedAt:
		return m.UpdatedAt()
	case passwordresettoken.FieldToken:
		return m.Token()
	case passwordresettoken.FieldExpiresAt:
		return m.ExpiresAt()
	case passwordresettoken.FieldUsed:
		return m.Used()
	case passwordresettoken.FieldUsedAt:
		return m.UsedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PasswordResetTokenMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case passwordresettoken.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case passwordresettoken.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case passwordresettoken.FieldToken:
		return m.OldToken(ctx)
	case passwordresettoken.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case passwordresettoken.FieldUsed:
		return m.OldUsed(ctx)
	case passwordresettoken.FieldUsedAt:
		return m.OldUsedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PasswordResetToken field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PasswordResetTokenMutation) SetField(name string, value ent.Value) error {
	switch name {
	case passwordresettoken.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case passwordresettoken.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case passwordresettoken.FieldToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToken(v)
		return nil
	case passwordresettoken.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case passwordresettoken.FieldUsed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsed(v)
		return nil
	case passwordresettoken.FieldUsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PasswordResetToken field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PasswordResetTokenMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PasswordResetTokenMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PasswordResetTokenMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PasswordResetToken numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PasswordResetTokenMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(passwordresettoken.FieldUsedAt) {
		fields = append(fields, passwordresettoken.FieldUsedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PasswordResetTokenMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PasswordResetTokenMutation) ClearField(name string) error {
	switch name {
	case passwordresettoken.FieldUsedAt:
		m.ClearUsedAt()
		return nil
	}
	return fmt.Errorf("unknown PasswordResetToken nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PasswordResetTokenMutation) ResetField(name string) error {
	switch name {
	case passwordresettoken.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case passwordresettoken.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case passwordresettoken.FieldToken:
		m.ResetToken()
		return nil
	case passwordresettoken.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case passwordresettoken.FieldUsed:
		m.ResetUsed()
		return nil
	case passwordresettoken.FieldUsedAt:
		m.ResetUsedAt()
		return nil
	}
	return fmt.Errorf("unknown PasswordResetToken field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PasswordResetTokenMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, passwordresettoken.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PasswordResetTokenMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case passwordresettoken.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PasswordResetTokenMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PasswordResetTokenMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PasswordResetTokenMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, passwordresettoken.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PasswordResetTokenMutation) EdgeCleared(name string) bool {
	switch name {
	case passwordresettoken.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PasswordResetTokenMutation) ClearEdge(name string) error {
	switch name {
	case passwordresettoken.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown PasswordResetToken unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PasswordResetTokenMutation) ResetEdge(name string) error {
	switch name {
	case passwordresettoken.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown PasswordResetToken edge %s", name)
}

// PortMutation represents an operation that mutates the Port nodes in the graph.
type PortMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	updated_at    *time.Time
	name          *string
	country       *string
	unlocode      *string
	active        *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Port, error)
	predicates    []predicate.Port
}

var _ ent.Mutation = (*PortMutation)(nil)

// portOption allows management of the mutation configuration using functional options.
type portOption func(*PortMutation)

// newPortMutation creates new mutation for the Port entity.
func newPortMutation(c config, op Op, opts ...portOption) *PortMutation {
	m := &PortMutation{
		config:        c,
		op:            op,
		typ:           TypePort,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPortID sets the ID field of the mutation.
func withPortID(id string) portOption {
	return func(m *PortMutation) {
		var (
			err   error
			once  sync.Once
			value *Port
		)
		m.oldValue = func(ctx context.Context) (*Port, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Port.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPort sets the old Port of the mutation.
func withPort(node *Port) portOption {
	return func(m *PortMutation) {
		m.oldValue = func(context.Context) (*Port, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PortMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PortMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Port entities.
func (m *PortMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PortMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PortMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Port.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PortMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PortMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Port entity.
// If the Port object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PortMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PortMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PortMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PortMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Port entity.
// If the Port object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PortMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PortMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *PortMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PortMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Port entity.
// If the Port object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PortMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PortMutation) ResetName() {
	m.name = nil
}

// SetCountry sets the "country" field.
func (m *PortMutation) SetCountry(s string) {
	m.country = &s
}

// Country returns the value of the "country" field in the mutation.
func (m *PortMutation) Country() (r string, exists bool) {
	v := m.country
	if v == nil {
		return
	}
	return *v, true
}

// OldCountry returns the old "country" field's value of the Port entity.
// If the Port object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PortMutation) OldCountry(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCountry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCountry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCountry: %w", err)
	}
	return oldValue.Country, nil
}

// ClearCountry clears the value of the "country" field.
func (m *PortMutation) ClearCountry() {
	m.country = nil
	m.clearedFields[port.FieldCountry] = struct{}{}
}

// CountryCleared returns if the "country" field was cleared in this mutation.
func (m *PortMutation) CountryCleared() bool {
	_, ok := m.clearedFields[port.FieldCountry]
	return ok
}

// ResetCountry resets all changes to the "country" field.
func (m *PortMutation) ResetCountry() {
	m.country = nil
	delete(m.clearedFields, port.FieldCountry)
}

// SetUnlocode sets the "unlocode" field.
func (m *PortMutation) SetUnlocode(s string) {
	m.unlocode = &s
}

// Unlocode returns the value of the "unlocode" field in the mutation.
func (m *PortMutation) Unlocode() (r string, exists bool) {
	v := m.unlocode
	if v == nil {
		return
	}
	return *v, true
}

// OldUnlocode returns the old "unlocode" field's value of the Port entity.
// If the Port object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PortMutation) OldUnlocode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnlocode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnlocode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnlocode: %w", err)
	}
	return oldValue.Unlocode, nil
}

// ClearUnlocode clears the value of the "unlocode" field.
func (m *PortMutation) ClearUnlocode() {
	m.unlocode = nil
	m.clearedFields[port.FieldUnlocode] = struct{}{}
}

// UnlocodeCleared returns if the "unlocode" field was cleared in this mutation.
func (m *PortMutation) UnlocodeCleared() bool {
	_, ok := m.clearedFields[port.FieldUnlocode]
	return ok
}

// ResetUnlocode resets all changes to the "unlocode" field.
func (m *PortMutation) ResetUnlocode() {
	m.unlocode = nil
	delete(m.clearedFields, port.FieldUnlocode)
}

// SetActive sets the "active" field.
func (m *PortMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *PortMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Port entity.
// If the Port object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PortMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *PortMutation) ResetActive() {
	m.active = nil
}

// Where appends a list predicates to the PortMutation builder.
func (m *PortMutation) Where(ps ...predicate.Port) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PortMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PortMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Port, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PortMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PortMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Port).
func (m *PortMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PortMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, port.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, port.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, port.FieldName)
	}
	if m.country != nil {
		fields = append(fields, port.FieldCountry)
	}
	if m.unlocode != nil {
		fields = append(fields, port.FieldUnlocode)
	}
	if m.active != nil {
		fields = append(fields, port.FieldActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PortMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case port.FieldCreatedAt:
		return m.CreatedAt()
	case port.FieldUpdatedAt:
		return m.UpdatedAt()
	case port.FieldName:
		return m.Name()
	case port.FieldCountry:
		return m.Country()
	case port.FieldUnlocode:
		return m.Unlocode()
	case port.FieldActive:
		return m.Active()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PortMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case port.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case port.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case port.FieldName:
		return m.OldName(ctx)
	case port.FieldCountry:
		return m.OldCountry(ctx)
	case port.FieldUnlocode:
		return m.OldUnlocode(ctx)
	case port.FieldActive:
		return m.OldActive(ctx)
	}
	return nil, fmt.Errorf("unknown Port field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PortMutation) SetField(name string, value ent.Value) error {
	switch name {
	case port.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case port.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case port.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case port.FieldCountry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCountry(v)
		return nil
	case port.FieldUnlocode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnlocode(v)
		return nil
	case port.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	}
	return fmt.Errorf("unknown Port field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PortMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PortMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PortMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Port numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PortMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(port.FieldCountry) {
		fields = append(fields, port.FieldCountry)
	}
	if m.FieldCleared(port.FieldUnlocode) {
		fields = append(fields, port.FieldUnlocode)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PortMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PortMutation) ClearField(name string) error {
	switch name {
	case port.FieldCountry:
		m.ClearCountry()
		return nil
	case port.FieldUnlocode:
		m.ClearUnlocode()
		return nil
	}
	return fmt.Errorf("unknown Port nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PortMutation) ResetField(name string) error {
	switch name {
	case port.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case port.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case port.FieldName:
		m.ResetName()
		return nil
	case port.FieldCountry:
		m.ResetCountry()
		return nil
	case port.FieldUnlocode:
		m.ResetUnlocode()
		return nil
	case port.FieldActive:
		m.ResetActive()
		return nil
	}
	return fmt.Errorf("unknown Port field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PortMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PortMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PortMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PortMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PortMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PortMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PortMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Port unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PortMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Port edge %s", name)
}

// RecapManagerMutation represents an operation that mutates the RecapManager nodes in the graph.
type RecapManagerMutation struct {
	config
	op                Op
	typ               string
	id                *string
	created_at        *time.Time
	updated_at        *time.Time
	recap_number      *string
	order_id          *string
	negotiation_id    *string
	parent_recap_id   *string
	contract_type     *string
	delivery_type     *string
	market_index      *string
	vessel_id         *string
	company_id        *string
	load_port_id      *string
	discharge_port_id *string
	cargo_type_id     *string
	freight_rate      *float64
	addfreight_rate   *float64
	laycan_start      *time.Time
	laycan_end        *time.Time
	quantity          *float64
	addquantity       *float64
	demurrage_rate    *float64
	adddemurrage_rate *float64
	status            *recapmanager.Status
	created_by        *string
	clearedFields     map[string]struct{}
	fixture           *string
	clearedfixture    bool
	done              bool
	oldValue          func(context.Context) (*RecapManager, error)
	predicates        []predicate.RecapManager
}

var _ ent.Mutation = (*RecapManagerMutation)(nil)

// recapmanagerOption allows management of the mutation configuration using functional options.
type recapmanagerOption func(*RecapManagerMutation)

// newRecapManagerMutation creates new mutation for the RecapManager entity.
func newRecapManagerMutation(c config, op Op, opts ...recapmanagerOption) *RecapManagerMutation {
	m := &RecapManagerMutation{
		config:        c,
		op:            op,
		typ:           TypeRecapManager,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRecapManagerID sets the ID field of the mutation.
func withRecapManagerID(id string) recapmanagerOption {
	return func(m *RecapManagerMutation) {
		var (
			err   error
			once  sync.Once
			value *RecapManager
		)
		m.oldValue = func(ctx context.Context) (*RecapManager, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RecapManager.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRecapManager sets the old RecapManager of the mutation.
func withRecapManager(node *RecapManager) recapmanagerOption {
	return func(m *RecapManagerMutation) {
		m.oldValue = func(context.Context) (*RecapManager, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RecapManagerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RecapManagerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RecapManager entities.
func (m *RecapManagerMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RecapManagerMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RecapManagerMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RecapManager.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *RecapManagerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RecapManagerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RecapManager entity.
// If the RecapManager object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecapManagerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RecapManagerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RecapManagerMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RecapManagerMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RecapManager entity.
// If the RecapManager object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecapManagerMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RecapManagerMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetRecapNumber sets the "recap_number" field.
func (m *RecapManagerMutation) SetRecapNumber(s string) {
	m.recap_number = &s
}

// RecapNumber returns the value of the "recap_number" field in the mutation.
func (m *RecapManagerMutation) RecapNumber() (r string, exists bool) {
	v := m.recap_number
	if v == nil {
		return
	}
	return *v, true
}

// OldRecapNumber returns the old "recap_number" field's value of the RecapManager entity.
// If the RecapManager object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecapManagerMutation) OldRecapNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecapNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecapNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecapNumber: %w", err)
	}
	return oldValue.RecapNumber, nil
}

// ResetRecapNumber resets all changes to the "recap_number" field.
func (m *RecapManagerMutation) ResetRecapNumber() {
	m.recap_number = nil
}

// SetOrderID sets the "order_id" field.
func (m *RecapManagerMutation) SetOrderID(s string) {
	m.order_id = &s
}

// OrderID returns the value of the "order_id" field in the mutation.
func (m *RecapManagerMutation) OrderID() (r string, exists bool) {
	v := m.order_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderID returns the old "order_id" field's value of the RecapManager entity.
// If the RecapManager object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecapManagerMutation) OldOrderID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderID: %w", err)
	}
	return oldValue.OrderID, nil
}

// ClearOrderID clears the value of the "order_id" field.
func (m *RecapManagerMutation) ClearOrderID() {
	m.order_id = nil
	m.clearedFields[recapmanager.FieldOrderID] = struct{}{}
}

// OrderIDCleared returns if the "order_id" field was cleared in this mutation.
func (m *RecapManagerMutation) OrderIDCleared() bool {
	_, ok := m.clearedFields[recapmanager.FieldOrderID]
	return ok
}

// ResetOrderID resets all changes to the "order_id" field.
func (m *RecapManagerMutation) ResetOrderID() {
	m.order_id = nil
	delete(m.clearedFields, recapmanager.FieldOrderID)
}

// SetNegotiationID sets the "negotiation_id" field.
func (m *RecapManagerMutation) SetNegotiationID(s string) {
	m.negotiation_id = &s
}

// NegotiationID returns the value of the "negotiation_id" field in the mutation.
func (m *RecapManagerMutation) NegotiationID() (r string, exists bool) {
	v := m.negotiation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNegotiationID returns the old "negotiation_id" field's value of the RecapManager entity.
// If the RecapManager object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecapManagerMutation) OldNegotiationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNegotiationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNegotiationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNegotiationID: %w", err)
	}
	return oldValue.NegotiationID, nil
}

// ClearNegotiationID clears the value of the "negotiation_id" field.
func (m *RecapManagerMutation) ClearNegotiationID() {
	m.negotiation_id = nil
	m.clearedFields[recapmanager.FieldNegotiationID] = struct{}{}
}

// NegotiationIDCleared returns if the "negotiation_id" field was cleared in this mutation.
func (m *RecapManagerMutation) NegotiationIDCleared() bool {
	_, ok := m.clearedFields[recapmanager.FieldNegotiationID]
	return ok
}

// ResetNegotiationID resets all changes to the "negotiation_id" field.
func (m *RecapManagerMutation) ResetNegotiationID() {
	m.negotiation_id = nil
	delete(m.clearedFields, recapmanager.FieldNegotiationID)
}

// SetParentRecapID sets the "parent_recap_id" field.
func (m *RecapManagerMutation) SetParentRecapID(s string) {
	m.parent_recap_id = &s
}

// ParentRecapID returns the value of the "parent_recap_id" field in the mutation.
func (m *RecapManagerMutation) ParentRecapID() (r string, exists bool) {
	v := m.parent_recap_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentRecapID returns the old "parent_recap_id" field's value of the RecapManager entity.
// If the RecapManager object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecapManagerMutation) OldParentRecapID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentRecapID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentRecapID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentRecapID: %w", err)
	}
	return oldValue.ParentRecapID, nil
}

// ClearParentRecapID clears the value of the "parent_recap_id" field.
func (m *RecapManagerMutation) ClearParentRecapID() {
	m.parent_recap_id = nil
	m.clearedFields[recapmanager.FieldParentRecapID] = struct{}{}
}

// ParentRecapIDCleared returns if the "parent_recap_id" field was cleared in this mutation.
func (m *RecapManagerMutation) ParentRecapIDCleared() bool {
	_, ok := m.clearedFields[recapmanager.FieldParentRecapID]
	return ok
}

// ResetParentRecapID resets all changes to the "parent_recap_id" field.
func (m *RecapManagerMutation) ResetParentRecapID() {
	m.parent_recap_id = nil
	delete(m.clearedFields, recapmanager.FieldParentRecapID)
}

// SetContractType sets the "contract_type" field.
func (m *RecapManagerMutation) SetContractType(s string) {
	m.contract_type = &s
}

// ContractType returns the value of the "contract_type" field in the mutation.
func (m *RecapManagerMutation) ContractType() (r string, exists bool) {
	v := m.contract_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContractType returns the old "contract_type" field's value of the RecapManager entity.
// If the RecapManager object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecapManagerMutation) OldContractType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractType: %w", err)
	}
	return oldValue.ContractType, nil
}

// ClearContractType clears the value of the "contract_type" field.
func (m *RecapManagerMutation) ClearContractType() {
	m.contract_type = nil
	m.clearedFields[recapmanager.FieldContractType] = struct{}{}
}

// ContractTypeCleared returns if the "contract_type" field was cleared in this mutation.
func (m *RecapManagerMutation) ContractTypeCleared() bool {
	_, ok := m.clearedFields[recapmanager.FieldContractType]
	return ok
}

// ResetContractType resets all changes to the "contract_type" field.
func (m *RecapManagerMutation) ResetContractType() {
	m.contract_type = nil
	delete(m.clearedFields, recapmanager.FieldContractType)
}

// SetDeliveryType sets the "delivery_type" field.
func (m *RecapManagerMutation) SetDeliveryType(s string) {
	m.delivery_type = &s
}

// DeliveryType returns the value of the "delivery_type" field in the mutation.
func (m *RecapManagerMutation) DeliveryType() (r string, exists bool) {
	v := m.delivery_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveryType returns the old "delivery_type" field's value of the RecapManager entity.
// If the RecapManager object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecapManagerMutation) OldDeliveryType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveryType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveryType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveryType: %w", err)
	}
	return oldValue.DeliveryType, nil
}

// ClearDeliveryType clears the value of the "delivery_type" field.
func (m *RecapManagerMutation) ClearDeliveryType() {
	m.delivery_type = nil
	m.clearedFields[recapmanager.FieldDeliveryType] = struct{}{}
}

// DeliveryTypeCleared returns if the "delivery_type" field was cleared in this mutation.
func (m *RecapManagerMutation) DeliveryTypeCleared() bool {
	_, ok := m.clearedFields[recapmanager.FieldDeliveryType]
	return ok
}

// ResetDeliveryType resets all changes to the "delivery_type" field.
func (m *RecapManagerMutation) ResetDeliveryType() {
	m.delivery_type = nil
	delete(m.clearedFields, recapmanager.FieldDeliveryType)
}

// SetMarketIndex sets the "market_index" field.
func (m *RecapManagerMutation) SetMarketIndex(s string) {
	m.market_index = &s
}

// MarketIndex returns the value of the "market_index" field in the mutation.
func (m *RecapManagerMutation) MarketIndex() (r string, exists bool) {
	v := m.market_index
	if v == nil {
		return
	}
	return *v, true
}

// OldMarketIndex returns the old "market_index" field's value of the RecapManager entity.
// If the RecapManager object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecapManagerMutation) OldMarketIndex(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarketIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarketIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarketIndex: %w", err)
	}
	return oldValue.MarketIndex, nil
}

// ClearMarketIndex clears the value of the "market_index" field.
func (m *RecapManagerMutation) ClearMarketIndex() {
	m.market_index = nil
	m.clearedFields[recapmanager.FieldMarketIndex] = struct{}{}
}

// MarketIndexCleared returns if the "market_index" field was cleared in this mutation.
func (m *RecapManagerMutation) MarketIndexCleared() bool {
	_, ok := m.clearedFields[recapmanager.FieldMarketIndex]
	return ok
}

// ResetMarketIndex resets all changes to the "market_index" field.
func (m *RecapManagerMutation) ResetMarketIndex() {
	m.market_index = nil
	delete(m.clearedFields, recapmanager.FieldMarketIndex)
}

// SetVesselID sets the "vessel_id" field.
func (m *RecapManagerMutation) SetVesselID(s string) {
	m.vessel_id = &s
}

// VesselID returns the value of the "vessel_id" field in the mutation.
func (m *RecapManagerMutation) VesselID() (r string, exists bool) {
	v := m.vessel_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVesselID returns the old "vessel_id" field's value of the RecapManager entity.
// If the RecapManager object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecapManagerMutation) OldVesselID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVesselID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVesselID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVesselID: %w", err)
	}
	return oldValue.VesselID, nil
}

// ClearVesselID clears the value of the "vessel_id" field.
func (m *RecapManagerMutation) ClearVesselID() {
	m.vessel_id = nil
	m.clearedFields[recapmanager.FieldVesselID] = struct{}{}
}

// VesselIDCleared returns if the "vessel_id" field was cleared in this mutation.
func (m *RecapManagerMutation) VesselIDCleared() bool {
	_, ok := m.clearedFields[recapmanager.FieldVesselID]
	return ok
}

// ResetVesselID resets all changes to the "vessel_id" field.
func (m *RecapManagerMutation) ResetVesselID() {
	m.vessel_id = nil
	delete(m.clearedFields, recapmanager.FieldVesselID)
}

// SetCompanyID sets the "company_id" field.
func (m *RecapManagerMutation) SetCompanyID(s string) {
	m.company_id = &s
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *RecapManagerMutation) CompanyID() (r string, exists bool) {
	v := m.company_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the RecapManager entity.
// If the RecapManager object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecapManagerMutation) OldCompanyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ClearCompanyID clears the value of the "company_id" field.
func (m *RecapManagerMutation) ClearCompanyID() {
	m.company_id = nil
	m.clearedFields[recapmanager.FieldCompanyID] = struct{}{}
}

// CompanyIDCleared returns if the "company_id" field was cleared in this mutation.
func (m *RecapManagerMutation) CompanyIDCleared() bool {
	_, ok := m.clearedFields[recapmanager.FieldCompanyID]
	return ok
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *RecapManagerMutation) ResetCompanyID() {
	m.company_id = nil
	delete(m.clearedFields, recapmanager.FieldCompanyID)
}

// SetLoadPortID sets the "load_port_id" field.
func (m *RecapManagerMutation) SetLoadPortID(s string) {
	m.load_port_id = &s
}

// LoadPortID returns the value of the "load_port_id" field in the mutation.
func (m *RecapManagerMutation) LoadPortID() (r string, exists bool) {
	v := m.load_port_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLoadPortID returns the old "load_port_id" field's value of the RecapManager entity.
// If the RecapManager object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecapManagerMutation) OldLoadPortID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoadPortID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoadPortID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoadPortID: %w", err)
	}
	return oldValue.LoadPortID, nil
}

// ClearLoadPortID clears the value of the "load_port_id" field.
func (m *RecapManagerMutation) ClearLoadPortID() {
	m.load_port_id = nil
	m.clearedFields[recapmanager.FieldLoadPortID] = struct{}{}
}

// LoadPortIDCleared returns if the "load_port_id" field was cleared in this mutation.
func (m *RecapManagerMutation) LoadPortIDCleared() bool {
	_, ok := m.clearedFields[recapmanager.FieldLoadPortID]
	return ok
}

// ResetLoadPortID resets all changes to the "load_port_id" field.
func (m *RecapManagerMutation) ResetLoadPortID() {
	m.load_port_id = nil
	delete(m.clearedFields, recapmanager.FieldLoadPortID)
}

// SetDischargePortID sets the "discharge_port_id" field.
func (m *RecapManagerMutation) SetDischargePortID(s string) {
	m.discharge_port_id = &s
}

// DischargePortID returns the value of the "discharge_port_id" field in the mutation.
func (m *RecapManagerMutation) DischargePortID() (r string, exists bool) {
	v := m.discharge_port_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDischargePortID returns the old "discharge_port_id" field's value of the RecapManager entity.
// If the RecapManager object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecapManagerMutation) OldDischargePortID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDischargePortID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDischargePortID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDischargePortID: %w", err)
	}
	return oldValue.DischargePortID, nil
}

// ClearDischargePortID clears the value of the "discharge_port_id" field.
func (m *RecapManagerMutation) ClearDischargePortID() {
	m.discharge_port_id = nil
	m.clearedFields[recapmanager.FieldDischargePortID] = struct{}{}
}

// DischargePortIDCleared returns if the "discharge_port_id" field was cleared in this mutation.
func (m *RecapManagerMutation) DischargePortIDCleared() bool {
	_, ok := m.clearedFields[recapmanager.FieldDischargePortID]
	return ok
}

// ResetDischargePortID resets all changes to the "discharge_port_id" field.
func (m *RecapManagerMutation) ResetDischargePortID() {
	m.discharge_port_id = nil
	delete(m.clearedFields, recapmanager.FieldDischargePortID)
}

// SetCargoTypeID sets the "cargo_type_id" field.
func (m *RecapManagerMutation) SetCargoTypeID(s string) {
	m.cargo_type_id = &s
}

// CargoTypeID returns the value of the "cargo_type_id" field in the mutation.
func (m *RecapManagerMutation) CargoTypeID() (r string, exists bool) {
	v := m.cargo_type_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCargoTypeID returns the old "cargo_type_id" field's value of the RecapManager entity.
// If the RecapManager object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecapManagerMutation) OldCargoTypeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCargoTypeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCargoTypeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCargoTypeID: %w", err)
	}
	return oldValue.CargoTypeID, nil
}

// ClearCargoTypeID clears the value of the "cargo_type_id" field.
func (m *RecapManagerMutation) ClearCargoTypeID() {
	m.cargo_type_id = nil
	m.clearedFields[recapmanager.FieldCargoTypeID] = struct{}{}
}

// CargoTypeIDCleared returns if the "cargo_type_id" field was cleared in this mutation.
func (m *RecapManagerMutation) CargoTypeIDCleared() bool {
	_, ok := m.clearedFields[recapmanager.FieldCargoTypeID]
	return ok
}

// ResetCargoTypeID resets all changes to the "cargo_type_id" field.
func (m *RecapManagerMutation) ResetCargoTypeID() {
	m.cargo_type_id = nil
	delete(m.clearedFields, recapmanager.FieldCargoTypeID)
}

// SetFreightRate sets the "freight_rate" field.
func (m *RecapManagerMutation) SetFreightRate(f float64) {
	m.freight_rate = &f
	m.addfreight_rate = nil
}

// FreightRate returns the value of the "freight_rate" field in the mutation.
func (m *RecapManagerMutation) FreightRate() (r float64, exists bool) {
	v := m.freight_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldFreightRate returns the old "freight_rate" field's value of the RecapManager entity.
// If the RecapManager object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecapManagerMutation) OldFreightRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFreightRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFreightRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFreightRate: %w", err)
	}
	return oldValue.FreightRate, nil
}

// AddFreightRate adds f to the "freight_rate" field.
func (m *RecapManagerMutation) AddFreightRate(f float64) {
	if m.addfreight_rate != nil {
		*m.addfreight_rate += f
	} else {
		m.addfreight_rate = &f
	}
}

// AddedFreightRate returns the value that was added to the "freight_rate" field in this mutation.
func (m *RecapManagerMutation) AddedFreightRate() (r float64, exists bool) {
	v := m.addfreight_rate
	if v == nil {
		return
	}
	return *v, true
}

// ClearFreightRate clears the value of the "freight_rate" field.
func (m *RecapManagerMutation) ClearFreightRate() {
	m.freight_rate = nil
	m.addfreight_rate = nil
	m.clearedFields[recapmanager.FieldFreightRate] = struct{}{}
}

// FreightRateCleared returns if the "freight_rate" field was cleared in this mutation.
func (m *RecapManagerMutation) FreightRateCleared() bool {
	_, ok := m.clearedFields[recapmanager.FieldFreightRate]
	return ok
}

// ResetFreightRate resets all changes to the "freight_rate" field.
func (m *RecapManagerMutation) ResetFreightRate() {
	m.freight_rate = nil
	m.addfreight_rate = nil
	delete(m.clearedFields, recapmanager.FieldFreightRate)
}

// SetLaycanStart sets the "laycan_start" field.
func (m *RecapManagerMutation) SetLaycanStart(t time.Time) {
	m.laycan_start = &t
}

// LaycanStart returns the value of the "laycan_start" field in the mutation.
func (m *RecapManagerMutation) LaycanStart() (r time.Time, exists bool) {
	v := m.laycan_start
	if v == nil {
		return
	}
	return *v, true
}

// OldLaycanStart returns the old "laycan_start" field's value of the RecapManager entity.
// If the RecapManager object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecapManagerMutation) OldLaycanStart(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLaycanStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLaycanStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLaycanStart: %w", err)
	}
	return oldValue.LaycanStart, nil
}

// ClearLaycanStart clears the value of the "laycan_start" field.
func (m *RecapManagerMutation) ClearLaycanStart() {
	m.laycan_start = nil
	m.clearedFields[recapmanager.FieldLaycanStart] = struct{}{}
}

// LaycanStartCleared returns if the "laycan_start" field was cleared in this mutation.
func (m *RecapManagerMutation) LaycanStartCleared() bool {
	_, ok := m.clearedFields[recapmanager.FieldLaycanStart]
	return ok
}

// ResetLaycanStart resets all changes to the "laycan_start" field.
func (m *RecapManagerMutation) ResetLaycanStart() {
	m.laycan_start = nil
	delete(m.clearedFields, recapmanager.FieldLaycanStart)
}

// SetLaycanEnd sets the "laycan_end" field.
func (m *RecapManagerMutation) SetLaycanEnd(t time.Time) {
	m.laycan_end = &t
}

// LaycanEnd returns the value of the "laycan_end" field in the mutation.
func (m *RecapManagerMutation) LaycanEnd() (r time.Time, exists bool) {
	v := m.laycan_end
	if v == nil {
		return
	}
	return *v, true
}

// OldLaycanEnd returns the old "laycan_end" field's value of the RecapManager entity.
// If the RecapManager object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecapManagerMutation) OldLaycanEnd(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLaycanEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLaycanEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLaycanEnd: %w", err)
	}
	return oldValue.LaycanEnd, nil
}

// ClearLaycanEnd clears the value of the "laycan_end" field.
func (m *RecapManagerMutation) ClearLaycanEnd() {
	m.laycan_end = nil
	m.clearedFields[recapmanager.FieldLaycanEnd] = struct{}{}
}

// LaycanEndCleared returns if the "laycan_end" field was cleared in this mutation.
func (m *RecapManagerMutation) LaycanEndCleared() bool {
	_, ok := m.clearedFields[recapmanager.FieldLaycanEnd]
	return ok
}

// ResetLaycanEnd resets all changes to the "laycan_end" field.
func (m *RecapManagerMutation) ResetLaycanEnd() {
	m.laycan_end = nil
	delete(m.clearedFields, recapmanager.FieldLaycanEnd)
}

// SetQuantity sets the "quantity" field.
func (m *RecapManagerMutation) SetQuantity(f float64) {
	m.quantity = &f
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *RecapManagerMutation) Quantity() (r float64, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the RecapManager entity.
// If the RecapManager object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecapManagerMutation) OldQuantity(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds f to the "quantity" field.
func (m *RecapManagerMutation) AddQuantity(f float64) {
	if m.addquantity != nil {
		*m.addquantity += f
	} else {
		m.addquantity = &f
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *RecapManagerMutation) AddedQuantity() (r float64, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ClearQuantity clears the value of the "quantity" field.
func (m *RecapManagerMutation) ClearQuantity() {
	m.quantity = nil
	m.addquantity = nil
	m.clearedFields[recapmanager.FieldQuantity] = struct{}{}
}

// QuantityCleared returns if the "quantity" field was cleared in this mutation.
func (m *RecapManagerMutation) QuantityCleared() bool {
	_, ok := m.clearedFields[recapmanager.FieldQuantity]
	return ok
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *RecapManagerMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
	delete(m.clearedFields, recapmanager.FieldQuantity)
}

// SetDemurrageRate sets the "demurrage_rate" field.
func (m *RecapManagerMutation) SetDemurrageRate(f float64) {
	m.demurrage_rate = &f
	m.adddemurrage_rate = nil
}

// DemurrageRate returns the value of the "demurrage_rate" field in the mutation.
func (m *RecapManagerMutation) DemurrageRate() (r float64, exists bool) {
	v := m.demurrage_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldDemurrageRate returns the old "demurrage_rate" field's value of the RecapManager entity.
// If the RecapManager object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecapManagerMutation) OldDemurrageRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDemurrageRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDemurrageRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDemurrageRate: %w", err)
	}
	return oldValue.DemurrageRate, nil
}

// AddDemurrageRate adds f to the "demurrage_rate" field.
func (m *RecapManagerMutation) AddDemurrageRate(f float64) {
	if m.adddemurrage_rate != nil {
		*m.adddemurrage_rate += f
	} else {
		m.adddemurrage_rate = &f
	}
}

// AddedDemurrageRate returns the value that was added to the "demurrage_rate" field in this mutation.
func (m *RecapManagerMutation) AddedDemurrageRate() (r float64, exists bool) {
	v := m.adddemurrage_rate
	if v == nil {
		return
	}
	return *v, true
}

// ClearDemurrageRate clears the value of the "demurrage_rate" field.
func (m *RecapManagerMutation) ClearDemurrageRate() {
	m.demurrage_rate = nil
	m.adddemurrage_rate = nil
	m.clearedFields[recapmanager.FieldDemurrageRate] = struct{}{}
}

// DemurrageRateCleared returns if the "demurrage_rate" field was cleared in this mutation.
func (m *RecapManagerMutation) DemurrageRateCleared() bool {
	_, ok := m.clearedFields[recapmanager.FieldDemurrageRate]
	return ok
}

// ResetDemurrageRate resets all changes to the "demurrage_rate" field.
func (m *RecapManagerMutation) ResetDemurrageRate() {
	m.demurrage_rate = nil
	m.adddemurrage_rate = nil
	delete(m.clearedFields, recapmanager.FieldDemurrageRate)
}

// SetStatus sets the "status" field.
func (m *RecapManagerMutation) SetStatus(r recapmanager.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RecapManagerMutation) Status() (r recapmanager.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the RecapManager entity.
// If the RecapManager object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecapManagerMutation) OldStatus(ctx context.Context) (v recapmanager.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RecapManagerMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *RecapManagerMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *RecapManagerMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the RecapManager entity.
// If the RecapManager object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecapManagerMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *RecapManagerMutation) ResetCreatedBy() {
	m.created_by = nil
}

// SetFixtureID sets the "fixture" edge to the Fixture entity by id.
func (m *RecapManagerMutation) SetFixtureID(id string) {
	m.fixture = &id
}

// ClearFixture clears the "fixture" edge to the Fixture entity.
func (m *RecapManagerMutation) ClearFixture() {
	m.clearedfixture = true
}

// FixtureCleared reports if the "fixture" edge to the Fixture entity was cleared.
func (m *RecapManagerMutation) FixtureCleared() bool {
	return m.clearedfixture
}

// FixtureID returns the "fixture" edge ID in the mutation.
func (m *RecapManagerMutation) FixtureID() (id string, exists bool) {
	if m.fixture != nil {
		return *m.fixture, true
	}
	return
}

// FixtureIDs returns the "fixture" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FixtureID instead. It exists only for internal usage by the builders.
func (m *RecapManagerMutation) FixtureIDs() (ids []string) {
	if id := m.fixture; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFixture resets all changes to the "fixture" edge.
func (m *RecapManagerMutation) ResetFixture() {
	m.fixture = nil
	m.clearedfixture = false
}

// Where appends a list predicates to the RecapManagerMutation builder.
func (m *RecapManagerMutation) Where(ps ...predicate.RecapManager) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RecapManagerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RecapManagerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RecapManager, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RecapManagerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RecapManagerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RecapManager).
func (m *RecapManagerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RecapManagerMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.created_at != nil {
		fields = append(fields, recapmanager.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, recapmanager.FieldUpdatedAt)
	}
	if m.recap_number != nil {
		fields = append(fields, recapmanager.FieldRecapNumber)
	}
	if m.order_id != nil {
		fields = append(fields, recapmanager.FieldOrderID)
	}
	if m.negotiation_id != nil {
		fields = append(fields, recapmanager.FieldNegotiationID)
	}
	if m.parent_recap_id != nil {
		fields = append(fields, recapmanager.FieldParentRecapID)
	}
	if m.contract_type != nil {
		fields = append(fields, recapmanager.FieldContractType)
	}
	if m.delivery_type != nil {
		fields = append(fields, recapmanager.FieldDeliveryType)
	}
	if m.market_index != nil {
		fields = append(fields, recapmanager.FieldMarketIndex)
	}
	if m.vessel_id != nil {
		fields = append(fields, recapmanager.FieldVesselID)
	}
	if m.company_id != nil {
		fields = append(fields, recapmanager.FieldCompanyID)
	}
	if m.load_port_id != nil {
		fields = append(fields, recapmanager.FieldLoadPortID)
	}
	if m.discharge_port_id != nil {
		fields = append(fields, recapmanager.FieldDischargePortID)
	}
	if m.cargo_type_id != nil {
		fields = append(fields, recapmanager.FieldCargoTypeID)
	}
	if m.freight_rate != nil {
		fields = append(fields, recapmanager.FieldFreightRate)
	}
	if m.laycan_start != nil {
		fields = append(fields, recapmanager.FieldLaycanStart)
	}
	if m.laycan_end != nil {
		fields = append(fields, recapmanager.FieldLaycanEnd)
	}
	if m.quantity != nil {
		fields = append(fields, recapmanager.FieldQuantity)
	}
	if m.demurrage_rate != nil {
		fields = append(fields, recapmanager.FieldDemurrageRate)
	}
	if m.status != nil {
		fields = append(fields, recapmanager.FieldStatus)
	}
	if m.created_by != nil {
		fields = append(fields, recapmanager.FieldCreatedBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RecapManagerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case recapmanager.FieldCreatedAt:
		return m.CreatedAt()
	case recapmanager.FieldUpdatedAt:
		return m.UpdatedAt()
	case recapmanager.FieldRecapNumber:
		return m.RecapNumber()
	case recapmanager.FieldOrderID:
		return m.OrderID()
	case recapmanager.FieldNegotiationID:
		return m.NegotiationID()
	case recapmanager.FieldParentRecapID:
		return m.ParentRecapID()
	case recapmanager.FieldContractType:
		return m.ContractType()
	case recapmanager.FieldDeliveryType:
		return m.DeliveryType()
	case recapmanager.FieldMarketIndex:
		return m.MarketIndex()
	case recapmanager.FieldVesselID:
		return m.VesselID()
	case recapmanager.FieldCompanyID:
		return m.CompanyID()
	case recapmanager.FieldLoadPortID:
		return m.LoadPortID()
	case recapmanager.FieldDischargePortID:
		return m.DischargePortID()
	case recapmanager.FieldCargoTypeID:
		return m.CargoTypeID()
	case recapmanager.FieldFreightRate:
		return m.FreightRate()
	case recapmanager.FieldLaycanStart:
		return m.LaycanStart()
	case recapmanager.FieldLaycanEnd:
		return m.LaycanEnd()
	case recapmanager.FieldQuantity:
		return m.Quantity()
	case recapmanager.FieldDemurrageRate:
		return m.DemurrageRate()
	case recapmanager.FieldStatus:
		return m.Status()
	case recapmanager.FieldCreatedBy:
		return m.CreatedBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RecapManagerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case recapmanager.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case recapmanager.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case recapmanager.FieldRecapNumber:
		return m.OldRecapNumber(ctx)
	case recapmanager.FieldOrderID:
		return m.OldOrderID(ctx)
	case recapmanager.FieldNegotiationID:
		return m.OldNegotiationID(ctx)
	case recapmanager.FieldParentRecapID:
		return m.OldParentRecapID(ctx)
	case recapmanager.FieldContractType:
		return m.OldContractType(ctx)
	case recapmanager.FieldDeliveryType:
		return m.OldDeliveryType(ctx)
	case recapmanager.FieldMarketIndex:
		return m.OldMarketIndex(ctx)
	case recapmanager.FieldVesselID:
		return m.OldVesselID(ctx)
	case recapmanager.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case recapmanager.FieldLoadPortID:
		return m.OldLoadPortID(ctx)
	case recapmanager.FieldDischargePortID:
		return m.OldDischargePortID(ctx)
	case recapmanager.FieldCargoTypeID:
		return m.OldCargoTypeID(ctx)
	case recapmanager.FieldFreightRate:
		return m.OldFreightRate(ctx)
	case recapmanager.FieldLaycanStart:
		return m.OldLaycanStart(ctx)
	case recapmanager.FieldLaycanEnd:
		return m.OldLaycanEnd(ctx)
	case recapmanager.FieldQuantity:
		return m.OldQuantity(ctx)
	case recapmanager.FieldDemurrageRate:
		return m.OldDemurrageRate(ctx)
	case recapmanager.FieldStatus:
		return m.OldStatus(ctx)
	case recapmanager.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	}
	return nil, fmt.Errorf("unknown RecapManager field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecapManagerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case recapmanager.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case recapmanager.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case recapmanager.FieldRecapNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecapNumber(v)
		return nil
	case recapmanager.FieldOrderID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderID(v)
		return nil
	case recapmanager.FieldNegotiationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNegotiationID(v)
		return nil
	case recapmanager.FieldParentRecapID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentRecapID(v)
		return nil
	case recapmanager.FieldContractType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractType(v)
		return nil
	case recapmanager.FieldDeliveryType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveryType(v)
		return nil
	case recapmanager.FieldMarketIndex:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarketIndex(v)
		return nil
	case recapmanager.FieldVesselID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVesselID(v)
		return nil
	case recapmanager.FieldCompanyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case recapmanager.FieldLoadPortID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoadPortID(v)
		return nil
	case recapmanager.FieldDischargePortID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDischargePortID(v)
		return nil
	case recapmanager.FieldCargoTypeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCargoTypeID(v)
		return nil
	case recapmanager.FieldFreightRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFreightRate(v)
		return nil
	case recapmanager.FieldLaycanStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLaycanStart(v)
		return nil
	case recapmanager.FieldLaycanEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLaycanEnd(v)
		return nil
	case recapmanager.FieldQuantity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case recapmanager.FieldDemurrageRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDemurrageRate(v)
		return nil
	case recapmanager.FieldStatus:
		v, ok := value.(recapmanager.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case recapmanager.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	}
	return fmt.Errorf("unknown RecapManager field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RecapManagerMutation) AddedFields() []string {
	var fields []string
	if m.addfreight_rate != nil {
		fields = append(fields, recapmanager.FieldFreightRate)
	}
	if m.addquantity != nil {
		fields = append(fields, recapmanager.FieldQuantity)
	}
	if m.adddemurrage_rate != nil {
		fields = append(fields, recapmanager.FieldDemurrageRate)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RecapManagerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case recapmanager.FieldFreightRate:
		return m.AddedFreightRate()
	case recapmanager.FieldQuantity:
		return m.AddedQuantity()
	case recapmanager.FieldDemurrageRate:
		return m.AddedDemurrageRate()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecapManagerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case recapmanager.FieldFreightRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFreightRate(v)
		return nil
	case recapmanager.FieldQuantity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	case recapmanager.FieldDemurrageRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDemurrageRate(v)
		return nil
	}
	return fmt.Errorf("unknown RecapManager numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RecapManagerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(recapmanager.FieldOrderID) {
		fields = append(fields, recapmanager.FieldOrderID)
	}
	if m.FieldCleared(recapmanager.FieldNegotiationID) {
		fields = append(fields, recapmanager.FieldNegotiationID)
	}
	if m.FieldCleared(recapmanager.FieldParentRecapID) {
		fields = append(fields, recapmanager.FieldParentRecapID)
	}
	if m.FieldCleared(recapmanager.FieldContractType) {
		fields = append(fields, recapmanager.FieldContractType)
	}
	if m.FieldCleared(recapmanager.FieldDeliveryType) {
		fields = append(fields, recapmanager.FieldDeliveryType)
	}
	if m.FieldCleared(recapmanager.FieldMarketIndex) {
		fields = append(fields, recapmanager.FieldMarketIndex)
	}
	if m.FieldCleared(recapmanager.FieldVesselID) {
		fields = append(fields, recapmanager.FieldVesselID)
	}
	if m.FieldCleared(recapmanager.FieldCompanyID) {
		fields = append(fields, recapmanager.FieldCompanyID)
	}
	if m.FieldCleared(recapmanager.FieldLoadPortID) {
		fields = append(fields, recapmanager.FieldLoadPortID)
	}
	if m.FieldCleared(recapmanager.FieldDischargePortID) {
		fields = append(fields, recapmanager.FieldDischargePortID)
	}
	if m.FieldCleared(recapmanager.FieldCargoTypeID) {
		fields = append(fields, recapmanager.FieldCargoTypeID)
	}
	if m.FieldCleared(recapmanager.FieldFreightRate) {
		fields = append(fields, recapmanager.FieldFreightRate)
	}
	if m.FieldCleared(recapmanager.FieldLaycanStart) {
		fields = append(fields, recapmanager.FieldLaycanStart)
	}
	if m.FieldCleared(recapmanager.FieldLaycanEnd) {
		fields = append(fields, recapmanager.FieldLaycanEnd)
	}
	if m.FieldCleared(recapmanager.FieldQuantity) {
		fields = append(fields, recapmanager.FieldQuantity)
	}
	if m.FieldCleared(recapmanager.FieldDemurrageRate) {
		fields = append(fields, recapmanager.FieldDemurrageRate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RecapManagerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RecapManagerMutation) ClearField(name string) error {
	switch name {
	case recapmanager.FieldOrderID:
		m.ClearOrderID()
		return nil
	case recapmanager.FieldNegotiationID:
		m.ClearNegotiationID()
		return nil
	case recapmanager.FieldParentRecapID:
		m.ClearParentRecapID()
		return nil
	case recapmanager.FieldContractType:
		m.ClearContractType()
		return nil
	case recapmanager.FieldDeliveryType:
		m.ClearDeliveryType()
		return nil
	case recapmanager.FieldMarketIndex:
		m.ClearMarketIndex()
		return nil
	case recapmanager.FieldVesselID:
		m.ClearVesselID()
		return nil
	case recapmanager.FieldCompanyID:
		m.ClearCompanyID()
		return nil
	case recapmanager.FieldLoadPortID:
		m.ClearLoadPortID()
		return nil
	case recapmanager.FieldDischargePortID:
		m.ClearDischargePortID()
		return nil
	case recapmanager.FieldCargoTypeID:
		m.ClearCargoTypeID()
		return nil
	case recapmanager.FieldFreightRate:
		m.ClearFreightRate()
		return nil
	case recapmanager.FieldLaycanStart:
		m.ClearLaycanStart()
		return nil
	case recapmanager.FieldLaycanEnd:
		m.ClearLaycanEnd()
		return nil
	case recapmanager.FieldQuantity:
		m.ClearQuantity()
		return nil
	case recapmanager.FieldDemurrageRate:
		m.ClearDemurrageRate()
		return nil
	}
	return fmt.Errorf("unknown RecapManager nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RecapManagerMutation) ResetField(name string) error {
	switch name {
	case recapmanager.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case recapmanager.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case recapmanager.FieldRecapNumber:
		m.ResetRecapNumber()
		return nil
	case recapmanager.FieldOrderID:
		m.ResetOrderID()
		return nil
	case recapmanager.FieldNegotiationID:
		m.ResetNegotiationID()
		return nil
	case recapmanager.FieldParentRecapID:
		m.ResetParentRecapID()
		return nil
	case recapmanager.FieldContractType:
		m.ResetContractType()
		return nil
	case recapmanager.FieldDeliveryType:
		m.ResetDeliveryType()
		return nil
	case recapmanager.FieldMarketIndex:
		m.ResetMarketIndex()
		return nil
	case recapmanager.FieldVesselID:
		m.ResetVesselID()
		return nil
	case recapmanager.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case recapmanager.FieldLoadPortID:
		m.ResetLoadPortID()
		return nil
	case recapmanager.FieldDischargePortID:
		m.ResetDischargePortID()
		return nil
	case recapmanager.FieldCargoTypeID:
		m.ResetCargoTypeID()
		return nil
	case recapmanager.FieldFreightRate:
		m.ResetFreightRate()
		return nil
	case recapmanager.FieldLaycanStart:
		m.ResetLaycanStart()
		return nil
	case recapmanager.FieldLaycanEnd:
		m.ResetLaycanEnd()
		return nil
	case recapmanager.FieldQuantity:
		m.ResetQuantity()
		return nil
	case recapmanager.FieldDemurrageRate:
		m.ResetDemurrageRate()
		return nil
	case recapmanager.FieldStatus:
		m.ResetStatus()
		return nil
	case recapmanager.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown RecapManager field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RecapManagerMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.fixture != nil {
		edges = append(edges, recapmanager.EdgeFixture)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RecapManagerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case recapmanager.EdgeFixture:
		if id := m.fixture; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RecapManagerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RecapManagerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RecapManagerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedfixture {
		edges = append(edges, recapmanager.EdgeFixture)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RecapManagerMutation) EdgeCleared(name string) bool {
	switch name {
	case recapmanager.EdgeFixture:
		return m.clearedfixture
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RecapManagerMutation) ClearEdge(name string) error {
	switch name {
	case recapmanager.EdgeFixture:
		m.ClearFixture()
		return nil
	}
	return fmt.Errorf("unknown RecapManager unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RecapManagerMutation) ResetEdge(name string) error {
	switch name {
	case recapmanager.EdgeFixture:
		m.ResetFixture()
		return nil
	}
	return fmt.Errorf("unknown RecapManager edge %s", name)
}

// SignatureMutation represents an operation that mutates the Signature nodes in the graph.
type SignatureMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	created_at          *time.Time
	updated_at          *time.Time
	entity_type         *signature.EntityType
	entity_id           *string
	signer_name         *string
	signer_email        *string
	party               *signature.Party
	signed_at           *time.Time
	document_storage_id *string
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Signature, error)
	predicates          []predicate.Signature
}

var _ ent.Mutation = (*SignatureMutation)(nil)

// signatureOption allows management of the mutation configuration using functional options.
type signatureOption func(*SignatureMutation)

// newSignatureMutation creates new mutation for the Signature entity.
func newSignatureMutation(c config, op Op, opts ...signatureOption) *SignatureMutation {
	m := &SignatureMutation{
		config:        c,
		op:            op,
		typ:           TypeSignature,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSignatureID sets the ID field of the mutation.
func withSignatureID(id string) signatureOption {
	return func(m *SignatureMutation) {
		var (
			err   error
			once  sync.Once
			value *Signature
		)
		m.oldValue = func(ctx context.Context) (*Signature, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Signature.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSignature sets the old Signature of the mutation.
func withSignature(node *Signature) signatureOption {
	return func(m *SignatureMutation) {
		m.oldValue = func(context.Context) (*Signature, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SignatureMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SignatureMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Signature entities.
func (m *SignatureMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SignatureMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SignatureMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Signature.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SignatureMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SignatureMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Signature entity.
// If the Signature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignatureMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SignatureMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SignatureMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SignatureMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Signature entity.
// If the Signature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignatureMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SignatureMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetEntityType sets the "entity_type" field.
func (m *SignatureMutation) SetEntityType(st signature.EntityType) {
	m.entity_type = &st
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *SignatureMutation) EntityType() (r signature.EntityType, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the Signature entity.
// If the Signature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignatureMutation) OldEntityType(ctx context.Context) (v signature.EntityType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *SignatureMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetEntityID sets the "entity_id" field.
func (m *SignatureMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *SignatureMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the Signature entity.
// If the Signature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignatureMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *SignatureMutation) ResetEntityID() {
	m.entity_id = nil
}

// SetSignerName sets the "signer_name" field.
func (m *SignatureMutation) SetSignerName(s string) {
	m.signer_name = &s
}

// SignerName returns the value of the "signer_name" field in the mutation.
func (m *SignatureMutation) SignerName() (r string, exists bool) {
	v := m.signer_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSignerName returns the old "signer_name" field's value of the Signature entity.
// If the Signature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignatureMutation) OldSignerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignerName: %w", err)
	}
	return oldValue.SignerName, nil
}

// ResetSignerName resets all changes to the "signer_name" field.
func (m *SignatureMutation) ResetSignerName() {
	m.signer_name = nil
}

// SetSignerEmail sets the "signer_email" field.
func (m *SignatureMutation) SetSignerEmail(s string) {
	m.signer_email = &s
}

// SignerEmail returns the value of the "signer_email" field in the mutation.
func (m *SignatureMutation) SignerEmail() (r string, exists bool) {
	v := m.signer_email
	if v == nil {
		return
	}
	return *v, true
}

// OldSignerEmail returns the old "signer_email" field's value of the Signature entity.
// If the Signature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignatureMutation) OldSignerEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignerEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignerEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignerEmail: %w", err)
	}
	return oldValue.SignerEmail, nil
}

// ClearSignerEmail clears the value of the "signer_email" field.
func (m *SignatureMutation) ClearSignerEmail() {
	m.signer_email = nil
	m.clearedFields[signature.FieldSignerEmail] = struct{}{}
}

// SignerEmailCleared returns if the "signer_email" field was cleared in this mutation.
func (m *SignatureMutation) SignerEmailCleared() bool {
	_, ok := m.clearedFields[signature.FieldSignerEmail]
	return ok
}

// ResetSignerEmail resets all changes to the "signer_email" field.
func (m *SignatureMutation) ResetSignerEmail() {
	m.signer_email = nil
	delete(m.clearedFields, signature.FieldSignerEmail)
}

// SetParty sets the "party" field.
func (m *SignatureMutation) SetParty(s signature.Party) {
	m.party = &s
}

// Party returns the value of the "party" field in the mutation.
func (m *SignatureMutation) Party() (r signature.Party, exists bool) {
	v := m.party
	if v == nil {
		return
	}
	return *v, true
}

// OldParty returns the old "party" field's value of the Signature entity.
// If the Signature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignatureMutation) OldParty(ctx context.Context) (v signature.Party, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParty: %w", err)
	}
	return oldValue.Party, nil
}

// ResetParty resets all changes to the "party" field.
func (m *SignatureMutation) ResetParty() {
	m.party = nil
}

// SetSignedAt sets the "signed_at" field.
func (m *SignatureMutation) SetSignedAt(t time.Time) {
	m.signed_at = &t
}

// SignedAt returns the value of the "signed_at" field in the mutation.
func (m *SignatureMutation) SignedAt() (r time.Time, exists bool) {
	v := m.signed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSignedAt returns the old "signed_at" field's value of the Signature entity.
// If the Signature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignatureMutation) OldSignedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignedAt: %w", err)
	}
	return oldValue.SignedAt, nil
}

// ClearSignedAt clears the value of the "signed_at" field.
func (m *SignatureMutation) ClearSignedAt() {
	m.signed_at = nil
	m.clearedFields[signature.FieldSignedAt] = struct{}{}
}

// SignedAtCleared returns if the "signed_at" field was cleared in this mutation.
func (m *SignatureMutation) SignedAtCleared() bool {
	_, ok := m.clearedFields[signature.FieldSignedAt]
	return ok
}

// ResetSignedAt resets all changes to the "signed_at" field.
func (m *SignatureMutation) ResetSignedAt() {
	m.signed_at = nil
	delete(m.clearedFields, signature.FieldSignedAt)
}

// SetDocumentStorageID sets the "document_storage_id" field.
func (m *SignatureMutation) SetDocumentStorageID(s string) {
	m.document_storage_id = &s
}

// DocumentStorageID returns the value of the "document_storage_id" field in the mutation.
func (m *SignatureMutation) DocumentStorageID() (r string, exists bool) {
	v := m.document_storage_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentStorageID returns the old "document_storage_id" field's value of the Signature entity.
// If the Signature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignatureMutation) OldDocumentStorageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentStorageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentStorageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentStorageID: %w", err)
	}
	return oldValue.DocumentStorageID, nil
}

// ClearDocumentStorageID clears the value of the "document_storage_id" field.
func (m *SignatureMutation) ClearDocumentStorageID() {
	m.document_storage_id = nil
	m.clearedFields[signature.FieldDocumentStorageID] = struct{}{}
}

// DocumentStorageIDCleared returns if the "document_storage_id" field was cleared in this mutation.
func (m *SignatureMutation) DocumentStorageIDCleared() bool {
	_, ok := m.clearedFields[signature.FieldDocumentStorageID]
	return ok
}

// ResetDocumentStorageID resets all changes to the "document_storage_id" field.
func (m *SignatureMutation) ResetDocumentStorageID() {
	m.document_storage_id = nil
	delete(m.clearedFields, signature.FieldDocumentStorageID)
}

// Where appends a list predicates to the SignatureMutation builder.
func (m *SignatureMutation) Where(ps ...predicate.Signature) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SignatureMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SignatureMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Signature, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SignatureMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SignatureMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Signature).
func (m *SignatureMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SignatureMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, signature.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, signature.FieldUpdatedAt)
	}
	if m.entity_type != nil {
		fields = append(fields, signature.FieldEntityType)
	}
	if m.entity_id != nil {
		fields = append(fields, signature.FieldEntityID)
	}
	if m.signer_name != nil {
		fields = append(fields, signature.FieldSignerName)
	}
	if m.signer_email != nil {
		fields = append(fields, signature.FieldSignerEmail)
	}
	if m.party != nil {
		fields = append(fields, signature.FieldParty)
	}
	if m.signed_at != nil {
		fields = append(fields, signature.FieldSignedAt)
	}
	if m.document_storage_id != nil {
		fields = append(fields, signature.FieldDocumentStorageID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SignatureMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case signature.FieldCreatedAt:
		return m.CreatedAt()
	case signature.FieldUpdatedAt:
		return m.UpdatedAt()
	case signature.FieldEntityType:
		return m.EntityType()
	case signature.FieldEntityID:
		return m.EntityID()
	case signature.FieldSignerName:
		return m.SignerName()
	case signature.FieldSignerEmail:
		return m.SignerEmail()
	case signature.FieldParty:
		return m.Party()
	case signature.FieldSignedAt:
		return m.SignedAt()
	case signature.FieldDocumentStorageID:
		return m.DocumentStorageID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SignatureMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case signature.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case signature.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case signature.FieldEntityType:
		return m.OldEntityType(ctx)
	case signature.FieldEntityID:
		return m.OldEntityID(ctx)
	case signature.FieldSignerName:
		return m.OldSignerName(ctx)
	case signature.FieldSignerEmail:
		return m.OldSignerEmail(ctx)
	case signature.FieldParty:
		return m.OldParty(ctx)
	case signature.FieldSignedAt:
		return m.OldSignedAt(ctx)
	case signature.FieldDocumentStorageID:
		return m.OldDocumentStorageID(ctx)
	}
	return nil, fmt.Errorf("unknown Signature field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SignatureMutation) SetField(name string, value ent.Value) error {
	switch name {
	case signature.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case signature.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case signature.FieldEntityType:
		v, ok := value.(signature.EntityType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case signature.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case signature.FieldSignerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignerName(v)
		return nil
	case signature.FieldSignerEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignerEmail(v)
		return nil
	case signature.FieldParty:
		v, ok := value.(signature.Party)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParty(v)
		return nil
	case signature.FieldSignedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignedAt(v)
		return nil
	case signature.FieldDocumentStorageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentStorageID(v)
		return nil
	}
	return fmt.Errorf("unknown Signature field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SignatureMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SignatureMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SignatureMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Signature numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SignatureMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(signature.FieldSignerEmail) {
		fields = append(fields, signature.FieldSignerEmail)
	}
	if m.FieldCleared(signature.FieldSignedAt) {
		fields = append(fields, signature.FieldSignedAt)
	}
	if m.FieldCleared(signature.FieldDocumentStorageID) {
		fields = append(fields, signature.FieldDocumentStorageID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SignatureMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SignatureMutation) ClearField(name string) error {
	switch name {
	case signature.FieldSignerEmail:
		m.ClearSignerEmail()
		return nil
	case signature.FieldSignedAt:
		m.ClearSignedAt()
		return nil
	case signature.FieldDocumentStorageID:
		m.ClearDocumentStorageID()
		return nil
	}
	return fmt.Errorf("unknown Signature nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SignatureMutation) ResetField(name string) error {
	switch name {
	case signature.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case signature.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case signature.FieldEntityType:
		m.ResetEntityType()
		return nil
	case signature.FieldEntityID:
		m.ResetEntityID()
		return nil
	case signature.FieldSignerName:
		m.ResetSignerName()
		return nil
	case signature.FieldSignerEmail:
		m.ResetSignerEmail()
		return nil
	case signature.FieldParty:
		m.ResetParty()
		return nil
	case signature.FieldSignedAt:
		m.ResetSignedAt()
		return nil
	case signature.FieldDocumentStorageID:
		m.ResetDocumentStorageID()
		return nil
	}
	return fmt.Errorf("unknown Signature field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SignatureMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SignatureMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SignatureMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SignatureMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SignatureMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SignatureMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SignatureMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Signature unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SignatureMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Signature edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	created_at           *time.Time
	updated_at           *time.Time
	email                *string
	name                 *string
	password_hash        *string
	role                 *user.Role
	avatar_storage_id    *string
	active               *bool
	last_login_at        *time.Time
	clearedFields        map[string]struct{}
	organization         *string
	clearedorganization  bool
	notifications        map[string]struct{}
	removednotifications map[string]struct{}
	clearednotifications bool
	reset_tokens         map[string]struct{}
	removedreset_tokens  map[string]struct{}
	clearedreset_tokens  bool
	done                 bool
	oldValue             func(context.Context) (*User, error)
	predicates           []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id string) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetName sets the "name" field.
func (m *UserMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UserMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *UserMutation) ResetName() {
	m.name = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (m *UserMutation) ClearPasswordHash() {
	m.password_hash = nil
	m.clearedFields[user.FieldPasswordHash] = struct{}{}
}

// PasswordHashCleared returns if the "password_hash" field was cleared in this mutation.
func (m *UserMutation) PasswordHashCleared() bool {
	_, ok := m.clearedFields[user.FieldPasswordHash]
	return ok
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
	delete(m.clearedFields, user.FieldPasswordHash)
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v user.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetAvatarStorageID sets the "avatar_storage_id" field.
func (m *UserMutation) SetAvatarStorageID(s string) {
	m.avatar_storage_id = &s
}

// AvatarStorageID returns the value of the "avatar_storage_id" field in the mutation.
func (m *UserMutation) AvatarStorageID() (r string, exists bool) {
	v := m.avatar_storage_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAvatarStorageID returns the old "avatar_storage_id" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldAvatarStorageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvatarStorageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvatarStorageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvatarStorageID: %w", err)
	}
	return oldValue.AvatarStorageID, nil
}

// ClearAvatarStorageID clears the value of the "avatar_storage_id" field.
func (m *UserMutation) ClearAvatarStorageID() {
	m.avatar_storage_id = nil
	m.clearedFields[user.FieldAvatarStorageID] = struct{}{}
}

// AvatarStorageIDCleared returns if the "avatar_storage_id" field was cleared in this mutation.
func (m *UserMutation) AvatarStorageIDCleared() bool {
	_, ok := m.clearedFields[user.FieldAvatarStorageID]
	return ok
}

// ResetAvatarStorageID resets all changes to the "avatar_storage_id" field.
func (m *UserMutation) ResetAvatarStorageID() {
	m.avatar_storage_id = nil
	delete(m.clearedFields, user.FieldAvatarStorageID)
}

// SetActive sets the "active" field.
func (m *UserMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *UserMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *UserMutation) ResetActive() {
	m.active = nil
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *UserMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *UserMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *UserMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[user.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *UserMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[user.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *UserMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, user.FieldLastLoginAt)
}

// SetOrganizationID sets the "organization" edge to the Organization entity by id.
func (m *UserMutation) SetOrganizationID(id string) {
	m.organization = &id
}

// ClearOrganization clears the "organization" edge to the Organization entity.
func (m *UserMutation) ClearOrganization() {
	m.clearedorganization = true
}

// OrganizationCleared reports if the "organization" edge to the Organization entity was cleared.
func (m *UserMutation) OrganizationCleared() bool {
	return m.clearedorganization
}

// OrganizationID returns the "organization" edge ID in the mutation.
func (m *UserMutation) OrganizationID() (id string, exists bool) {
	if m.organization != nil {
		return *m.organization, true
	}
	return
}

// OrganizationIDs returns the "organization" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OrganizationID instead. It exists only for internal usage by the builders.
func (m *UserMutation) OrganizationIDs() (ids []string) {
	if id := m.organization; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOrganization resets all changes to the "organization" edge.
func (m *UserMutation) ResetOrganization() {
	m.organization = nil
	m.clearedorganization = false
}

// AddNotificationIDs adds the "notifications" edge to the Notification entity by ids.
func (m *UserMutation) AddNotificationIDs(ids ...string) {
	if m.notifications == nil {
		m.notifications = make(map[string]struct{})
	}
	for i := range ids {
		m.notifications[ids[i]] = struct{}{}
	}
}

// ClearNotifications clears the "notifications" edge to the Notification entity.
func (m *UserMutation) ClearNotifications() {
	m.clearednotifications = true
}

// NotificationsCleared reports if the "notifications" edge to the Notification entity was cleared.
func (m *UserMutation) NotificationsCleared() bool {
	return m.clearednotifications
}

// RemoveNotificationIDs removes the "notifications" edge to the Notification entity by IDs.
func (m *UserMutation) RemoveNotificationIDs(ids ...string) {
	if m.removednotifications == nil {
		m.removednotifications = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.notifications, ids[i])
		m.removednotifications[ids[i]] = struct{}{}
	}
}

// RemovedNotifications returns the removed IDs of the "notifications" edge to the Notification entity.
func (m *UserMutation) RemovedNotificationsIDs() (ids []string) {
	for id := range m.removednotifications {
		ids = append(ids, id)
	}
	return
}

// NotificationsIDs returns the "notifications" edge IDs in the mutation.
func (m *UserMutation) NotificationsIDs() (ids []string) {
	for id := range m.notifications {
		ids = append(ids, id)
	}
	return
}

// ResetNotifications resets all changes to the "notifications" edge.
func (m *UserMutation) ResetNotifications() {
	m.notifications = nil
	m.clearednotifications = false
	m.removednotifications = nil
}

// AddResetTokenIDs adds the "reset_tokens" edge to the PasswordResetToken entity by ids.
func (m *UserMutation) AddResetTokenIDs(ids ...string) {
	if m.reset_tokens == nil {
		m.reset_tokens = make(map[string]struct{})
	}
	for i := range ids {
		m.reset_tokens[ids[i]] = struct{}{}
	}
}

// ClearResetTokens clears the "reset_tokens" edge to the PasswordResetToken entity.
func (m *UserMutation) ClearResetTokens() {
	m.clearedreset_tokens = true
}

// ResetTokensCleared reports if the "reset_tokens" edge to the PasswordResetToken entity was cleared.
func (m *UserMutation) ResetTokensCleared() bool {
	return m.clearedreset_tokens
}

// RemoveResetTokenIDs removes the "reset_tokens" edge to the PasswordResetToken entity by IDs.
func (m *UserMutation) RemoveResetTokenIDs(ids ...string) {
	if m.removedreset_tokens == nil {
		m.removedreset_tokens = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.reset_tokens, ids[i])
		m.removedreset_tokens[ids[i]] = struct{}{}
	}
}

// RemovedResetTokens returns the removed IDs of the "reset_tokens" edge to the PasswordResetToken entity.
func (m *UserMutation) RemovedResetTokensIDs() (ids []string) {
	for id := range m.removedreset_tokens {
		ids = append(ids, id)
	}
	return
}

// ResetTokensIDs returns the "reset_tokens" edge IDs in the mutation.
func (m *UserMutation) ResetTokensIDs() (ids []string) {
	for id := range m.reset_tokens {
		ids = append(ids, id)
	}
	return
}

// ResetResetTokens resets all changes to the "reset_tokens" edge.
func (m *UserMutation) ResetResetTokens() {
	m.reset_tokens = nil
	m.clearedreset_tokens = false
	m.removedreset_tokens = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.name != nil {
		fields = append(fields, user.FieldName)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.avatar_storage_id != nil {
		fields = append(fields, user.FieldAvatarStorageID)
	}
	if m.active != nil {
		fields = append(fields, user.FieldActive)
	}
	if m.last_login_at != nil {
		fields = append(fields, user.FieldLastLoginAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldEmail:
		return m.Email()
	case user.FieldName:
		return m.Name()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldRole:
		return m.Role()
	case user.FieldAvatarStorageID:
		return m.AvatarStorageID()
	case user.FieldActive:
		return m.Active()
	case user.FieldLastLoginAt:
		return m.LastLoginAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldName:
		return m.OldName(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldAvatarStorageID:
		return m.OldAvatarStorageID(ctx)
	case user.FieldActive:
		return m.OldActive(ctx)
	case user.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldAvatarStorageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvatarStorageID(v)
		return nil
	case user.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case user.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldPasswordHash) {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.FieldCleared(user.FieldAvatarStorageID) {
		fields = append(fields, user.FieldAvatarStorageID)
	}
	if m.FieldCleared(user.FieldLastLoginAt) {
		fields = append(fields, user.FieldLastLoginAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldPasswordHash:
		m.ClearPasswordHash()
		return nil
	case user.FieldAvatarStorageID:
		m.ClearAvatarStorageID()
		return nil
	case user.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldName:
		m.ResetName()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldAvatarStorageID:
		m.ResetAvatarStorageID()
		return nil
	case user.FieldActive:
		m.ResetActive()
		return nil
	case user.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.organization != nil {
		edges = append(edges, user.EdgeOrganization)
	}
	if m.notifications != nil {
		edges = append(edges, user.EdgeNotifications)
	}
	if m.reset_tokens != nil {
		edges = append(edges, user.EdgeResetTokens)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeOrganization:
		if id := m.organization; id != nil {
			return []ent.Value{*id}
		}
	case user.EdgeNotifications:
		ids := make([]ent.Value, 0, len(m.notifications))
		for id := range m.notifications {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeResetTokens:
		ids := make([]ent.Value, 0, len(m.reset_tokens))
		for id := range m.reset_tokens {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removednotifications != nil {
		edges = append(edges, user.EdgeNotifications)
	}
	if m.removedreset_tokens != nil {
		edges = append(edges, user.EdgeResetTokens)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeNotifications:
		ids := make([]ent.Value, 0, len(m.removednotifications))
		for id := range m.removednotifications {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeResetTokens:
		ids := make([]ent.Value, 0, len(m.removedreset_tokens))
		for id := range m.removedreset_tokens {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedorganization {
		edges = append(edges, user.EdgeOrganization)
	}
	if m.clearednotifications {
		edges = append(edges, user.EdgeNotifications)
	}
	if m.clearedreset_tokens {
		edges = append(edges, user.EdgeResetTokens)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeOrganization:
		return m.clearedorganization
	case user.EdgeNotifications:
		return m.clearednotifications
	case user.EdgeResetTokens:
		return m.clearedreset_tokens
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	case user.EdgeOrganization:
		m.ClearOrganization()
		return nil
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeOrganization:
		m.ResetOrganization()
		return nil
	case user.EdgeNotifications:
		m.ResetNotifications()
		return nil
	case user.EdgeResetTokens:
		m.ResetResetTokens()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}

// VesselMutation represents an operation that mutates the Vessel nodes in the graph.
type VesselMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	updated_at    *time.Time
	name          *string
	imo_number    *string
	vessel_type   *string
	dwt           *float64
	adddwt        *float64
	built_year    *int
	addbuilt_year *int
	flag          *string
	verified      *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Vessel, error)
	predicates    []predicate.Vessel
}

var _ ent.Mutation = (*VesselMutation)(nil)

// vesselOption allows management of the mutation configuration using functional options.
type vesselOption func(*VesselMutation)

// newVesselMutation creates new mutation for the Vessel entity.
func newVesselMutation(c config, op Op, opts ...vesselOption) *VesselMutation {
	m := &VesselMutation{
		config:        c,
		op:            op,
		typ:           TypeVessel,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVesselID sets the ID field of the mutation.
func withVesselID(id string) vesselOption {
	return func(m *VesselMutation) {
		var (
			err   error
			once  sync.Once
			value *Vessel
		)
		m.oldValue = func(ctx context.Context) (*Vessel, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Vessel.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVessel sets the old Vessel of the mutation.
func withVessel(node *Vessel) vesselOption {
	return func(m *VesselMutation) {
		m.oldValue = func(context.Context) (*Vessel, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VesselMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VesselMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Vessel entities.
func (m *VesselMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VesselMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VesselMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Vessel.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *VesselMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VesselMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Vessel entity.
// If the Vessel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VesselMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VesselMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *VesselMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *VesselMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Vessel entity.
// If the Vessel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VesselMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *VesselMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *VesselMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *VesselMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Vessel entity.
// If the Vessel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VesselMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *VesselMutation) ResetName() {
	m.name = nil
}

// SetImoNumber sets the "imo_number" field.
func (m *VesselMutation) SetImoNumber(s string) {
	m.imo_number = &s
}

// ImoNumber returns the value of the "imo_number" field in the mutation.
func (m *VesselMutation) ImoNumber() (r string, exists bool) {
	v := m.imo_number
	if v == nil {
		return
	}
	return *v, true
}

// OldImoNumber returns the old "imo_number" field's value of the Vessel entity.
// If the Vessel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VesselMutation) OldImoNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImoNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImoNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImoNumber: %w", err)
	}
	return oldValue.ImoNumber, nil
}

// ClearImoNumber clears the value of the "imo_number" field.
func (m *VesselMutation) ClearImoNumber() {
	m.imo_number = nil
	m.clearedFields[vessel.FieldImoNumber] = struct{}{}
}

// ImoNumberCleared returns if the "imo_number" field was cleared in this mutation.
func (m *VesselMutation) ImoNumberCleared() bool {
	_, ok := m.clearedFields[vessel.FieldImoNumber]
	return ok
}

// ResetImoNumber resets all changes to the "imo_number" field.
func (m *VesselMutation) ResetImoNumber() {
	m.imo_number = nil
	delete(m.clearedFields, vessel.FieldImoNumber)
}

// SetVesselType sets the "vessel_type" field.
func (m *VesselMutation) SetVesselType(s string) {
	m.vessel_type = &s
}

// VesselType returns the value of the "vessel_type" field in the mutation.
func (m *VesselMutation) VesselType() (r string, exists bool) {
	v := m.vessel_type
	if v == nil {
		return
	}
	return *v, true
}

// OldVesselType returns the old "vessel_type" field's value of the Vessel entity.
// If the Vessel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VesselMutation) OldVesselType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVesselType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVesselType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVesselType: %w", err)
	}
	return oldValue.VesselType, nil
}

// ClearVesselType clears the value of the "vessel_type" field.
func (m *VesselMutation) ClearVesselType() {
	m.vessel_type = nil
	m.clearedFields[vessel.FieldVesselType] = struct{}{}
}

// VesselTypeCleared returns if the "vessel_type" field was cleared in this mutation.
func (m *VesselMutation) VesselTypeCleared() bool {
	_, ok := m.clearedFields[vessel.FieldVesselType]
	return ok
}

// ResetVesselType resets all changes to the "vessel_type" field.
func (m *VesselMutation) ResetVesselType() {
	m.vessel_type = nil
	delete(m.clearedFields, vessel.FieldVesselType)
}

// SetDwt sets the "dwt" field.
func (m *VesselMutation) SetDwt(f float64) {
	m.dwt = &f
	m.adddwt = nil
}

// Dwt returns the value of the "dwt" field in the mutation.
func (m *VesselMutation) Dwt() (r float64, exists bool) {
	v := m.dwt
	if v == nil {
		return
	}
	return *v, true
}

// OldDwt returns the old "dwt" field's value of the Vessel entity.
// If the Vessel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VesselMutation) OldDwt(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDwt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDwt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDwt: %w", err)
	}
	return oldValue.Dwt, nil
}

// AddDwt adds f to the "dwt" field.
func (m *VesselMutation) AddDwt(f float64) {
	if m.adddwt != nil {
		*m.adddwt += f
	} else {
		m.adddwt = &f
	}
}

// AddedDwt returns the value that was added to the "dwt" field in this mutation.
func (m *VesselMutation) AddedDwt() (r float64, exists bool) {
	v := m.adddwt
	if v == nil {
		return
	}
	return *v, true
}

// ClearDwt clears the value of the "dwt" field.
func (m *VesselMutation) ClearDwt() {
	m.dwt = nil
	m.adddwt = nil
	m.clearedFields[vessel.FieldDwt] = struct{}{}
}

// DwtCleared returns if the "dwt" field was cleared in this mutation.
func (m *VesselMutation) DwtCleared() bool {
	_, ok := m.clearedFields[vessel.FieldDwt]
	return ok
}

// ResetDwt resets all changes to the "dwt" field.
func (m *VesselMutation) ResetDwt() {
	m.dwt = nil
	m.adddwt = nil
	delete(m.clearedFields, vessel.FieldDwt)
}

// SetBuiltYear sets the "built_year" field.
func (m *VesselMutation) SetBuiltYear(i int) {
	m.built_year = &i
	m.addbuilt_year = nil
}

// BuiltYear returns the value of the "built_year" field in the mutation.
func (m *VesselMutation) BuiltYear() (r int, exists bool) {
	v := m.built_year
	if v == nil {
		return
	}
	return *v, true
}

// OldBuiltYear returns the old "built_year" field's value of the Vessel entity.
// If the Vessel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VesselMutation) OldBuiltYear(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuiltYear is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuiltYear requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuiltYear: %w", err)
	}
	return oldValue.BuiltYear, nil
}

// AddBuiltYear adds i to the "built_year" field.
func (m *VesselMutation) AddBuiltYear(i int) {
	if m.addbuilt_year != nil {
		*m.addbuilt_year += i
	} else {
		m.addbuilt_year = &i
	}
}

// AddedBuiltYear returns the value that was added to the "built_year" field in this mutation.
func (m *VesselMutation) AddedBuiltYear() (r int, exists bool) {
	v := m.addbuilt_year
	if v == nil {
		return
	}
	return *v, true
}

// ClearBuiltYear clears the value of the "built_year" field.
func (m *VesselMutation) ClearBuiltYear() {
	m.built_year = nil
	m.addbuilt_year = nil
	m.clearedFields[vessel.FieldBuiltYear] = struct{}{}
}

// BuiltYearCleared returns if the "built_year" field was cleared in this mutation.
func (m *VesselMutation) BuiltYearCleared() bool {
	_, ok := m.clearedFields[vessel.FieldBuiltYear]
	return ok
}

// ResetBuiltYear resets all changes to the "built_year" field.
func (m *VesselMutation) ResetBuiltYear() {
	m.built_year = nil
	m.addbuilt_year = nil
	delete(m.clearedFields, vessel.FieldBuiltYear)
}

// SetFlag sets the "flag" field.
func (m *VesselMutation) SetFlag(s string) {
	m.flag = &s
}

// Flag returns the value of the "flag" field in the mutation.
func (m *VesselMutation) Flag() (r string, exists bool) {
	v := m.flag
	if v == nil {
		return
	}
	return *v, true
}

// OldFlag returns the old "flag" field's value of the Vessel entity.
// If the Vessel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VesselMutation) OldFlag(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlag is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlag requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlag: %w", err)
	}
	return oldValue.Flag, nil
}

// ClearFlag clears the value of the "flag" field.
func (m *VesselMutation) ClearFlag() {
	m.flag = nil
	m.clearedFields[vessel.FieldFlag] = struct{}{}
}

// FlagCleared returns if the "flag" field was cleared in this mutation.
func (m *VesselMutation) FlagCleared() bool {
	_, ok := m.clearedFields[vessel.FieldFlag]
	return ok
}

// ResetFlag resets all changes to the "flag" field.
func (m *VesselMutation) ResetFlag() {
	m.flag = nil
	delete(m.clearedFields, vessel.FieldFlag)
}

// SetVerified sets the "verified" field.
func (m *VesselMutation) SetVerified(b bool) {
	m.verified = &b
}

// Verified returns the value of the "verified" field in the mutation.
func (m *VesselMutation) Verified() (r bool, exists bool) {
	v := m.verified
	if v == nil {
		return
	}
	return *v, true
}

// OldVerified returns the old "verified" field's value of the Vessel entity.
// If the Vessel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VesselMutation) OldVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerified: %w", err)
	}
	return oldValue.Verified, nil
}

// ResetVerified resets all changes to the "verified" field.
func (m *VesselMutation) ResetVerified() {
	m.verified = nil
}

// Where appends a list predicates to the VesselMutation builder.
func (m *VesselMutation) Where(ps ...predicate.Vessel) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VesselMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VesselMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Vessel, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VesselMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VesselMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Vessel).
func (m *VesselMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VesselMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, vessel.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, vessel.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, vessel.FieldName)
	}
	if m.imo_number != nil {
		fields = append(fields, vessel.FieldImoNumber)
	}
	if m.vessel_type != nil {
		fields = append(fields, vessel.FieldVesselType)
	}
	if m.dwt != nil {
		fields = append(fields, vessel.FieldDwt)
	}
	if m.built_year != nil {
		fields = append(fields, vessel.FieldBuiltYear)
	}
	if m.flag != nil {
		fields = append(fields, vessel.FieldFlag)
	}
	if m.verified != nil {
		fields = append(fields, vessel.FieldVerified)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VesselMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case vessel.FieldCreatedAt:
		return m.CreatedAt()
	case vessel.FieldUpdatedAt:
		return m.UpdatedAt()
	case vessel.FieldName:
		return m.Name()
	case vessel.FieldImoNumber:
		return m.ImoNumber()
	case vessel.FieldVesselType:
		return m.VesselType()
	case vessel.FieldDwt:
		return m.Dwt()
	case vessel.FieldBuiltYear:
		return m.BuiltYear()
	case vessel.FieldFlag:
		return m.Flag()
	case vessel.FieldVerified:
		return m.Verified()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VesselMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case vessel.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case vessel.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case vessel.FieldName:
		return m.OldName(ctx)
	case vessel.FieldImoNumber:
		return m.OldImoNumber(ctx)
	case vessel.FieldVesselType:
		return m.OldVesselType(ctx)
	case vessel.FieldDwt:
		return m.OldDwt(ctx)
	case vessel.FieldBuiltYear:
		return m.OldBuiltYear(ctx)
	case vessel.FieldFlag:
		return m.OldFlag(ctx)
	case vessel.FieldVerified:
		return m.OldVerified(ctx)
	}
	return nil, fmt.Errorf("unknown Vessel field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VesselMutation) SetField(name string, value ent.Value) error {
	switch name {
	case vessel.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case vessel.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case vessel.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case vessel.FieldImoNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImoNumber(v)
		return nil
	case vessel.FieldVesselType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVesselType(v)
		return nil
	case vessel.FieldDwt:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDwt(v)
		return nil
	case vessel.FieldBuiltYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuiltYear(v)
		return nil
	case vessel.FieldFlag:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlag(v)
		return nil
	case vessel.FieldVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerified(v)
		return nil
	}
	return fmt.Errorf("unknown Vessel field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VesselMutation) AddedFields() []string {
	var fields []string
	if m.adddwt != nil {
		fields = append(fields, vessel.FieldDwt)
	}
	if m.addbuilt_year != nil {
		fields = append(fields, vessel.FieldBuiltYear)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VesselMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case vessel.FieldDwt:
		return m.AddedDwt()
	case vessel.FieldBuiltYear:
		return m.AddedBuiltYear()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VesselMutation) AddField(name string, value ent.Value) error {
	switch name {
	case vessel.FieldDwt:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDwt(v)
		return nil
	case vessel.FieldBuiltYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBuiltYear(v)
		return nil
	}
	return fmt.Errorf("unknown Vessel numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VesselMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(vessel.FieldImoNumber) {
		fields = append(fields, vessel.FieldImoNumber)
	}
	if m.FieldCleared(vessel.FieldVesselType) {
		fields = append(fields, vessel.FieldVesselType)
	}
	if m.FieldCleared(vessel.FieldDwt) {
		fields = append(fields, vessel.FieldDwt)
	}
	if m.FieldCleared(vessel.FieldBuiltYear) {
		fields = append(fields, vessel.FieldBuiltYear)
	}
	if m.FieldCleared(vessel.FieldFlag) {
		fields = append(fields, vessel.FieldFlag)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VesselMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VesselMutation) ClearField(name string) error {
	switch name {
	case vessel.FieldImoNumber:
		m.ClearImoNumber()
		return nil
	case vessel.FieldVesselType:
		m.ClearVesselType()
		return nil
	case vessel.FieldDwt:
		m.ClearDwt()
		return nil
	case vessel.FieldBuiltYear:
		m.ClearBuiltYear()
		return nil
	case vessel.FieldFlag:
		m.ClearFlag()
		return nil
	}
	return fmt.Errorf("unknown Vessel nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VesselMutation) ResetField(name string) error {
	switch name {
	case vessel.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case vessel.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case vessel.FieldName:
		m.ResetName()
		return nil
	case vessel.FieldImoNumber:
		m.ResetImoNumber()
		return nil
	case vessel.FieldVesselType:
		m.ResetVesselType()
		return nil
	case vessel.FieldDwt:
		m.ResetDwt()
		return nil
	case vessel.FieldBuiltYear:
		m.ResetBuiltYear()
		return nil
	case vessel.FieldFlag:
		m.ResetFlag()
		return nil
	case vessel.FieldVerified:
		m.ResetVerified()
		return nil
	}
	return fmt.Errorf("unknown Vessel field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VesselMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VesselMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VesselMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VesselMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VesselMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VesselMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VesselMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Vessel unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VesselMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Vessel edge %s", name)
}
