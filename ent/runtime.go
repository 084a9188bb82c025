// Code generated by ent, DO NOT EDIT.

package ent

import (
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
	"charterdesk.io/charterdesk/ent/recapmanager"
	"charterdesk.io/charterdesk/ent/schema"
	"charterdesk.io/charterdesk/ent/signature"
	"charterdesk.io/charterdesk/ent/user"
	"charterdesk.io/charterdesk/ent/vessel"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activitylogMixin := schema.ActivityLog{}.Mixin()
	activitylogMixinFields0 := activitylogMixin[0].Fields()
	_ = activitylogMixinFields0
	activitylogFields := schema.ActivityLog{}.Fields()
	_ = activitylogFields
	// activitylogDescCreatedAt is the schema descriptor for created_at field.
	activitylogDescCreatedAt := activitylogMixinFields0[0].Descriptor()
	// activitylog.DefaultCreatedAt holds the default value on creation for the created_at field.
	activitylog.DefaultCreatedAt = activitylogDescCreatedAt.Default.(func() time.Time)
	// activitylogDescEntityType is the schema descriptor for entity_type field.
	activitylogDescEntityType := activitylogFields[1].Descriptor()
	// activitylog.EntityTypeValidator is a validator for the "entity_type" field. It is called by the builders before save.
	activitylog.EntityTypeValidator = activitylogDescEntityType.Validators[0].(func(string) error)
	// activitylogDescEntityID is the schema descriptor for entity_id field.
	activitylogDescEntityID := activitylogFields[2].Descriptor()
	// activitylog.EntityIDValidator is a validator for the "entity_id" field. It is called by the builders before save.
	activitylog.EntityIDValidator = activitylogDescEntityID.Validators[0].(func(string) error)
	// activitylogDescAction is the schema descriptor for action field.
	activitylogDescAction := activitylogFields[3].Descriptor()
	// activitylog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	activitylog.ActionValidator = activitylogDescAction.Validators[0].(func(string) error)
	// activitylogDescDescription is the schema descriptor for description field.
	activitylogDescDescription := activitylogFields[4].Descriptor()
	// activitylog.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	activitylog.DescriptionValidator = activitylogDescDescription.Validators[0].(func(string) error)
	addendumMixin := schema.Addendum{}.Mixin()
	addendumMixinFields0 := addendumMixin[0].Fields()
	_ = addendumMixinFields0
	addendumFields := schema.Addendum{}.Fields()
	_ = addendumFields
	// addendumDescCreatedAt is the schema descriptor for created_at field.
	addendumDescCreatedAt := addendumMixinFields0[0].Descriptor()
	// addendum.DefaultCreatedAt holds the default value on creation for the created_at field.
	addendum.DefaultCreatedAt = addendumDescCreatedAt.Default.(func() time.Time)
	// addendumDescUpdatedAt is the schema descriptor for updated_at field.
	addendumDescUpdatedAt := addendumMixinFields0[1].Descriptor()
	// addendum.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	addendum.DefaultUpdatedAt = addendumDescUpdatedAt.Default.(func() time.Time)
	// addendum.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	addendum.UpdateDefaultUpdatedAt = addendumDescUpdatedAt.UpdateDefault.(func() time.Time)
	// addendumDescAddendumNumber is the schema descriptor for addendum_number field.
	addendumDescAddendumNumber := addendumFields[1].Descriptor()
	// addendum.AddendumNumberValidator is a validator for the "addendum_number" field. It is called by the builders before save.
	addendum.AddendumNumberValidator = addendumDescAddendumNumber.Validators[0].(func(string) error)
	// addendumDescCreatedBy is the schema descriptor for created_by field.
	addendumDescCreatedBy := addendumFields[6].Descriptor()
	// addendum.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	addendum.CreatedByValidator = addendumDescCreatedBy.Validators[0].(func(string) error)
	approvalMixin := schema.Approval{}.Mixin()
	approvalMixinFields0 := approvalMixin[0].Fields()
	_ = approvalMixinFields0
	approvalFields := schema.Approval{}.Fields()
	_ = approvalFields
	// approvalDescCreatedAt is the schema descriptor for created_at field.
	approvalDescCreatedAt := approvalMixinFields0[0].Descriptor()
	// approval.DefaultCreatedAt holds the default value on creation for the created_at field.
	approval.DefaultCreatedAt = approvalDescCreatedAt.Default.(func() time.Time)
	// approvalDescUpdatedAt is the schema descriptor for updated_at field.
	approvalDescUpdatedAt := approvalMixinFields0[1].Descriptor()
	// approval.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	approval.DefaultUpdatedAt = approvalDescUpdatedAt.Default.(func() time.Time)
	// approval.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	approval.UpdateDefaultUpdatedAt = approvalDescUpdatedAt.UpdateDefault.(func() time.Time)
	// approvalDescEntityID is the schema descriptor for entity_id field.
	approvalDescEntityID := approvalFields[2].Descriptor()
	// approval.EntityIDValidator is a validator for the "entity_id" field. It is called by the builders before save.
	approval.EntityIDValidator = approvalDescEntityID.Validators[0].(func(string) error)
	// approvalDescRequestedBy is the schema descriptor for requested_by field.
	approvalDescRequestedBy := approvalFields[4].Descriptor()
	// approval.RequestedByValidator is a validator for the "requested_by" field. It is called by the builders before save.
	approval.RequestedByValidator = approvalDescRequestedBy.Validators[0].(func(string) error)
	cargotypeMixin := schema.CargoType{}.Mixin()
	cargotypeMixinFields0 := cargotypeMixin[0].Fields()
	_ = cargotypeMixinFields0
	cargotypeFields := schema.CargoType{}.Fields()
	_ = cargotypeFields
	// cargotypeDescCreatedAt is the schema descriptor for created_at field.
	cargotypeDescCreatedAt := cargotypeMixinFields0[0].Descriptor()
	// cargotype.DefaultCreatedAt holds the default value on creation for the created_at field.
	cargotype.DefaultCreatedAt = cargotypeDescCreatedAt.Default.(func() time.Time)
	// cargotypeDescUpdatedAt is the schema descriptor for updated_at field.
	cargotypeDescUpdatedAt := cargotypeMixinFields0[1].Descriptor()
	// cargotype.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	cargotype.DefaultUpdatedAt = cargotypeDescUpdatedAt.Default.(func() time.Time)
	// cargotype.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	cargotype.UpdateDefaultUpdatedAt = cargotypeDescUpdatedAt.UpdateDefault.(func() time.Time)
	// cargotypeDescName is the schema descriptor for name field.
	cargotypeDescName := cargotypeFields[1].Descriptor()
	// cargotype.NameValidator is a validator for the "name" field. It is called by the builders before save.
	cargotype.NameValidator = func() func(string) error {
		validators := cargotypeDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// cargotypeDescActive is the schema descriptor for active field.
	cargotypeDescActive := cargotypeFields[3].Descriptor()
	// cargotype.DefaultActive holds the default value on creation for the active field.
	cargotype.DefaultActive = cargotypeDescActive.Default.(bool)
	companyMixin := schema.Company{}.Mixin()
	companyMixinFields0 := companyMixin[0].Fields()
	_ = companyMixinFields0
	companyFields := schema.Company{}.Fields()
	_ = companyFields
	// companyDescCreatedAt is the schema descriptor for created_at field.
	companyDescCreatedAt := companyMixinFields0[0].Descriptor()
	// company.DefaultCreatedAt holds the default value on creation for the created_at field.
	company.DefaultCreatedAt = companyDescCreatedAt.Default.(func() time.Time)
	// companyDescUpdatedAt is the schema descriptor for updated_at field.
	companyDescUpdatedAt := companyMixinFields0[1].Descriptor()
	// company.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	company.DefaultUpdatedAt = companyDescUpdatedAt.Default.(func() time.Time)
	// company.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	company.UpdateDefaultUpdatedAt = companyDescUpdatedAt.UpdateDefault.(func() time.Time)
	// companyDescName is the schema descriptor for name field.
	companyDescName := companyFields[1].Descriptor()
	// company.NameValidator is a validator for the "name" field. It is called by the builders before save.
	company.NameValidator = func() func(string) error {
		validators := companyDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// companyDescVerified is the schema descriptor for verified field.
	companyDescVerified := companyFields[4].Descriptor()
	// company.DefaultVerified holds the default value on creation for the verified field.
	company.DefaultVerified = companyDescVerified.Default.(bool)
	contractMixin := schema.Contract{}.Mixin()
	contractMixinFields0 := contractMixin[0].Fields()
	_ = contractMixinFields0
	contractFields := schema.Contract{}.Fields()
	_ = contractFields
	// contractDescCreatedAt is the schema descriptor for created_at field.
	contractDescCreatedAt := contractMixinFields0[0].Descriptor()
	// contract.DefaultCreatedAt holds the default value on creation for the created_at field.
	contract.DefaultCreatedAt = contractDescCreatedAt.Default.(func() time.Time)
	// contractDescUpdatedAt is the schema descriptor for updated_at field.
	contractDescUpdatedAt := contractMixinFields0[1].Descriptor()
	// contract.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	contract.DefaultUpdatedAt = contractDescUpdatedAt.Default.(func() time.Time)
	// contract.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	contract.UpdateDefaultUpdatedAt = contractDescUpdatedAt.UpdateDefault.(func() time.Time)
	// contractDescCpNumber is the schema descriptor for cp_number field.
	contractDescCpNumber := contractFields[1].Descriptor()
	// contract.CpNumberValidator is a validator for the "cp_number" field. It is called by the builders before save.
	contract.CpNumberValidator = contractDescCpNumber.Validators[0].(func(string) error)
	// contractDescCreatedBy is the schema descriptor for created_by field.
	contractDescCreatedBy := contractFields[18].Descriptor()
	// contract.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	contract.CreatedByValidator = contractDescCreatedBy.Validators[0].(func(string) error)
	fieldchangeMixin := schema.FieldChange{}.Mixin()
	fieldchangeMixinFields0 := fieldchangeMixin[0].Fields()
	_ = fieldchangeMixinFields0
	fieldchangeFields := schema.FieldChange{}.Fields()
	_ = fieldchangeFields
	// fieldchangeDescCreatedAt is the schema descriptor for created_at field.
	fieldchangeDescCreatedAt := fieldchangeMixinFields0[0].Descriptor()
	// fieldchange.DefaultCreatedAt holds the default value on creation for the created_at field.
	fieldchange.DefaultCreatedAt = fieldchangeDescCreatedAt.Default.(func() time.Time)
	// fieldchangeDescEntityType is the schema descriptor for entity_type field.
	fieldchangeDescEntityType := fieldchangeFields[1].Descriptor()
	// fieldchange.EntityTypeValidator is a validator for the "entity_type" field. It is called by the builders before save.
	fieldchange.EntityTypeValidator = fieldchangeDescEntityType.Validators[0].(func(string) error)
	// fieldchangeDescEntityID is the schema descriptor for entity_id field.
	fieldchangeDescEntityID := fieldchangeFields[2].Descriptor()
	// fieldchange.EntityIDValidator is a validator for the "entity_id" field. It is called by the builders before save.
	fieldchange.EntityIDValidator = fieldchangeDescEntityID.Validators[0].(func(string) error)
	// fieldchangeDescFieldName is the schema descriptor for field_name field.
	fieldchangeDescFieldName := fieldchangeFields[3].Descriptor()
	// fieldchange.FieldNameValidator is a validator for the "field_name" field. It is called by the builders before save.
	fieldchange.FieldNameValidator = fieldchangeDescFieldName.Validators[0].(func(string) error)
	fixtureMixin := schema.Fixture{}.Mixin()
	fixtureMixinFields0 := fixtureMixin[0].Fields()
	_ = fixtureMixinFields0
	fixtureFields := schema.Fixture{}.Fields()
	_ = fixtureFields
	// fixtureDescCreatedAt is the schema descriptor for created_at field.
	fixtureDescCreatedAt := fixtureMixinFields0[0].Descriptor()
	// fixture.DefaultCreatedAt holds the default value on creation for the created_at field.
	fixture.DefaultCreatedAt = fixtureDescCreatedAt.Default.(func() time.Time)
	// fixtureDescUpdatedAt is the schema descriptor for updated_at field.
	fixtureDescUpdatedAt := fixtureMixinFields0[1].Descriptor()
	// fixture.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	fixture.DefaultUpdatedAt = fixtureDescUpdatedAt.Default.(func() time.Time)
	// fixture.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	fixture.UpdateDefaultUpdatedAt = fixtureDescUpdatedAt.UpdateDefault.(func() time.Time)
	// fixtureDescFixtureNumber is the schema descriptor for fixture_number field.
	fixtureDescFixtureNumber := fixtureFields[1].Descriptor()
	// fixture.FixtureNumberValidator is a validator for the "fixture_number" field. It is called by the builders before save.
	fixture.FixtureNumberValidator = fixtureDescFixtureNumber.Validators[0].(func(string) error)
	invitationMixin := schema.Invitation{}.Mixin()
	invitationMixinFields0 := invitationMixin[0].Fields()
	_ = invitationMixinFields0
	invitationFields := schema.Invitation{}.Fields()
	_ = invitationFields
	// invitationDescCreatedAt is the schema descriptor for created_at field.
	invitationDescCreatedAt := invitationMixinFields0[0].Descriptor()
	// invitation.DefaultCreatedAt holds the default value on creation for the created_at field.
	invitation.DefaultCreatedAt = invitationDescCreatedAt.Default.(func() time.Time)
	// invitationDescUpdatedAt is the schema descriptor for updated_at field.
	invitationDescUpdatedAt := invitationMixinFields0[1].Descriptor()
	// invitation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invitation.DefaultUpdatedAt = invitationDescUpdatedAt.Default.(func() time.Time)
	// invitation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invitation.UpdateDefaultUpdatedAt = invitationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invitationDescEmail is the schema descriptor for email field.
	invitationDescEmail := invitationFields[1].Descriptor()
	// invitation.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	invitation.EmailValidator = func() func(string) error {
		validators := invitationDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// invitationDescToken is the schema descriptor for token field.
	invitationDescToken := invitationFields[4].Descriptor()
	// invitation.TokenValidator is a validator for the "token" field. It is called by the builders before save.
	invitation.TokenValidator = invitationDescToken.Validators[0].(func(string) error)
	// invitationDescInvitedBy is the schema descriptor for invited_by field.
	invitationDescInvitedBy := invitationFields[6].Descriptor()
	// invitation.InvitedByValidator is a validator for the "invited_by" field. It is called by the builders before save.
	invitation.InvitedByValidator = invitationDescInvitedBy.Validators[0].(func(string) error)
	negotiationMixin := schema.Negotiation{}.Mixin()
	negotiationMixinFields0 := negotiationMixin[0].Fields()
	_ = negotiationMixinFields0
	negotiationFields := schema.Negotiation{}.Fields()
	_ = negotiationFields
	// negotiationDescCreatedAt is the schema descriptor for created_at field.
	negotiationDescCreatedAt := negotiationMixinFields0[0].Descriptor()
	// negotiation.DefaultCreatedAt holds the default value on creation for the created_at field.
	negotiation.DefaultCreatedAt = negotiationDescCreatedAt.Default.(func() time.Time)
	// negotiationDescUpdatedAt is the schema descriptor for updated_at field.
	negotiationDescUpdatedAt := negotiationMixinFields0[1].Descriptor()
	// negotiation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	negotiation.DefaultUpdatedAt = negotiationDescUpdatedAt.Default.(func() time.Time)
	// negotiation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	negotiation.UpdateDefaultUpdatedAt = negotiationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// negotiationDescNegotiationNumber is the schema descriptor for negotiation_number field.
	negotiationDescNegotiationNumber := negotiationFields[1].Descriptor()
	// negotiation.NegotiationNumberValidator is a validator for the "negotiation_number" field. It is called by the builders before save.
	negotiation.NegotiationNumberValidator = negotiationDescNegotiationNumber.Validators[0].(func(string) error)
	// negotiationDescCreatedBy is the schema descriptor for created_by field.
	negotiationDescCreatedBy := negotiationFields[11].Descriptor()
	// negotiation.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	negotiation.CreatedByValidator = negotiationDescCreatedBy.Validators[0].(func(string) error)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields0[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[2].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = func() func(string) error {
		validators := notificationDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationDescMessage is the schema descriptor for message field.
	notificationDescMessage := notificationFields[3].Descriptor()
	// notification.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	notification.MessageValidator = func() func(string) error {
		validators := notificationDescMessage.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(message string) error {
			for _, fn := range fns {
				if err := fn(message); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationDescRead is the schema descriptor for read field.
	notificationDescRead := notificationFields[6].Descriptor()
	// notification.DefaultRead holds the default value on creation for the read field.
	notification.DefaultRead = notificationDescRead.Default.(bool)
	orderMixin := schema.Order{}.Mixin()
	orderMixinFields0 := orderMixin[0].Fields()
	_ = orderMixinFields0
	orderFields := schema.Order{}.Fields()
	_ = orderFields
	// orderDescCreatedAt is the schema descriptor for created_at field.
	orderDescCreatedAt := orderMixinFields0[0].Descriptor()
	// order.DefaultCreatedAt holds the default value on creation for the created_at field.
	order.DefaultCreatedAt = orderDescCreatedAt.Default.(func() time.Time)
	// orderDescUpdatedAt is the schema descriptor for updated_at field.
	orderDescUpdatedAt := orderMixinFields0[1].Descriptor()
	// order.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	order.DefaultUpdatedAt = orderDescUpdatedAt.Default.(func() time.Time)
	// order.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	order.UpdateDefaultUpdatedAt = orderDescUpdatedAt.UpdateDefault.(func() time.Time)
	// orderDescOrderNumber is the schema descriptor for order_number field.
	orderDescOrderNumber := orderFields[1].Descriptor()
	// order.OrderNumberValidator is a validator for the "order_number" field. It is called by the builders before save.
	order.OrderNumberValidator = orderDescOrderNumber.Validators[0].(func(string) error)
	// orderDescCreatedBy is the schema descriptor for created_by field.
	orderDescCreatedBy := orderFields[12].Descriptor()
	// order.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	order.CreatedByValidator = orderDescCreatedBy.Validators[0].(func(string) error)
	organizationMixin := schema.Organization{}.Mixin()
	organizationMixinFields0 := organizationMixin[0].Fields()
	_ = organizationMixinFields0
	organizationFields := schema.Organization{}.Fields()
	_ = organizationFields
	// organizationDescCreatedAt is the schema descriptor for created_at field.
	organizationDescCreatedAt := organizationMixinFields0[0].Descriptor()
	// organization.DefaultCreatedAt holds the default value on creation for the created_at field.
	organization.DefaultCreatedAt = organizationDescCreatedAt.Default.(func() time.Time)
	// organizationDescUpdatedAt is the schema descriptor for updated_at field.
	organizationDescUpdatedAt := organizationMixinFields0[1].Descriptor()
	// organization.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	organization.DefaultUpdatedAt = organizationDescUpdatedAt.Default.(func() time.Time)
	// organization.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	organization.UpdateDefaultUpdatedAt = organizationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// organizationDescName is the schema descriptor for name field.
	organizationDescName := organizationFields[1].Descriptor()
	// organization.NameValidator is a validator for the "name" field. It is called by the builders before save.
	organization.NameValidator = func() func(string) error {
		validators := organizationDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// organizationDescActive is the schema descriptor for active field.
	organizationDescActive := organizationFields[2].Descriptor()
	// organization.DefaultActive holds the default value on creation for the active field.
	organization.DefaultActive = organizationDescActive.Default.(bool)
	passwordresettokenMixin := schema.PasswordResetToken{}.Mixin()
	passwordresettokenMixinFields0 := passwordresettokenMixin[0].Fields()
	_ = passwordresettokenMixinFields0
	passwordresettokenFields := schema.PasswordResetToken{}.Fields()
	_ = passwordresettokenFields
	// passwordresettokenDescCreatedAt is the schema descriptor for created_at field.
	passwordresettokenDescCreatedAt := passwordresettokenMixinFields0[0].Descriptor()
	// passwordresettoken.DefaultCreatedAt holds the default value on creation for the created_at field.
	passwordresettoken.DefaultCreatedAt = passwordresettokenDescCreatedAt.Default.(func() time.Time)
	// passwordresettokenDescUpdatedAt is the schema descriptor for updated_at field.
	passwordresettokenDescUpdatedAt := passwordresettokenMixinFields0[1].Descriptor()
	// passwordresettoken.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	passwordresettoken.DefaultUpdatedAt = passwordresettokenDescUpdatedAt.Default.(func() time.Time)
	// passwordresettoken.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	passwordresettoken.UpdateDefaultUpdatedAt = passwordresettokenDescUpdatedAt.UpdateDefault.(func() time.Time)
	// passwordresettokenDescToken is the schema descriptor for token field.
	passwordresettokenDescToken := passwordresettokenFields[1].Descriptor()
	// passwordresettoken.TokenValidator is a validator for the "token" field. It is called by the builders before save.
	passwordresettoken.TokenValidator = passwordresettokenDescToken.Validators[0].(func(string) error)
	// passwordresettokenDescUsed is the schema descriptor for used field.
	passwordresettokenDescUsed := passwordresettokenFields[3].Descriptor()
	// passwordresettoken.DefaultUsed holds the default value on creation for the used field.
	passwordresettoken.DefaultUsed = passwordresettokenDescUsed.Default.(bool)
	portMixin := schema.Port{}.Mixin()
	portMixinFields0 := portMixin[0].Fields()
	_ = portMixinFields0
	portFields := schema.Port{}.Fields()
	_ = portFields
	// portDescCreatedAt is the schema descriptor for created_at field.
	portDescCreatedAt := portMixinFields0[0].Descriptor()
	// port.DefaultCreatedAt holds the default value on creation for the created_at field.
	port.DefaultCreatedAt = portDescCreatedAt.Default.(func() time.Time)
	// portDescUpdatedAt is the schema descriptor for updated_at field.
	portDescUpdatedAt := portMixinFields0[1].Descriptor()
	// port.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	port.DefaultUpdatedAt = portDescUpdatedAt.Default.(func() time.Time)
	// port.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	port.UpdateDefaultUpdatedAt = portDescUpdatedAt.UpdateDefault.(func() time.Time)
	// portDescName is the schema descriptor for name field.
	portDescName := portFields[1].Descriptor()
	// port.NameValidator is a validator for the "name" field. It is called by the builders before save.
	port.NameValidator = func() func(string) error {
		validators := portDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// portDescActive is the schema descriptor for active field.
	portDescActive := portFields[4].Descriptor()
	// port.DefaultActive holds the default value on creation for the active field.
	port.DefaultActive = portDescActive.Default.(bool)
	recapmanagerMixin := schema.RecapManager{}.Mixin()
	recapmanagerMixinFields0 := recapmanagerMixin[0].Fields()
	_ = recapmanagerMixinFields0
	recapmanagerFields := schema.RecapManager{}.Fields()
	_ = recapmanagerFields
	// recapmanagerDescCreatedAt is the schema descriptor for created_at field.
	recapmanagerDescCreatedAt := recapmanagerMixinFields0[0].Descriptor()
	// recapmanager.DefaultCreatedAt holds the default value on creation for the created_at field.
	recapmanager.DefaultCreatedAt = recapmanagerDescCreatedAt.Default.(func() time.Time)
	// recapmanagerDescUpdatedAt is the schema descriptor for updated_at field.
	recapmanagerDescUpdatedAt := recapmanagerMixinFields0[1].Descriptor()
	// recapmanager.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	recapmanager.DefaultUpdatedAt = recapmanagerDescUpdatedAt.Default.(func() time.Time)
	// recapmanager.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	recapmanager.UpdateDefaultUpdatedAt = recapmanagerDescUpdatedAt.UpdateDefault.(func() time.Time)
	// recapmanagerDescRecapNumber is the schema descriptor for recap_number field.
	recapmanagerDescRecapNumber := recapmanagerFields[1].Descriptor()
	// recapmanager.RecapNumberValidator is a validator for the "recap_number" field. It is called by the builders before save.
	recapmanager.RecapNumberValidator = recapmanagerDescRecapNumber.Validators[0].(func(string) error)
	// recapmanagerDescCreatedBy is the schema descriptor for created_by field.
	recapmanagerDescCreatedBy := recapmanagerFields[19].Descriptor()
	// recapmanager.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	recapmanager.CreatedByValidator = recapmanagerDescCreatedBy.Validators[0].(func(string) error)
	signatureMixin := schema.Signature{}.Mixin()
	signatureMixinFields0 := signatureMixin[0].Fields()
	_ = signatureMixinFields0
	signatureFields := schema.Signature{}.Fields()
	_ = signatureFields
	// signatureDescCreatedAt is the schema descriptor for created_at field.
	signatureDescCreatedAt := signatureMixinFields0[0].Descriptor()
	// signature.DefaultCreatedAt holds the default value on creation for the created_at field.
	signature.DefaultCreatedAt = signatureDescCreatedAt.Default.(func() time.Time)
	// signatureDescUpdatedAt is the schema descriptor for updated_at field.
	signatureDescUpdatedAt := signatureMixinFields0[1].Descriptor()
	// signature.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	signature.DefaultUpdatedAt = signatureDescUpdatedAt.Default.(func() time.Time)
	// signature.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	signature.UpdateDefaultUpdatedAt = signatureDescUpdatedAt.UpdateDefault.(func() time.Time)
	// signatureDescEntityID is the schema descriptor for entity_id field.
	signatureDescEntityID := signatureFields[2].Descriptor()
	// signature.EntityIDValidator is a validator for the "entity_id" field. It is called by the builders before save.
	signature.EntityIDValidator = signatureDescEntityID.Validators[0].(func(string) error)
	// signatureDescSignerName is the schema descriptor for signer_name field.
	signatureDescSignerName := signatureFields[3].Descriptor()
	// signature.SignerNameValidator is a validator for the "signer_name" field. It is called by the builders before save.
	signature.SignerNameValidator = signatureDescSignerName.Validators[0].(func(string) error)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields0[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields0[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = func() func(string) error {
		validators := userDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[2].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = func() func(string) error {
		validators := userDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescActive is the schema descriptor for active field.
	userDescActive := userFields[6].Descriptor()
	// user.DefaultActive holds the default value on creation for the active field.
	user.DefaultActive = userDescActive.Default.(bool)
	vesselMixin := schema.Vessel{}.Mixin()
	vesselMixinFields0 := vesselMixin[0].Fields()
	_ = vesselMixinFields0
	vesselFields := schema.Vessel{}.Fields()
	_ = vesselFields
	// vesselDescCreatedAt is the schema descriptor for created_at field.
	vesselDescCreatedAt := vesselMixinFields0[0].Descriptor()
	// vessel.DefaultCreatedAt holds the default value on creation for the created_at field.
	vessel.DefaultCreatedAt = vesselDescCreatedAt.Default.(func() time.Time)
	// vesselDescUpdatedAt is the schema descriptor for updated_at field.
	vesselDescUpdatedAt := vesselMixinFields0[1].Descriptor()
	// vessel.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	vessel.DefaultUpdatedAt = vesselDescUpdatedAt.Default.(func() time.Time)
	// vessel.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	vessel.UpdateDefaultUpdatedAt = vesselDescUpdatedAt.UpdateDefault.(func() time.Time)
	// vesselDescName is the schema descriptor for name field.
	vesselDescName := vesselFields[1].Descriptor()
	// vessel.NameValidator is a validator for the "name" field. It is called by the builders before save.
	vessel.NameValidator = func() func(string) error {
		validators := vesselDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// vesselDescVerified is the schema descriptor for verified field.
	vesselDescVerified := vesselFields[7].Descriptor()
	// vessel.DefaultVerified holds the default value on creation for the verified field.
	vessel.DefaultVerified = vesselDescVerified.Default.(bool)
}
