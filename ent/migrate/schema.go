// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActivityLogsColumns holds the columns for the "activity_logs" table.
	ActivityLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "entity_type", Type: field.TypeString},
		{Name: "entity_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "snapshot", Type: field.TypeJSON, Nullable: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
	}
	// ActivityLogsTable holds the schema information for the "activity_logs" table.
	ActivityLogsTable = &schema.Table{
		Name:       "activity_logs",
		Columns:    ActivityLogsColumns,
		PrimaryKey: []*schema.Column{ActivityLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "activitylog_entity_type_entity_id",
				Unique:  false,
				Columns: []*schema.Column{ActivityLogsColumns[2], ActivityLogsColumns[3]},
			},
			{
				Name:    "activitylog_user_id",
				Unique:  false,
				Columns: []*schema.Column{ActivityLogsColumns[9]},
			},
			{
				Name:    "activitylog_created_at",
				Unique:  false,
				Columns: []*schema.Column{ActivityLogsColumns[1]},
			},
		},
	}
	// AddendumsColumns holds the columns for the "addendums" table.
	AddendumsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "addendum_number", Type: field.TypeString},
		{Name: "contract_id", Type: field.TypeString, Nullable: true},
		{Name: "recap_id", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "final"}, Default: "draft"},
		{Name: "created_by", Type: field.TypeString},
	}
	// AddendumsTable holds the schema information for the "addendums" table.
	AddendumsTable = &schema.Table{
		Name:       "addendums",
		Columns:    AddendumsColumns,
		PrimaryKey: []*schema.Column{AddendumsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "addendum_contract_id",
				Unique:  false,
				Columns: []*schema.Column{AddendumsColumns[4]},
			},
			{
				Name:    "addendum_recap_id",
				Unique:  false,
				Columns: []*schema.Column{AddendumsColumns[5]},
			},
		},
	}
	// ApprovalsColumns holds the columns for the "approvals" table.
	ApprovalsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "entity_type", Type: field.TypeEnum, Enums: []string{"contract", "recap"}},
		{Name: "entity_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected"}, Default: "pending"},
		{Name: "requested_by", Type: field.TypeString},
		{Name: "decided_by", Type: field.TypeString, Nullable: true},
		{Name: "note", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "decided_at", Type: field.TypeTime, Nullable: true},
	}
	// ApprovalsTable holds the schema information for the "approvals" table.
	ApprovalsTable = &schema.Table{
		Name:       "approvals",
		Columns:    ApprovalsColumns,
		PrimaryKey: []*schema.Column{ApprovalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "approval_entity_type_entity_id",
				Unique:  false,
				Columns: []*schema.Column{ApprovalsColumns[3], ApprovalsColumns[4]},
			},
			{
				Name:    "approval_status",
				Unique:  false,
				Columns: []*schema.Column{ApprovalsColumns[5]},
			},
		},
	}
	// CargoTypesColumns holds the columns for the "cargo_types" table.
	CargoTypesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// CargoTypesTable holds the schema information for the "cargo_types" table.
	CargoTypesTable = &schema.Table{
		Name:       "cargo_types",
		Columns:    CargoTypesColumns,
		PrimaryKey: []*schema.Column{CargoTypesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "cargotype_name",
				Unique:  true,
				Columns: []*schema.Column{CargoTypesColumns[3]},
			},
		},
	}
	// CompaniesColumns holds the columns for the "companies" table.
	CompaniesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"owner", "charterer", "broker", "other"}, Default: "other"},
		{Name: "country", Type: field.TypeString, Nullable: true},
		{Name: "verified", Type: field.TypeBool, Default: false},
	}
	// CompaniesTable holds the schema information for the "companies" table.
	CompaniesTable = &schema.Table{
		Name:       "companies",
		Columns:    CompaniesColumns,
		PrimaryKey: []*schema.Column{CompaniesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "company_name",
				Unique:  false,
				Columns: []*schema.Column{CompaniesColumns[3]},
			},
			{
				Name:    "company_type",
				Unique:  false,
				Columns: []*schema.Column{CompaniesColumns[4]},
			},
		},
	}
	// ContractsColumns holds the columns for the "contracts" table.
	ContractsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "cp_number", Type: field.TypeString},
		{Name: "order_id", Type: field.TypeString, Nullable: true},
		{Name: "negotiation_id", Type: field.TypeString, Nullable: true},
		{Name: "parent_contract_id", Type: field.TypeString, Nullable: true},
		{Name: "contract_type", Type: field.TypeString, Nullable: true},
		{Name: "delivery_type", Type: field.TypeString, Nullable: true},
		{Name: "vessel_id", Type: field.TypeString, Nullable: true},
		{Name: "company_id", Type: field.TypeString, Nullable: true},
		{Name: "load_port_id", Type: field.TypeString, Nullable: true},
		{Name: "discharge_port_id", Type: field.TypeString, Nullable: true},
		{Name: "cargo_type_id", Type: field.TypeString, Nullable: true},
		{Name: "freight_rate", Type: field.TypeFloat64, Nullable: true},
		{Name: "laycan_start", Type: field.TypeTime, Nullable: true},
		{Name: "laycan_end", Type: field.TypeTime, Nullable: true},
		{Name: "quantity", Type: field.TypeFloat64, Nullable: true},
		{Name: "demurrage_rate", Type: field.TypeFloat64, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"drafting", "review", "final", "signed", "canceled"}, Default: "drafting"},
		{Name: "created_by", Type: field.TypeString},
		{Name: "fixture_contracts", Type: field.TypeString, Nullable: true},
	}
	// ContractsTable holds the schema information for the "contracts" table.
	ContractsTable = &schema.Table{
		Name:       "contracts",
		Columns:    ContractsColumns,
		PrimaryKey: []*schema.Column{ContractsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "contracts_fixtures_contracts",
				Columns:    []*schema.Column{ContractsColumns[21]},
				RefColumns: []*schema.Column{FixturesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "contract_cp_number",
				Unique:  false,
				Columns: []*schema.Column{ContractsColumns[3]},
			},
			{
				Name:    "contract_status",
				Unique:  false,
				Columns: []*schema.Column{ContractsColumns[19]},
			},
			{
				Name:    "contract_order_id",
				Unique:  false,
				Columns: []*schema.Column{ContractsColumns[4]},
			},
		},
	}
	// FieldChangesColumns holds the columns for the "field_changes" table.
	FieldChangesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "entity_type", Type: field.TypeString},
		{Name: "entity_id", Type: field.TypeString},
		{Name: "field_name", Type: field.TypeString},
		{Name: "old_value", Type: field.TypeString, Nullable: true},
		{Name: "new_value", Type: field.TypeString, Nullable: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "reason", Type: field.TypeString, Nullable: true},
	}
	// FieldChangesTable holds the schema information for the "field_changes" table.
	FieldChangesTable = &schema.Table{
		Name:       "field_changes",
		Columns:    FieldChangesColumns,
		PrimaryKey: []*schema.Column{FieldChangesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "fieldchange_entity_type_entity_id",
				Unique:  false,
				Columns: []*schema.Column{FieldChangesColumns[2], FieldChangesColumns[3]},
			},
			{
				Name:    "fieldchange_user_id",
				Unique:  false,
				Columns: []*schema.Column{FieldChangesColumns[7]},
			},
			{
				Name:    "fieldchange_created_at",
				Unique:  false,
				Columns: []*schema.Column{FieldChangesColumns[1]},
			},
		},
	}
	// FixturesColumns holds the columns for the "fixtures" table.
	FixturesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "fixture_number", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "working-copy", "final", "on-subs", "fully-fixed", "canceled"}, Default: "draft"},
		{Name: "last_updated", Type: field.TypeTime, Nullable: true},
		{Name: "search_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "order_fixtures", Type: field.TypeString, Nullable: true},
	}
	// FixturesTable holds the schema information for the "fixtures" table.
	FixturesTable = &schema.Table{
		Name:       "fixtures",
		Columns:    FixturesColumns,
		PrimaryKey: []*schema.Column{FixturesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "fixtures_orders_fixtures",
				Columns:    []*schema.Column{FixturesColumns[7]},
				RefColumns: []*schema.Column{OrdersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "fixture_fixture_number",
				Unique:  true,
				Columns: []*schema.Column{FixturesColumns[3]},
			},
			{
				Name:    "fixture_status",
				Unique:  false,
				Columns: []*schema.Column{FixturesColumns[4]},
			},
		},
	}
	// InvitationsColumns holds the columns for the "invitations" table.
	InvitationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "email", Type: field.TypeString, Size: 255},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "broker", "operator"}, Default: "broker"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "accepted", "expired", "revoked"}, Default: "pending"},
		{Name: "token", Type: field.TypeString},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "invited_by", Type: field.TypeString},
		{Name: "accepted_at", Type: field.TypeTime, Nullable: true},
		{Name: "organization_invitations", Type: field.TypeString},
	}
	// InvitationsTable holds the schema information for the "invitations" table.
	InvitationsTable = &schema.Table{
		Name:       "invitations",
		Columns:    InvitationsColumns,
		PrimaryKey: []*schema.Column{InvitationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invitations_organizations_invitations",
				Columns:    []*schema.Column{InvitationsColumns[10]},
				RefColumns: []*schema.Column{OrganizationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invitation_token",
				Unique:  true,
				Columns: []*schema.Column{InvitationsColumns[6]},
			},
			{
				Name:    "invitation_email",
				Unique:  false,
				Columns: []*schema.Column{InvitationsColumns[3]},
			},
			{
				Name:    "invitation_status",
				Unique:  false,
				Columns: []*schema.Column{InvitationsColumns[5]},
			},
		},
	}
	// NegotiationsColumns holds the columns for the "negotiations" table.
	NegotiationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "negotiation_number", Type: field.TypeString},
		{Name: "company_id", Type: field.TypeString, Nullable: true},
		{Name: "vessel_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"indication", "firm", "on-subs", "fixed", "failed"}, Default: "indication"},
		{Name: "freight_rate", Type: field.TypeFloat64, Nullable: true},
		{Name: "first_indication", Type: field.TypeFloat64, Nullable: true},
		{Name: "highest_indication", Type: field.TypeFloat64, Nullable: true},
		{Name: "lowest_indication", Type: field.TypeFloat64, Nullable: true},
		{Name: "market_index", Type: field.TypeString, Nullable: true},
		{Name: "delivery_type", Type: field.TypeString, Nullable: true},
		{Name: "created_by", Type: field.TypeString},
		{Name: "order_negotiations", Type: field.TypeString},
	}
	// NegotiationsTable holds the schema information for the "negotiations" table.
	NegotiationsTable = &schema.Table{
		Name:       "negotiations",
		Columns:    NegotiationsColumns,
		PrimaryKey: []*schema.Column{NegotiationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "negotiations_orders_negotiations",
				Columns:    []*schema.Column{NegotiationsColumns[14]},
				RefColumns: []*schema.Column{OrdersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "negotiation_negotiation_number",
				Unique:  false,
				Columns: []*schema.Column{NegotiationsColumns[3]},
			},
			{
				Name:    "negotiation_status",
				Unique:  false,
				Columns: []*schema.Column{NegotiationsColumns[6]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"APPROVAL_REQUESTED", "APPROVAL_DECIDED", "INVITATION_ACCEPTED", "CONTRACT_SIGNED"}},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "message", Type: field.TypeString, Size: 2048},
		{Name: "resource_type", Type: field.TypeString, Nullable: true},
		{Name: "resource_id", Type: field.TypeString, Nullable: true},
		{Name: "read", Type: field.TypeBool, Default: false},
		{Name: "read_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_notifications", Type: field.TypeString},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "notifications_users_notifications",
				Columns:    []*schema.Column{NotificationsColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "notification_read_user_notifications",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[7], NotificationsColumns[9]},
			},
			{
				Name:    "notification_created_at_user_notifications",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1], NotificationsColumns[9]},
			},
			{
				Name:    "notification_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1]},
			},
		},
	}
	// OrdersColumns holds the columns for the "orders" table.
	OrdersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "order_number", Type: field.TypeString},
		{Name: "organization_id", Type: field.TypeString, Nullable: true},
		{Name: "market", Type: field.TypeEnum, Enums: []string{"dry", "wet"}, Default: "dry"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "active", "closed", "canceled"}, Default: "draft"},
		{Name: "cargo_type_id", Type: field.TypeString, Nullable: true},
		{Name: "load_port_id", Type: field.TypeString, Nullable: true},
		{Name: "discharge_port_id", Type: field.TypeString, Nullable: true},
		{Name: "laycan_start", Type: field.TypeTime, Nullable: true},
		{Name: "laycan_end", Type: field.TypeTime, Nullable: true},
		{Name: "quantity", Type: field.TypeFloat64, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_by", Type: field.TypeString},
	}
	// OrdersTable holds the schema information for the "orders" table.
	OrdersTable = &schema.Table{
		Name:       "orders",
		Columns:    OrdersColumns,
		PrimaryKey: []*schema.Column{OrdersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "order_order_number",
				Unique:  true,
				Columns: []*schema.Column{OrdersColumns[3]},
			},
			{
				Name:    "order_status",
				Unique:  false,
				Columns: []*schema.Column{OrdersColumns[6]},
			},
			{
				Name:    "order_organization_id",
				Unique:  false,
				Columns: []*schema.Column{OrdersColumns[4]},
			},
		},
	}
	// OrganizationsColumns holds the columns for the "organizations" table.
	OrganizationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// OrganizationsTable holds the schema information for the "organizations" table.
	OrganizationsTable = &schema.Table{
		Name:       "organizations",
		Columns:    OrganizationsColumns,
		PrimaryKey: []*schema.Column{OrganizationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "organization_name",
				Unique:  true,
				Columns: []*schema.Column{OrganizationsColumns[3]},
			},
		},
	}
	// PasswordResetTokensColumns holds the columns for the "password_reset_tokens" table.
	PasswordResetTokensColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "token", Type: field.TypeString},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "used", Type: field.TypeBool, Default: false},
		{Name: "used_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_reset_tokens", Type: field.TypeString},
	}
	// PasswordResetTokensTable holds the schema information for the "password_reset_tokens" table.
	PasswordResetTokensTable = &schema.Table{
		Name:       "password_reset_tokens",
		Columns:    PasswordResetTokensColumns,
		PrimaryKey: []*schema.Column{PasswordResetTokensColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "password_reset_tokens_users_reset_tokens",
				Columns:    []*schema.Column{PasswordResetTokensColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "passwordresettoken_token",
				Unique:  true,
				Columns: []*schema.Column{PasswordResetTokensColumns[3]},
			},
			{
				Name:    "passwordresettoken_used",
				Unique:  false,
				Columns: []*schema.Column{PasswordResetTokensColumns[5]},
			},
		},
	}
	// PortsColumns holds the columns for the "ports" table.
	PortsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "country", Type: field.TypeString, Nullable: true},
		{Name: "unlocode", Type: field.TypeString, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// PortsTable holds the schema information for the "ports" table.
	PortsTable = &schema.Table{
		Name:       "ports",
		Columns:    PortsColumns,
		PrimaryKey: []*schema.Column{PortsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "port_unlocode",
				Unique:  false,
				Columns: []*schema.Column{PortsColumns[5]},
			},
			{
				Name:    "port_name",
				Unique:  false,
				Columns: []*schema.Column{PortsColumns[3]},
			},
		},
	}
	// RecapManagersColumns holds the columns for the "recap_managers" table.
	RecapManagersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "recap_number", Type: field.TypeString},
		{Name: "order_id", Type: field.TypeString, Nullable: true},
		{Name: "negotiation_id", Type: field.TypeString, Nullable: true},
		{Name: "parent_recap_id", Type: field.TypeString, Nullable: true},
		{Name: "contract_type", Type: field.TypeString, Nullable: true},
		{Name: "delivery_type", Type: field.TypeString, Nullable: true},
		{Name: "market_index", Type: field.TypeString, Nullable: true},
		{Name: "vessel_id", Type: field.TypeString, Nullable: true},
		{Name: "company_id", Type: field.TypeString, Nullable: true},
		{Name: "load_port_id", Type: field.TypeString, Nullable: true},
		{Name: "discharge_port_id", Type: field.TypeString, Nullable: true},
		{Name: "cargo_type_id", Type: field.TypeString, Nullable: true},
		{Name: "freight_rate", Type: field.TypeFloat64, Nullable: true},
		{Name: "laycan_start", Type: field.TypeTime, Nullable: true},
		{Name: "laycan_end", Type: field.TypeTime, Nullable: true},
		{Name: "quantity", Type: field.TypeFloat64, Nullable: true},
		{Name: "demurrage_rate", Type: field.TypeFloat64, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"drafting", "review", "final", "signed", "canceled"}, Default: "drafting"},
		{Name: "created_by", Type: field.TypeString},
		{Name: "fixture_recaps", Type: field.TypeString, Nullable: true},
	}
	// RecapManagersTable holds the schema information for the "recap_managers" table.
	RecapManagersTable = &schema.Table{
		Name:       "recap_managers",
		Columns:    RecapManagersColumns,
		PrimaryKey: []*schema.Column{RecapManagersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "recap_managers_fixtures_recaps",
				Columns:    []*schema.Column{RecapManagersColumns[22]},
				RefColumns: []*schema.Column{FixturesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "recapmanager_recap_number",
				Unique:  false,
				Columns: []*schema.Column{RecapManagersColumns[3]},
			},
			{
				Name:    "recapmanager_status",
				Unique:  false,
				Columns: []*schema.Column{RecapManagersColumns[20]},
			},
			{
				Name:    "recapmanager_order_id",
				Unique:  false,
				Columns: []*schema.Column{RecapManagersColumns[4]},
			},
		},
	}
	// SignaturesColumns holds the columns for the "signatures" table.
	SignaturesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "entity_type", Type: field.TypeEnum, Enums: []string{"contract", "recap"}},
		{Name: "entity_id", Type: field.TypeString},
		{Name: "signer_name", Type: field.TypeString},
		{Name: "signer_email", Type: field.TypeString, Nullable: true},
		{Name: "party", Type: field.TypeEnum, Enums: []string{"owner", "charterer", "broker"}, Default: "broker"},
		{Name: "signed_at", Type: field.TypeTime, Nullable: true},
		{Name: "document_storage_id", Type: field.TypeString, Nullable: true},
	}
	// SignaturesTable holds the schema information for the "signatures" table.
	SignaturesTable = &schema.Table{
		Name:       "signatures",
		Columns:    SignaturesColumns,
		PrimaryKey: []*schema.Column{SignaturesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "signature_entity_type_entity_id",
				Unique:  false,
				Columns: []*schema.Column{SignaturesColumns[3], SignaturesColumns[4]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "email", Type: field.TypeString, Size: 255},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "password_hash", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "broker", "operator"}, Default: "broker"},
		{Name: "avatar_storage_id", Type: field.TypeString, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "organization_users", Type: field.TypeString, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "users_organizations_users",
				Columns:    []*schema.Column{UsersColumns[10]},
				RefColumns: []*schema.Column{OrganizationsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[3]},
			},
		},
	}
	// VesselsColumns holds the columns for the "vessels" table.
	VesselsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "imo_number", Type: field.TypeString, Nullable: true},
		{Name: "vessel_type", Type: field.TypeString, Nullable: true},
		{Name: "dwt", Type: field.TypeFloat64, Nullable: true},
		{Name: "built_year", Type: field.TypeInt, Nullable: true},
		{Name: "flag", Type: field.TypeString, Nullable: true},
		{Name: "verified", Type: field.TypeBool, Default: false},
	}
	// VesselsTable holds the schema information for the "vessels" table.
	VesselsTable = &schema.Table{
		Name:       "vessels",
		Columns:    VesselsColumns,
		PrimaryKey: []*schema.Column{VesselsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "vessel_imo_number",
				Unique:  true,
				Columns: []*schema.Column{VesselsColumns[4]},
			},
			{
				Name:    "vessel_name",
				Unique:  false,
				Columns: []*schema.Column{VesselsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActivityLogsTable,
		AddendumsTable,
		ApprovalsTable,
		CargoTypesTable,
		CompaniesTable,
		ContractsTable,
		FieldChangesTable,
		FixturesTable,
		InvitationsTable,
		NegotiationsTable,
		NotificationsTable,
		OrdersTable,
		OrganizationsTable,
		PasswordResetTokensTable,
		PortsTable,
		RecapManagersTable,
		SignaturesTable,
		UsersTable,
		VesselsTable,
	}
)

func init() {
	ContractsTable.ForeignKeys[0].RefTable = FixturesTable
	FixturesTable.ForeignKeys[0].RefTable = OrdersTable
	InvitationsTable.ForeignKeys[0].RefTable = OrganizationsTable
	NegotiationsTable.ForeignKeys[0].RefTable = OrdersTable
	NotificationsTable.ForeignKeys[0].RefTable = UsersTable
	PasswordResetTokensTable.ForeignKeys[0].RefTable = UsersTable
	RecapManagersTable.ForeignKeys[0].RefTable = FixturesTable
	UsersTable.ForeignKeys[0].RefTable = OrganizationsTable
}
