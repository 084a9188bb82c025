package errors

// Error code constants. Errors carry code + message; the SPA renders the
// message directly, so messages must stand on their own.

// Trading entity error codes.
const (
	CodeOrderNotFound       = "ORDER_NOT_FOUND"
	CodeNegotiationNotFound = "NEGOTIATION_NOT_FOUND"
	CodeFixtureNotFound     = "FIXTURE_NOT_FOUND"
	CodeContractNotFound    = "CONTRACT_NOT_FOUND"
	CodeRecapNotFound       = "RECAP_NOT_FOUND"
	CodeAddendumNotFound    = "ADDENDUM_NOT_FOUND"
	CodeNumberTaken         = "NUMBER_ALREADY_TAKEN"
)

// Reference data error codes.
const (
	CodeVesselNotFound    = "VESSEL_NOT_FOUND"
	CodeCompanyNotFound   = "COMPANY_NOT_FOUND"
	CodePortNotFound      = "PORT_NOT_FOUND"
	CodeCargoTypeNotFound = "CARGO_TYPE_NOT_FOUND"
)

// Approval/signature error codes.
const (
	CodeApprovalNotFound  = "APPROVAL_NOT_FOUND"
	CodeApprovalDecided   = "APPROVAL_ALREADY_DECIDED"
	CodeDuplicateRequest  = "DUPLICATE_PENDING_REQUEST"
	CodeSignatureNotFound = "SIGNATURE_NOT_FOUND"
)

// Invitation/account error codes.
const (
	CodeInvitationNotFound = "INVITATION_NOT_FOUND"
	CodeInvitationSent     = "INVITATION_ALREADY_SENT"
	CodeInvitationExpired  = "INVITATION_EXPIRED"
	CodeInvitationRevoked  = "INVITATION_REVOKED"
	CodeEmailMismatch      = "INVITATION_EMAIL_MISMATCH"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeOrgNotFound        = "ORGANIZATION_NOT_FOUND"
	CodeWeakPassword       = "PASSWORD_TOO_WEAK"
	CodeResetTokenInvalid  = "RESET_TOKEN_INVALID"
)

// Auth error codes.
const (
	CodeAuthFailed   = "AUTH_FAILED"
	CodeTokenExpired = "TOKEN_EXPIRED"
	CodeTokenInvalid = "TOKEN_INVALID"
)

// Validation error codes.
const (
	CodeInvalidRequestField = "INVALID_REQUEST_FIELD"
	CodeValidationFailed    = "VALIDATION_FAILED"
	CodeInvalidStatus       = "INVALID_STATUS_TRANSITION"
)
