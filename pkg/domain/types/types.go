package types

// Version is the service version, overridable at build time via -ldflags
var Version = "0.1.0"

// ServiceName identifies this service in logs and the health payload
const ServiceName = "groupbuy-core"

// ProcurementID identifies a procurement record
type ProcurementID int64

// UserID identifies a user record
type UserID int64

// ParticipantID identifies a participation record
type ParticipantID int64

// CategoryID identifies a procurement category
type CategoryID int64
