package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldOperation   = "operation"
	FieldError       = "error"
	FieldKey         = "key"
	FieldRevision    = "revision"
	FieldEntityID    = "entity_id"
	FieldYear        = "year"
	FieldMonth       = "month"
	FieldDescription = "description"
	FieldAmount      = "amount"
	FieldCategory    = "category"
	FieldAccount     = "account"
	FieldCount       = "count"
	FieldDuration    = "duration_ms"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentStorage = "storage"
	ComponentState   = "state"
	ComponentSeed    = "seed"
	ComponentReport  = "report"
	ComponentCache   = "cache"
)

// Operations defines standard operation names
const (
	OpCreate   = "create"
	OpRead     = "read"
	OpUpdate   = "update"
	OpDelete   = "delete"
	OpList     = "list"
	OpSeed     = "seed"
	OpLoad     = "load"
	OpValidate = "validate"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
