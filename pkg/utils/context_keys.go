package utils

// gin context keys shared by middleware and controllers.
const (
	CtxTraceID   = "trace_id"
	CtxLogger    = "logger"
	CtxCreatorID = "creator_id"
	CtxUsername  = "username"
	CtxRole      = "role"
)

const RoleAdmin = "admin"
