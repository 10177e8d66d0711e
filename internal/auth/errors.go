package auth

const (
	CodeUserNotFound         = "USER_NOT_FOUND"
	CodeDatabaseNotConnected = "DATABASE_NOT_CONNECTED"
	CodeInternalServerError  = "INTERNAL_SERVER_ERROR"
	CodeInvalidCredentials   = "INVALID_CREDENTIALS"
)

// Error is a structured, caller-visible error: a human-readable message
// plus a machine code for programmatic branching by the transport
// layer. Email-rejection errors carry a message only.
type Error struct {
	Message  string
	Code     string
	Argument string
}

func (e *Error) Error() string {
	return e.Message
}

// Extensions surfaces the code in GraphQL error payloads.
func (e *Error) Extensions() map[string]interface{} {
	if e.Code == "" {
		return nil
	}

	ext := map[string]interface{}{"code": e.Code}
	if e.Argument != "" {
		ext["argumentName"] = e.Argument
	}
	return ext
}

func errNotFound() *Error {
	return &Error{
		Message:  "User not found",
		Code:     CodeUserNotFound,
		Argument: "Not in Database",
	}
}

func errDatabaseNotConnected() *Error {
	return &Error{
		Message:  "Server Database is temporary unreachable.",
		Code:     CodeDatabaseNotConnected,
		Argument: "Database connection missing",
	}
}

func errInternal() *Error {
	return &Error{
		Message:  "An unknown error occurred in the server.",
		Code:     CodeInternalServerError,
		Argument: "Unknown error",
	}
}
