package response

// Standard response messages and codes.
const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Internal server error, please try again later"
	InternalServerErrorCode = 500
)

// Wire formats for Date and DateTime JSON marshaling.
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
