package response

import "time"

const (
	MessageSuccess = "Success"

	InternalServerErrorCode = 500
	DefaultErrorMessage     = "Something went wrong"

	DateTimeFormat = time.RFC3339
)
