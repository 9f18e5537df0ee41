package response

const (
	MessageSuccess = "Success"

	// errorCodeUnknown is reported for errors that carry no HTTP status.
	errorCodeUnknown = 1
)
