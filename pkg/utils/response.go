package utils

// ResponseData is the JSON envelope returned by every REST endpoint.
// Status is used for the HTTP status code only and is not serialized.
type ResponseData struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Results any    `json:"results,omitempty"`
}

// PanicIfNeeded panics on error so the recovery middleware can resolve
// it into a structured error payload.
func PanicIfNeeded(err error) {
	if err != nil {
		panic(err)
	}
}
