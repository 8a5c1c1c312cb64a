package transport

// Response is the envelope every /api endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func OK(data any) Response {
	return Response{Success: true, Data: data}
}

func OKMessage(data any, message string) Response {
	return Response{Success: true, Data: data, Message: message}
}

func Fail(errMsg string) Response {
	return Response{Success: false, Error: errMsg}
}
