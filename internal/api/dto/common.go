package dto

// Every endpoint answers with this envelope: {success, data|error}.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

func OK(data interface{}) Response {
	return Response{Success: true, Data: data}
}

func OKList(data interface{}, count int) Response {
	return Response{Success: true, Count: &count, Data: data}
}

func OKMessage(msg string) Response {
	return Response{Success: true, Message: msg}
}

func Err(msg string) ErrorResponse {
	return ErrorResponse{Success: false, Error: msg}
}

func ErrWithDetails(msg string, details map[string]string) ErrorResponse {
	return ErrorResponse{Success: false, Error: msg, Details: details}
}
