package serverutils

// Response is the JSON envelope every endpoint returns.
type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code, message string) Response[any] {
	return Response[any]{
		Success: false,
		Message: message,
		Code:    code,
	}
}
