package serverutils

// Response is the uniform JSON envelope: payload plus a human-readable status
// message surfaced directly in the client UI.
type Response[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Data:    data,
		Message: message,
	}
}

func ErrorResponse(code int, message string) ErrorBody {
	return ErrorBody{
		Code:    code,
		Message: message,
	}
}
