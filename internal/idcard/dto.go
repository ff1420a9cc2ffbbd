package idcard

type DispatchCardRequest struct {
	Email string `json:"email" binding:"omitempty,email"`
}
