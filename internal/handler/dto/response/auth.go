package response

import "rental-sales-api/internal/usecase/readmodel"

type LoginResponse struct {
	AccessToken string            `json:"access_token"`
	User        *readmodel.UserRM `json:"user"`
}
