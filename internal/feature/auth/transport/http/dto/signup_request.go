// Package dto defines data transfer objects for the auth feature's HTTP
// transport layer.
package dto

// SignupReq represents the request body for the /signup endpoint.
// Password/confirmation equality is a business rule checked by the
// usecase; the binding only validates presence and minimum length.
type SignupReq struct {
	Username     string `json:"username" binding:"required"`
	Password     string `json:"password" binding:"required,min=8"`
	Confirmation string `json:"confirmation" binding:"required"`
}
