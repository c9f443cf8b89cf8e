package domain

// ID is used across domain entities.
type ID int64

// RequestContext carries the authenticated admin once a bearer token has
// been verified.
type RequestContext struct {
	AdminID ID `json:"adminId"`
}
