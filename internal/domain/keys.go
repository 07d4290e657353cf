package domain

type CtxKey string

const (
	KeyAccountID CtxKey = "AccountID"
	KeyRequestID CtxKey = "RequestID"
)
