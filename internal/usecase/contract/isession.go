package usecasecontract

import "context"

// ISessionResolver resolves the caller of the current request. A caller
// without a session is a normal outcome and is reported with ok == false.
type ISessionResolver interface {
	UserID(ctx context.Context) (userID string, ok bool)
	Nickname(ctx context.Context) (nickname string, ok bool)
}
