package usecase

import "context"

// TokenUsecase issues access tokens to registered users.
type TokenUsecase interface {
	// IssueToken signs a token for email. Unknown emails yield ErrUnknownUser.
	IssueToken(ctx context.Context, email string) (string, error)
}
