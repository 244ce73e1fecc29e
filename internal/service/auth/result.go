package auth

import "github.com/bipbipboopboop/ielts-progressor/internal/domain"

// AuthResult is returned by Register and Login.
type AuthResult struct {
	AccessToken string
	Identity    *domain.Identity
}
