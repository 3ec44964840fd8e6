package fetch

import (
	"github.com/huemap-cli/huemap/constant"
	"github.com/samber/mo"
	"github.com/zalando/go-keyring"
)

const keyringUser = "github-token"

// SaveToken persists a GitHub API token to the system keyring.
// Unauthenticated requests work fine but hit much lower rate limits.
func SaveToken(token string) error {
	return keyring.Set(constant.Huemap, keyringUser, token)
}

// Token retrieves the stored GitHub API token, if any.
func Token() mo.Option[string] {
	token, err := keyring.Get(constant.Huemap, keyringUser)
	if err != nil || token == "" {
		return mo.None[string]()
	}
	return mo.Some(token)
}

// DeleteToken removes the stored GitHub API token from the system keyring.
func DeleteToken() error {
	return keyring.Delete(constant.Huemap, keyringUser)
}
