package core

import (
	"fmt"
	"strings"
)

// IdentitySeparator joins the game name and tagline in a Riot ID.
const IdentitySeparator = "#"

// Identity is a parsed Riot ID ("name#tag").
type Identity struct {
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// String reassembles the composite Riot ID form.
func (i Identity) String() string {
	return i.GameName + IdentitySeparator + i.TagLine
}

// InvalidIdentityError reports a Riot ID that does not contain exactly
// one separator, or has an empty name or tagline.
type InvalidIdentityError struct {
	Input string
}

func (e *InvalidIdentityError) Error() string {
	return fmt.Sprintf("invalid riot id %q: expected exactly one %q separating name and tagline", e.Input, IdentitySeparator)
}

// ParseIdentity splits a composite Riot ID into its game name and tagline.
// Exactly one separator must be present.
func ParseIdentity(input string) (Identity, error) {
	trimmed := strings.TrimSpace(input)
	if strings.Count(trimmed, IdentitySeparator) != 1 {
		return Identity{}, &InvalidIdentityError{Input: input}
	}

	name, tag, _ := strings.Cut(trimmed, IdentitySeparator)
	name = strings.TrimSpace(name)
	tag = strings.TrimSpace(tag)
	if name == "" || tag == "" {
		return Identity{}, &InvalidIdentityError{Input: input}
	}

	return Identity{GameName: name, TagLine: tag}, nil
}
