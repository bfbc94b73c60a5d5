package auth

import (
	"context"
	"strings"
)

// Credentials is the immutable snapshot of accepted identifiers and codewords.
//
// A team registered as TEAM_ID_<suffix>=<value> may log in either as the suffix,
// with the value as its codeword, or as the value itself, with the value (or the
// fallback codeword) as its codeword. The single agent ID has no codeword of its
// own and relies on the fallback.
type Credentials struct {
	byTeam   map[string]string   // suffix -> expected codeword
	values   map[string]struct{} // value form of every team
	agentID  string
	fallback string
}

var _ Authenticator = (*Credentials)(nil)

// NewCredentials builds a snapshot from suffix->value team pairs, an optional
// single agent ID and an optional fallback codeword. extraValues are accepted in
// the value form only (identifier equals codeword), as a bare TEAM_ID is.
// Inputs are trimmed and pairs with an empty side are skipped. The map is copied.
func NewCredentials(teams map[string]string, agentID, fallback string, extraValues ...string) *Credentials {
	c := &Credentials{
		byTeam:   make(map[string]string, len(teams)),
		values:   make(map[string]struct{}, len(teams)),
		agentID:  strings.TrimSpace(agentID),
		fallback: strings.TrimSpace(fallback),
	}
	for suffix, value := range teams {
		suffix, value = strings.TrimSpace(suffix), strings.TrimSpace(value)
		if suffix == "" || value == "" {
			continue
		}
		c.byTeam[suffix] = value
		c.values[value] = struct{}{}
	}
	for _, value := range extraValues {
		if value = strings.TrimSpace(value); value != "" {
			c.values[value] = struct{}{}
		}
	}
	return c
}

// Allowed reports whether id is on the allowlist (suffixes, values and the agent ID).
func (c *Credentials) Allowed(id string) bool {
	if _, ok := c.byTeam[id]; ok {
		return true
	}
	if _, ok := c.values[id]; ok {
		return true
	}
	return c.agentID != "" && id == c.agentID
}

// Len returns the number of distinct allowlisted identifiers.
func (c *Credentials) Len() int {
	seen := make(map[string]struct{}, len(c.byTeam)+len(c.values)+1)
	for suffix := range c.byTeam {
		seen[suffix] = struct{}{}
	}
	for value := range c.values {
		seen[value] = struct{}{}
	}
	if c.agentID != "" {
		seen[c.agentID] = struct{}{}
	}
	return len(seen)
}

// Teams returns the number of configured team pairs.
func (c *Credentials) Teams() int { return len(c.byTeam) }

// HasAgentID reports whether a single agent ID is configured.
func (c *Credentials) HasAgentID() bool { return c.agentID != "" }

// HasFallback reports whether a fallback codeword is configured.
func (c *Credentials) HasFallback() bool { return c.fallback != "" }

// Authenticate implements Authenticator.
func (c *Credentials) Authenticate(_ context.Context, identifier, codeword string) error {
	id := strings.TrimSpace(identifier)
	if id == "" || codeword == "" {
		return &ValidationError{Message: MsgRequired}
	}
	if !c.matches(id, codeword) {
		return &AuthenticationError{Message: MsgDenied}
	}
	return nil
}

func (c *Credentials) matches(id, codeword string) bool {
	// The suffix form is bound to its own codeword; the fallback does not apply.
	if expected, ok := c.byTeam[id]; ok {
		return codeword == expected
	}
	if _, ok := c.values[id]; ok && codeword == id {
		return true
	}
	return c.fallback != "" && c.Allowed(id) && strings.EqualFold(codeword, c.fallback)
}
