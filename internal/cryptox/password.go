// Package cryptox wraps bcrypt for account passwords.
package cryptox

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/taskman/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when none is configured.
const DefaultCost = 10

// PasswordHasher hashes and verifies passwords with a fixed bcrypt cost.
type PasswordHasher struct {
	cost int

	dummyOnce sync.Once
	dummy     []byte
}

// NewPasswordHasher returns a hasher for cost. Values outside bcrypt's
// accepted range fall back to DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Cost returns the configured work factor.
func (h *PasswordHasher) Cost() int {
	return h.cost
}

// Hash returns the salted bcrypt hash of password. Passwords longer than
// 72 bytes are rejected with common.ErrValidation.
func (h *PasswordHasher) Hash(password []byte) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(password, h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: password longer than 72 bytes", common.ErrValidation)
		}
		return "", err
	}
	return string(hashed), nil
}

// Compare reports whether password matches hashed.
func (h *PasswordHasher) Compare(hashed string, password []byte) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), password) == nil
}

// CompareDummy spends the same work as Compare against a throwaway hash.
// Sign-in calls it for unknown emails so both failure paths take equally long.
func (h *PasswordHasher) CompareDummy(password []byte) {
	h.dummyOnce.Do(func() {
		h.dummy, _ = bcrypt.GenerateFromPassword([]byte("taskman-dummy-password"), h.cost)
	})
	_ = bcrypt.CompareHashAndPassword(h.dummy, password)
}
