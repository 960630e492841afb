package access

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Scheme определяет, как пароль хранится и сравнивается.
type Scheme interface {
	Name() string
	Seal(value string) (string, error)
	Match(stored, attempt string) bool
}

const (
	SchemePlain  = "plain"
	SchemeBcrypt = "bcrypt"
)

// Plain хранит пароль как есть и сравнивает строки точно.
type Plain struct{}

func (Plain) Name() string { return SchemePlain }

func (Plain) Seal(value string) (string, error) { return value, nil }

func (Plain) Match(stored, attempt string) bool { return stored == attempt }

// Bcrypt хранит bcrypt-хэш пароля. Включается только явно в конфигурации.
type Bcrypt struct {
	Cost int
}

func (Bcrypt) Name() string { return SchemeBcrypt }

func (b Bcrypt) Seal(value string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(value), cost)
	if err != nil {
		return "", fmt.Errorf("hash passphrase: %w", err)
	}
	return string(hash), nil
}

func (Bcrypt) Match(stored, attempt string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(attempt)) == nil
}

func schemeByName(name string) (Scheme, error) {
	switch name {
	case "", SchemePlain:
		return Plain{}, nil
	case SchemeBcrypt:
		return Bcrypt{}, nil
	}
	return nil, fmt.Errorf("unknown passphrase scheme %q", name)
}
