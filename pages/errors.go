package pages

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrCodeRequired        = errors.New("pages: code is required")
	ErrCodeInvalid         = errors.New("pages: code contains invalid characters")
	ErrCodeExists          = errors.New("pages: code already exists")
	ErrCaptionRequired     = errors.New("pages: caption is required for both languages")
	ErrPageNotFound        = errors.New("pages: page not found")
	ErrParentNotFound      = errors.New("pages: parent page not found")
	ErrParentCycle         = errors.New("pages: parent assignment creates hierarchy cycle")
	ErrRootParentForbidden = errors.New("pages: root page cannot have a parent")
	ErrParentRequired      = errors.New("pages: parent is required for non-root pages")
	ErrAliasTargetNotFound = errors.New("pages: alias target not found")
	ErrAliasChain          = errors.New("pages: alias target is itself an alias")
	ErrAliasSelf           = errors.New("pages: page cannot alias itself")
	ErrOrderTypeInvalid    = errors.New("pages: order type is invalid")
	ErrOrderNumRequired    = errors.New("pages: order_num is required for default ordering")
	ErrContainerInvalid    = errors.New("pages: container type is invalid")
	ErrRootDeleteForbidden = errors.New("pages: root page cannot be deleted")
)

// PageNotFoundError captures lookups that matched no page record.
type PageNotFoundError struct {
	Code string
}

func (e *PageNotFoundError) Error() string {
	if e == nil {
		return ErrPageNotFound.Error()
	}
	code := strings.TrimSpace(e.Code)
	if code != "" {
		return fmt.Sprintf("%s: code=%s", ErrPageNotFound.Error(), code)
	}
	return ErrPageNotFound.Error()
}

func (e *PageNotFoundError) Unwrap() error {
	return ErrPageNotFound
}

// AliasChainError captures an alias whose target is itself an alias. Chains
// are rejected at write time; encountering one at read time means the store
// was mutated outside the service.
type AliasChainError struct {
	Code   string
	Target string
}

func (e *AliasChainError) Error() string {
	if e == nil {
		return ErrAliasChain.Error()
	}
	return fmt.Sprintf("%s: code=%s target=%s", ErrAliasChain.Error(), e.Code, e.Target)
}

func (e *AliasChainError) Unwrap() error {
	return ErrAliasChain
}

// IsNotFound reports whether err denotes a missing page record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPageNotFound)
}
