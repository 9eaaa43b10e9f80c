package domain

import "strings"

// Language selects which localized variant of a page is rendered.
type Language string

const (
	// LanguageUA is the primary language; its pages live under the bare path prefix.
	LanguageUA Language = "ua"
	// LanguageEN is the secondary language; its pages live under the /en prefix.
	LanguageEN Language = "en"
)

// HomePath returns the site root path for the language. The root page is never
// exposed under its literal code.
func (l Language) HomePath() string {
	if l == LanguageEN {
		return "/en"
	}
	return "/"
}

// PathPrefix returns the URL prefix routes for this language carry.
func (l Language) PathPrefix() string {
	if l == LanguageEN {
		return "/en"
	}
	return ""
}

// NormalizeLanguage coerces arbitrary input into a supported language,
// defaulting to the primary language.
func NormalizeLanguage(input string) Language {
	if strings.EqualFold(strings.TrimSpace(input), string(LanguageEN)) {
		return LanguageEN
	}
	return LanguageUA
}

// OrderType selects the sort key applied to sibling pages inside a children
// container.
type OrderType string

const (
	OrderByCreationDate OrderType = "CREATION_DATE"
	OrderByUpdateDate   OrderType = "UPDATE_DATE"
	OrderDefault        OrderType = "DEFAULT"
)

// Valid reports whether the value is one of the supported order types.
func (o OrderType) Valid() bool {
	switch o {
	case OrderByCreationDate, OrderByUpdateDate, OrderDefault:
		return true
	default:
		return false
	}
}

// ContainerType selects the layout used when rendering a page's direct
// children. A page without a container type renders no children at all.
type ContainerType string

const (
	ContainerGrid ContainerType = "GRID"
	ContainerList ContainerType = "LIST"
)

// Valid reports whether the value is one of the supported container types.
func (c ContainerType) Valid() bool {
	switch c {
	case ContainerGrid, ContainerList:
		return true
	default:
		return false
	}
}

// MessageType identifies which mutating operation an admin status banner
// reports.
type MessageType string

const (
	MessageNone    MessageType = ""
	MessageSaved   MessageType = "saved"
	MessageUpdated MessageType = "updated"
	MessageDeleted MessageType = "deleted"
)

// MessageTypeFromFlags resolves the redirect flags carried by admin index
// requests into a single message type. Later flags win, so deleted takes
// precedence over updated, and updated over saved.
func MessageTypeFromFlags(saved, updated, deleted bool) MessageType {
	messageType := MessageNone
	if saved {
		messageType = MessageSaved
	}
	if updated {
		messageType = MessageUpdated
	}
	if deleted {
		messageType = MessageDeleted
	}
	return messageType
}
