package domain

import internaldomain "github.com/goliatone/go-pagetree/internal/domain"

// Language selects which localized variant of a page is rendered.
type Language = internaldomain.Language

const (
	// LanguageUA is the primary language served under the bare path prefix.
	LanguageUA = internaldomain.LanguageUA
	// LanguageEN is the secondary language served under the /en prefix.
	LanguageEN = internaldomain.LanguageEN
)

// OrderType selects the sort key applied among sibling pages.
type OrderType = internaldomain.OrderType

const (
	OrderByCreationDate = internaldomain.OrderByCreationDate
	OrderByUpdateDate   = internaldomain.OrderByUpdateDate
	OrderDefault        = internaldomain.OrderDefault
)

// ContainerType selects the children listing layout for a page.
type ContainerType = internaldomain.ContainerType

const (
	ContainerGrid = internaldomain.ContainerGrid
	ContainerList = internaldomain.ContainerList
)

// MessageType identifies the admin status banner to render.
type MessageType = internaldomain.MessageType

const (
	MessageNone    = internaldomain.MessageNone
	MessageSaved   = internaldomain.MessageSaved
	MessageUpdated = internaldomain.MessageUpdated
	MessageDeleted = internaldomain.MessageDeleted
)

// NormalizeLanguage coerces arbitrary input into a supported language.
func NormalizeLanguage(input string) Language {
	return internaldomain.NormalizeLanguage(input)
}

// MessageTypeFromFlags resolves admin redirect flags into a message type.
func MessageTypeFromFlags(saved, updated, deleted bool) MessageType {
	return internaldomain.MessageTypeFromFlags(saved, updated, deleted)
}
