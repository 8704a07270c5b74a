package model

import "strings"

// MediaType tags the catalog variant of an item
type MediaType string

const (
	MediaTypeCD        MediaType = "CD"
	MediaTypeDVD       MediaType = "DVD"
	MediaTypeBook      MediaType = "BOOK"
	MediaTypeBoardGame MediaType = "BOARD_GAME"
)

// MediaTypes lists every catalog variant in display order
var MediaTypes = []MediaType{MediaTypeCD, MediaTypeDVD, MediaTypeBook, MediaTypeBoardGame}

// ParseMediaType accepts a variant name in any case
func ParseMediaType(s string) (MediaType, bool) {
	t := MediaType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", false
	}
	return t, true
}

func (t MediaType) Valid() bool {
	switch t {
	case MediaTypeCD, MediaTypeDVD, MediaTypeBook, MediaTypeBoardGame:
		return true
	}
	return false
}

// IsCirculating reports whether items of this variant may be lent
func (t MediaType) IsCirculating() bool {
	switch t {
	case MediaTypeCD, MediaTypeDVD, MediaTypeBook:
		return true
	}
	return false
}

func (t MediaType) String() string {
	return string(t)
}

// Item is the capability set shared by every catalog variant
type Item interface {
	GetID() uint32
	GetName() string
	IsAvailable() bool
	Type() MediaType
	Creator() string // artist, director or author; empty for board games
	TryBorrow() bool
	MarkReturned()
}

// ItemRef points at one item of a given variant
type ItemRef struct {
	Type MediaType
	ID   uint32
}

// Media holds the columns common to every variant table
type Media struct {
	ID        uint32 `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string `gorm:"column:name;size:100;not null"`
	Available bool   `gorm:"column:available;not null;index"`

	BaseEntity
}

func (m *Media) GetID() uint32 {
	return m.ID
}

func (m *Media) GetName() string {
	return m.Name
}

func (m *Media) IsAvailable() bool {
	return m.Available
}

// TryBorrow flips an available item to unavailable.
// Returns false without mutation when the item is already out.
func (m *Media) TryBorrow() bool {
	if !m.Available {
		return false
	}
	m.Available = false
	return true
}

// MarkReturned puts the item back on the shelf. Calling it twice is a no-op.
func (m *Media) MarkReturned() {
	m.Available = true
}

type CD struct {
	Media
	Artist string `gorm:"column:artist;size:100"`
}

func (*CD) TableName() string {
	return "cd"
}

func (*CD) Type() MediaType {
	return MediaTypeCD
}

func (c *CD) Creator() string {
	return c.Artist
}

type DVD struct {
	Media
	Director string `gorm:"column:director;size:100"`
}

func (*DVD) TableName() string {
	return "dvd"
}

func (*DVD) Type() MediaType {
	return MediaTypeDVD
}

func (d *DVD) Creator() string {
	return d.Director
}

type Book struct {
	Media
	Author string `gorm:"column:author;size:100"`
}

func (*Book) TableName() string {
	return "book"
}

func (*Book) Type() MediaType {
	return MediaTypeBook
}

func (b *Book) Creator() string {
	return b.Author
}

// BoardGame can be consulted on site but never lent
type BoardGame struct {
	Media
}

func (*BoardGame) TableName() string {
	return "board_game"
}

func (*BoardGame) Type() MediaType {
	return MediaTypeBoardGame
}

func (*BoardGame) Creator() string {
	return ""
}

// TryBorrow always refuses: board games do not circulate
func (*BoardGame) TryBorrow() bool {
	return false
}

// NewItem builds an unsaved item of the given variant.
// creator is stored as artist, director or author and ignored for board games.
func NewItem(t MediaType, name, creator string, available bool) (Item, bool) {
	media := Media{Name: name, Available: available}

	switch t {
	case MediaTypeCD:
		return &CD{Media: media, Artist: creator}, true
	case MediaTypeDVD:
		return &DVD{Media: media, Director: creator}, true
	case MediaTypeBook:
		return &Book{Media: media, Author: creator}, true
	case MediaTypeBoardGame:
		return &BoardGame{Media: media}, true
	}
	return nil, false
}

// RefOf returns the tagged reference of an item
func RefOf(item Item) ItemRef {
	return ItemRef{Type: item.Type(), ID: item.GetID()}
}
