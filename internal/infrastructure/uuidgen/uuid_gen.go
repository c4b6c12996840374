package uuidgen

import (
	"github.com/google/uuid"
	"github.com/mikiasgoitom/Postboard/internal/domain/contract"
)

// Generator hands out time-ordered (version 7) UUIDs so new documents
// land at the end of the _id index.
type Generator struct{}

var _ contract.IUUIDGenerator = (*Generator)(nil)

func NewGenerator() contract.IUUIDGenerator {
	return &Generator{}
}

func (g *Generator) NewUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
