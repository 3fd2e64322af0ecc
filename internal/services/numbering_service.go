package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"autorevenda/internal/repositories"
)

// Document-number prefixes, one per document type.
const (
	PrefixProposta      = "PROP"
	PrefixContrato      = "CONT"
	PrefixGarantia      = "GAR"
	PrefixTransferencia = "ATPV"
	PrefixDesistencia   = "DES"
	PrefixRecibo        = "REC"
	PrefixReserva       = "RES"
)

// NumberingService produces the unique, human-readable identifier stamped
// on every generated document.
type NumberingService struct {
	Repo repositories.SequenceRepository

	// now is swappable for tests
	now func() time.Time
}

func NewNumberingService(repo repositories.SequenceRepository) *NumberingService {
	return &NumberingService{Repo: repo, now: time.Now}
}

// Next returns the sequential number for the prefix. When the sequence
// call fails or comes back empty, it falls back to {PREFIX}{unixMillis}:
// uniqueness over readability, so the user action never blocks on the
// sequence. Two calls inside the same millisecond can collide — known
// limitation.
func (s *NumberingService) Next(prefix string) string {
	number, err := s.Repo.Next(prefix)
	if err != nil || strings.TrimSpace(number) == "" {
		fallback := fmt.Sprintf("%s%d", prefix, s.now().UnixMilli())
		if err != nil {
			log.Printf("[numbering] sequence failed for %s, using fallback %s: %v", prefix, fallback, err)
		} else {
			log.Printf("[numbering] empty sequence for %s, using fallback %s", prefix, fallback)
		}
		return fallback
	}
	return number
}
