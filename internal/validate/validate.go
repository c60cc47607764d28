package validate

import (
	"regexp"
	"strings"

	"fixpos/internal/domain"
)

var (
	reBarcode = regexp.MustCompile(`^[0-9]{6,14}$`)
	reTerm    = regexp.MustCompile(`^[\pL0-9 _'\-]{1,50}$`)
	reID      = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	rePhone   = regexp.MustCompile(`^[0-9+ \-]{5,20}$`)
)

// Barcode accepts the common EAN/UPC digit lengths.
func Barcode(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reBarcode.MatchString(s)
}

// Term validates a search/lookup query: trims, caps length, allows letters
// (any script), digits and a few separators.
func Term(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	// cap on rune boundaries; a byte cut can split a multi-byte letter and
	// fail the match below
	if r := []rune(s); len(r) > 50 {
		s = string(r[:50])
	}
	return s, reTerm.MatchString(s)
}

// ID validates a simple resource identifier.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Name validates a displayable name.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 100 {
		return "", false
	}
	return s, true
}

func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true // phone is optional
	}
	return s, rePhone.MatchString(s)
}

// Category validates the product category enum.
func Category(s string) (domain.Category, bool) {
	switch domain.Category(strings.TrimSpace(s)) {
	case domain.CategoryGeneral:
		return domain.CategoryGeneral, true
	case domain.CategoryPhoneParts:
		return domain.CategoryPhoneParts, true
	}
	return "", false
}

// RepairStatus validates the repair status enum.
func RepairStatus(s string) (domain.RepairStatus, bool) {
	switch domain.RepairStatus(strings.TrimSpace(s)) {
	case domain.StatusPending:
		return domain.StatusPending, true
	case domain.StatusInProgress:
		return domain.StatusInProgress, true
	case domain.StatusCompleted:
		return domain.StatusCompleted, true
	case domain.StatusCancelled:
		return domain.StatusCancelled, true
	}
	return "", false
}
