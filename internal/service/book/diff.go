package book

import (
	"time"

	"github.com/heartmarshall/bookflow-backend/internal/domain"
)

const dateLayout = "2006-01-02"

// buildBookChanges compares the stored row with the requested values and
// returns one entry per field that actually differs.
func buildBookChanges(old *domain.Book, p domain.BookUpdateParams) []domain.FieldChange {
	var changes []domain.FieldChange

	add := func(field string, oldValue, newValue any) {
		changes = append(changes, domain.FieldChange{Field: field, OldValue: oldValue, NewValue: newValue})
	}

	if p.ISBN != nil && !sameString(old.ISBN, p.ISBN) {
		add("isbn", strValue(old.ISBN), strValue(p.ISBN))
	}
	if p.Title != nil && *p.Title != old.Title {
		add("title", old.Title, *p.Title)
	}
	if p.Author != nil && *p.Author != old.Author {
		add("author", old.Author, *p.Author)
	}
	if p.PublicationDate != nil && !sameDate(old.PublicationDate, p.PublicationDate) {
		add("publicationDate", dateValue(old.PublicationDate), dateValue(p.PublicationDate))
	}
	if p.PageCount != nil && *p.PageCount != old.PageCount {
		add("pageCount", old.PageCount, *p.PageCount)
	}
	if p.Shelf != nil && *p.Shelf != old.Shelf {
		add("shelf", old.Shelf, *p.Shelf)
	}
	if p.Space != nil && *p.Space != old.Space {
		add("space", old.Space, *p.Space)
	}
	if p.CategoryID != nil && (old.CategoryID == nil || *old.CategoryID != *p.CategoryID) {
		add("categoryId", int64Value(old.CategoryID), *p.CategoryID)
	}
	if p.StateID != nil && *p.StateID != old.StateID {
		add("stateId", old.StateID, *p.StateID)
	}
	if p.PDFPath != nil && !sameString(old.PDFPath, p.PDFPath) {
		add("pdfPath", strValue(old.PDFPath), strValue(p.PDFPath))
	}
	if p.CoverImagePath != nil && !sameString(old.CoverImagePath, p.CoverImagePath) {
		add("coverImagePath", strValue(old.CoverImagePath), strValue(p.CoverImagePath))
	}

	return changes
}

// sameString treats nil and "" as equal since both are stored as empty.
func sameString(a, b *string) bool {
	av, bv := "", ""
	if a != nil {
		av = *a
	}
	if b != nil {
		bv = *b
	}
	return av == bv
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Format(dateLayout) == b.Format(dateLayout)
}

func strValue(s *string) any {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}

func int64Value(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}

func dateValue(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(dateLayout)
}
