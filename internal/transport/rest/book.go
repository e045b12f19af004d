package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bookflow-backend/internal/domain"
	"github.com/heartmarshall/bookflow-backend/internal/service/book"
	"github.com/heartmarshall/bookflow-backend/pkg/envelope"
)

type bookService interface {
	ListBooks(ctx context.Context, filter domain.BookFilter) ([]domain.Book, error)
	GetBook(ctx context.Context, id int64) (*domain.Book, error)
	CreateBook(ctx context.Context, input book.CreateBookInput) (*domain.Book, error)
	UpdateBook(ctx context.Context, input book.UpdateBookInput) (*book.UpdateResult, error)
	DeactivateBook(ctx context.Context, id int64) error
	ListStates(ctx context.Context) ([]domain.BookState, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, input book.CreateCategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, input book.UpdateCategoryInput) (*domain.Category, error)
}

// BookHandler serves books and their reference data.
type BookHandler struct {
	svc bookService
	log *slog.Logger
}

// NewBookHandler creates a BookHandler.
func NewBookHandler(svc bookService, logger *slog.Logger) *BookHandler {
	return &BookHandler{svc: svc, log: logger.With("handler", "book")}
}

type createBookRequest struct {
	ISBN            *string   `json:"isbn"            validate:"omitempty,max=20"`
	Title           string    `json:"title"           validate:"required,max=255"`
	Author          string    `json:"author"          validate:"required,max=255"`
	PublicationDate *flexDate `json:"publicationDate"`
	PageCount       int       `json:"pageCount"       validate:"required,gt=0"`
	Shelf           string    `json:"shelf"           validate:"required,max=50"`
	Space           string    `json:"space"           validate:"required,max=50"`
	CategoryID      *int64    `json:"categoryId"      validate:"omitempty,gt=0"`
	PDFPath         *string   `json:"pdfPath"         validate:"omitempty,max=500"`
	CoverImagePath  *string   `json:"coverImagePath"  validate:"omitempty,max=500"`
}

type updateBookRequest struct {
	ISBN            *string   `json:"isbn"            validate:"omitempty,max=20"`
	Title           *string   `json:"title"           validate:"omitempty,max=255"`
	Author          *string   `json:"author"          validate:"omitempty,max=255"`
	PublicationDate *flexDate `json:"publicationDate"`
	PageCount       *int      `json:"pageCount"`
	Shelf           *string   `json:"shelf"           validate:"omitempty,max=50"`
	Space           *string   `json:"space"           validate:"omitempty,max=50"`
	CategoryID      *int64    `json:"categoryId"`
	StateID         *int64    `json:"stateId"`
	PDFPath         *string   `json:"pdfPath"         validate:"omitempty,max=500"`
	CoverImagePath  *string   `json:"coverImagePath"  validate:"omitempty,max=500"`
}

type categoryRequest struct {
	Name        *string `json:"name"        validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// ---------------------------------------------------------------------------
// Books
// ---------------------------------------------------------------------------

// List handles GET /books.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	filter := domain.BookFilter{
		StateID:    q.int64Ptr("stateId"),
		CategoryID: q.int64Ptr("categoryId"),
		Search:     q.stringPtr("search"),
		Title:      q.stringPtr("title"),
		Author:     q.stringPtr("author"),
		ISBN:       q.stringPtr("isbn"),
	}
	if err := q.err(); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	books, err := h.svc.ListBooks(r.Context(), filter)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	envelope.WriteSuccess(w, http.StatusOK, toBookResponses(books), "")
}

// Get handles GET /books/{id}.
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	b, err := h.svc.GetBook(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	envelope.WriteSuccess(w, http.StatusOK, toBookResponse(b), "")
}

// Create handles POST /books.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	b, err := h.svc.CreateBook(r.Context(), book.CreateBookInput{
		ISBN:            req.ISBN,
		Title:           req.Title,
		Author:          req.Author,
		PublicationDate: req.PublicationDate.ptr(),
		PageCount:       req.PageCount,
		Shelf:           req.Shelf,
		Space:           req.Space,
		CategoryID:      req.CategoryID,
		PDFPath:         req.PDFPath,
		CoverImagePath:  req.CoverImagePath,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	envelope.WriteSuccess(w, http.StatusCreated, toBookResponse(b), "book created")
}

// Update handles PUT /books/{id}. Omitted fields keep their value.
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	var req updateBookRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	res, err := h.svc.UpdateBook(r.Context(), book.UpdateBookInput{
		ID:              id,
		ISBN:            req.ISBN,
		Title:           req.Title,
		Author:          req.Author,
		PublicationDate: req.PublicationDate.ptr(),
		PageCount:       req.PageCount,
		Shelf:           req.Shelf,
		Space:           req.Space,
		CategoryID:      req.CategoryID,
		StateID:         req.StateID,
		PDFPath:         req.PDFPath,
		CoverImagePath:  req.CoverImagePath,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	envelope.WriteSuccess(w, http.StatusOK, updateBookResponse{
		Book:       toBookResponse(res.Book),
		Changes:    res.Changes,
		Transition: res.Transition,
	}, "book updated")
}

// Delete handles DELETE /books/{id}.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeactivateBook(r.Context(), id); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	envelope.WriteSuccess(w, http.StatusOK, nil, "book deleted")
}

// ---------------------------------------------------------------------------
// Reference data
// ---------------------------------------------------------------------------

// ListStates handles GET /states.
func (h *BookHandler) ListStates(w http.ResponseWriter, r *http.Request) {
	states, err := h.svc.ListStates(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	out := make([]stateResponse, 0, len(states))
	for _, s := range states {
		out = append(out, toStateResponse(s))
	}
	envelope.WriteSuccess(w, http.StatusOK, out, "")
}

// ListCategories handles GET /categories.
func (h *BookHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ListCategories(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	out := make([]categoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, toCategoryResponse(c))
	}
	envelope.WriteSuccess(w, http.StatusOK, out, "")
}

// CreateCategory handles POST /categories.
func (h *BookHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	input := book.CreateCategoryInput{Description: req.Description}
	if req.Name != nil {
		input.Name = *req.Name
	}

	c, err := h.svc.CreateCategory(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	envelope.WriteSuccess(w, http.StatusCreated, toCategoryResponse(*c), "category created")
}

// UpdateCategory handles PUT /categories/{id}.
func (h *BookHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	var req categoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	c, err := h.svc.UpdateCategory(r.Context(), book.UpdateCategoryInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	envelope.WriteSuccess(w, http.StatusOK, toCategoryResponse(*c), "category updated")
}
