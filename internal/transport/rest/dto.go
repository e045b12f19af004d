package rest

import (
	"encoding/json"
	"time"

	"github.com/heartmarshall/bookflow-backend/internal/domain"
	"github.com/heartmarshall/bookflow-backend/internal/service/auth"
)

// flexDate accepts "YYYY-MM-DD" or a full RFC 3339 timestamp.
type flexDate struct {
	time.Time
}

func (d *flexDate) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return &time.ParseError{Layout: time.DateOnly, Value: s, Message: ": expected YYYY-MM-DD"}
}

func (d *flexDate) ptr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type stateResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Order       int     `json:"order"`
}

type categoryResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type bookResponse struct {
	ID              int64             `json:"id"`
	ISBN            *string           `json:"isbn"`
	Title           string            `json:"title"`
	Author          string            `json:"author"`
	PublicationDate *string           `json:"publicationDate"`
	PageCount       int               `json:"pageCount"`
	Shelf           string            `json:"shelf"`
	Space           string            `json:"space"`
	CategoryID      *int64            `json:"categoryId"`
	StateID         int64             `json:"stateId"`
	PDFPath         *string           `json:"pdfPath"`
	CoverImagePath  *string           `json:"coverImagePath"`
	State           *stateResponse    `json:"state,omitempty"`
	Category        *categoryResponse `json:"category,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

type updateBookResponse struct {
	Book       bookResponse            `json:"book"`
	Changes    []domain.FieldChange    `json:"changes"`
	Transition *domain.StateTransition `json:"transition,omitempty"`
}

type taskResponse struct {
	ID              int64      `json:"id"`
	BookID          int64      `json:"bookId"`
	AssigneeUserID  *int64     `json:"assigneeUserId"`
	AssignedAt      time.Time  `json:"assignedAt"`
	DueAt           *time.Time `json:"dueAt"`
	TargetStateID   *int64     `json:"targetStateId"`
	Notes           *string    `json:"notes"`
	BookTitle       *string    `json:"bookTitle,omitempty"`
	BookAuthor      *string    `json:"bookAuthor,omitempty"`
	CategoryName    *string    `json:"categoryName,omitempty"`
	AssigneeName    *string    `json:"assigneeName,omitempty"`
	AssigneeEmail   *string    `json:"assigneeEmail,omitempty"`
	TargetStateName *string    `json:"targetStateName,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type historyResponse struct {
	ID                int64          `json:"id"`
	OccurredAt        time.Time      `json:"occurredAt"`
	ActorUserID       *int64         `json:"actorUserId"`
	ActorName         *string        `json:"actorName"`
	ActorEmail        *string        `json:"actorEmail"`
	ActionID          int64          `json:"actionId"`
	ActionName        *string        `json:"actionName"`
	ActionDescription *string        `json:"actionDescription"`
	TargetTypeID      int64          `json:"targetTypeId"`
	TargetTypeName    *string        `json:"targetTypeName"`
	TargetID          *int64         `json:"targetId"`
	TargetName        *string        `json:"targetName"`
	Details           map[string]any `json:"details"`
}

type historyPageResponse struct {
	Records  []historyResponse `json:"records"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
}

type targetHistoryResponse struct {
	TargetType string            `json:"targetType"`
	TargetID   int64             `json:"targetId"`
	Records    []historyResponse `json:"records"`
	Total      int               `json:"total"`
}

type lookupResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type userResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	RoleID    int64  `json:"roleId"`
	RoleName  string `json:"roleName"`
	Active    bool   `json:"active"`
}

type updateUserResponse struct {
	User    *userResponse        `json:"user"`
	Changes []domain.FieldChange `json:"changes"`
}

type roleResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type principalResponse struct {
	UserID   int64  `json:"userId"`
	Email    string `json:"email"`
	RoleID   int64  `json:"roleId"`
	RoleName string `json:"roleName"`
}

type authResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	User      *userResponse `json:"user"`
}

type meResponse struct {
	Principal principalResponse `json:"principal"`
	User      *userResponse     `json:"user"`
}

// ---------------------------------------------------------------------------
// Converters
// ---------------------------------------------------------------------------

func toStateResponse(s domain.BookState) stateResponse {
	return stateResponse{ID: s.ID, Name: s.Name, Description: s.Description, Order: s.Order}
}

func toCategoryResponse(c domain.Category) categoryResponse {
	return categoryResponse{ID: c.ID, Name: c.Name, Description: c.Description}
}

func toBookResponse(b *domain.Book) bookResponse {
	resp := bookResponse{
		ID:             b.ID,
		ISBN:           b.ISBN,
		Title:          b.Title,
		Author:         b.Author,
		PageCount:      b.PageCount,
		Shelf:          b.Shelf,
		Space:          b.Space,
		CategoryID:     b.CategoryID,
		StateID:        b.StateID,
		PDFPath:        b.PDFPath,
		CoverImagePath: b.CoverImagePath,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
	if b.PublicationDate != nil {
		d := b.PublicationDate.Format(time.DateOnly)
		resp.PublicationDate = &d
	}
	if b.State != nil {
		s := toStateResponse(*b.State)
		resp.State = &s
	}
	if b.Category != nil {
		c := toCategoryResponse(*b.Category)
		resp.Category = &c
	}
	return resp
}

func toBookResponses(books []domain.Book) []bookResponse {
	out := make([]bookResponse, 0, len(books))
	for i := range books {
		out = append(out, toBookResponse(&books[i]))
	}
	return out
}

func toTaskResponse(t domain.Task) taskResponse {
	return taskResponse{
		ID:             t.ID,
		BookID:         t.BookID,
		AssigneeUserID: t.AssigneeUserID,
		AssignedAt:     t.AssignedAt,
		DueAt:          t.DueAt,
		TargetStateID:  t.TargetStateID,
		Notes:          t.Notes,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func toTaskDetailsResponse(t *domain.TaskDetails) taskResponse {
	resp := toTaskResponse(t.Task)
	resp.BookTitle = t.BookTitle
	resp.BookAuthor = t.BookAuthor
	resp.CategoryName = t.CategoryName
	resp.AssigneeName = t.AssigneeName
	resp.AssigneeEmail = t.AssigneeEmail
	resp.TargetStateName = t.TargetStateName
	return resp
}

func toHistoryResponse(h domain.HistoryRecord) historyResponse {
	return historyResponse{
		ID:                h.ID,
		OccurredAt:        h.OccurredAt,
		ActorUserID:       h.ActorUserID,
		ActorName:         h.ActorName,
		ActorEmail:        h.ActorEmail,
		ActionID:          h.ActionID,
		ActionName:        h.ActionName,
		ActionDescription: h.ActionDescription,
		TargetTypeID:      h.TargetTypeID,
		TargetTypeName:    h.TargetTypeName,
		TargetID:          h.TargetID,
		TargetName:        h.TargetName,
		Details:           h.Details,
	}
}

func toHistoryResponses(records []domain.HistoryRecord) []historyResponse {
	out := make([]historyResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toHistoryResponse(r))
	}
	return out
}

func toUserResponse(u *domain.User) *userResponse {
	if u == nil {
		return nil
	}
	return &userResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		RoleID:    u.RoleID,
		RoleName:  u.RoleName.String(),
		Active:    u.Active,
	}
}

func toUserResponses(users []domain.User) []*userResponse {
	out := make([]*userResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return out
}

func toRoleResponse(r domain.Role) roleResponse {
	return roleResponse{ID: r.ID, Name: r.Name.String(), Description: r.Description}
}

func toPrincipalResponse(p domain.Principal) principalResponse {
	return principalResponse{UserID: p.UserID, Email: p.Email, RoleID: p.RoleID, RoleName: p.RoleName.String()}
}

func toAuthResponse(res *auth.AuthResult) authResponse {
	return authResponse{
		Token:     res.Token.Value,
		ExpiresAt: res.Token.ExpiresAt,
		User:      toUserResponse(res.User),
	}
}
