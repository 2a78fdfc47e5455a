package types

// Member field names as persisted.
const (
	FieldMemberID      = "member_id"
	FieldName          = "name"
	FieldEmail         = "email"
	FieldPhone         = "phone"
	FieldBorrowedBooks = "borrowed_books"
)

var memberFields = []string{FieldMemberID, FieldName, FieldEmail, FieldPhone, FieldBorrowedBooks}

// Member is a registered borrower.
// BorrowedBooks holds one book ID per copy currently on loan, in borrow order.
type Member struct {
	MemberID      int
	Name          string
	Email         string
	Phone         string
	BorrowedBooks []int
}

// NewMember returns a Member with nothing on loan.
func NewMember(id int, name, email, phone string) Member {
	return Member{
		MemberID:      id,
		Name:          name,
		Email:         email,
		Phone:         phone,
		BorrowedBooks: []int{},
	}
}

// HasBorrowed reports whether at least one copy of bookID is on loan to m.
func (m Member) HasBorrowed(bookID int) bool {
	for _, id := range m.BorrowedBooks {
		if id == bookID {
			return true
		}
	}
	return false
}

// ToMap returns the persisted mapping of the member. BorrowedBooks is copied
// and never nil.
func (m Member) ToMap() map[string]any {
	borrowed := make([]int, len(m.BorrowedBooks))
	copy(borrowed, m.BorrowedBooks)
	return map[string]any{
		FieldMemberID:      m.MemberID,
		FieldName:          m.Name,
		FieldEmail:         m.Email,
		FieldPhone:         m.Phone,
		FieldBorrowedBooks: borrowed,
	}
}

// MemberFromMap rebuilds a Member from its persisted mapping.
func MemberFromMap(m map[string]any) (Member, error) {
	const entity = "member"
	if err := checkFields(entity, m, memberFields); err != nil {
		return Member{}, err
	}

	var (
		mem Member
		err error
	)
	if mem.MemberID, err = intField(entity, m, FieldMemberID); err != nil {
		return Member{}, err
	}
	if mem.Name, err = stringField(entity, m, FieldName); err != nil {
		return Member{}, err
	}
	if mem.Email, err = stringField(entity, m, FieldEmail); err != nil {
		return Member{}, err
	}
	if mem.Phone, err = stringField(entity, m, FieldPhone); err != nil {
		return Member{}, err
	}
	if mem.BorrowedBooks, err = intListField(entity, m, FieldBorrowedBooks); err != nil {
		return Member{}, err
	}
	return mem, nil
}
