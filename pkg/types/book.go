package types

// Book field names as persisted.
const (
	FieldBookID    = "book_id"
	FieldTitle     = "title"
	FieldAuthor    = "author"
	FieldISBN      = "isbn"
	FieldQuantity  = "quantity"
	FieldAvailable = "available"
)

var bookFields = []string{FieldBookID, FieldTitle, FieldAuthor, FieldISBN, FieldQuantity, FieldAvailable}

// Book is a catalog title with a number of owned copies.
// Available counts the copies not on loan; 0 <= Available <= Quantity.
type Book struct {
	BookID    int
	Title     string
	Author    string
	ISBN      string
	Quantity  int
	Available int
}

// NewBook returns a Book with every copy available.
func NewBook(id int, title, author, isbn string, quantity int) Book {
	return Book{
		BookID:    id,
		Title:     title,
		Author:    author,
		ISBN:      isbn,
		Quantity:  quantity,
		Available: quantity,
	}
}

// ToMap returns the persisted mapping of the book.
func (b Book) ToMap() map[string]any {
	return map[string]any{
		FieldBookID:    b.BookID,
		FieldTitle:     b.Title,
		FieldAuthor:    b.Author,
		FieldISBN:      b.ISBN,
		FieldQuantity:  b.Quantity,
		FieldAvailable: b.Available,
	}
}

// BookFromMap rebuilds a Book from its persisted mapping.
func BookFromMap(m map[string]any) (Book, error) {
	const entity = "book"
	if err := checkFields(entity, m, bookFields); err != nil {
		return Book{}, err
	}

	var (
		b   Book
		err error
	)
	if b.BookID, err = intField(entity, m, FieldBookID); err != nil {
		return Book{}, err
	}
	if b.Title, err = stringField(entity, m, FieldTitle); err != nil {
		return Book{}, err
	}
	if b.Author, err = stringField(entity, m, FieldAuthor); err != nil {
		return Book{}, err
	}
	if b.ISBN, err = stringField(entity, m, FieldISBN); err != nil {
		return Book{}, err
	}
	if b.Quantity, err = intField(entity, m, FieldQuantity); err != nil {
		return Book{}, err
	}
	if b.Available, err = intField(entity, m, FieldAvailable); err != nil {
		return Book{}, err
	}
	return b, nil
}
