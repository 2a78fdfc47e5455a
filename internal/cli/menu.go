package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/library/internal/catalog"
)

const menuText = `
=== Library Management System ===
1. Add Book
2. Add Member
3. Borrow Book
4. Return Book
5. Display Books
6. Display Members
7. Exit
`

func (a *app) newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive menu (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMenu(cmd)
		},
	}
}

func (a *app) runMenu(cmd *cobra.Command) error {
	cat, err := a.openCatalog()
	if err != nil {
		return err
	}
	m := &menu{
		cat: cat,
		in:  bufio.NewScanner(cmd.InOrStdin()),
		out: cmd.OutOrStdout(),
	}
	m.run()
	return nil
}

// menu is the line-based interactive loop. It reads one choice per line and
// prompts for each field; end of input exits the loop.
type menu struct {
	cat *catalog.Catalog
	in  *bufio.Scanner
	out io.Writer
}

func (m *menu) run() {
	for {
		fmt.Fprint(m.out, menuText)
		choice, ok := m.prompt("\nEnter your choice: ")
		if !ok {
			fmt.Fprintln(m.out)
			return
		}

		var more bool
		switch choice {
		case "1":
			more = m.addBook()
		case "2":
			more = m.addMember()
		case "3":
			writeMembers(m.out, m.cat.Members())
			writeBooks(m.out, m.cat.Books())
			more = m.loan((*catalog.Catalog).BorrowBook)
		case "4":
			writeMembers(m.out, m.cat.Members())
			more = m.loan((*catalog.Catalog).ReturnBook)
		case "5":
			writeBooks(m.out, m.cat.Books())
			more = true
		case "6":
			writeMembers(m.out, m.cat.Members())
			more = true
		case "7":
			fmt.Fprintln(m.out, "Thank you for using Library Management System!")
			return
		default:
			fmt.Fprintln(m.out, "Invalid choice! Please try again.")
			more = true
		}
		if !more {
			fmt.Fprintln(m.out)
			return
		}
	}
}

// prompt prints label and reads one trimmed line. It returns false at end
// of input.
func (m *menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// promptInt reads an integer. A non-integer prints a message and reports
// valid=false; the caller returns to the menu.
func (m *menu) promptInt(label string) (n int, valid, ok bool) {
	s, ok := m.prompt(label)
	if !ok {
		return 0, false, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		fmt.Fprintf(m.out, "Invalid number %q! Please try again.\n", s)
		return 0, false, true
	}
	return n, true, true
}

// promptStrings reads one line per label.
func (m *menu) promptStrings(labels ...string) ([]string, bool) {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		s, ok := m.prompt(l)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

func (m *menu) addBook() bool {
	f, ok := m.promptStrings("Enter book title: ", "Enter author name: ", "Enter ISBN: ")
	if !ok {
		return false
	}
	quantity, valid, ok := m.promptInt("Enter quantity: ")
	if !ok {
		return false
	}
	if valid {
		m.show(catalog.BookAdded(m.cat.AddBook(f[0], f[1], f[2], quantity)))
	}
	return true
}

func (m *menu) addMember() bool {
	f, ok := m.promptStrings("Enter member name: ", "Enter email: ", "Enter phone: ")
	if !ok {
		return false
	}
	m.show(catalog.MemberAdded(m.cat.AddMember(f[0], f[1], f[2])))
	return true
}

func (m *menu) loan(op loanFunc) bool {
	memberID, valid, ok := m.promptInt("Enter member ID: ")
	if !ok {
		return false
	}
	if !valid {
		return true
	}
	bookID, valid, ok := m.promptInt("Enter book ID: ")
	if !ok {
		return false
	}
	if !valid {
		return true
	}
	m.show(catalog.Lent(op(m.cat, memberID, bookID)))
	return true
}

func (m *menu) show(r catalog.Result) {
	fmt.Fprintln(m.out, r.Message)
}
