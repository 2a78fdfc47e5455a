package catalog

// New IDs are one past the largest existing ID. With no deletion this
// equals the collection length plus one; it also never reuses an ID if a
// loaded file has gaps.

func (c *Catalog) nextBookID() int {
	highest := 0
	for _, b := range c.books {
		if b.BookID > highest {
			highest = b.BookID
		}
	}
	return highest + 1
}

func (c *Catalog) nextMemberID() int {
	highest := 0
	for _, m := range c.members {
		if m.MemberID > highest {
			highest = m.MemberID
		}
	}
	return highest + 1
}

func (c *Catalog) nextTransactionID() int {
	highest := 0
	for _, t := range c.transactions {
		if t.TransactionID > highest {
			highest = t.TransactionID
		}
	}
	return highest + 1
}
