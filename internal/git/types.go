package git

// Commit is one decoded log record. A Commit with an empty Hash is the
// "no data" sentinel and must never be acted upon.
type Commit struct {
	Hash    string
	Author  string
	Date    string // short calendar form, display only
	Message string
}

func (c Commit) IsEmpty() bool {
	return c.Hash == ""
}

// ShortHash returns the abbreviated hash used in list rows.
func (c Commit) ShortHash() string {
	if len(c.Hash) > shortHashLen {
		return c.Hash[:shortHashLen]
	}
	return c.Hash
}

const shortHashLen = 7

// LogQuery selects which commits a backend returns. Zero values mean "no
// filter"; an empty Ref means HEAD.
type LogQuery struct {
	Ref    string
	Max    int
	Grep   string
	Author string
	Path   string
}
