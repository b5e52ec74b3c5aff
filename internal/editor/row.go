package editor

import "fmt"

// Row is one rendered line of a listing.
type Row struct {
	Number      int
	Text        string
	IsCursor    bool
	Placeholder bool // stands in for line 1 of an empty document
}

// String renders the row as "N. text", or "@. text" for the cursor line.
func (r Row) String() string {
	if r.IsCursor {
		return "@. " + r.Text
	}
	return fmt.Sprintf("%d. %s", r.Number, r.Text)
}

func placeholderRows() []Row {
	return []Row{{Number: 1, Placeholder: true}}
}
