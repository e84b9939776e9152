package v1

import "time"

// Festival document wire contract. The whole document is persisted and
// transmitted as a single record; field names must stay stable because
// external admin tooling reads and replaces the raw JSON.

// Place ordinals recognized by the scoring table. Any other place value is
// carried verbatim but scores zero.
const (
	PlaceFirst  = "1st"
	PlaceSecond = "2nd"
	PlaceThird  = "3rd"
)

// Category groups competitions, e.g. "Junior" or "Senior".
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Team is a scoring cohort. Results reference a team by Name, not ID;
// renaming a team detaches its historical results. That linkage is part of
// the documented contract and is preserved as-is.
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Result is one podium entry of a competition. A result with an empty Name
// means "no entry for this place" and is excluded from scoring and display.
type Result struct {
	Place string `json:"place"`
	Name  string `json:"name"`
	Class string `json:"class"`
	Team  string `json:"team"`
}

// Competition belongs to exactly one category via CategoryID. The reference
// is weak: category deletion cascades explicitly, but a dangling CategoryID
// is tolerated and such competitions never reach leaderboards.
type Competition struct {
	ID          string   `json:"id"`
	CategoryID  string   `json:"categoryId"`
	Name        string   `json:"name"`
	IsPublished bool     `json:"isPublished"`
	Results     []Result `json:"results"`
}

// Document is the entire festival state. Mutations read the current
// document, change it in memory and write the whole document back
// (last-writer-wins, no merge).
type Document struct {
	Categories   []Category    `json:"categories"`
	Teams        []Team        `json:"teams"`
	Competitions []Competition `json:"competitions"`
}

// Snapshot is a document plus its store revision. Revision increments on
// every replace; it only gates writes when the optimistic revision check is
// enabled.
type Snapshot struct {
	Document  Document  `json:"document"`
	Revision  int64     `json:"revision"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Normalize replaces nil sub-arrays with empty slices so that partially
// imported documents never null-dereference downstream.
func (d Document) Normalize() Document {
	if d.Categories == nil {
		d.Categories = []Category{}
	}
	if d.Teams == nil {
		d.Teams = []Team{}
	}
	if d.Competitions == nil {
		d.Competitions = []Competition{}
	}
	for i := range d.Competitions {
		if d.Competitions[i].Results == nil {
			d.Competitions[i].Results = []Result{}
		}
	}
	return d
}

// Clone returns a deep copy so callers can mutate freely without aliasing
// the stored document.
func (d Document) Clone() Document {
	out := Document{
		Categories:   make([]Category, len(d.Categories)),
		Teams:        make([]Team, len(d.Teams)),
		Competitions: make([]Competition, len(d.Competitions)),
	}
	copy(out.Categories, d.Categories)
	copy(out.Teams, d.Teams)
	for i, comp := range d.Competitions {
		cloned := comp
		cloned.Results = make([]Result, len(comp.Results))
		copy(cloned.Results, comp.Results)
		out.Competitions[i] = cloned
	}
	return out
}
