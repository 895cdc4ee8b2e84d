package movietop

import "strings"

// Entry is one of the fixed top-10 movies.
type Entry struct {
	Name     string `json:"name"`
	ID       int    `json:"id"`
	Cost     int    `json:"cost"`
	Director string `json:"director"`
}

var entries = []Entry{
	{Name: "The Shawshank Redemption", ID: 1, Cost: 25, Director: "Frank Darabont"},
	{Name: "The Godfather", ID: 2, Cost: 6, Director: "Francis Ford Coppola"},
	{Name: "The Dark Knight", ID: 3, Cost: 185, Director: "Christopher Nolan"},
	{Name: "Pulp Fiction", ID: 4, Cost: 8, Director: "Quentin Tarantino"},
	{Name: "Forrest Gump", ID: 5, Cost: 55, Director: "Robert Zemeckis"},
	{Name: "Inception", ID: 6, Cost: 160, Director: "Christopher Nolan"},
	{Name: "The Matrix", ID: 7, Cost: 63, Director: "Wachowskis"},
	{Name: "Schindler's List", ID: 8, Cost: 22, Director: "Steven Spielberg"},
	{Name: "The Lord of the Rings: The Fellowship of the Ring", ID: 9, Cost: 93, Director: "Peter Jackson"},
	{Name: "Green Book", ID: 10, Cost: 23, Director: "Peter Farrelly"},
}

// byName is built once at init and read-only after, so concurrent lookups
// need no synchronization.
var byName = func() map[string]Entry {
	m := make(map[string]Entry, len(entries))
	for _, e := range entries {
		m[strings.ToLower(e.Name)] = e
	}
	return m
}()

// Lookup finds an entry by case-insensitive exact name match.
func Lookup(name string) (Entry, bool) {
	e, ok := byName[strings.ToLower(name)]
	return e, ok
}
