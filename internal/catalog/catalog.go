package catalog

import "sync"

// Movie is a stored catalog entry. Records are append-only: once added they
// are never mutated or removed for the life of the process.
type Movie struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Genre         string  `json:"genre"`
	Rating        float64 `json:"rating"`
	Comment       string  `json:"comment"`
	ImageFilename string  `json:"image_filename,omitempty"`
}

// Store holds the in-memory movie list and the id counter. Nothing is
// persisted; the catalog lives and dies with the process.
type Store struct {
	mu     sync.Mutex
	movies []Movie
	nextID int
}

func NewStore() *Store {
	return &Store{nextID: 1}
}

// NextID returns the id the next Add will assign, without consuming it.
// Used to name an uploaded image before the record is stored.
func (s *Store) NextID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextID
}

// Add validates the input, assigns the next id and appends the record.
func (s *Store) Add(in Input) (Movie, error) {
	if err := in.Validate(); err != nil {
		return Movie{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m := Movie{
		ID:            s.nextID,
		Name:          in.Name,
		Genre:         in.Genre,
		Rating:        in.Rating,
		Comment:       in.Comment,
		ImageFilename: in.ImageFilename,
	}
	s.movies = append(s.movies, m)
	s.nextID++
	return m, nil
}

// Get scans the list for the given id.
func (s *Store) Get(id int) (Movie, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.movies {
		if m.ID == id {
			return m, true
		}
	}
	return Movie{}, false
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.movies)
}
