package main // import "github.com/tonobo/safesnake"

type Snake struct {
	ID         string  `json:"id"`
	InternalID string  `json:"-"`
	Name       string  `json:"name"`
	Health     int     `json:"health"`
	Body       []Point `json:"body"`
	Latency    string  `json:"latency"`
	Shout      string  `json:"shout"`
}

// Head returns body[0]. Callers must ensure the body is not empty.
func (s *Snake) Head() Point {
	return s.Body[0]
}

// Neck returns body[1], if the snake has one.
func (s *Snake) Neck() (Point, bool) {
	if len(s.Body) < 2 {
		return Point{}, false
	}
	return s.Body[1], true
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether any segment of the snake sits exactly on p.
func (s *Snake) Occupies(p Point) bool {
	for _, segment := range s.Body {
		if segment == p {
			return true
		}
	}
	return false
}

// Same reports whether s and o describe the same snake. Ids win when present,
// otherwise the heads are compared.
func (s *Snake) Same(o *Snake) bool {
	if s == nil || o == nil {
		return false
	}
	if s == o {
		return true
	}
	if s.ID != "" || o.ID != "" {
		return s.ID == o.ID
	}
	return len(s.Body) > 0 && len(o.Body) > 0 && s.Body[0] == o.Body[0]
}
