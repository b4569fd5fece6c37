package parsers

// payloadSet is the in-memory PayloadSet used for one batch.
type payloadSet map[string]struct{}

// NewPayloadSet returns an empty PayloadSet. It is not safe for concurrent use.
func NewPayloadSet() PayloadSet {
	return payloadSet{}
}

func (s payloadSet) Add(payload string) bool {
	if _, exists := s[payload]; exists {
		return false
	}
	s[payload] = struct{}{}
	return true
}
