package domain

// Document is an opaque JSON object kept byte-for-byte as the client sent it.
type Document []byte

func (d Document) IsEmpty() bool {
	return len(d) == 0
}

func (d Document) MarshalJSON() ([]byte, error) {
	if d.IsEmpty() {
		return []byte("null"), nil
	}
	return d, nil
}

func (d *Document) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = nil
		return nil
	}
	*d = append((*d)[0:0], data...)
	return nil
}
