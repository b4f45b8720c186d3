package document

// File is a generated document ready to be served or attached.
type File struct {
	Name  string
	Bytes []byte
}
