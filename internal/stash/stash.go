package stash

type Retriever interface {
	Retrieve() ([]byte, error)
}

// Reader covers a Retriever in the manner, so it implements the io.Reader
type Reader struct {
	source  Retriever
	pending []byte
	error   error
}

func New(source Retriever) *Reader {
	return &Reader{source: source}
}

func (r *Reader) Read(b []byte) (n int, err error) {
	if len(b) == 0 {
		return 0, nil
	}

	for len(r.pending) == 0 && r.error == nil {
		r.refill()
	}

	n = copy(b, r.pending)
	r.pending = r.pending[n:]

	if len(r.pending) == 0 && r.error != nil {
		err = r.error
	}

	return n, err
}

func (r *Reader) refill() {
	r.pending, r.error = r.source.Retrieve()
}
