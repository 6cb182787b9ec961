package pagination

const DefaultPageSize = 20

// Request is the continuation token for the limit/offset listing.
type Request struct {
	Limit  int
	Offset int
}

func First(pageSize int) Request {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return Request{Limit: pageSize}
}

// Cursor records how far into the upstream listing we are. It is a value:
// every page fetch produces a new Cursor instead of changing the old one.
type Cursor struct {
	total    int
	hasTotal bool
	consumed int
	next     Request
}

// Advance builds the cursor that follows a successful fetch of req which
// returned pageLen entries. A nil total means upstream did not report a count.
func Advance(req Request, pageLen int, total *int) Cursor {
	consumed := req.Offset + pageLen
	cursor := Cursor{
		consumed: consumed,
		next:     Request{Limit: req.Limit, Offset: consumed},
	}
	if total != nil {
		cursor.total = *total
		cursor.hasTotal = true
	}
	return cursor
}

func (c Cursor) Total() (int, bool) {
	return c.total, c.hasTotal
}

func (c Cursor) Consumed() int {
	return c.consumed
}

func (c Cursor) HasMore() bool {
	return c.hasTotal && c.consumed < c.total
}

func (c Cursor) Next() Request {
	return c.next
}
