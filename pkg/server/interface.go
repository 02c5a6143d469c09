/*
Package server implements msgpack IPC for the word puzzle solver.

Clients write a stream of msgpack encoded Request values to stdin and read one
Response per request from stdout. Requests are handled one at a time, in
order, against a single match engine, so letter set edits made by one request
are seen by the next.

A query looks like:

	{"id": "q1", "op": "query", "p": "?t?ne", "r": "s", "l": 20}

and is answered with the matching words in sorted order:

	{"id": "q1", "status": "ok", "w": ["stone"], "c": 1, "t": 212}

Letter set edits name a 1-based position and the letters to apply:

	{"id": "e1", "op": "remove", "pos": 1, "ls": "ab"}
	{"id": "e2", "op": "replace", "pos": 3, "ls": "o"}

Position 0 applies the edit to every position. The sets op returns the
letters currently allowed at each position.

Ops: query, find, add, remove, replace, reset, sets, stats, health.

Errors are reported with status "error" and a message; the stream stays open.
A request that cannot be decoded ends the session, since the stream position
is lost.
*/
package server

// Op names a request operation.
type Op string

// Supported operations.
const (
	OpQuery   Op = "query"
	OpFind    Op = "find"
	OpAdd     Op = "add"
	OpRemove  Op = "remove"
	OpReplace Op = "replace"
	OpReset   Op = "reset"
	OpSets    Op = "sets"
	OpStats   Op = "stats"
	OpHealth  Op = "health"
)

// Response statuses.
const (
	StatusOK    = "ok"
	StatusError = "error"
	StatusReady = "ready"
)

// Request is one client message.
type Request struct {
	ID       string `msgpack:"id"`
	Op       Op     `msgpack:"op"`
	Pattern  string `msgpack:"p,omitempty"`
	Required string `msgpack:"r,omitempty"`
	Pos      int    `msgpack:"pos,omitempty"`
	Letters  string `msgpack:"ls,omitempty"`
	Word     string `msgpack:"word,omitempty"`
	Limit    int    `msgpack:"l,omitempty"`
}

// Response answers one Request.
type Response struct {
	ID     string   `msgpack:"id"`
	Status string   `msgpack:"status"`
	Error  string   `msgpack:"error,omitempty"`
	Words  []string `msgpack:"w,omitempty"`
	// Count is the total match count, Words may hold fewer.
	Count int      `msgpack:"c"`
	Found bool     `msgpack:"found,omitempty"`
	Sets  []string `msgpack:"sets,omitempty"`
	// TimeTaken is in microseconds.
	TimeTaken int64 `msgpack:"t"`
}
