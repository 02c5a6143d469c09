package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/wordsolve/pkg/critbit"
	"github.com/bastiangx/wordsolve/pkg/match"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// DefaultMaxResults caps the words returned when a request sets no limit.
const DefaultMaxResults = 256

// Server handles the IPC for one match engine
type Server struct {
	engine     match.Solver
	dec        *msgpack.Decoder
	enc        *msgpack.Encoder
	out        *bufio.Writer
	maxResults int
	requests   int
	// fatal is a broken index seen while handling a request.
	fatal error
}

// NewServer creates a server using stdin/stdout for IPC
func NewServer(engine match.Solver, maxResults int) *Server {
	return NewServerWithIO(engine, maxResults, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server reading requests from r and writing
// responses to w.
func NewServerWithIO(engine match.Solver, maxResults int, r io.Reader, w io.Writer) *Server {
	if maxResults < 1 {
		maxResults = DefaultMaxResults
	}
	out := bufio.NewWriter(w)
	return &Server{
		engine:     engine,
		dec:        msgpack.NewDecoder(bufio.NewReader(r)),
		enc:        msgpack.NewEncoder(out),
		out:        out,
		maxResults: maxResults,
	}
}

// Start announces readiness and serves requests until the input ends.
func (s *Server) Start() error {
	log.Debug("Starting Server.")
	if err := s.send(Response{Status: StatusReady, Count: s.engine.Len()}); err != nil {
		return err
	}

	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				log.Debugf("Input closed after %d requests", s.requests)
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			sendErr := s.send(Response{Status: StatusError, Error: "invalid msgpack request"})
			return errors.Join(fmt.Errorf("decode request: %w", err), sendErr)
		}
		if err := s.send(s.Handle(req)); err != nil {
			return err
		}
		if s.fatal != nil {
			log.Errorf("Stopping after request %s: %v", req.ID, s.fatal)
			return s.fatal
		}
	}
}

// Handle runs a single request. A broken index is answered with an error
// response and also ends Start.
func (s *Server) Handle(req Request) Response {
	s.requests++
	start := time.Now()
	resp, err := s.dispatch(req)
	resp.ID = req.ID
	if err != nil {
		log.Debugf("Request %s (%s) failed: %v", req.ID, req.Op, err)
		if errors.As(err, new(*critbit.InvariantError)) {
			s.fatal = err
		}
		resp = Response{ID: req.ID, Status: StatusError, Error: err.Error()}
	} else {
		resp.Status = StatusOK
	}
	resp.TimeTaken = time.Since(start).Microseconds()
	return resp
}

func (s *Server) dispatch(req Request) (Response, error) {
	sets := s.engine.Letters()
	switch req.Op {
	case OpQuery:
		return s.query(req)
	case OpFind:
		_, found, err := s.engine.Find(strings.ToLower(req.Word))
		if err != nil {
			return Response{}, err
		}
		return Response{Found: found}, nil
	case OpAdd:
		return s.edit(req, sets.Add, sets.RestoreAll)
	case OpRemove:
		return s.edit(req, sets.Remove, sets.EliminateAll)
	case OpReplace:
		if req.Pos == 0 {
			return Response{}, errors.New("replace needs a position")
		}
		return s.edit(req, sets.Replace, nil)
	case OpReset:
		sets.ResetAll()
		return s.sets(), nil
	case OpSets:
		return s.sets(), nil
	case OpStats:
		return Response{Count: s.engine.Len()}, nil
	case OpHealth:
		return Response{}, nil
	default:
		return Response{}, fmt.Errorf("unknown op: %q", req.Op)
	}
}

func (s *Server) query(req Request) (Response, error) {
	limit := req.Limit
	if limit < 1 || limit > s.maxResults {
		limit = s.maxResults
	}
	res, err := s.engine.QueryLimit(req.Pattern, req.Required, limit)
	if err != nil {
		return Response{}, err
	}
	if res.Mismatch != nil {
		return Response{}, fmt.Errorf("pattern %q: %w", req.Pattern, res.Mismatch)
	}
	return Response{Words: res.Words, Count: res.Count}, nil
}

// edit applies one to the requested position, or all to every position
// when Pos is 0.
func (s *Server) edit(req Request, one func(int, string) error, all func(string) error) (Response, error) {
	var err error
	if req.Pos == 0 {
		err = all(req.Letters)
	} else {
		err = one(req.Pos-1, req.Letters)
	}
	if err != nil {
		return Response{}, err
	}
	return s.sets(), nil
}

func (s *Server) sets() Response {
	snapshot := s.engine.Letters().Snapshot()
	out := make([]string, len(snapshot))
	for i, set := range snapshot {
		out[i] = set.String()
	}
	return Response{Sets: out}
}

func (s *Server) send(resp Response) error {
	if err := s.enc.Encode(resp); err != nil {
		log.Errorf("Encoding response: %v", err)
		return fmt.Errorf("encode response: %w", err)
	}
	return s.out.Flush()
}
