// Package vizweb serves a browser visualizer that steps a search on demand.
package vizweb

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pdrpinto/mazestar/astar"
	"github.com/pdrpinto/mazestar/driver"
	"github.com/pdrpinto/mazestar/maze"
)

//go:embed static/index.html
var static embed.FS

const maxStepsPerRequest = 1000

type snapshot struct {
	PuzzleID string   `json:"puzzle_id"`
	Step     int      `json:"step"`
	Size     int      `json:"size"`
	Walls    [][2]int `json:"walls"`
	Open     [][2]int `json:"open,omitempty"`
	Closed   [][2]int `json:"closed,omitempty"`
	Current  *[2]int  `json:"current,omitempty"`
	Start    [2]int   `json:"start"`
	Goal     [2]int   `json:"goal"`
	Status   string   `json:"status"`
	Done     bool     `json:"done"`
	Found    bool     `json:"found"`
	Path     [][2]int `json:"path,omitempty"`
}

func pair(c astar.Coord) [2]int { return [2]int{c.Row, c.Col} }

func setToList(m map[astar.Coord]bool) [][2]int {
	res := make([][2]int, 0, len(m))
	for c, ok := range m {
		if ok {
			res = append(res, pair(c))
		}
	}
	return res
}

func toSnapshot(frame driver.Frame) snapshot {
	snap := frame.Snapshot
	s := snapshot{
		PuzzleID: frame.Puzzle.ID.String(),
		Step:     snap.StepIndex,
		Size:     frame.Grid.Size(),
		Open:     setToList(snap.Open),
		Closed:   setToList(snap.Closed),
		Start:    pair(frame.Grid.Start()),
		Goal:     pair(frame.Grid.Goal()),
		Status:   snap.Status.String(),
		Done:     snap.Status.Terminal(),
		Found:    snap.Status == astar.StatusSuccess,
	}
	n := frame.Grid.Size()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			c := astar.Coord{Row: row, Col: col}
			if frame.Grid.Occupancy(c) == astar.Blocked {
				s.Walls = append(s.Walls, pair(c))
			}
		}
	}
	if snap.HasCurrent {
		cur := pair(snap.Current)
		s.Current = &cur
	}
	for _, c := range snap.Path {
		s.Path = append(s.Path, pair(c))
	}
	return s
}

// Server holds one search session shared by all clients.
type Server struct {
	defaults maze.Options
	options  []driver.Option
	logger   *zap.Logger

	mu      sync.Mutex
	session *driver.Session
}

// New returns a Server generating mazes with defaults unless a request
// overrides them.
func New(defaults maze.Options, logger *zap.Logger, options ...driver.Option) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		defaults: defaults,
		options:  append([]driver.Option{driver.WithLogger(logger)}, options...),
		logger:   logger,
	}
}

// Handler returns the HTTP routes of the visualizer.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleStatic)
	mux.HandleFunc("/init", s.handleInit)
	mux.HandleFunc("/next", s.handleNext)
	mux.HandleFunc("/state", s.handleState)
	return mux
}

func (s *Server) handleInit(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := s.defaults
	if v, err := strconv.Atoi(q.Get("size")); err == nil {
		opts.Size = v
	}
	if v, err := strconv.ParseFloat(q.Get("density"), 64); err == nil {
		opts.WallProbability = v
	}
	options := s.options
	if v, err := strconv.ParseUint(q.Get("seed"), 10, 64); err == nil && v > 0 {
		options = append(append([]driver.Option(nil), options...), driver.WithRand(maze.NewRand(v)))
	}

	s.mu.Lock()
	session, err := driver.NewSession(opts, options...)
	var puzzle *maze.Puzzle
	if err == nil {
		s.session = session
		puzzle = session.Puzzle()
	}
	s.mu.Unlock()
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, maze.ErrInvalidOptions) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	writeJSON(w, map[string]any{
		"ok":        true,
		"puzzle_id": puzzle.ID.String(),
		"size":      puzzle.Size(),
	})
}

func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	steps := 1
	if v, err := strconv.Atoi(r.URL.Query().Get("steps")); err == nil && v > 0 {
		steps = min(v, maxStepsPerRequest)
	}

	s.mu.Lock()
	if s.session == nil {
		s.mu.Unlock()
		http.Error(w, "engine not initialized", http.StatusBadRequest)
		return
	}
	var frame driver.Frame
	for i := 0; i < steps; i++ {
		frame = s.session.Advance()
		if frame.Done() {
			break
		}
	}
	s.mu.Unlock()

	writeJSON(w, toSnapshot(frame))
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	if s.session == nil {
		s.mu.Unlock()
		http.Error(w, "engine not initialized", http.StatusBadRequest)
		return
	}
	frame := s.session.Frame()
	s.mu.Unlock()

	writeJSON(w, toSnapshot(frame))
}

func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.ServeFileFS(w, r, static, "static/index.html")
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts the
// server down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.logger.Info("visualizer listening", zap.String("addr", ln.Addr().String()))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
