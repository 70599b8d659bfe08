package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"DataSci/internal/coordinator"
	"DataSci/internal/dataset"
	"DataSci/internal/grep"
	"DataSci/internal/logger"
	"DataSci/internal/network"
	"DataSci/internal/stats"
	"DataSci/internal/text"
	"DataSci/internal/types"
)

type ServerOpts struct {
	ID     string
	Addr   string
	Logger *logger.Logger
}

type Server struct {
	opts      ServerOpts
	coord     *coordinator.Coordinator
	graph     *network.Graph
	interests *network.InterestIndex
	router    *gin.Engine
	srv       *http.Server
	logger    *logger.Logger
}

type wordCountRequest struct {
	Documents []string `json:"documents" binding:"required"`
}

type grepRequest struct {
	Pattern   string          `json:"pattern" binding:"required"`
	Documents []grep.Document `json:"documents" binding:"required"`
}

type statsRequest struct {
	Values []float64 `json:"values" binding:"required"`
}

// NewServer builds the API over coord and the bundled social network.
func NewServer(opts ServerOpts, coord *coordinator.Coordinator) (*Server, error) {
	if opts.Logger == nil {
		opts.Logger = logger.New("INFO")
	}
	if opts.Addr == "" {
		opts.Addr = ":8080"
	}

	graph, err := network.NewGraph(dataset.Users(), dataset.Friendships())
	if err != nil {
		return nil, fmt.Errorf("building network: %w", err)
	}

	s := &Server{
		opts:      opts,
		coord:     coord,
		graph:     graph,
		interests: network.NewInterestIndex(dataset.Interests()),
		logger:    opts.Logger.Named("http"),
	}
	s.router = s.routes()
	s.srv = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.logRequests())

	r.GET("/health", s.health)
	r.POST("/wordcount", s.wordCount)
	r.POST("/grep", s.grepDocuments)
	r.GET("/runs", s.listRuns)
	r.GET("/runs/:id", s.getRun)
	r.POST("/stats", s.summarize)
	r.GET("/users/:id/suggestions", s.suggestions)
	return r
}

func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("%s %s status=%d took=%s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("Server %s listening on %s", s.opts.ID, s.opts.Addr)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func errorJSON(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"error": err.Error()})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "id": s.opts.ID})
}

func (s *Server) wordCount(c *gin.Context) {
	var req wordCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, err)
		return
	}

	run, counts, err := s.coord.SubmitWordCount(c.Request.Context(), req.Documents)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"run": run, "error": err.Error()})
		return
	}

	entries := make([]text.Entry[string], len(counts))
	for i, kv := range counts {
		entries[i] = text.Entry[string]{Key: kv.Key, Count: kv.Value}
	}
	c.JSON(http.StatusOK, gin.H{"run": run, "counts": entries})
}

func (s *Server) grepDocuments(c *gin.Context) {
	var req grepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, err)
		return
	}
	if _, err := grep.NewDistributedGrep(req.Pattern); err != nil {
		errorJSON(c, http.StatusBadRequest, err)
		return
	}
	if len(req.Documents) == 0 {
		errorJSON(c, http.StatusBadRequest, errors.New("no documents provided"))
		return
	}

	run, matches, err := s.coord.SubmitGrep(c.Request.Context(), req.Pattern, req.Documents)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"run": run, "error": err.Error()})
		return
	}
	if matches == nil {
		matches = []grep.Match{}
	}
	c.JSON(http.StatusOK, gin.H{"run": run, "matches": matches})
}

func (s *Server) listRuns(c *gin.Context) {
	runs, err := s.coord.Runs()
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, err)
		return
	}
	if runs == nil {
		runs = []types.Run{}
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

func (s *Server) getRun(c *gin.Context) {
	id := c.Param("id")
	run, err := s.coord.GetRun(id)
	if errors.Is(err, coordinator.ErrRunNotFound) {
		errorJSON(c, http.StatusNotFound, err)
		return
	}
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, err)
		return
	}

	results, err := s.coord.Results(id)
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, err)
		return
	}
	if results == nil {
		results = []types.Pair{}
	}
	c.JSON(http.StatusOK, gin.H{"run": run, "results": results})
}

func (s *Server) summarize(c *gin.Context) {
	var req statsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, err)
		return
	}

	summary, err := stats.Summarize(req.Values)
	if errors.Is(err, stats.ErrEmpty) {
		errorJSON(c, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) suggestions(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, fmt.Errorf("invalid user id %q", c.Param("id")))
		return
	}
	user, ok := s.graph.User(id)
	if !ok {
		errorJSON(c, http.StatusNotFound, fmt.Errorf("user %d not found", id))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":               user,
		"friends_of_friends": s.graph.FriendsOfFriendIDs(id).MostCommon(0),
		"shared_interests":   s.interests.MostCommonInterestsWith(id).MostCommon(0),
	})
}
